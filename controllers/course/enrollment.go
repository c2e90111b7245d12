package controllers

import (
	"errors"
	"log"

	"impulsatech/middleware"
	courseModels "impulsatech/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrolledCourse is a course annotated with the caller's progress for the
// my-courses view
type EnrolledCourse struct {
	courseModels.Course
	EnrolledAt       string `json:"enrolled_at"`
	TotalLessons     int64  `json:"total_lessons"`
	CompletedLessons int64  `json:"completed_lessons"`
	PercentComplete  int    `json:"percent_complete"`
}

// EnrollInCourse enrolls the calling principal in a course. The existence
// check gives a friendly message; if two requests race past it, the unique
// index rejects the second insert and we report the same outcome.
func (h *Handler) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := h.DB.Where("id = ? AND active = ?", courseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	var existing courseModels.Enrollment
	if err := h.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You are already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: uint(courseID),
	}
	if err := h.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You are already enrolled in this course!", nil)
		}
		log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// CheckEnrollment reports whether the calling principal is enrolled.
// Anonymous callers always see false, never an error.
func (h *Handler) CheckEnrollment(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched.", fiber.Map{
			"enrolled": false,
		})
	}

	var count int64
	if err := h.DB.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched.", fiber.Map{
		"enrolled": count > 0,
	})
}

// GetMyCourses lists the caller's enrolled active courses annotated with
// lesson totals and the derived completion percentage, newest first
func (h *Handler) GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := h.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course courseModels.Course
		if err := h.DB.Where("id = ? AND active = ?", enrollment.CourseID, true).First(&course).Error; err != nil {
			continue // soft-deleted course, keep it out of the list
		}

		completed, total, err := h.progressCounts(userID, course.ID)
		if err != nil {
			log.Printf("Error computing progress for user %d course %d: %v", userID, course.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}

		result = append(result, EnrolledCourse{
			Course:           course,
			EnrolledAt:       enrollment.CreatedAt.Format("2006-01-02 15:04:05"),
			TotalLessons:     total,
			CompletedLessons: completed,
			PercentComplete:  percentComplete(completed, total),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}
