package controllers

import (
	"log"

	"impulsatech/middleware"
	courseModels "impulsatech/models/course"
	courseValidator "impulsatech/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// RecordLessonProgress upserts the caller's progress row for a lesson and
// returns the recomputed course percentage so the client can refresh its UI
// without a second round trip
func (h *Handler) RecordLessonProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var lesson courseModels.Lesson
	if err := h.DB.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	progress := courseModels.LessonProgress{
		UserID:        userID,
		LessonID:      lesson.ID,
		Completed:     reqData.Completed,
		PercentViewed: reqData.PercentViewed,
	}

	// Insert or overwrite the existing (user, lesson) row; the unique index
	// guarantees exactly one row survives concurrent events
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed",
			"percent_viewed",
			"updated_at",
		}),
	}).Create(&progress).Error; err != nil {
		log.Printf("Error saving progress for user %d lesson %d: %v", userID, lesson.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	completed, total, err := h.progressCounts(userID, lesson.CourseID)
	if err != nil {
		log.Printf("Error computing progress for user %d course %d: %v", userID, lesson.CourseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved!", fiber.Map{
		"success":      true,
		"new_progress": percentComplete(completed, total),
	})
}

// GetCourseProgress reports the caller's completion state for a course.
// Anonymous callers get zeros rather than an error so unauthenticated page
// loads keep working.
func (h *Handler) GetCourseProgress(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := h.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		var total int64
		if err := h.DB.Model(&courseModels.Lesson{}).Where("course_id = ?", course.ID).Count(&total).Error; err != nil {
			log.Printf("Error counting lessons for course %d: %v", course.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
			"percent_complete":  0,
			"completed_lessons": 0,
			"total_lessons":     total,
		})
	}

	completed, total, err := h.progressCounts(userID, course.ID)
	if err != nil {
		log.Printf("Error computing progress for user %d course %d: %v", userID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"percent_complete":  percentComplete(completed, total),
		"completed_lessons": completed,
		"total_lessons":     total,
	})
}
