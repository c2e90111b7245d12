package controllers

import (
	"strconv"

	"impulsatech/middleware"
	courseModels "impulsatech/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseWithCount decorates a course with its lesson count for list views
type CourseWithCount struct {
	courseModels.Course
	LessonCount int64 `json:"lesson_count"`
}

// LessonWithStatus decorates a lesson with the caller's completion flag.
// The flag stays false for anonymous callers and for lessons without a
// progress row yet.
type LessonWithStatus struct {
	courseModels.Lesson
	Completed bool `json:"completed"`
}

// ListCourses returns active courses with periods, objectives and lesson
// count. Public; supports an optional category filter.
func (h *Handler) ListCourses(c *fiber.Ctx) error {
	db := h.DB.Where("active = ?", true)

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		if categoryID, err := strconv.Atoi(categoryIDStr); err == nil && categoryID > 0 {
			db = db.Where("category_id = ?", categoryID)
		}
	}

	var courses []courseModels.Course
	if err := db.
		Preload("Periods", orderByIndex).
		Preload("Objectives", orderByIndex).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]CourseWithCount, len(courses))
	for i, course := range courses {
		result[i] = CourseWithCount{Course: course}
		if err := h.DB.Model(&courseModels.Lesson{}).Where("course_id = ?", course.ID).Count(&result[i].LessonCount).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}

// GetCourseDetails returns one course with periods, objectives and lessons.
// Lessons carry the caller's completion flag when a principal is present.
// Inactive courses are hidden from non-admin callers.
func (h *Handler) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := h.DB.
		Preload("Periods", orderByIndex).
		Preload("Objectives", orderByIndex).
		Where("id = ?", courseID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	role, _ := c.Locals("role").(string)
	if !course.Active && role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	lessons, err := h.annotatedLessons(uint(courseID), c.Locals("userId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":       course,
		"lessons":      lessons,
		"lesson_count": len(lessons),
	})
}

// GetCourseLessons returns the ordered lesson list of a course with the
// caller's completion flags
func (h *Handler) GetCourseLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := h.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	role, _ := c.Locals("role").(string)
	if !course.Active && role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	lessons, err := h.annotatedLessons(uint(courseID), c.Locals("userId"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
	})
}

// GetLessonDetails returns a single lesson with its parent course title and
// the caller's completion flag
func (h *Handler) GetLessonDetails(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := h.DB.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var course courseModels.Course
	courseTitle := ""
	if err := h.DB.Where("id = ?", lesson.CourseID).First(&course).Error; err == nil {
		courseTitle = course.Title
	}

	completed := false
	if userID, ok := c.Locals("userId").(uint); ok {
		var progress courseModels.LessonProgress
		if err := h.DB.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).First(&progress).Error; err == nil {
			completed = progress.Completed
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson":       lesson,
		"course_title": courseTitle,
		"completed":    completed,
	})
}

// annotatedLessons loads a course's lessons in order and marks the ones the
// principal has completed
func (h *Handler) annotatedLessons(courseID uint, principal interface{}) ([]LessonWithStatus, error) {
	var lessons []courseModels.Lesson
	if err := h.DB.Where("course_id = ?", courseID).Order("order_index asc").Find(&lessons).Error; err != nil {
		return nil, err
	}

	result := make([]LessonWithStatus, len(lessons))
	for i, lesson := range lessons {
		result[i] = LessonWithStatus{Lesson: lesson}
	}

	userID, ok := principal.(uint)
	if !ok || len(lessons) == 0 {
		return result, nil
	}

	lessonIDs := make([]uint, len(lessons))
	for i, lesson := range lessons {
		lessonIDs[i] = lesson.ID
	}

	var rows []courseModels.LessonProgress
	if err := h.DB.Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).Find(&rows).Error; err != nil {
		return nil, err
	}

	completedByLesson := make(map[uint]bool, len(rows))
	for _, row := range rows {
		completedByLesson[row.LessonID] = row.Completed
	}
	for i := range result {
		result[i].Completed = completedByLesson[result[i].ID]
	}

	return result, nil
}

func orderByIndex(db *gorm.DB) *gorm.DB {
	return db.Order("order_index asc")
}
