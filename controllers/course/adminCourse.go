package controllers

import (
	"log"

	"impulsatech/middleware"
	courseModels "impulsatech/models/course"
	courseValidator "impulsatech/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateCourse creates a course together with its periods, objectives
// and lessons in one transaction. A failure at any step leaves no partial
// course behind.
func (h *Handler) AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:       reqData.Title,
		Subtitle:    reqData.Subtitle,
		Description: reqData.Description,
		Company:     reqData.Company,
		CategoryID:  reqData.CategoryID,
		LogoIcon:    reqData.LogoIcon,
		BannerURL:   reqData.BannerURL,
		VideoURL:    reqData.VideoURL,
		Active:      true,
	}
	if course.LogoIcon == "" {
		course.LogoIcon = "📚"
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		return createChildren(tx, course.ID, reqData)
	})
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", fiber.Map{
		"course_id": course.ID,
	})
}

// createChildren inserts periods, objectives and lessons tagged with their
// 0-based position in the submitted arrays. The caller's array order is
// authoritative.
func createChildren(tx *gorm.DB, courseID uint, reqData *courseValidator.CourseInput) error {
	for i, p := range reqData.Periods {
		period := courseModels.Period{
			CourseID:   courseID,
			Name:       p.Name,
			Duration:   p.Duration,
			OrderIndex: i,
		}
		if err := tx.Create(&period).Error; err != nil {
			return err
		}
	}

	for i, description := range reqData.LearningObjectives {
		objective := courseModels.Objective{
			CourseID:    courseID,
			Description: description,
			OrderIndex:  i,
		}
		if err := tx.Create(&objective).Error; err != nil {
			return err
		}
	}

	for i, l := range reqData.Lessons {
		lesson := courseModels.Lesson{
			CourseID:        courseID,
			Title:           l.Title,
			Description:     l.Description,
			VideoURL:        l.VideoURL,
			DurationMinutes: l.DurationMinutes,
			OrderIndex:      i,
		}
		if lesson.DurationMinutes == 0 {
			lesson.DurationMinutes = 10
		}
		if err := tx.Create(&lesson).Error; err != nil {
			return err
		}
	}

	return nil
}

// AdminUpdateCourse overwrites the course's scalar fields and rebuilds its
// children: periods and objectives are wholesale replaced from the input,
// lessons are reconciled by id so existing progress history stays attached.
// Lessons missing from the input are intentionally left in place.
func (h *Handler) AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := h.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Full-field overwrite, no partial patch semantics
	course.Title = reqData.Title
	course.Subtitle = reqData.Subtitle
	course.Description = reqData.Description
	course.Company = reqData.Company
	course.CategoryID = reqData.CategoryID
	course.LogoIcon = reqData.LogoIcon
	course.BannerURL = reqData.BannerURL
	course.VideoURL = reqData.VideoURL

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&course).Error; err != nil {
			return err
		}

		// Periods and objectives: delete everything and re-insert, order
		// re-derived from array position
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Period{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Objective{}).Error; err != nil {
			return err
		}

		for i, p := range reqData.Periods {
			period := courseModels.Period{
				CourseID:   course.ID,
				Name:       p.Name,
				Duration:   p.Duration,
				OrderIndex: i,
			}
			if err := tx.Create(&period).Error; err != nil {
				return err
			}
		}
		for i, description := range reqData.LearningObjectives {
			objective := courseModels.Objective{
				CourseID:    course.ID,
				Description: description,
				OrderIndex:  i,
			}
			if err := tx.Create(&objective).Error; err != nil {
				return err
			}
		}

		return reconcileLessons(tx, course.ID, reqData.Lessons)
	})
	if err != nil {
		log.Printf("Error updating course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", nil)
}

// reconcileLessons matches input items to stored lessons by id. Known ids
// are updated in place (title, video, order); items without a known id are
// inserted. Stored lessons absent from the input are never deleted here,
// so progress rows keyed by lesson id survive course edits.
func reconcileLessons(tx *gorm.DB, courseID uint, inputs []courseValidator.LessonInput) error {
	var existingIDs []uint
	if err := tx.Model(&courseModels.Lesson{}).
		Where("course_id = ?", courseID).
		Pluck("id", &existingIDs).Error; err != nil {
		return err
	}

	known := make(map[uint]bool, len(existingIDs))
	for _, id := range existingIDs {
		known[id] = true
	}

	for i, l := range inputs {
		if l.ID != 0 && known[l.ID] {
			updates := map[string]interface{}{
				"title":       l.Title,
				"video_url":   l.VideoURL,
				"order_index": i,
			}
			if err := tx.Model(&courseModels.Lesson{}).
				Where("id = ?", l.ID).
				Updates(updates).Error; err != nil {
				return err
			}
			continue
		}

		lesson := courseModels.Lesson{
			CourseID:        courseID,
			Title:           l.Title,
			Description:     l.Description,
			VideoURL:        l.VideoURL,
			DurationMinutes: l.DurationMinutes,
			OrderIndex:      i,
		}
		if lesson.DurationMinutes == 0 {
			lesson.DurationMinutes = 10
		}
		if err := tx.Create(&lesson).Error; err != nil {
			return err
		}
	}

	return nil
}

// AdminDeleteCourse soft deletes a course, excluding it from listing and
// enrollment without touching its children
func (h *Handler) AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := h.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Active = false
	if err := h.DB.Save(&course).Error; err != nil {
		log.Printf("Error deactivating course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminHardDeleteCourse removes the course row and everything hanging off
// it: periods, objectives, lessons, enrollments and lesson progress, all in
// one transaction
func (h *Handler) AdminHardDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := h.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		lessonIDs := tx.Model(&courseModels.Lesson{}).Select("id").Where("course_id = ?", course.ID)
		if err := tx.Unscoped().Where("lesson_id IN (?)", lessonIDs).Delete(&courseModels.LessonProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Period{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Objective{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&course).Error
	})
	if err != nil {
		log.Printf("Error hard deleting course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed permanently!", nil)
}
