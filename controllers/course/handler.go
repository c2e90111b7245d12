package controllers

import (
	"math"

	courseModels "impulsatech/models/course"

	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// progressCounts returns the user's completed lesson count and the course's
// total lesson count. The two counts come from separate statements, so the
// read is not linearizable; acceptable for a presentation path.
func (h *Handler) progressCounts(userID, courseID uint) (completed, total int64, err error) {
	if err = h.DB.Model(&courseModels.Lesson{}).
		Where("course_id = ?", courseID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err = h.DB.Model(&courseModels.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Where("lessons.course_id = ? AND lesson_progress.user_id = ? AND lesson_progress.completed = ?", courseID, userID, true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	return completed, total, nil
}

// percentComplete derives the course completion percentage, rounded to the
// nearest integer. A course with no lessons is 0% complete.
func percentComplete(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
