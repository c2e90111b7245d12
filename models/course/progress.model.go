package course

import "gorm.io/gorm"

// LessonProgress tracks one user's state on one lesson. Completed and
// PercentViewed are independently settable: the client decides the
// completion trigger (manual button vs. player end event), so 100% viewed
// does not imply completed.
type LessonProgress struct {
	gorm.Model
	UserID        uint `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID      uint `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	Completed     bool `json:"completed" gorm:"default:false"`
	PercentViewed int  `json:"percent_viewed" gorm:"default:0"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
