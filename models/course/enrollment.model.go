package course

import "gorm.io/gorm"

// Enrollment links a user to a course. The composite unique index is the
// real guard against duplicate enrollments under concurrent requests; the
// service-level existence check only produces a friendlier message.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID uint `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
}
