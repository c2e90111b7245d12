package course

import "gorm.io/gorm"

// Course represents a catalog course with its ordered child collections
type Course struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description" gorm:"type:text"`
	Company     string `json:"company"`
	CategoryID  uint   `json:"category_id" gorm:"index;not null"`
	LogoIcon    string `json:"logo_icon" gorm:"default:'📚'"`
	BannerURL   string `json:"banner_url"`
	VideoURL    string `json:"video_url"` // promo video, external URL only
	Active      bool   `json:"active" gorm:"default:true"`

	Periods    []Period    `json:"periods,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	Objectives []Objective `json:"objectives,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	Lessons    []Lesson    `json:"lessons,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}

// Period is a named stage of a course (e.g. "Week 1"), ordered by OrderIndex
type Period struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Name       string `json:"name"`
	Duration   string `json:"duration"` // free-form label, e.g. "2 weeks"
	OrderIndex int    `json:"order" gorm:"default:0"`
}

// Objective is a free-text learning objective of a course
type Objective struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order" gorm:"default:0"`
}

// Lesson is the unit of progress tracking; video is referenced by URL only
type Lesson struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index:idx_course_order;not null"`
	Title           string `json:"title" gorm:"not null"`
	Description     string `json:"description" gorm:"type:text"`
	VideoURL        string `json:"video_url" gorm:"not null"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:10"`
	OrderIndex      int    `json:"order" gorm:"index:idx_course_order;default:0"`
}
