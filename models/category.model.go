package models

import "gorm.io/gorm"

// Category groups courses for catalog filtering
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Icon        string `json:"icon" gorm:"default:'📚'"`
	Description string `json:"description"`
	Active      bool   `json:"active" gorm:"default:true"`
}
