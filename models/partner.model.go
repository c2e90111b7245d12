package models

import "gorm.io/gorm"

// Partner is an institution with an agreement that grants its members access
// to the platform
type Partner struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
	Active      bool   `json:"active" gorm:"default:true"`
}
