package models

import "gorm.io/gorm"

// Restaurant represents a lunar cantina customers can order from.
// Immutable from the customer's perspective; only the admin path creates them.
type Restaurant struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
