package models

import "gorm.io/gorm"

// MenuItem represents a dish offered by a single restaurant.
type MenuItem struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	RestaurantID string  `json:"restaurant_id" gorm:"type:varchar(36);index" validate:"required"`
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Description  string  `json:"description" validate:"omitempty,max=500"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	PhotoURL     string  `json:"photo_url" validate:"omitempty,url"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
