package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog entry. The id is assigned by the store
// (auto-increment) and, because removal is a soft delete, ids are never
// reused after a product is removed.
type Product struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(255);not null" validate:"required"`
	Image     string         `json:"image" gorm:"type:varchar(512);not null" validate:"required"`
	Category  string         `json:"category" gorm:"type:varchar(100);index;not null" validate:"required"`
	NewPrice  float64        `json:"new_price" gorm:"not null" validate:"gte=0"`
	OldPrice  float64        `json:"old_price" gorm:"not null" validate:"gte=0"`
	CreatedAt time.Time      `json:"date"`
	Available bool           `json:"available" gorm:"default:true"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
