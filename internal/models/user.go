package models

import "time"

// User represents a registered shopper.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"date"`
}
