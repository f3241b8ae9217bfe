package models

import "gorm.io/gorm"

// Category is a label flashcards are grouped under. The name carries a
// unique index so concurrent first-boot seeding cannot duplicate rows.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
