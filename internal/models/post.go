package models

import "gorm.io/gorm"

// Post is a community feed entry. Likes is a non-negative counter; no
// endpoint increments it yet.
type Post struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Content    string `json:"content" gorm:"type:text;not null" validate:"required"`
	UserID     string `json:"user_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	Likes      int    `json:"likes" gorm:"default:0;check:likes >= 0"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
