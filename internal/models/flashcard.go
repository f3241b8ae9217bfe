package models

import (
	"time"

	"gorm.io/gorm"
)

// Flashcard is a question/answer pair owned by a user and filed under a
// category. ReviewDate is reserved for a future scheduler and is not
// read by any handler.
type Flashcard struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Question   string     `json:"question" gorm:"type:text;not null" validate:"required"`
	Answer     string     `json:"answer" gorm:"type:text;not null" validate:"required"`
	CategoryID string     `json:"category_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	UserID     string     `json:"user_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	ReviewDate *time.Time `json:"review_date"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
