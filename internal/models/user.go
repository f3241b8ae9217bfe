package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account.
type User struct {
	ID              string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username        string     `json:"username" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=3,max=100"`
	Email           string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password        string     `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never the raw password
	IsAdmin         bool       `json:"is_admin" gorm:"default:false"`
	TrialStart      time.Time  `json:"trial_start"` // set once at registration; no handler updates it
	SubscriptionEnd *time.Time `json:"subscription_end"`
	ProfilePicture  string     `json:"profile_picture" gorm:"type:varchar(200)"`
	gorm.Model                 // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
