package models

import "gorm.io/gorm"

// Follow is a follower -> followed edge between users. The table is
// migrated for the social graph but no handler exercises it yet. The
// check constraint rejects self-follows at the data layer.
type Follow struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FollowerID string `json:"follower_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_follow_edge;check:follower_id <> followed_id" validate:"required"`
	FollowedID string `json:"followed_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_follow_edge" validate:"required"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
