package models

import (
	"time"
)

// SavedPost is the user-side bookmark relation, symmetric to Like.
type SavedPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_saved" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_user_saved" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
