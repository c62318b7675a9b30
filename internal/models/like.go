package models

import (
	"time"
)

// Like is a user's membership in a post's liking set. The unique pair index
// is what makes the toggle race-free: two concurrent likes collapse into one
// row, and the loser of the insert sees a conflict instead of a lost update.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_like" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_user_like" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
