package models

import (
	"time"
)

// PollOption is one choice of a poll post, kept in submission order.
type PollOption struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	Position int    `gorm:"not null" json:"position"`
	Label    string `gorm:"not null" json:"label"`

	// Not a database column; filled in at query time.
	VotesCount int `gorm:"-" json:"votes_count"`
}

// PollVote records one user's vote on one option. The unique pair makes
// double-voting on an option a no-op at the store level.
type PollVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OptionID  uint      `gorm:"not null;index;uniqueIndex:idx_option_voter" json:"option_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_option_voter" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
