package models

import (
	"time"
)

// Post type tags. The feed filter additionally recognizes "resource"
// (the Resources filter label), which no creation path produces.
const (
	PostTypeImage = "image"
	PostTypeTip   = "tip"
	PostTypeChat  = "chat"
	PostTypePoll  = "poll"
)

type Post struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Pid           string       `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID        uint         `gorm:"not null;index" json:"user_id"`
	User          User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Type          string       `gorm:"size:20;not null;index" json:"type"`
	Text          string       `gorm:"type:text" json:"text"`
	ImageURL      string       `json:"image_url"`
	Question      string       `gorm:"type:text" json:"question"`
	PollOptions   []PollOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"poll_options"`
	LikesCount    int          `gorm:"default:0;index" json:"likes_count"`
	CommentsCount int          `gorm:"default:0" json:"comments_count"`
	CreatedAt     time.Time    `gorm:"index" json:"created_at"`
}
