package models

import (
	"time"
)

const (
	VerificationChannelEmail = "email"
	VerificationChannelPhone = "phone"
)

// VerificationCode is a signup verification code with an expiry. One live code
// per (channel, address); re-issuing overwrites the previous one. Expired rows
// are treated as absent by the lookup.
type VerificationCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Channel   string    `gorm:"size:10;not null;uniqueIndex:idx_channel_address" json:"channel"`
	Address   string    `gorm:"not null;uniqueIndex:idx_channel_address" json:"address"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the code is past its TTL at the given instant.
func (v *VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
