package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"not null" json:"fullName"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"not null" json:"phone"`
	BusinessName string    `gorm:"default:''" json:"businessName"`
	Avatar       string    `json:"avatar"`
	DateOfBirth  time.Time `gorm:"not null" json:"dateOfBirth"`
	ReferralCode string    `json:"referralCode"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
