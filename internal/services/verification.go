package services

import (
	"errors"
	"time"

	"herhub/internal/db"
	"herhub/internal/models"
	"herhub/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// codeTTL bounds how long an issued verification code stays valid.
const codeTTL = 10 * time.Minute

// IssueCode creates a fresh 6-digit code for (channel, address), replacing
// any previous one. The code lives in the store with an expiry rather than
// in process memory, so restarts and multiple instances see the same state.
func IssueCode(channel, address string) (string, error) {
	code := utils.RandDigits(6)
	vc := models.VerificationCode{
		Channel:   channel,
		Address:   address,
		Code:      code,
		ExpiresAt: time.Now().Add(codeTTL),
	}
	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel"}, {Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "created_at"}),
	}).Create(&vc).Error
	if err != nil {
		return "", err
	}
	return code, nil
}

// ConsumeCode checks the submitted code against the stored one and deletes
// it on success. An expired code counts as absent and is cleaned up.
func ConsumeCode(channel, address, code string) (bool, error) {
	var vc models.VerificationCode
	err := db.DB.Where("channel = ? AND address = ?", channel, address).First(&vc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if vc.Expired(time.Now()) {
		db.DB.Delete(&vc)
		return false, nil
	}
	if vc.Code != code {
		return false, nil
	}

	if err := db.DB.Delete(&vc).Error; err != nil {
		return false, err
	}
	return true, nil
}
