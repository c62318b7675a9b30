package models

import (
	"testing"
	"time"
)

func TestVerificationCodeExpired(t *testing.T) {
	now := time.Now()
	vc := VerificationCode{ExpiresAt: now.Add(time.Minute)}
	if vc.Expired(now) {
		t.Error("code should still be live")
	}
	if !vc.Expired(now.Add(2 * time.Minute)) {
		t.Error("code should be expired")
	}
}
