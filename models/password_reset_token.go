package models

import "time"

// ResetTokenLifetime is how long an emailed reset code stays valid.
const ResetTokenLifetime = time.Hour

// PasswordResetToken stores a 6-digit code emailed to a user. A token
// is consumed exactly once; expired or used tokens are purged by the
// periodic cleanup sweep.
type PasswordResetToken struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"userId"`
	Email     string    `gorm:"type:varchar(100);index" json:"email"`
	Code      string    `gorm:"type:varchar(6)" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}

// IsValid reports whether the token can still be consumed.
func (t *PasswordResetToken) IsValid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
