package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"SinOutGo/models"
)

// ResetTokenRepository stores emailed password-reset codes.
type ResetTokenRepository interface {
	Create(token *models.PasswordResetToken) error
	GetByEmailAndCode(email, code string) (*models.PasswordResetToken, error)
	MarkUsed(id string) error
	// DeleteExpired purges tokens that are used or past their expiry.
	DeleteExpired(now time.Time) (int64, error)
}

type GormResetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) *GormResetTokenRepository {
	return &GormResetTokenRepository{db: db}
}

func (r *GormResetTokenRepository) Create(token *models.PasswordResetToken) error {
	return r.db.Create(token).Error
}

func (r *GormResetTokenRepository) GetByEmailAndCode(email, code string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	if err := r.db.Where("email = ? AND code = ?", email, code).
		Order("created_at DESC").First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *GormResetTokenRepository) MarkUsed(id string) error {
	return r.db.Model(&models.PasswordResetToken{}).
		Where("id = ?", id).Update("used", true).Error
}

func (r *GormResetTokenRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("used = ? OR expires_at < ?", true, now).
		Delete(&models.PasswordResetToken{})
	return result.RowsAffected, result.Error
}
