package services

import (
	"strings"
	"time"

	"SinOutGo/models"
	"SinOutGo/repositories"
	"SinOutGo/utils"
)

// Reset-request throttle: three codes per address per hour.
const (
	resetMaxAttempts   = 3
	resetWindowMinutes = 60
)

// PasswordResetService drives the forgot-password flow: emailed
// 6-digit codes, valid for one hour, consumed exactly once.
type PasswordResetService struct {
	users   repositories.UserRepository
	tokens  repositories.ResetTokenRepository
	limiter RateLimiter
	email   EmailSender
	now     func() time.Time
}

func NewPasswordResetService(
	users repositories.UserRepository,
	tokens repositories.ResetTokenRepository,
	limiter RateLimiter,
	email EmailSender,
) *PasswordResetService {
	return &PasswordResetService{
		users:   users,
		tokens:  tokens,
		limiter: limiter,
		email:   email,
		now:     time.Now,
	}
}

// RequestReset emails a fresh code. An unknown address returns nil
// without sending anything, so the endpoint cannot be used to probe
// which emails are registered. Only the throttle is surfaced.
func (s *PasswordResetService) RequestReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	limited, err := s.limiter.IsLimited(email, resetMaxAttempts, resetWindowMinutes)
	if err != nil {
		return err
	}
	if limited {
		return models.NewDomainError("Too many reset requests. Try again in 60 minutes")
	}
	if err := s.limiter.RecordAttempt(email, resetWindowMinutes); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}

	now := s.now().UTC()
	token := &models.PasswordResetToken{
		ID:        utils.GenerateID(),
		UserID:    user.ID,
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(models.ResetTokenLifetime),
	}
	if err := s.tokens.Create(token); err != nil {
		return err
	}

	// Fire and forget; a delivery failure is logged by the sender and
	// never fails the request.
	go s.email.SendPasswordResetCode(email, code)
	return nil
}

// ConfirmReset consumes a code and installs the new password.
func (s *PasswordResetService) ConfirmReset(email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	token, err := s.tokens.GetByEmailAndCode(email, code)
	if err != nil {
		return err
	}
	if token == nil || !token.IsValid(s.now().UTC()) {
		return models.NewDomainError("Invalid or expired reset code")
	}

	user, err := s.users.GetByID(token.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewDomainError("Invalid or expired reset code")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.FailedLoginAttempts = 0
	user.LockoutUntil = nil
	if err := s.users.Update(user); err != nil {
		return err
	}

	if err := s.tokens.MarkUsed(token.ID); err != nil {
		return err
	}
	if err := s.limiter.Clear(email); err != nil {
		return err
	}

	go s.email.SendPasswordChangedNotice(email)
	return nil
}
