package services

import (
	"context"
	"time"

	"SinOutGo/config"
	"SinOutGo/repositories"
)

// Sweep cadence: expired reset tokens are purged hourly; a failed
// sweep is retried after five minutes instead of waiting a full hour.
const (
	cleanupInterval = time.Hour
	cleanupBackoff  = 5 * time.Minute
)

// TokenCleanupService periodically deletes used and expired
// password-reset tokens.
type TokenCleanupService struct {
	tokens   repositories.ResetTokenRepository
	interval time.Duration
	backoff  time.Duration
}

func NewTokenCleanupService(tokens repositories.ResetTokenRepository) *TokenCleanupService {
	return &TokenCleanupService{
		tokens:   tokens,
		interval: cleanupInterval,
		backoff:  cleanupBackoff,
	}
}

// Run sweeps once immediately and then on the fixed interval until the
// context is cancelled. Store failures are logged and retried after
// the backoff; they never crash the process.
func (s *TokenCleanupService) Run(ctx context.Context) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			config.Logger.Infow("token cleanup stopped")
			return
		case <-timer.C:
			timer.Reset(s.sweep())
		}
	}
}

// sweep runs one purge and returns how long to wait before the next.
func (s *TokenCleanupService) sweep() time.Duration {
	deleted, err := s.tokens.DeleteExpired(time.Now().UTC())
	if err != nil {
		config.Logger.Errorw("token cleanup failed", "error", err)
		return s.backoff
	}
	if deleted > 0 {
		config.Logger.Infow("expired reset tokens purged", "count", deleted)
	}
	return s.interval
}
