package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SinOutGo/config"
	"SinOutGo/models"
)

func init() {
	// The cleanup service logs through the shared logger.
	config.Logger = zap.NewNop().Sugar()
}

func TestSweepPurgesUsedAndExpired(t *testing.T) {
	repo := newFakeTokenRepo()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(&models.PasswordResetToken{
		ID: "used", Email: "a@example.com", Code: "111111",
		CreatedAt: now, ExpiresAt: now.Add(time.Hour), Used: true,
	}))
	require.NoError(t, repo.Create(&models.PasswordResetToken{
		ID: "expired", Email: "b@example.com", Code: "222222",
		CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, repo.Create(&models.PasswordResetToken{
		ID: "live", Email: "c@example.com", Code: "333333",
		CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}))

	svc := NewTokenCleanupService(repo)
	next := svc.sweep()

	assert.Equal(t, cleanupInterval, next)
	_, ok := repo.tokens["live"]
	assert.True(t, ok)
	assert.Len(t, repo.tokens, 1)
}

func TestSweepBacksOffOnStoreFailure(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.failOn = true

	svc := NewTokenCleanupService(repo)
	assert.Equal(t, cleanupBackoff, svc.sweep())
}

func TestRunStopsOnCancel(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := NewTokenCleanupService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not observe cancellation")
	}
}
