package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiterCountsPerKey(t *testing.T) {
	l := NewMemoryRateLimiter()

	for i := 0; i < 3; i++ {
		limited, err := l.IsLimited("maria@example.com", 3, 60)
		require.NoError(t, err)
		assert.False(t, limited)
		require.NoError(t, l.RecordAttempt("maria@example.com", 60))
	}

	limited, err := l.IsLimited("maria@example.com", 3, 60)
	require.NoError(t, err)
	assert.True(t, limited)

	// Other keys are unaffected.
	limited, err = l.IsLimited("joao@example.com", 3, 60)
	require.NoError(t, err)
	assert.False(t, limited)
}

func TestMemoryRateLimiterWindowExpires(t *testing.T) {
	l := NewMemoryRateLimiter()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		require.NoError(t, l.RecordAttempt("key", 60))
	}
	limited, _ := l.IsLimited("key", 3, 60)
	assert.True(t, limited)

	l.now = func() time.Time { return base.Add(61 * time.Minute) }
	limited, _ = l.IsLimited("key", 3, 60)
	assert.False(t, limited)

	// A fresh attempt after expiry starts a new window at 1.
	require.NoError(t, l.RecordAttempt("key", 60))
	limited, _ = l.IsLimited("key", 3, 60)
	assert.False(t, limited)
}

func TestMemoryRateLimiterClear(t *testing.T) {
	l := NewMemoryRateLimiter()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.RecordAttempt("key", 60))
	}
	require.NoError(t, l.Clear("key"))

	limited, _ := l.IsLimited("key", 3, 60)
	assert.False(t, limited)
}
