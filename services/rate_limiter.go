package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimiter throttles repeated attempts per key. The password-reset
// flow is its only consumer in this API. The policy lives in the
// caller; implementations only count.
type RateLimiter interface {
	IsLimited(key string, maxAttempts int, windowMinutes int) (bool, error)
	RecordAttempt(key string, windowMinutes int) error
	Clear(key string) error
}

// RedisRateLimiter counts attempts in Redis so the throttle holds
// across instances. Keys expire with the window.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client}
}

func rateLimitKey(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}

func (l *RedisRateLimiter) IsLimited(key string, maxAttempts int, windowMinutes int) (bool, error) {
	count, err := l.client.Get(context.Background(), rateLimitKey(key)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= maxAttempts, nil
}

func (l *RedisRateLimiter) RecordAttempt(key string, windowMinutes int) error {
	ctx := context.Background()
	rkey := rateLimitKey(key)
	count, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return l.client.Expire(ctx, rkey, time.Duration(windowMinutes)*time.Minute).Err()
	}
	return nil
}

func (l *RedisRateLimiter) Clear(key string) error {
	return l.client.Del(context.Background(), rateLimitKey(key)).Err()
}

// MemoryRateLimiter is the single-instance fallback and the test
// double: a plain map of counters with window expiry.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptWindow
	now      func() time.Time
}

type attemptWindow struct {
	count     int
	expiresAt time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		attempts: make(map[string]*attemptWindow),
		now:      time.Now,
	}
}

func (l *MemoryRateLimiter) IsLimited(key string, maxAttempts int, windowMinutes int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	window := l.attempts[key]
	if window == nil || l.now().After(window.expiresAt) {
		return false, nil
	}
	return window.count >= maxAttempts, nil
}

func (l *MemoryRateLimiter) RecordAttempt(key string, windowMinutes int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	window := l.attempts[key]
	if window == nil || l.now().After(window.expiresAt) {
		l.attempts[key] = &attemptWindow{
			count:     1,
			expiresAt: l.now().Add(time.Duration(windowMinutes) * time.Minute),
		}
		return nil
	}
	window.count++
	return nil
}

func (l *MemoryRateLimiter) Clear(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
	return nil
}
