package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/pkg/errs"
)

// Locker serializes concurrent booking attempts on the same day with
// a best-effort SETNX lock. The TTL bounds how long a crashed request
// can hold a day hostage.
type Locker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLocker(client *redis.Client, cfg config.RedisConfig) *Locker {
	return &Locker{client: client, ttl: cfg.LockTTL}
}

// Acquire returns false when another request already holds the key.
func (l *Locker) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, "1", l.ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "lock acquire failed")
	}
	return ok, nil
}

func (l *Locker) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, key).Err(); err != nil {
		return errs.Wrap(err, "lock release failed")
	}
	return nil
}
