package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"salon-reservas/internal/pkg/errs"
)

// RateLimiter is a fixed-window counter per key. The first hit in a
// window sets the expiry; further hits only increment.
type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// Allow reports whether the caller is still under limit for the window.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, errs.Wrap(err, "rate limit counter failed")
	}
	return incr.Val() <= int64(limit), nil
}
