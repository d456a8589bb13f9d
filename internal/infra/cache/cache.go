package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/pkg/errs"
)

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}

	return client, cleanup, nil
}

// Cache is a JSON read-through layer over redis. A miss returns
// (false, nil) so callers fall back to the database and fill the key.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, cfg config.RedisConfig) *Cache {
	return &Cache{client: client, ttl: cfg.CacheTTL}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, errs.Wrap(err, "cache get failed")
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errs.Wrap(err, "cache payload decode failed")
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "cache payload encode failed")
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "cache set failed")
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "cache delete failed")
	}
	return nil
}

// DeletePattern drops every key matching the glob pattern. Used to
// invalidate a whole month of calendar entries after a write.
func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errs.Wrap(err, "cache scan failed")
	}
	return c.Delete(ctx, keys...)
}
