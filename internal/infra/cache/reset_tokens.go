package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"salon-reservas/internal/pkg/errs"
)

const resetTokenTTL = 30 * time.Minute

// ResetTokenStore keeps one-shot password reset tokens in redis,
// keyed by the opaque token and holding the target user id.
type ResetTokenStore struct {
	client *redis.Client
}

func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

func (s *ResetTokenStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate reset token")
	}
	token := hex.EncodeToString(buf)

	key := resetKey(token)
	if err := s.client.Set(ctx, key, userID.String(), resetTokenTTL).Err(); err != nil {
		return "", errs.Wrap(err, "failed to store reset token")
	}
	return token, nil
}

// Consume validates the token and deletes it so it cannot be replayed.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (uuid.UUID, bool, error) {
	key := resetKey(token)
	raw, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, errs.Wrap(err, "failed to read reset token")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, errs.Wrap(err, "corrupt reset token payload")
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return uuid.Nil, false, errs.Wrap(err, "failed to consume reset token")
	}
	return userID, true, nil
}

func resetKey(token string) string {
	return "reset_token:" + token
}
