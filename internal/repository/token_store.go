package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the refresh-token allow-list in Redis. Logout removes the
// entry, which invalidates the cookie before its JWT expiry.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) SaveRefreshToken(ctx context.Context, userID, token string, expiration time.Duration) error {
	return s.client.Set(ctx, "refresh:"+userID, token, expiration).Err()
}

// GetRefreshToken returns the stored token, or "" when none is active.
func (s *TokenStore) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	token, err := s.client.Get(ctx, "refresh:"+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (s *TokenStore) RevokeRefreshToken(ctx context.Context, userID string) error {
	return s.client.Del(ctx, "refresh:"+userID).Err()
}
