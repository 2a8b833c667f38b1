package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerconnect/internal/storage"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "auth:revoked:"

// TokenDenylist keeps revoked token ids in Redis. Entries expire with the token,
// so the set never outgrows the number of live sessions.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a new TokenDenylist.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

var _ storage.TokenDenylist = (*TokenDenylist)(nil)

// Revoke marks tokenID as revoked for ttl. A non-positive ttl means the token has
// already expired and nothing is stored.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", tokenID, err)
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	err := d.client.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token %s: %w", tokenID, err)
	}
	return true, nil
}
