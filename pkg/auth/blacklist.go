package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/tracklane/tracklane/pkg/cache"
)

// TokenBlacklist tracks revoked JWT tokens in Redis until they expire
// on their own.
type TokenBlacklist struct {
	cache *cache.Client
}

// NewTokenBlacklist creates a new token blacklist
func NewTokenBlacklist(cache *cache.Client) *TokenBlacklist {
	return &TokenBlacklist{
		cache: cache,
	}
}

// Revoke adds a token to the blacklist for the remaining token lifetime
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, remaining time.Duration) error {
	// Store a hash, never the raw token
	key := b.key(token)
	return b.cache.Set(ctx, key, "revoked", remaining)
}

// IsRevoked checks whether a token has been revoked
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	return b.cache.Exists(ctx, b.key(token))
}

func (b *TokenBlacklist) key(token string) string {
	hash := sha256.Sum256([]byte(token))
	return fmt.Sprintf("jwt:blacklist:%s", hex.EncodeToString(hash[:]))
}
