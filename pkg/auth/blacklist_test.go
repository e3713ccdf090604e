package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklane/tracklane/pkg/cache"
)

func setupTestRedis(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	return client, mr
}

func TestTokenBlacklist_Revoke(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	token := "test.jwt.token"

	err := blacklist.Revoke(ctx, token, time.Hour)
	assert.NoError(t, err)

	revoked, err := blacklist.IsRevoked(ctx, token)
	assert.NoError(t, err)
	assert.True(t, revoked, "Token should be revoked")
}

func TestTokenBlacklist_IsRevoked_NotFound(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)

	revoked, err := blacklist.IsRevoked(context.Background(), "nonexistent.jwt.token")
	assert.NoError(t, err)
	assert.False(t, revoked, "Token should not be revoked")
}

func TestTokenBlacklist_Expiration(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	token := "expiring.jwt.token"

	err := blacklist.Revoke(ctx, token, time.Second)
	assert.NoError(t, err)

	revoked, err := blacklist.IsRevoked(ctx, token)
	assert.NoError(t, err)
	assert.True(t, revoked)

	// miniredis advances TTLs manually
	mr.FastForward(2 * time.Second)

	revoked, err = blacklist.IsRevoked(ctx, token)
	assert.NoError(t, err)
	assert.False(t, revoked, "Entry should expire with the token")
}
