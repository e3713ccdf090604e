package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &Client{Redis: redisClient}, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "analytics:revenue:2025-03", `{"gross":1500}`, 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "analytics:revenue:2025-03")
	require.NoError(t, err)
	assert.Equal(t, `{"gross":1500}`, val)
}

func TestClient_GetMissingKey(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key1", "a", time.Hour))
	require.NoError(t, client.Delete(ctx, "key1"))

	exists, err := client.Exists(ctx, "key1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "analytics:revenue:2025-01", "a", time.Hour))
	require.NoError(t, client.Set(ctx, "analytics:revenue:2025-02", "b", time.Hour))
	require.NoError(t, client.Set(ctx, "catalog:tracks", "c", time.Hour))

	require.NoError(t, client.DeletePattern(ctx, "analytics:*"))

	exists, err := client.Exists(ctx, "analytics:revenue:2025-01")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Exists(ctx, "catalog:tracks")
	require.NoError(t, err)
	assert.True(t, exists)
}
