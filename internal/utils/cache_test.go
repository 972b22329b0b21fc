package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestCacheRoundTrip(t *testing.T) {
	mr, rdb := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetCache(ctx, rdb, StatsCacheKey, map[string]int{"users": 3}, time.Minute))

	var got map[string]int
	found, err := GetCache(ctx, rdb, StatsCacheKey, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, got["users"])

	mr.FastForward(2 * time.Minute)
	found, err = GetCache(ctx, rdb, StatsCacheKey, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteCache(t *testing.T) {
	mr, rdb := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetCache(ctx, rdb, StatsCacheKey, 1, time.Minute))
	require.NoError(t, SetCache(ctx, rdb, PublicBlogCacheKey, 2, time.Minute))
	require.NoError(t, DeleteCache(ctx, rdb, StatsCacheKey, PublicBlogCacheKey))

	assert.False(t, mr.Exists(StatsCacheKey))
	assert.False(t, mr.Exists(PublicBlogCacheKey))
}

func TestNilClientIsDisabledCache(t *testing.T) {
	ctx := context.Background()
	var dest int

	found, err := GetCache(ctx, nil, StatsCacheKey, &dest)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetCache(ctx, nil, StatsCacheKey, 1, time.Minute))
	assert.NoError(t, DeleteCache(ctx, nil, StatsCacheKey))
}
