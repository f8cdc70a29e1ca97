package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheService(client, time.Minute), mr
}

func TestCacheService(t *testing.T) {
	t.Parallel()
	cache, mr := newTestCache(t)
	ctx := context.Background()

	var got []string
	found, err := cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, cache.Set(ctx, "k", []string{"a", "b"}))
	require.Equal(t, time.Minute, mr.TTL("k"))

	found, err = cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"a", "b"}, got)

	require.NoError(t, cache.Delete(ctx, "k"))
	require.False(t, mr.Exists("k"))
}

func TestCacheServiceExpires(t *testing.T) {
	t.Parallel()
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, CarsListKey(true), 1))
	mr.FastForward(2 * time.Minute)

	var v int
	found, err := cache.Get(ctx, CarsListKey(true), &v)
	require.NoError(t, err)
	require.False(t, found)
}

func TestCacheServiceDisabled(t *testing.T) {
	t.Parallel()
	cache := NewCacheService(nil, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", 1))
	var v int
	found, err := cache.Get(ctx, "k", &v)
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, cache.Delete(ctx, "k"))
}
