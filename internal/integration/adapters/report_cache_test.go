package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

func TestReportCache_SetGet(t *testing.T) {
	_, client := newTestCache(t)
	cache := NewReportCache(client)
	ctx := context.Background()

	payload := []byte(`{"start_date":"2025-01-01"}`)
	require.NoError(t, cache.Set(ctx, "summary:2025-01-01:2025-01-31", payload, time.Minute))

	got, hit, err := cache.Get(ctx, "summary:2025-01-01:2025-01-31")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload, got)
}

func TestReportCache_Miss(t *testing.T) {
	_, client := newTestCache(t)
	cache := NewReportCache(client)

	_, hit, err := cache.Get(context.Background(), "summary:2030-01-01:2030-01-31")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestReportCache_InvalidateDropsAllKeys(t *testing.T) {
	_, client := newTestCache(t)
	cache := NewReportCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "summary:2025-01-01:2025-01-31", []byte("a"), time.Minute))
	require.NoError(t, cache.Set(ctx, "summary:2025-02-01:2025-02-28", []byte("b"), time.Minute))

	require.NoError(t, cache.Invalidate(ctx))

	_, hit, err := cache.Get(ctx, "summary:2025-01-01:2025-01-31")
	require.NoError(t, err)
	assert.False(t, hit)
	_, hit, err = cache.Get(ctx, "summary:2025-02-01:2025-02-28")
	require.NoError(t, err)
	assert.False(t, hit)

	// A fresh write after invalidation is served again.
	require.NoError(t, cache.Set(ctx, "summary:2025-01-01:2025-01-31", []byte("c"), time.Minute))
	got, hit, err := cache.Get(ctx, "summary:2025-01-01:2025-01-31")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("c"), got)
}

func TestReportCache_TTLExpiry(t *testing.T) {
	srv, client := newTestCache(t)
	cache := NewReportCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "summary:2025-01-01:2025-01-31", []byte("a"), time.Second))

	srv.FastForward(2 * time.Second)

	_, hit, err := cache.Get(ctx, "summary:2025-01-01:2025-01-31")
	require.NoError(t, err)
	assert.False(t, hit)
}
