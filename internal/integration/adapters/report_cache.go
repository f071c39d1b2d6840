package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lawledger/backend/internal/application/adapter"
)

// versionKey holds a counter mixed into every cache key. Bumping it
// invalidates all cached reports in one O(1) write, with stale entries left
// to expire via their TTLs.
const versionKey = "report:version"

// reportCache implements the adapter.ReportCache interface on Redis.
type reportCache struct {
	client *redis.Client
}

// NewReportCache creates a new Redis-backed report cache.
func NewReportCache(client *redis.Client) adapter.ReportCache {
	return &reportCache{
		client: client,
	}
}

// Get retrieves a cached payload by key.
func (c *reportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	versioned, err := c.versionedKey(ctx, key)
	if err != nil {
		return nil, false, err
	}

	payload, err := c.client.Get(ctx, versioned).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read report cache: %w", err)
	}
	return payload, true, nil
}

// Set stores a payload under the given key with a TTL.
func (c *reportCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	versioned, err := c.versionedKey(ctx, key)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, versioned, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}

// Invalidate drops all cached report payloads by bumping the version counter.
func (c *reportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}

// versionedKey prefixes the key with the current cache version.
func (c *reportCache) versionedKey(ctx context.Context, key string) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Result()
	if errors.Is(err, redis.Nil) {
		version = "0"
	} else if err != nil {
		return "", fmt.Errorf("failed to read report cache version: %w", err)
	}
	return fmt.Sprintf("v%s:%s", version, key), nil
}
