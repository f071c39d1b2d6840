package adapter

import (
	"context"
	"time"
)

// ReportCache defines the interface for caching serialized report payloads.
// The cache is a serving optimization only: any expense or income write must
// invalidate it so cached figures never outlive the data they summarize.
type ReportCache interface {
	// Get retrieves a cached payload by key. The second return value is
	// false on a cache miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload under the given key with a TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate drops all cached report payloads.
	Invalidate(ctx context.Context) error
}
