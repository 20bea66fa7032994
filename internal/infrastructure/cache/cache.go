package cache

import (
	"context"
	"time"
)

// ReportCache stores derived report payloads keyed by string. Implementations
// must treat a miss as (found=false, nil error) so callers can fall through
// to recomputation.
type ReportCache interface {
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Noop is a ReportCache that caches nothing. Used when no redis address is
// configured.
type Noop struct{}

// NewNoop creates a no-op report cache
func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	return false, nil
}

func (Noop) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (Noop) Delete(ctx context.Context, keys ...string) error {
	return nil
}
