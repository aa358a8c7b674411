package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are opaque byte payloads, as a Redis backend would store them.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// SwatchRenderer turns a list of hex colors into an encoded image
type SwatchRenderer interface {
	Render(hexColors []string, cellSize int) ([]byte, error)
}
