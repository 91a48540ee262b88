// Package cache stores rendered schedule artifacts between runs.
//
// Rendering a diagram through Graphviz dominates the cost of a pipeline run,
// while the DOT source that drives it is cheap to produce. The pipeline keys
// rendered SVG, PNG, and PDF output by a hash of the DOT source and the
// format, so an unchanged schedule is never rendered twice.
//
// Implementations:
//   - [FileCache]: one file per entry, used by the CLI
//   - [SQLiteCache]: a single database file for a long-running server
//   - [RedisCache]: shared by several servers behind a load balancer
//   - [NullCache]: caching disabled
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// DefaultTTL is how long artifacts stay valid when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

// NullCache misses every lookup and discards every write. It stands in for
// a cache when caching is disabled so callers need no nil checks.
type NullCache struct{}

// NewNullCache returns a disabled cache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte) error { return nil }
func (NullCache) Delete(context.Context, string) error { return nil }
func (NullCache) Close() error { return nil }
