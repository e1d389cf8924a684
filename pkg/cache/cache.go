// Package cache stores decoded documents and encoded conversions keyed by
// the content hash of their source.
//
// Three backends implement [Cache]: [FileCache] for the command line,
// [RedisCache] for shared deployments and [NullCache] when caching is off.
// Keys come from a [Keyer] so that callers never build them by hand.
package cache

import (
	"context"
	"time"
)

// Default lifetimes for cached entries.
const (
	TTLDocument   = 7 * 24 * time.Hour
	TTLConversion = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss with ok == false and a nil error. Backends return an
// error only when the store itself failed.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
