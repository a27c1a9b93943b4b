// Package cache stores rendered board artifacts between runs.
//
// Keys are derived from the layout and the render options with [ArtifactKey],
// so re-rendering an unchanged board is a cache hit. [FileCache] backs the CLI;
// [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}

// ArtifactKeyOpts are the render options that affect an artifact's bytes.
type ArtifactKeyOpts struct {
	VizType  string  `json:"viz_type"`
	Format   string  `json:"format"`
	Name     string  `json:"name"`
	TileSize float64 `json:"tile_size"`
	Position int     `json:"position"`
	LastRoll int     `json:"last_roll"`
}

// ArtifactKey returns the cache key for an artifact rendered from the
// perimeter with the given options.
func ArtifactKey(perimeter []string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", perimeter, opts)
}
