// Package store persists the pre-game board space list.
//
// The persisted form is a single ordered list of space names under a fixed
// key. It is read once when a session starts and written every time the
// pre-game list changes; nothing is written once a game is running.
//
// Backends:
//   - [FileStore]: JSON file per key, for the CLI
//   - [RedisStore]: a Redis string per key, for shared deployments
//   - [MongoStore]: one document per key
//   - [MemoryStore]: process-local, for tests and --no-store runs
//
// Use [Open] to select a backend from configuration.
package store

import (
	"context"
	"fmt"

	"github.com/matzehuels/punishboard/pkg/config"
)

// DefaultKey is the identifier the space list is stored under.
const DefaultKey = "allSpaces"

// Store loads and saves the ordered space list.
type Store interface {
	// Load returns the saved list, or nil if nothing was saved yet.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the saved list.
	Save(ctx context.Context, spaces []string) error

	// Close releases backend resources.
	Close() error
}

// Open creates the backend selected by cfg.
func Open(ctx context.Context, cfg config.Store) (Store, error) {
	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(cfg.Path, key)
	case config.BackendRedis:
		return NewRedisStore(ctx, RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      key,
		})
	case config.BackendMongo:
		return NewMongoStore(ctx, MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
			Key:        key,
		})
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
