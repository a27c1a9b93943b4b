// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about pipeline execution, cache lookups, persistence of the
// space list and game play.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetGameHooks(&myGameHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, spaceCount)
//	// ... build layout ...
//	observability.Pipeline().OnLayoutComplete(ctx, perimeterLength, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the board pipeline.
type PipelineHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, spaceCount int)
	OnLayoutComplete(ctx context.Context, perimeterLength int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, vizType string, formats []string)
	OnRenderComplete(ctx context.Context, vizType string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from the space list store.
type StoreHooks interface {
	// OnLoad records a read of the persisted list.
	OnLoad(ctx context.Context, backend string, count int, err error)

	// OnSave records a write of the persisted list.
	OnSave(ctx context.Context, backend string, count int, err error)
}

// =============================================================================
// Game Hooks
// =============================================================================

// GameHooks receives events from a running game.
type GameHooks interface {
	// OnStart records a game start with the perimeter length.
	OnStart(ctx context.Context, perimeterLength int)

	// OnRoll records one roll and the resulting position.
	OnRoll(ctx context.Context, roll, from, to int)

	// OnReset records a return to editing.
	OnReset(ctx context.Context)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                         {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)            {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(context.Context, string, int, error) {}
func (NoopStoreHooks) OnSave(context.Context, string, int, error) {}

// NoopGameHooks is a no-op implementation of GameHooks.
type NoopGameHooks struct{}

func (NoopGameHooks) OnStart(context.Context, int)         {}
func (NoopGameHooks) OnRoll(context.Context, int, int, int) {}
func (NoopGameHooks) OnReset(context.Context)              {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	storeHooks    StoreHooks    = NoopStoreHooks{}
	gameHooks     GameHooks     = NoopGameHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetGameHooks registers custom game hooks.
func SetGameHooks(h GameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gameHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Game returns the registered game hooks.
func Game() GameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gameHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	storeHooks = NoopStoreHooks{}
	gameHooks = NoopGameHooks{}
}
