package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/cache"
	"github.com/matzehuels/punishboard/pkg/observability"
)

// Runner executes the pipeline with artifact caching.
//
// The Runner holds no pipeline results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Layout validates opts and builds the perimeter.
func (r *Runner) Layout(ctx context.Context, opts *Options) (board.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return board.Layout{}, err
	}
	observability.Pipeline().OnLayoutStart(ctx, len(opts.Spaces))
	start := time.Now()
	l := board.BuildPerimeter(opts.Spaces, opts.Corners)
	observability.Pipeline().OnLayoutComplete(ctx, l.Len(), time.Since(start), nil)
	return l, nil
}

// Execute runs validate → layout → render for every requested combination.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	layoutStart := time.Now()
	l, err := r.Layout(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{
		Layout:    l,
		Tiles:     l.Tiles(opts.TileSize, opts.Position),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.SpaceCount = len(opts.Spaces)
	result.Stats.Perimeter = l.Len()
	result.Stats.LayoutTime = time.Since(layoutStart)

	opts.Logger.Debug("built layout",
		"spaces", len(opts.Spaces),
		"split", l.Split,
		"tiles", l.Len())

	renderStart := time.Now()
	for _, viz := range opts.VizTypes {
		if err := r.renderViz(ctx, l, viz, opts, result); err != nil {
			return nil, err
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Debug("rendered outputs",
		"artifacts", len(result.Artifacts),
		"cached", result.CacheHits,
		"duration", result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) renderViz(ctx context.Context, l board.Layout, viz string, opts Options, result *Result) (err error) {
	observability.Pipeline().OnRenderStart(ctx, viz, opts.Formats)
	start := time.Now()
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, viz, opts.Formats, time.Since(start), err)
	}()

	for _, format := range opts.Formats {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		name := ArtifactName(viz, format)
		key := cache.ArtifactKey(l.Spaces, opts.ArtifactKeyOpts(viz, format))

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				result.Artifacts[name] = data
				result.CacheHits++
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}

		data, err := Render(ctx, l, viz, format, opts)
		if errors.Is(err, errSkipFormat) {
			opts.Logger.Debug("skipping unsupported format", "viz", viz, "format", format)
			continue
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		result.Artifacts[name] = data

		if err := r.Cache.Set(ctx, key, data, TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "artifact", name, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
