package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/render/ring"
	"github.com/matzehuels/punishboard/pkg/render/sink"
)

// errSkipFormat marks a combination the visualization does not produce.
var errSkipFormat = errors.New("format not supported by visualization")

// Render produces one artifact for the layout.
func Render(ctx context.Context, l board.Layout, vizType, format string, opts Options) ([]byte, error) {
	if !Supports(vizType, format) {
		return nil, errSkipFormat
	}
	switch vizType {
	case VizRing:
		return renderRing(ctx, l, format, opts)
	default:
		return renderBoard(l, format, opts)
	}
}

func renderBoard(l board.Layout, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{
		sink.WithTileSize(opts.TileSize),
		sink.WithPosition(opts.Position),
		sink.WithTitle(opts.Name),
		sink.WithRoll(opts.LastRoll),
	}
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(l, svgOpts...)
	case FormatJSON:
		return sink.RenderJSON(l,
			sink.WithJSONTileSize(opts.TileSize),
			sink.WithJSONPosition(opts.Position),
			sink.WithJSONTitle(opts.Name),
			sink.WithJSONRoll(opts.LastRoll),
		)
	case FormatTXT:
		txt := sink.RenderText(l,
			sink.WithTextPosition(opts.Position),
			sink.WithTextTitle(opts.Name),
			sink.WithTextRoll(opts.LastRoll),
		)
		return []byte(txt + "\n"), nil
	}
	return nil, fmt.Errorf("board: %w", errSkipFormat)
}

func renderRing(ctx context.Context, l board.Layout, format string, opts Options) ([]byte, error) {
	dot := ring.ToDOT(l, ring.Options{Position: opts.Position, Title: opts.Name, Detailed: opts.Detailed})
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return ring.RenderSVG(ctx, dot)
	case FormatPNG:
		return ring.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		return ring.RenderPDF(ctx, dot)
	}
	return nil, fmt.Errorf("ring: %w", errSkipFormat)
}
