package sink

import (
	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 1.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the board as PNG via SVG conversion.
func RenderPNG(l board.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}
	return render.ToPNG(RenderSVG(l, r.svgOpts...), r.scale)
}

// RenderPDF renders the board as PDF via SVG conversion.
func RenderPDF(l board.Layout, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(l, opts...))
}
