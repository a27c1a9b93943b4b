package ring

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/render"
	"github.com/matzehuels/punishboard/pkg/render/styles"
)

// pointsPerTile is the node pitch in points (one inch).
const pointsPerTile = 72.0

// Options configures ring diagram rendering.
type Options struct {
	// Position marks the tile under the token.
	Position int
	// Title is drawn as the graph label.
	Title string
	// Detailed adds the perimeter index to each label.
	Detailed bool
}

// ToDOT converts a layout to Graphviz DOT with pinned node positions.
func ToDOT(l board.Layout, opts Options) string {
	p := styles.Default
	side := float64(l.Split + 1)

	var buf bytes.Buffer
	buf.WriteString("digraph ring {\n")
	buf.WriteString("  inputscale=72;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", p.Background)
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	fmt.Fprintf(&buf, "  node [shape=box, style=filled, width=0.9, height=0.9, fixedsize=true, fontname=%q, fontsize=10, color=%q];\n",
		"Helvetica", p.Border)
	buf.WriteString("  edge [arrowsize=0.6];\n\n")

	for _, t := range l.Tiles(pointsPerTile, opts.Position) {
		label := t.Label
		if opts.Detailed {
			label = fmt.Sprintf("%d\n%s", t.Index, t.Label)
		}
		// Graphviz y grows upward; board y grows downward.
		x, y := t.X, side*pointsPerTile-t.Y
		attrs := fmt.Sprintf("label=%q, pos=\"%.0f,%.0f!\", fillcolor=%q", label, x, y, p.Fill(t))
		if p.Weight(t) == styles.WeightBold {
			attrs += `, fontname="Helvetica-Bold"`
		}
		if t.IsCurrent {
			attrs += ", penwidth=3"
		}
		fmt.Fprintf(&buf, "  t%d [%s];\n", t.Index, attrs)
	}

	buf.WriteString("\n")
	n := l.Len()
	for i := 0; i < n; i++ {
		fmt.Fprintf(&buf, "  t%d -> t%d;\n", i, (i+1)%n)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG lays out a DOT graph with neato and renders it to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
