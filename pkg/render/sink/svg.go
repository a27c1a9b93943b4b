package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/render/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	boardOptions
}

func WithTileSize(v float64) SVGOption       { return func(r *svgRenderer) { r.setTileSize(v) } }
func WithPosition(i int) SVGOption           { return func(r *svgRenderer) { r.position = i } }
func WithTitle(s string) SVGOption           { return func(r *svgRenderer) { r.title = s } }
func WithPalette(p styles.Palette) SVGOption { return func(r *svgRenderer) { r.palette = p } }

// WithRoll shows "Rolled a N!" in the centre panel. Zero hides it.
func WithRoll(n int) SVGOption { return func(r *svgRenderer) { r.roll = n } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{boardOptions: defaultBoardOptions()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws the board: the perimeter tiles, and the title and the
// last roll in the centre.
func RenderSVG(l board.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	size := l.BoardSize(r.tileSize)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		size, size, size, size)
	fmt.Fprintf(&buf, `  <rect class="table" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		size, size, r.palette.Background)

	for _, t := range l.Tiles(r.tileSize, r.position) {
		renderTile(&buf, r.palette, t, r.tileSize)
	}
	renderCentre(&buf, r, l.Split)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderTile(buf *bytes.Buffer, p styles.Palette, t board.Tile, size float64) {
	fmt.Fprintf(buf, `  <g class="tile %s" id="tile-%d" data-side="%s">`+"\n", styles.RoleOf(t), t.Index, t.Side)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		t.X, t.Y, size, size, p.Fill(t), p.Border)

	fontSize := styles.FontSize(size)
	lines := styles.WrapLabel(t.Label, size)
	lh := styles.LineHeight(fontSize)
	cx := t.X + size/2
	y := t.Y + size/2 - lh*float64(len(lines)-1)/2

	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="%s" font-size="%.1f" font-weight="%s" fill="%s">`,
		cx, y, styles.FontFamily, fontSize, p.Weight(t), p.Text)
	for i, line := range lines {
		if i == 0 {
			fmt.Fprintf(buf, `<tspan x="%.1f">%s</tspan>`, cx, styles.EscapeXML(line))
			continue
		}
		fmt.Fprintf(buf, `<tspan x="%.1f" dy="%.1f">%s</tspan>`, cx, lh, styles.EscapeXML(line))
	}
	buf.WriteString("</text>\n  </g>\n")
}

// centrePanel is the box inside the ring holding the title and roll.
type centrePanel struct {
	X, Y, W float64
}

// panelFor places the panel the way the board has always been laid out:
// half the board wide, starting a quarter in, just below the middle.
func panelFor(split int, tileSize float64) centrePanel {
	n := float64(split + 2)
	return centrePanel{
		X: n * tileSize / 4,
		Y: float64(split+1) * tileSize / 2,
		W: n * tileSize / 2,
	}
}

func renderCentre(buf *bytes.Buffer, r svgRenderer, split int) {
	if r.title == "" && r.roll == 0 {
		return
	}
	p := panelFor(split, r.tileSize)
	cx := p.X + p.W/2
	fontSize := styles.FontSize(r.tileSize)

	buf.WriteString(`  <g class="centre">` + "\n")
	if r.title != "" {
		fmt.Fprintf(buf, `    <text class="title" x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.1f" font-weight="bold" fill="%s">%s</text>`+"\n",
			cx, p.Y, styles.FontFamily, fontSize*1.6, r.palette.Text, styles.EscapeXML(r.title))
	}
	if r.roll > 0 {
		fmt.Fprintf(buf, `    <text class="roll" x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.1f" fill="%s">Rolled a %d!</text>`+"\n",
			cx, p.Y+fontSize*2.4, styles.FontFamily, fontSize, r.palette.Text, r.roll)
	}
	buf.WriteString("  </g>\n")
}
