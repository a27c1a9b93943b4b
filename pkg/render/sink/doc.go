// Package sink renders a board layout to output formats.
//
// Every sink consumes the positioned tiles produced by
// [board.Layout.Tiles], so they all agree on placement and tile roles:
//
//   - [RenderSVG]: the board as an SVG document with the centre panel
//   - [RenderPNG], [RenderPDF]: SVG converted with rsvg-convert
//   - [RenderJSON]: tiles and metadata for web front ends
//   - [RenderText]: a colored terminal drawing built with lipgloss
//
// Options are functional and specific to each sink:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithTileSize(120),
//	    sink.WithPosition(5),
//	    sink.WithTitle("Friday Night"),
//	    sink.WithRoll(3),
//	)
package sink
