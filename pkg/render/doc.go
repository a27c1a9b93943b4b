// Package render turns a board layout into images and documents.
//
// # Overview
//
// Rendering is split across subpackages:
//
//   - [sink]: board outputs (SVG, JSON, PNG, PDF, terminal text)
//   - [ring]: a Graphviz diagram of the perimeter as a ring
//   - [styles]: the fixed palette and tile role mapping
//
// This package holds the format conversion shared by both: [ToPDF] and
// [ToPNG] convert any SVG using the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(layout, sink.WithPosition(3))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [sink]: github.com/matzehuels/punishboard/pkg/render/sink
// [ring]: github.com/matzehuels/punishboard/pkg/render/ring
// [styles]: github.com/matzehuels/punishboard/pkg/render/styles
package render
