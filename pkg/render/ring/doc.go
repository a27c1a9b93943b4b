// Package ring renders the board perimeter as a Graphviz diagram.
//
// Every tile becomes a node pinned at its board coordinates, and consecutive
// tiles are joined by an edge, closing the loop from the last tile back to
// GO!. The result shows the walk order the token follows, which the board
// drawing itself leaves implicit.
//
//	dot := ring.ToDOT(layout, ring.Options{Position: 4})
//	svg, err := ring.RenderSVG(ctx, dot)
//
// Layout uses the neato engine so the pinned positions are kept as given.
package ring
