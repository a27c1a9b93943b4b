// Package board lays out a square, perimeter-style game board.
//
// # Overview
//
// A board is an ordered list of player-entered spaces distributed evenly over
// the four sides of a square whose corners hold four fixed corner spaces. The
// package provides two pure operations:
//
//   - [BuildPerimeter] merges the spaces and the [Corners] into a flat,
//     clockwise [Layout] starting at the top-left corner.
//   - [LocateTile] maps a linear index on that layout to a side, an offset
//     along the side and absolute pixel coordinates.
//
// [Layout.Tiles] combines both with the current token position to produce
// the positioned, role-classified [Tile] records renderers draw.
//
// # Preconditions
//
// The number of spaces must be a positive multiple of 4. Callers validate
// this at the boundary (see the errors package); the functions here assume
// valid input. Building with the boarddebug tag turns violated
// preconditions into panics:
//
//	go test -tags boarddebug ./pkg/board/...
//
// # Example
//
//	l := board.BuildPerimeter([]string{"A", "B", "C", "D"}, board.DefaultCorners())
//	for _, t := range l.Tiles(150, 0) {
//	    fmt.Println(t.Label, t.Side, t.X, t.Y)
//	}
package board
