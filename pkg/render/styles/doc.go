// Package styles maps tile roles to the board's fixed palette.
//
// A tile is drawn with one of three fills. Corner tiles use the corner fill
// and a bold label; every other tile uses the normal fill. The tile under the
// token uses the current fill instead, but a current corner keeps its bold
// label. [Palette.Fill] and [Palette.Weight] encode exactly that precedence so
// every sink draws the same board.
package styles
