package board

// Layout is the merged clockwise sequence of corner and player spaces.
// It is immutable once built; callers must not modify Spaces.
type Layout struct {
	// Spaces lists every tile label, starting with the top-left corner.
	Spaces []string `json:"spaces"`
	// Split is the number of player spaces on each side.
	Split int `json:"split"`
}

// BuildPerimeter distributes spaces over the four sides of the board.
//
// The result is [TL, split 0, TR, split 1, BR, split 2, BL, split 3] where each
// split holds ceil(len(spaces)/4) spaces. len(spaces) must be a positive
// multiple of 4; out-of-range splits are clamped rather than panicking, so a
// violated precondition yields a short layout instead of a crash.
func BuildPerimeter(spaces []string, corners Corners) Layout {
	n := len(spaces)
	assertf(n > 0 && n%4 == 0, "BuildPerimeter: %d spaces is not a positive multiple of 4", n)

	split := (n + 3) / 4
	out := make([]string, 0, n+4)
	for i, corner := range corners.Slice() {
		out = append(out, corner)
		out = append(out, spaces[clamp(i*split, n):clamp((i+1)*split, n)]...)
	}
	return Layout{Spaces: out, Split: split}
}

func clamp(i, n int) int {
	if i > n {
		return n
	}
	return i
}

// Len returns the number of tiles on the perimeter.
func (l Layout) Len() int { return len(l.Spaces) }

// SideSpan returns the number of tiles from one corner to the next.
func (l Layout) SideSpan() int { return l.Split + 1 }

// IsCorner reports whether index i holds a corner space.
func (l Layout) IsCorner(i int) bool { return i%l.SideSpan() == 0 }

// CornerIndices returns the indices of the four corners in clockwise order.
func (l Layout) CornerIndices() []int {
	span := l.SideSpan()
	return []int{0, span, 2 * span, 3 * span}
}

// BoardSize returns the edge length of the square board in pixels.
func (l Layout) BoardSize(tileSize float64) float64 {
	return float64(l.Split+2) * tileSize
}

// Label returns the label at index i, wrapping around the perimeter.
func (l Layout) Label(i int) string {
	if len(l.Spaces) == 0 {
		return ""
	}
	n := len(l.Spaces)
	return l.Spaces[((i%n)+n)%n]
}
