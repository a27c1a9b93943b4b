package board

import "fmt"

// Side identifies one of the four arcs of the perimeter walk.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if s < SideTop || s > SideLeft {
		return fmt.Sprintf("side(%d)", int(s))
	}
	return sideNames[s]
}

// MarshalText encodes the side by name.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a side name produced by MarshalText.
func (s *Side) UnmarshalText(b []byte) error {
	for i, name := range sideNames {
		if name == string(b) {
			*s = Side(i)
			return nil
		}
	}
	return fmt.Errorf("unknown side %q", b)
}

// Placement is the geometric position of one tile.
type Placement struct {
	Side   Side    `json:"side"`
	Offset int     `json:"offset"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// LocateTile maps a perimeter index to its side and absolute coordinates.
//
// sideSpan is the split size s used by [BuildPerimeter]; the perimeter must
// hold 4*(s+1) tiles. The walk goes right along the top, down the right
// side, left along the bottom and up the left side. Each corner is the last
// tile of the arc that reaches it, so no coordinate is emitted twice.
// Offset counts tiles from the corner the arc starts at.
func LocateTile(index, perimeterLength, sideSpan int, tileSize float64) Placement {
	s := sideSpan
	assertf(perimeterLength == 4*(s+1),
		"LocateTile: perimeter of %d tiles does not match split %d", perimeterLength, s)

	span := s + 1
	switch {
	case index < s+2:
		return Placement{
			Side:   SideTop,
			Offset: index,
			X:      float64(index) * tileSize,
		}
	case index < 2*s+3:
		return Placement{
			Side:   SideRight,
			Offset: index - span,
			X:      float64(span) * tileSize,
			Y:      float64(index-span) * tileSize,
		}
	case index < 3*s+4:
		return Placement{
			Side:   SideBottom,
			Offset: index - 2*span,
			X:      float64(3*s+3)*tileSize - float64(index)*tileSize,
			Y:      float64(span) * tileSize,
		}
	default:
		return Placement{
			Side:   SideLeft,
			Offset: index - 3*span,
			Y:      float64(4*s+4)*tileSize - float64(index)*tileSize,
		}
	}
}

// Tile is a positioned, role-classified board space.
type Tile struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Placement
	IsCorner  bool `json:"is_corner"`
	IsCurrent bool `json:"is_current"`
}

// Tiles positions every space of the layout and marks the corner tiles and
// the tile under the token at position.
func (l Layout) Tiles(tileSize float64, position int) []Tile {
	tiles := make([]Tile, len(l.Spaces))
	for i, label := range l.Spaces {
		tiles[i] = Tile{
			Index:     i,
			Label:     label,
			Placement: LocateTile(i, len(l.Spaces), l.Split, tileSize),
			IsCorner:  l.IsCorner(i),
			IsCurrent: i == position,
		}
	}
	return tiles
}
