package styles

import "github.com/matzehuels/punishboard/pkg/board"

// Palette is the set of colors a board is drawn with.
type Palette struct {
	Background string `json:"background"`
	Corner     string `json:"corner"`
	Normal     string `json:"normal"`
	Current    string `json:"current"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

// Default is the board palette: orange corners, teal spaces, a pink token
// tile on a pale orange table.
var Default = Palette{
	Background: "#FEEBC8",
	Corner:     "#F6AD55",
	Normal:     "#4FD1C5",
	Current:    "#FBB6CE",
	Text:       "#1A202C",
	Border:     "#2D3748",
}

// Weight is a label font weight.
type Weight string

const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"
)

// Role is the visual role of a tile. Current takes precedence over Corner.
type Role int

const (
	RoleNormal Role = iota
	RoleCorner
	RoleCurrent
)

func (r Role) String() string {
	switch r {
	case RoleCorner:
		return "corner"
	case RoleCurrent:
		return "current"
	default:
		return "normal"
	}
}

// RoleOf returns the fill role of t.
func RoleOf(t board.Tile) Role {
	switch {
	case t.IsCurrent:
		return RoleCurrent
	case t.IsCorner:
		return RoleCorner
	default:
		return RoleNormal
	}
}

// Fill returns the background color of t.
func (p Palette) Fill(t board.Tile) string {
	switch RoleOf(t) {
	case RoleCurrent:
		return p.Current
	case RoleCorner:
		return p.Corner
	default:
		return p.Normal
	}
}

// Weight returns the label weight of t. Only corners are bold.
func (p Palette) Weight(t board.Tile) Weight {
	if t.IsCorner {
		return WeightBold
	}
	return WeightNormal
}
