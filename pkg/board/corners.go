package board

import "strings"

// Default corner labels.
const (
	TopLeftLabel            = "GO!"
	DefaultTopRightLabel    = "Jail"
	DefaultBottomRightLabel = "Free Parking"
	DefaultBottomLeftLabel  = "Go to Jail"
)

// Corners holds the four corner spaces of a board.
// TopLeft is always [TopLeftLabel] when built with [NewCorners].
type Corners struct {
	TopLeft     string `json:"top_left"`
	TopRight    string `json:"top_right"`
	BottomRight string `json:"bottom_right"`
	BottomLeft  string `json:"bottom_left"`
}

// DefaultCorners returns the stock corner set.
func DefaultCorners() Corners {
	return Corners{
		TopLeft:     TopLeftLabel,
		TopRight:    DefaultTopRightLabel,
		BottomRight: DefaultBottomRightLabel,
		BottomLeft:  DefaultBottomLeftLabel,
	}
}

// NewCorners builds a corner set from the three user-editable corners.
// Blank values fall back to the defaults.
func NewCorners(topRight, bottomRight, bottomLeft string) Corners {
	c := DefaultCorners()
	if v := strings.TrimSpace(topRight); v != "" {
		c.TopRight = v
	}
	if v := strings.TrimSpace(bottomRight); v != "" {
		c.BottomRight = v
	}
	if v := strings.TrimSpace(bottomLeft); v != "" {
		c.BottomLeft = v
	}
	return c
}

// Slice returns the corners in clockwise order starting at the top left.
func (c Corners) Slice() [4]string {
	return [4]string{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
}
