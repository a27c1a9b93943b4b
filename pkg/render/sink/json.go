package sink

import (
	"encoding/json"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/render/styles"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	boardOptions
}

func WithJSONTileSize(v float64) JSONOption { return func(r *jsonRenderer) { r.setTileSize(v) } }
func WithJSONPosition(i int) JSONOption     { return func(r *jsonRenderer) { r.position = i } }
func WithJSONTitle(s string) JSONOption     { return func(r *jsonRenderer) { r.title = s } }
func WithJSONRoll(n int) JSONOption         { return func(r *jsonRenderer) { r.roll = n } }

type jsonOutput struct {
	Title    string         `json:"title,omitempty"`
	TileSize float64        `json:"tile_size"`
	Size     float64        `json:"size"`
	Split    int            `json:"split"`
	Position int            `json:"position"`
	Roll     int            `json:"roll,omitempty"`
	Corners  []int          `json:"corners"`
	Palette  styles.Palette `json:"palette"`
	Tiles    []jsonTile     `json:"tiles"`
}

type jsonTile struct {
	board.Tile
	Fill   string        `json:"fill"`
	Weight styles.Weight `json:"weight"`
}

// RenderJSON serializes the positioned board for front ends that draw it
// themselves.
func RenderJSON(l board.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{boardOptions: defaultBoardOptions()}
	for _, opt := range opts {
		opt(&r)
	}

	tiles := l.Tiles(r.tileSize, r.position)
	out := jsonOutput{
		Title:    r.title,
		TileSize: r.tileSize,
		Size:     l.BoardSize(r.tileSize),
		Split:    l.Split,
		Position: r.position,
		Roll:     r.roll,
		Corners:  l.CornerIndices(),
		Palette:  r.palette,
		Tiles:    make([]jsonTile, len(tiles)),
	}
	for i, t := range tiles {
		out.Tiles[i] = jsonTile{Tile: t, Fill: r.palette.Fill(t), Weight: r.palette.Weight(t)}
	}
	return json.MarshalIndent(out, "", "  ")
}
