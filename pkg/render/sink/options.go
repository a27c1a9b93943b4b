package sink

import "github.com/matzehuels/punishboard/pkg/render/styles"

// DefaultTileSize is the side of one square tile in pixels.
const DefaultTileSize = 150.0

// boardOptions are shared by the board sinks.
type boardOptions struct {
	tileSize float64
	position int
	title    string
	roll     int
	palette  styles.Palette
}

func defaultBoardOptions() boardOptions {
	return boardOptions{tileSize: DefaultTileSize, palette: styles.Default}
}

func (o *boardOptions) setTileSize(v float64) {
	if v > 0 {
		o.tileSize = v
	}
}
