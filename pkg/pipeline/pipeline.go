// Package pipeline provides the validate → layout → render pipeline.
//
// The CLI render command, the TUI and the HTTP server all produce board
// artifacts through the same [Runner], so validation, defaults and caching
// behave identically at every entry point.
//
// # Stages
//
//  1. Validate: the space list must be non-empty, a multiple of four and
//     free of blank or repeated names
//  2. Layout: [board.BuildPerimeter] with the corner labels
//  3. Render: every requested visualization in every requested format
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Name:     "Friday Night",
//	    Spaces:   spaces,
//	    VizTypes: []string{pipeline.VizBoard, pipeline.VizRing},
//	    Formats:  []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//	svg := result.Artifacts["board.svg"]
//
// Combinations a visualization cannot produce (a JSON ring, a DOT board) are
// skipped rather than failing the run.
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/cache"
	"github.com/matzehuels/punishboard/pkg/errors"
)

const (
	// DefaultTileSize is the side of a board tile in pixels.
	DefaultTileSize = 150.0

	// DefaultScale is the PNG scale factor.
	DefaultScale = 1.0

	// TTLArtifact is how long rendered artifacts stay cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Visualization types.
const (
	VizBoard = "board"
	VizRing  = "ring"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatTXT  = "txt"
	FormatDOT  = "dot"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizBoard

// ValidVizTypes maps each visualization type to the formats it can produce.
var ValidVizTypes = map[string][]string{
	VizBoard: {FormatSVG, FormatJSON, FormatPNG, FormatPDF, FormatTXT},
	VizRing:  {FormatSVG, FormatPNG, FormatPDF, FormatDOT},
}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatTXT:  true,
	FormatDOT:  true,
}

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Board
	Name     string        `json:"name,omitempty"`
	Spaces   []string      `json:"spaces"`
	Corners  board.Corners `json:"corners"`
	Position int           `json:"position,omitempty"`
	LastRoll int           `json:"last_roll,omitempty"`

	// Render
	VizTypes []string `json:"viz_types,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	TileSize float64  `json:"tile_size,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the built perimeter.
	Layout board.Layout

	// Tiles are the positioned tiles at the requested tile size.
	Tiles []board.Tile

	// Artifacts contains rendered outputs keyed by [ArtifactName].
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheHits counts artifacts served from the cache.
	CacheHits int
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SpaceCount int
	Perimeter  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// ArtifactName is the key of an artifact in [Result.Artifacts], also used as
// the default output file name.
func ArtifactName(vizType, format string) string {
	return vizType + "." + format
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, txt, dot)", format)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if _, ok := ValidVizTypes[vizType]; !ok {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz type: %q (must be one of: board, ring)", vizType)
	}
	return nil
}

// Supports reports whether vizType can be rendered as format.
func Supports(vizType, format string) bool {
	return slices.Contains(ValidVizTypes[vizType], format)
}

// ValidateSpaces checks that a board can be built from spaces: the list
// rules plus no blank or repeated names.
func ValidateSpaces(spaces []string) error {
	if err := errors.ValidateSpaceList(spaces); err != nil {
		return err
	}
	seen := make([]string, 0, len(spaces))
	for _, s := range spaces {
		if err := errors.ValidateSpaceName(s, seen); err != nil {
			return err
		}
		seen = append(seen, strings.TrimSpace(s))
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := ValidateSpaces(o.Spaces); err != nil {
		return err
	}
	o.Corners = board.NewCorners(o.Corners.TopRight, o.Corners.BottomRight, o.Corners.BottomLeft)

	if perimeter := len(o.Spaces) + 4; o.Position < 0 || o.Position >= perimeter {
		return errors.New(errors.ErrCodeInvalidInput, "position %d outside board of %d tiles", o.Position, perimeter)
	}
	if o.TileSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "tile size must be positive")
	}
	if o.TileSize == 0 {
		o.TileSize = DefaultTileSize
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}

	if len(o.VizTypes) == 0 {
		o.VizTypes = []string{DefaultVizType}
	}
	for _, v := range o.VizTypes {
		if err := ValidateVizType(v); err != nil {
			return err
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(vizType, format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		VizType:  vizType,
		Format:   format,
		Name:     o.Name,
		TileSize: o.TileSize,
		Position: o.Position,
		LastRoll: o.LastRoll,
	}
	if format == FormatPNG {
		opts.TileSize *= o.Scale
	}
	if o.Detailed && vizType == VizRing {
		opts.Name += "\x00detailed"
	}
	return opts
}
