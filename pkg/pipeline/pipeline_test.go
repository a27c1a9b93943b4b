package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/punishboard/pkg/errors"
)

var eight = []string{"Tax", "Chance", "Rail", "Park", "Dare", "Truth", "Shot", "Sing"}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"txt", false},
		{"dot", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && errors.GetCode(err) != errors.ErrCodeInvalidFormat {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"board", false},
		{"ring", false},
		{"tower", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		viz, format string
		want        bool
	}{
		{VizBoard, FormatSVG, true},
		{VizBoard, FormatTXT, true},
		{VizBoard, FormatDOT, false},
		{VizRing, FormatDOT, true},
		{VizRing, FormatJSON, false},
		{"nope", FormatSVG, false},
	}
	for _, tt := range tests {
		if got := Supports(tt.viz, tt.format); got != tt.want {
			t.Errorf("Supports(%q, %q) = %v, want %v", tt.viz, tt.format, got, tt.want)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Spaces: eight}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.TileSize != DefaultTileSize {
		t.Errorf("TileSize = %v, want %v", opts.TileSize, DefaultTileSize)
	}
	if len(opts.VizTypes) != 1 || opts.VizTypes[0] != VizBoard {
		t.Errorf("VizTypes = %v, want [board]", opts.VizTypes)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Corners.TopLeft != "GO!" || opts.Corners.TopRight != "Jail" {
		t.Errorf("Corners = %+v, want defaults", opts.Corners)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want errors.Code
	}{
		{"empty", Options{}, errors.ErrCodeEmptySpaceList},
		{"uneven", Options{Spaces: eight[:7]}, errors.ErrCodeInvalidSpaceCount},
		{"duplicate", Options{Spaces: []string{"A", "B", "A", "C"}}, errors.ErrCodeDuplicateSpaceName},
		{"blank", Options{Spaces: []string{"A", " ", "B", "C"}}, errors.ErrCodeEmptySpaceName},
		{"position", Options{Spaces: eight, Position: 12}, errors.ErrCodeInvalidInput},
		{"negative position", Options{Spaces: eight, Position: -1}, errors.ErrCodeInvalidInput},
		{"tile size", Options{Spaces: eight, TileSize: -5}, errors.ErrCodeInvalidInput},
		{"viz", Options{Spaces: eight, VizTypes: []string{"tower"}}, errors.ErrCodeInvalidVizType},
		{"format", Options{Spaces: eight, Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("code = %v, want %v (err %v)", got, tt.want, err)
			}
		})
	}
}

// mapCache is an in-memory cache.Cache for tests.
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *mapCache) Close() error { return nil }

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Name:     "Friday",
		Spaces:   eight,
		Position: 3,
		LastRoll: 3,
		VizTypes: []string{VizBoard, VizRing},
		Formats:  []string{FormatSVG, FormatJSON, FormatTXT, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Layout.Len() != 12 || res.Layout.Split != 2 {
		t.Errorf("layout = %d tiles split %d, want 12 split 2", res.Layout.Len(), res.Layout.Split)
	}
	if len(res.Tiles) != 12 || !res.Tiles[3].IsCurrent {
		t.Errorf("tiles not positioned at 3")
	}

	// ring.svg needs graphviz and is covered in the ring package; board.dot,
	// ring.json and ring.txt are unsupported and skipped.
	for _, name := range []string{"board.svg", "board.json", "board.txt", "ring.dot"} {
		if len(res.Artifacts[name]) == 0 {
			t.Errorf("missing artifact %s", name)
		}
	}
	for _, name := range []string{"board.dot", "ring.json", "ring.txt"} {
		if _, ok := res.Artifacts[name]; ok {
			t.Errorf("unexpected artifact %s", name)
		}
	}
	if !strings.Contains(string(res.Artifacts["board.svg"]), "Rolled a 3!") {
		t.Error("board.svg missing roll text")
	}
	if res.Stats.SpaceCount != 8 || res.Stats.Perimeter != 12 {
		t.Errorf("stats = %+v", res.Stats)
	}
}

func TestExecuteCache(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	r := NewRunner(c, nil)
	opts := Options{Spaces: eight, Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheHits != 0 {
		t.Errorf("first run CacheHits = %d, want 0", first.CacheHits)
	}
	if len(c.data) != 2 {
		t.Errorf("cached entries = %d, want 2", len(c.data))
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if second.CacheHits != 2 {
		t.Errorf("second run CacheHits = %d, want 2", second.CacheHits)
	}
	if string(second.Artifacts["board.svg"]) != string(first.Artifacts["board.svg"]) {
		t.Error("cached artifact differs from rendered")
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if third.CacheHits != 0 {
		t.Errorf("refresh CacheHits = %d, want 0", third.CacheHits)
	}

	moved := Options{Spaces: eight, Formats: []string{FormatSVG, FormatJSON}, Position: 1}
	fourth, err := r.Execute(ctx, moved)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if fourth.CacheHits != 0 {
		t.Errorf("moved token CacheHits = %d, want 0", fourth.CacheHits)
	}
}

func TestExecuteInvalid(t *testing.T) {
	_, err := NewRunner(nil, nil).Execute(context.Background(), Options{Spaces: eight[:6]})
	if !errors.Is(err, errors.ErrCodeInvalidSpaceCount) {
		t.Errorf("Execute error = %v, want INVALID_SPACE_COUNT", err)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(nil, nil).Execute(ctx, Options{Spaces: eight})
	if err != context.Canceled {
		t.Errorf("Execute error = %v, want context.Canceled", err)
	}
}
