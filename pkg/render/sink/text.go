package sink

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/punishboard/pkg/board"
	"github.com/matzehuels/punishboard/pkg/render/styles"
)

// Token marks the tile under the player's token in terminal output.
const Token = "◆"

const (
	defaultCellWidth  = 12
	defaultCellHeight = 3
)

// TextOption configures terminal rendering via [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	boardOptions
	cellW, cellH int
}

func WithTextPosition(i int) TextOption { return func(r *textRenderer) { r.position = i } }
func WithTextTitle(s string) TextOption { return func(r *textRenderer) { r.title = s } }
func WithTextRoll(n int) TextOption     { return func(r *textRenderer) { r.roll = n } }

// WithCellSize sets the character size of one tile (default 12x3).
func WithCellSize(w, h int) TextOption {
	return func(r *textRenderer) {
		if w >= 4 {
			r.cellW = w
		}
		if h >= 2 {
			r.cellH = h
		}
	}
}

// RenderText draws the board as a grid of colored cells. The board is
// (split+2) cells on each side; the title and roll fill the middle.
func RenderText(l board.Layout, opts ...TextOption) string {
	r := textRenderer{boardOptions: defaultBoardOptions(), cellW: defaultCellWidth, cellH: defaultCellHeight}
	for _, opt := range opts {
		opt(&r)
	}

	side := l.Split + 2
	grid := make([][]string, side)
	for i := range grid {
		grid[i] = make([]string, side)
	}
	// Tiles are placed with a unit tile size so X and Y are grid cells.
	for _, t := range l.Tiles(1, r.position) {
		col, row := int(t.X), int(t.Y)
		if row < 0 || row >= side || col < 0 || col >= side {
			continue
		}
		grid[row][col] = r.cell(t)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, grid[0]...)
	if side < 3 {
		return lipgloss.JoinVertical(lipgloss.Left, top, lipgloss.JoinHorizontal(lipgloss.Top, grid[side-1]...))
	}

	left := make([]string, 0, l.Split)
	right := make([]string, 0, l.Split)
	for row := 1; row <= l.Split; row++ {
		left = append(left, grid[row][0])
		right = append(right, grid[row][side-1])
	}
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		r.centre(l.Split),
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, grid[side-1]...)
	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

func (r textRenderer) cell(t board.Tile) string {
	label := truncate(t.Label, r.cellW)
	if t.IsCurrent {
		label += "\n" + Token
	}
	style := lipgloss.NewStyle().
		Width(r.cellW).
		Height(r.cellH).
		MaxHeight(r.cellH).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(r.palette.Text)).
		Background(lipgloss.Color(r.palette.Fill(t))).
		Bold(r.palette.Weight(t) == styles.WeightBold)
	return style.Render(label)
}

func (r textRenderer) centre(split int) string {
	var lines []string
	if r.title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(r.title))
	}
	if r.roll > 0 {
		lines = append(lines, fmt.Sprintf("Rolled a %d!", r.roll))
	}
	return lipgloss.Place(split*r.cellW, split*r.cellH, lipgloss.Center, lipgloss.Center,
		strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
