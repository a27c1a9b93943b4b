package styles

import (
	"bytes"
	"encoding/xml"
	"strings"
	"unicode/utf8"
)

const (
	fontCharWidth = 0.55
	fontSizeMin   = 10.0
	fontSizeMax   = 20.0
	labelPadding  = 0.85
	lineHeight    = 1.2
)

// FontFamily is the label font stack.
const FontFamily = "Helvetica, Arial, sans-serif"

// FontSize returns the label size for a square tile of tileSize.
func FontSize(tileSize float64) float64 {
	return max(fontSizeMin, min(fontSizeMax, tileSize/7.5))
}

// LineHeight returns the distance between wrapped label lines.
func LineHeight(fontSize float64) float64 { return fontSize * lineHeight }

// WrapLabel breaks label into lines that fit a tile of tileSize. Words longer
// than a line are truncated with "..".
func WrapLabel(label string, tileSize float64) []string {
	width := max(3, int(tileSize*labelPadding/(FontSize(tileSize)*fontCharWidth)))

	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(label) {
		if utf8.RuneCountInString(word) > width {
			word = string([]rune(word)[:width-2]) + ".."
		}
		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
		case utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(word) <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// EscapeXML escapes s for use in SVG text and attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
