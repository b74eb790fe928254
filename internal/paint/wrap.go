package paint

import (
	"strings"

	"toybrowser/internal/layout"
)

// textLines wraps a Text LayoutObject's already-collapsed string into
// one DisplayItem per line, breaking at the last space before the
// content area's width runs out (spec.md §4.5/§4.7). It uses the same
// per-character width as the size pass, but the size pass counts lines
// as ceil(width / ContentAreaWidth) without breaking at words, so the
// number of lines here can exceed the lines the size pass allowed for.
func textLines(o *layout.Object) []DisplayItem {
	ratio := 1
	if o.Style != nil {
		ratio = layout.FontSizeRatio(o.Style.FontSize)
	}
	charWidth := layout.CharWidth * ratio
	maxRunes := layout.ContentAreaWidth / charWidth

	items := make([]DisplayItem, 0, 1)
	for i, line := range splitText(o.Text, maxRunes) {
		items = append(items, DisplayItem{
			Kind: KindText,
			Point: layout.Point{
				X: o.Point.X,
				Y: o.Point.Y + i*layout.CharHeightWithPadding*ratio,
			},
			Style: o.Style,
			Text:  line,
		})
	}
	return items
}

// splitText recursively breaks line into pieces no longer than
// maxRunes, preferring to break at the last space within the limit so
// words are not split mid-word.
func splitText(line string, maxRunes int) []string {
	runes := []rune(line)
	if len(runes) <= maxRunes || maxRunes <= 0 {
		return []string{line}
	}
	breakAt := findLineBreak(runes, maxRunes)
	head := string(runes[:breakAt])
	tail := strings.TrimSpace(string(runes[breakAt:]))
	return append([]string{head}, splitText(tail, maxRunes)...)
}

// findLineBreak scans backward from maxIndex for a space to break on,
// falling back to a hard break at maxIndex if the line has none.
func findLineBreak(runes []rune, maxIndex int) int {
	for i := maxIndex - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return maxIndex
}
