// Package paint walks a finished layout tree and emits the flat
// sequence of display items a surface (terminal preview, SVG, future
// GPU backend) actually draws, per spec.md §4.7.
package paint

import (
	"toybrowser/internal/layout"
	"toybrowser/internal/style"
)

// ItemKind distinguishes the two display-item shapes.
type ItemKind int

const (
	KindRect ItemKind = iota
	KindText
)

// DisplayItem is one paintable primitive: either a Block element's
// background rect, or one wrapped line of a Text node.
type DisplayItem struct {
	Kind  ItemKind
	Point layout.Point
	Size  layout.Size
	Style *style.ComputedStyle
	Text  string // KindText only; one already-wrapped line
}

// Paint walks o in pre-order and appends its display items to items,
// returning the extended slice. Inline elements paint nothing of
// their own; Text nodes emit one item per wrapped line.
func Paint(o *layout.Object, items []DisplayItem) []DisplayItem {
	if o == nil {
		return items
	}
	switch o.Kind {
	case layout.KindBlock:
		items = append(items, DisplayItem{
			Kind:  KindRect,
			Point: o.Point,
			Size:  o.Size,
			Style: o.Style,
		})
	case layout.KindText:
		items = append(items, textLines(o)...)
	}
	for c := o.FirstChild(); c != nil; c = c.NextSibling() {
		items = Paint(c, items)
	}
	return items
}
