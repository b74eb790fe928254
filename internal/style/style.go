// Package style resolves a DOM node's ComputedStyle by matching CSS
// rules against it (cascade) and filling in any field the cascade left
// unset (defaulting), per spec.md §4.4 steps 2-3.
package style

// Display is the resolved display value.
type Display int

const (
	DisplayUnset Display = iota
	Block
	Inline
	None
)

// FontSize is the resolved font-size keyword.
type FontSize int

const (
	FontSizeUnset FontSize = iota
	Medium
	XLarge
	XXLarge
)

// TextDecoration is the resolved text-decoration value.
type TextDecoration int

const (
	DecorationUnset TextDecoration = iota
	DecorationNone
	Underline
)

// Color is a resolved RGB color. The zero value is distinguished from
// "set" via the ComputedStyle.*Set flags below, not via a sentinel
// color value.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{0xff, 0xff, 0xff}
	Black = Color{0, 0, 0}
)

// ComputedStyle is the resolved style for one node. Every field has a
// "not yet set" state, matching spec.md §3's "optional not-yet-set
// state" requirement: the two colors carry a companion *Set bool, and
// Display, FontSize and TextDecoration use their Unset zero value.
// Default (in cascade.go) fills every unset field, so its result has
// both Set flags true and no Unset enum value.
type ComputedStyle struct {
	BackgroundColor    Color
	BackgroundColorSet bool
	ForegroundColor    Color
	ForegroundColorSet bool
	Display            Display
	FontSize           FontSize
	TextDecoration     TextDecoration
}
