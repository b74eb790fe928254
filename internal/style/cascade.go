package style

import (
	"toybrowser/internal/css"
	"toybrowser/internal/dom"
)

// Cascade applies every rule in sheet whose selector matches n, in
// source order, so that later declarations win (spec.md §4.4 step 2,
// §9: "no specificity computation"). It only sets fields the matched
// declarations actually mention; Default (below) fills the rest.
func Cascade(sheet *css.StyleSheet, n *dom.Node) *ComputedStyle {
	cs := &ComputedStyle{}
	for _, rule := range sheet.Rules {
		if !matches(rule.Selector, n) {
			continue
		}
		for _, decl := range rule.Declarations {
			apply(cs, decl)
		}
	}
	return cs
}

// matches implements spec.md §4.4 step 2's three selector rules.
// Type(n) matches an element whose lowercased tag equals n; Class(n)
// matches if the node's class attribute contains the token n; Id(n)
// matches if its id attribute equals n. Unknown selectors match
// nothing.
func matches(sel css.Selector, n *dom.Node) bool {
	if n.Type != dom.ElementNode {
		return false
	}
	switch sel.Kind {
	case css.SelectorType:
		return n.Tag == sel.Name
	case css.SelectorClass:
		return n.HasClass(sel.Name)
	case css.SelectorID:
		id, ok := n.Attr("id")
		return ok && id == sel.Name
	default:
		return false
	}
}

func apply(cs *ComputedStyle, decl css.Declaration) {
	switch decl.Property {
	case "background-color":
		if c, ok := namedColor(decl.Value); ok {
			cs.BackgroundColor = c
			cs.BackgroundColorSet = true
		}
	case "color":
		if c, ok := namedColor(decl.Value); ok {
			cs.ForegroundColor = c
			cs.ForegroundColorSet = true
		}
	case "display":
		switch valueKeyword(decl.Value) {
		case "block":
			cs.Display = Block
		case "inline":
			cs.Display = Inline
		case "none":
			cs.Display = None
		}
	case "font-size":
		switch valueKeyword(decl.Value) {
		case "medium":
			cs.FontSize = Medium
		case "x-large":
			cs.FontSize = XLarge
		case "xx-large":
			cs.FontSize = XXLarge
		}
	case "text-decoration":
		switch valueKeyword(decl.Value) {
		case "none":
			cs.TextDecoration = DecorationNone
		case "underline":
			cs.TextDecoration = Underline
		}
	}
}

func valueKeyword(v css.ComponentValue) string {
	if v.Kind == css.ValueIdent || v.Kind == css.ValueKeyword {
		return v.Str
	}
	return ""
}

var namedColors = map[string]Color{
	"black": Black,
	"white": White,
	"red":   {0xff, 0, 0},
	"green": {0, 0x80, 0},
	"blue":  {0, 0, 0xff},
}

func namedColor(v css.ComponentValue) (Color, bool) {
	if v.Kind == css.ValueHash {
		return hexColor(v.Str)
	}
	if v.Kind != css.ValueIdent {
		return Color{}, false
	}
	c, ok := namedColors[v.Str]
	return c, ok
}

func hexColor(hex string) (Color, bool) {
	if len(hex) != 6 {
		return Color{}, false
	}
	var vals [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return Color{}, false
		}
		vals[i] = hi<<4 | lo
	}
	return Color{vals[0], vals[1], vals[2]}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint8(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint8(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint8(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Default fills every field Cascade left unset, using the node's kind
// and the parent's already-defaulted style (spec.md §4.4 step 3):
//
//   - background-color defaults to white.
//   - color defaults to black, or inherits the parent's resolved color
//     if the parent set one.
//   - display defaults by tag kind: p/h1/h2/body/div → Block;
//     a/span → Inline.
//   - font-size defaults to Medium, with h1 → XXLarge and h2 → XLarge.
//   - text-decoration defaults to None, with a → Underline.
func Default(cs *ComputedStyle, n *dom.Node, parent *ComputedStyle) *ComputedStyle {
	if !cs.BackgroundColorSet {
		cs.BackgroundColor = White
		cs.BackgroundColorSet = true
	}
	if !cs.ForegroundColorSet {
		if parent != nil && parent.ForegroundColorSet {
			cs.ForegroundColor = parent.ForegroundColor
		} else {
			cs.ForegroundColor = Black
		}
		cs.ForegroundColorSet = true
	}
	if cs.Display == DisplayUnset {
		cs.Display = defaultDisplay(n)
	}
	if cs.FontSize == FontSizeUnset {
		cs.FontSize = defaultFontSize(n)
	}
	if cs.TextDecoration == DecorationUnset {
		cs.TextDecoration = defaultTextDecoration(n)
	}
	return cs
}

func defaultDisplay(n *dom.Node) Display {
	switch n.Kind {
	case dom.P, dom.H1, dom.H2, dom.Body, dom.Div, dom.Ul, dom.Li:
		return Block
	case dom.A, dom.Span:
		return Inline
	default:
		return Block
	}
}

func defaultFontSize(n *dom.Node) FontSize {
	switch n.Kind {
	case dom.H1:
		return XXLarge
	case dom.H2:
		return XLarge
	default:
		return Medium
	}
}

func defaultTextDecoration(n *dom.Node) TextDecoration {
	if n.Kind == dom.A {
		return Underline
	}
	return DecorationNone
}
