package layout

import (
	"strings"

	"toybrowser/internal/css"
	"toybrowser/internal/dom"
	"toybrowser/internal/style"
)

// Builder runs the layout-builder pass of spec.md §4.4: for each DOM
// node under <body>, in document order, it allocates a LayoutObject,
// cascades and defaults its ComputedStyle, and drops the subtree if
// the resolved display is None.
type Builder struct {
	sheet *css.StyleSheet
}

// NewBuilder creates a Builder that will cascade against sheet.
func NewBuilder(sheet *css.StyleSheet) *Builder {
	return &Builder{sheet: sheet}
}

// Build finds <body> under doc and returns its LayoutObject (Kind Block
// unless the stylesheet sets another display, since <body> defaults to
// Block per spec.md §4.4 step 3), or nil if <body> itself resolves to
// display:none.
func (b *Builder) Build(doc *dom.Node) *Object {
	body := findBody(doc)
	if body == nil {
		return nil
	}
	return b.buildNode(body, nil, nil)
}

func findBody(n *dom.Node) *dom.Node {
	if n.Type == dom.ElementNode && n.Tag == "body" {
		return n
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

// buildNode implements §4.4 steps 1-5 for one DOM node and recurses
// into its children. parentStyle feeds color inheritance (§4.4 step
// 3); parentObj is the already-allocated parent LayoutObject, or nil
// at the root.
func (b *Builder) buildNode(n *dom.Node, parentStyle *style.ComputedStyle, parentObj *Object) *Object {
	switch n.Type {
	case dom.DocumentNode:
		// spec.md §3 invariant: a Document node never becomes a
		// LayoutObject. The pipeline never calls buildNode on one.
		panic("layout: attempted to build a LayoutObject for a Document node")

	case dom.TextNode:
		text := collapseWhitespace(n.Text)
		if text == "" {
			return nil
		}
		obj := &Object{Kind: KindText, Node: n, Style: parentStyle, Text: text}
		if parentObj != nil {
			parentObj.appendChild(obj)
		}
		return obj

	default: // ElementNode
		cs := style.Default(style.Cascade(b.sheet, n), n, parentStyle)
		if cs.Display == style.None {
			return nil
		}
		kind := KindBlock
		if cs.Display == style.Inline {
			kind = KindInline
		}
		obj := &Object{Kind: kind, Node: n, Style: cs}
		if parentObj != nil {
			parentObj.appendChild(obj)
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			b.buildNode(c, cs, obj)
		}
		return obj
	}
}

// collapseWhitespace implements the spec.md §9 open-question
// resolution: runs of whitespace collapse to a single space, then the
// result is trimmed. Final per-line trimming of wrapped text happens
// later, in paint's line wrapping.
func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
