// Package dom implements the tree of nodes produced by HTML parsing.
//
// Ownership follows a downward-owning, upward-weak discipline: a node
// owns its first child and its next sibling, while its parent and its
// last child are non-owning back-references used only for traversal.
// This keeps the tree free of reference cycles while still allowing
// O(1) "current insertion point" bookkeeping from the tree constructor.
package dom

import "strings"

// NodeType distinguishes the handful of node kinds the core cares about.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
)

// ElementKind is a closed enumeration of the tags the tree constructor
// and layout builder understand by name; any other tag name maps to
// Unknown. Unrecognized start tags in InBody produce no Node: the tree
// constructor consumes them, and their text lands in the enclosing
// element.
type ElementKind int

const (
	Unknown ElementKind = iota
	Html
	Head
	Style
	Script
	Body
	P
	H1
	H2
	A
	Div
	Span
	Ul
	Li
	Img
	Br
)

var tagKinds = map[string]ElementKind{
	"html":   Html,
	"head":   Head,
	"style":  Style,
	"script": Script,
	"body":   Body,
	"p":      P,
	"h1":     H1,
	"h2":     H2,
	"a":      A,
	"div":    Div,
	"span":   Span,
	"ul":     Ul,
	"li":     Li,
	"img":    Img,
	"br":     Br,
}

// KindForTag maps a lowercased tag name to its ElementKind. The mapping
// is total: unrecognized names resolve to Unknown rather than erroring,
// matching spec.md's "unrecognized start tags in InBody are ignored as
// text-carrying wrappers" rule.
func KindForTag(tag string) ElementKind {
	if k, ok := tagKinds[tag]; ok {
		return k
	}
	return Unknown
}

// Attribute is a mutable name/value pair. The tree constructor copies
// each one whole from the tokenizer's finished attribute (see SetAttr),
// and SetAttr may later overwrite its value.
type Attribute struct {
	Name  string
	Value string
}

// Node is a single DOM node. Document, Element and Text are modeled as
// one struct with a NodeType discriminator (rather than separate
// interfaces) to keep the forward/weak-back link topology, which is
// shared by every node kind, in one place.
type Node struct {
	Type    NodeType
	Tag     string // lowercased tag name, ElementNode only
	Kind    ElementKind
	Attrs   []Attribute
	Text    string // TextNode only

	firstChild *Node // owning
	lastChild  *Node // weak
	next       *Node // owning (next sibling, in document order)
	prev       *Node // weak
	parent     *Node // weak
}

// NewElement creates a detached element node for the given tag name.
// The tag is lowercased per spec.md §3's "element tag names are stored
// lowercased" invariant.
func NewElement(tag string) *Node {
	tag = strings.ToLower(tag)
	return &Node{Type: ElementNode, Tag: tag, Kind: KindForTag(tag)}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// NewDocument creates a detached Document node, the only node type a
// Window roots directly.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// Parent returns the (weak) parent reference, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child in document order, or nil.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node { return n.lastChild }

// NextSibling returns the next sibling in document order, or nil.
func (n *Node) NextSibling() *Node { return n.next }

// PrevSibling returns the (weak) previous-sibling reference, or nil.
func (n *Node) PrevSibling() *Node { return n.prev }

// AppendChild links child as the new last child of n. A node has at
// most one parent: reparenting is not supported because the tree
// constructor never needs it.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	if n.lastChild == nil {
		n.firstChild = child
		n.lastChild = child
		return
	}
	n.lastChild.next = child
	child.prev = n.lastChild
	n.lastChild = child
}

// Attr returns the value of the named attribute and whether it was
// present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets (or overwrites) an attribute's value.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attribute{Name: name, Value: value})
}

// HasClass reports whether the node's class attribute contains name as
// one of its space-separated tokens.
func (n *Node) HasClass(name string) bool {
	v, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// Children returns the node's children as a slice, for callers that
// prefer iteration over manual pointer-chasing. The DOM itself never
// uses this.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.firstChild; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}
