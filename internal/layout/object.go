// Package layout converts a styled DOM into a positioned tree of
// LayoutObjects: the layout builder (match + cascade + default), the
// size pass, and the position pass described in spec.md §§4.4-4.6.
package layout

import (
	"toybrowser/internal/dom"
	"toybrowser/internal/style"
)

// Kind is the layout object's box kind.
type Kind int

const (
	KindBlock Kind = iota
	KindInline
	KindText
)

// Point is an absolute page-space coordinate: origin top-left, +x
// right, +y down, integer units (spec.md §6).
type Point struct {
	X, Y int
}

// Size is a box's width/height in the same units as Point.
type Size struct {
	W, H int
}

// Object is one node of the layout tree. It carries the same
// forward-owning/weak-back link topology as dom.Node (spec.md §3): no
// Object exists for a node whose resolved display is None, a Document
// node never becomes an Object, and only KindText objects carry Text.
type Object struct {
	Kind  Kind
	Node  *dom.Node // source DOM node (nil only for a synthetic anonymous box, which this core never creates)
	Style *style.ComputedStyle
	Point Point
	Size  Size
	Text  string // KindText only

	firstChild *Object
	lastChild  *Object
	next       *Object
	prev       *Object
	parent     *Object
}

func (o *Object) FirstChild() *Object  { return o.firstChild }
func (o *Object) LastChild() *Object   { return o.lastChild }
func (o *Object) NextSibling() *Object { return o.next }
func (o *Object) PrevSibling() *Object { return o.prev }
func (o *Object) Parent() *Object      { return o.parent }

func (o *Object) appendChild(child *Object) {
	child.parent = o
	if o.lastChild == nil {
		o.firstChild = child
		o.lastChild = child
		return
	}
	o.lastChild.next = child
	child.prev = o.lastChild
	o.lastChild = child
}

// Children returns o's children as a slice, for traversal code that
// prefers iteration over manual pointer-chasing.
func (o *Object) Children() []*Object {
	var out []*Object
	for c := o.firstChild; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}
