package layout

// ComputePosition runs the pre-order position pass of spec.md §4.6. Each
// node's point is derived from its parent's point and, where one
// exists, its previous sibling's point and size:
//
//   - if either this node or the previous sibling is Block, the node
//     starts a new row directly below the previous sibling (or at the
//     parent's point, if there is no previous sibling);
//   - if both this node and the previous sibling are Inline, the node
//     continues the same row, immediately to the right of the previous
//     sibling;
//   - otherwise (the root, or a Text/Inline node with no Block
//     involved) the node simply inherits the parent's point.
func ComputePosition(o *Object, parentPoint Point) {
	if o == nil {
		return
	}
	o.Point = parentPoint

	var prev *Object
	for c := o.firstChild; c != nil; c = c.next {
		c.Point = childPoint(c, prev, o.Point)
		ComputePosition(c, c.Point)
		prev = c
	}
}

func childPoint(c, prev *Object, parentPoint Point) Point {
	switch {
	case c.Kind == KindBlock || (prev != nil && prev.Kind == KindBlock):
		p := Point{X: parentPoint.X, Y: parentPoint.Y}
		if prev != nil {
			p.Y = prev.Point.Y + prev.Size.H
		}
		return p

	case prev != nil && c.Kind == KindInline && prev.Kind == KindInline:
		return Point{X: prev.Point.X + prev.Size.W, Y: prev.Point.Y}

	default:
		return parentPoint
	}
}
