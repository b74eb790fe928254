package layout

// ComputeSize runs the post-order size pass of spec.md §4.5, threading
// the parent's width down to each child before a node computes its own
// size from its (already-sized) children.
func ComputeSize(o *Object, parentWidth int) {
	if o == nil {
		return
	}
	for c := o.firstChild; c != nil; c = c.next {
		ComputeSize(c, parentWidth)
	}

	switch o.Kind {
	case KindBlock:
		o.Size.W = parentWidth
		// A run of consecutive non-Block children shares one row, which
		// counts once at the height of its tallest member.
		height, rowHeight := 0, 0
		for c := o.firstChild; c != nil; c = c.next {
			if c.Kind == KindBlock {
				height += rowHeight + c.Size.H
				rowHeight = 0
			} else if c.Size.H > rowHeight {
				rowHeight = c.Size.H
			}
		}
		o.Size.H = height + rowHeight

	case KindInline:
		width, height := 0, 0
		for c := o.firstChild; c != nil; c = c.next {
			width += c.Size.W
			height += c.Size.H
		}
		o.Size.W = width
		o.Size.H = height

	case KindText:
		ratio := FontSizeRatio(o.Style.FontSize)
		width := CharWidth * ratio * len([]rune(o.Text))
		if width > ContentAreaWidth {
			o.Size.W = ContentAreaWidth
			lineCount := width / ContentAreaWidth
			if width%ContentAreaWidth != 0 {
				lineCount++
			}
			o.Size.H = CharHeightWithPadding * ratio * lineCount
		} else {
			o.Size.W = width
			o.Size.H = CharHeightWithPadding * ratio
		}
	}
}
