package dom

// Window owns the Document root; the tree constructor creates one per
// parsed page. Its only job is rooting the DOM so that upward weak references (parent,
// last-child) stay live for as long as the page controller holds the
// Window; dropping the controller drops the whole graph.
type Window struct {
	Document *Node
}

// NewWindow creates a Window with a freshly allocated, empty Document.
func NewWindow() *Window {
	return &Window{Document: NewDocument()}
}
