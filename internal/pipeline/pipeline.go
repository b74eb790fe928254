// Package pipeline wires the front end together: HTML tokenizing and
// tree construction, CSS extraction and cascade, layout, paint, and
// (if the document carries a <script>) the JS lexer/parser/runtime.
// It is the single synchronous call a shell makes per navigation
// (spec.md §5: "strictly single-threaded and synchronous").
package pipeline

import (
	"io"
	"log/slog"
	"net/http"

	"toybrowser/internal/browserhttp"
	"toybrowser/internal/browserurl"
	"toybrowser/internal/browsererr"
	"toybrowser/internal/css"
	"toybrowser/internal/dom"
	"toybrowser/internal/htmlparse"
	"toybrowser/internal/js/jsparser"
	"toybrowser/internal/js/runtime"
	"toybrowser/internal/layout"
	"toybrowser/internal/metrics"
	"toybrowser/internal/paint"
)

// Page is everything one navigation produced: the DOM, the layout
// tree, the flattened display list ready to paint, and the result of
// running the document's <script> content. The tree constructor only
// builds <script> elements inside <head>; a <script> start tag in
// <body> is ignored and its text is treated as body text.
type Page struct {
	Window       *dom.Window
	StyleSheet   *css.StyleSheet
	LayoutRoot   *layout.Object
	DisplayItems []paint.DisplayItem
	Script       runtime.RuntimeValue
}

// Render runs the full pipeline over an already-decoded HTML document.
// logger may be nil, in which case milestones are logged to
// slog.Default().
func Render(htmlSrc string, logger *slog.Logger) *Page {
	if logger == nil {
		logger = slog.Default()
	}

	var win *dom.Window
	metrics.Observe("construct_tree", func() {
		win = htmlparse.Parse(htmlSrc)
	})
	logger.Debug("tokenized and constructed tree", slog.Int("dom_nodes", countNodes(win.Document)))
	metrics.DOMNodes.Set(float64(countNodes(win.Document)))

	sheet := css.Parse(htmlparse.ExtractStyleText(win.Document))
	logger.Debug("parsed stylesheet", slog.Int("rules", len(sheet.Rules)))

	var root *layout.Object
	metrics.Observe("build_layout", func() {
		root = layout.NewBuilder(sheet).Build(win.Document)
		if root != nil {
			layout.ComputeSize(root, layout.ContentAreaWidth)
			layout.ComputePosition(root, layout.Point{X: layout.WindowPadding, Y: layout.WindowPadding + layout.ToolbarHeight})
		}
	})
	objCount := countLayoutObjects(root)
	logger.Debug("built layout tree", slog.Int("layout_objects", objCount))
	metrics.LayoutObjects.Set(float64(objCount))

	var items []paint.DisplayItem
	metrics.Observe("paint", func() {
		items = paint.Paint(root, nil)
	})
	logger.Debug("painted display list", slog.Int("display_items", len(items)))
	metrics.DisplayItems.Set(float64(len(items)))

	page := &Page{
		Window:       win,
		StyleSheet:   sheet,
		LayoutRoot:   root,
		DisplayItems: items,
		Script:       runtime.None,
	}

	if scriptSrc := htmlparse.ExtractScriptText(win.Document); scriptSrc != "" {
		prog := jsparser.New(scriptSrc).Parse()
		page.Script = runtime.New().Run(prog)
		logger.Debug("ran inline script", slog.Bool("is_none", page.Script.IsNone))
	}

	return page
}

// Fetch retrieves rawURL over net/http and reframes the response
// through browserhttp.Parse, returning the response body ready for
// Render. This is the "fetcher" collaborator named in spec.md §6: the
// pipeline itself never makes a network call outside of this one
// boundary function, and only this function, browserurl.Parse and
// browserhttp.Parse ever return a *browsererr.Error.
func Fetch(rawURL string) (string, error) {
	if _, err := browserurl.Parse(rawURL); err != nil {
		return "", err
	}
	resp, err := http.Get(rawURL)
	if err != nil {
		return "", browsererr.New(browsererr.Network, "fetching %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", browsererr.New(browsererr.Network, "reading response from %s: %v", rawURL, err)
	}

	// Status line, an empty header block, then the blank line that
	// separates headers from the body.
	status := resp.Proto + " " + resp.Status + "\n" + "\n\n" + string(body)
	framed, err := browserhttp.Parse(status)
	if err != nil {
		return "", err
	}
	return framed.Body, nil
}

func countNodes(n *dom.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		count += countNodes(c)
	}
	return count
}

func countLayoutObjects(o *layout.Object) int {
	if o == nil {
		return 0
	}
	count := 1
	for c := o.FirstChild(); c != nil; c = c.NextSibling() {
		count += countLayoutObjects(c)
	}
	return count
}
