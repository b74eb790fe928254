// Package htmlparse implements the tree constructor: the second of
// the pipeline's two coupled state machines. It consumes htmltok
// Tokens and builds a dom.Node tree under a dom.Window, driven by an
// insertion-mode state machine plus a stack of open elements.
package htmlparse

import (
	"strings"

	"toybrowser/internal/dom"
	"toybrowser/internal/htmltok"
)

// mode is the insertion mode: the tree constructor's own state,
// entirely separate from htmltok's tokenizer state (spec.md §9).
type mode int

const (
	modeInitial mode = iota
	modeBeforeHTML
	modeBeforeHead
	modeInHead
	modeAfterHead
	modeInBody
	modeText
	modeAfterBody
	modeAfterAfterBody
)

// Constructor builds a DOM tree from a token stream.
type Constructor struct {
	tokenizer *htmltok.Tokenizer
	window    *dom.Window

	mode         mode
	originalMode mode
	stack        []*dom.Node // stack of open elements, most recent last
}

// New creates a Constructor that will read tokens from tz.
func New(tz *htmltok.Tokenizer) *Constructor {
	return &Constructor{tokenizer: tz, window: dom.NewWindow(), mode: modeInitial}
}

// Parse drives the tokenizer to completion and returns the resulting
// Window. It terminates in O(n) token pulls for any finite input: every
// branch either advances the tokenizer or pops a bounded stack.
func (c *Constructor) Parse() *dom.Window {
	for {
		tok, ok := c.tokenizer.Next()
		if !ok {
			return c.window
		}
		if tok.Type == htmltok.EOF {
			return c.window
		}
		c.dispatch(tok)
	}
}

// current returns the current insertion point: the top of the stack of
// open elements, or the Document if the stack is empty.
func (c *Constructor) current() *dom.Node {
	if len(c.stack) == 0 {
		return c.window.Document
	}
	return c.stack[len(c.stack)-1]
}

func (c *Constructor) push(n *dom.Node) {
	c.current().AppendChild(n)
	c.stack = append(c.stack, n)
}

// insertElement creates an element for tok and pushes it, unless it is
// self-closing, in which case it is appended but not pushed (it opens
// no scope on the stack — spec.md glossary "self-closing tag").
func (c *Constructor) insertElement(tok htmltok.Token) *dom.Node {
	n := dom.NewElement(tok.Tag)
	for _, a := range tok.Attrs {
		n.SetAttr(a.Name, a.Value)
	}
	if tok.SelfClosing {
		c.current().AppendChild(n)
	} else {
		c.push(n)
	}
	return n
}

// popToTag pops the stack until (and including) the nearest element of
// the given tag. If no such element is on the stack, it leaves the
// stack untouched (spec.md §4.2: unrecognized tags are consumed but
// have no tree effect).
func (c *Constructor) popToTag(tag string) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].Tag == tag {
			c.stack = c.stack[:i]
			return
		}
	}
}

// hasOnStack reports whether an element with the given tag is
// currently on the stack of open elements.
func (c *Constructor) hasOnStack(tag string) bool {
	for _, n := range c.stack {
		if n.Tag == tag {
			return true
		}
	}
	return false
}

// insertCharacter applies spec.md §4.2's character-insertion rule: if
// the current insertion point's last child is already a Text node,
// append to it (coalescing the tokenizer's one-rune-at-a-time Char
// tokens back into runs); otherwise start a new Text child, except
// that whitespace-only characters outside <body> are dropped to avoid
// spurious text nodes around <head>/<html>.
func (c *Constructor) insertCharacter(ch rune) {
	parent := c.current()
	if last := parent.LastChild(); last != nil && last.Type == dom.TextNode {
		last.Text += string(ch)
		return
	}
	if isWhitespaceRune(ch) && !c.hasOnStack("body") {
		return
	}
	parent.AppendChild(dom.NewText(string(ch)))
}

func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// bodyLevelStartTags are the tags InHead treats as "any other
// recognized body-level start tag", causing it to close <head> and
// reconsume in AfterHead (spec.md §4.2).
var bodyLevelStartTags = map[string]bool{
	"body": true, "p": true, "h1": true, "h2": true, "a": true,
	"div": true, "span": true, "ul": true, "li": true, "img": true, "br": true,
}

func (c *Constructor) dispatch(tok htmltok.Token) {
	switch c.mode {
	case modeInitial:
		c.mode = modeBeforeHTML
		c.dispatch(tok)

	case modeBeforeHTML:
		if tok.Type == htmltok.StartTag && tok.Tag == "html" {
			c.insertElement(tok)
			c.mode = modeBeforeHead
			return
		}
		c.push(dom.NewElement("html"))
		c.mode = modeBeforeHead
		c.dispatch(tok)

	case modeBeforeHead:
		if tok.Type == htmltok.StartTag && tok.Tag == "head" {
			c.insertElement(tok)
			c.mode = modeInHead
			return
		}
		c.push(dom.NewElement("head"))
		c.mode = modeInHead
		c.dispatch(tok)

	case modeInHead:
		c.dispatchInHead(tok)

	case modeAfterHead:
		c.dispatchAfterHead(tok)

	case modeInBody:
		c.dispatchInBody(tok)

	case modeText:
		c.dispatchText(tok)

	case modeAfterBody:
		c.dispatchAfterBody(tok)

	case modeAfterAfterBody:
		// characters ignored; EOF terminates (handled by Parse's loop)
	}
}

func (c *Constructor) dispatchInHead(tok htmltok.Token) {
	switch {
	case tok.Type == htmltok.StartTag && (tok.Tag == "style" || tok.Tag == "script"):
		c.insertElement(tok)
		c.originalMode = modeInHead
		c.mode = modeText
	case tok.Type == htmltok.EndTag && tok.Tag == "head":
		c.popToTag("head")
		c.mode = modeAfterHead
	case tok.Type == htmltok.StartTag && bodyLevelStartTags[tok.Tag]:
		c.popToTag("head")
		c.mode = modeAfterHead
		c.dispatch(tok)
	case tok.Type == htmltok.Char:
		// whitespace between <head> and its content: ignored
	default:
		// unrecognized tags in InHead: consumed, no effect
	}
}

func (c *Constructor) dispatchAfterHead(tok htmltok.Token) {
	switch {
	case tok.Type == htmltok.StartTag && tok.Tag == "body":
		c.insertElement(tok)
		c.mode = modeInBody
	case tok.Type == htmltok.Char && isWhitespaceRune(tok.Char):
		// ignored
	default:
		c.push(dom.NewElement("body"))
		c.mode = modeInBody
		c.dispatch(tok)
	}
}

var inBodyStartTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "a": true,
	"div": true, "span": true, "ul": true, "li": true,
}

func (c *Constructor) dispatchInBody(tok htmltok.Token) {
	switch {
	case tok.Type == htmltok.StartTag && inBodyStartTags[tok.Tag]:
		c.insertElement(tok)
	case tok.Type == htmltok.StartTag && (tok.Tag == "img" || tok.Tag == "br"):
		c.insertElement(tok)
	case tok.Type == htmltok.EndTag && tok.Tag == "body":
		if c.hasOnStack("body") {
			c.mode = modeAfterBody
		}
	case tok.Type == htmltok.EndTag && tok.Tag == "html":
		c.popToTag("body")
		c.popToTag("html")
		c.mode = modeAfterBody
	case tok.Type == htmltok.EndTag:
		c.popToTag(tok.Tag)
	case tok.Type == htmltok.Char:
		c.insertCharacter(tok.Char)
	default:
		// unrecognized start tags: consumed, no tree effect
	}
}

func (c *Constructor) dispatchText(tok htmltok.Token) {
	switch {
	case tok.Type == htmltok.Char:
		c.insertCharacter(tok.Char)
	case tok.Type == htmltok.EndTag && (tok.Tag == "style" || tok.Tag == "script"):
		c.popToTag(tok.Tag)
		c.mode = c.originalMode
	default:
		// ignored
	}
}

func (c *Constructor) dispatchAfterBody(tok htmltok.Token) {
	switch {
	case tok.Type == htmltok.EndTag && tok.Tag == "html":
		c.mode = modeAfterAfterBody
	case tok.Type == htmltok.Char:
		// ignored
	}
}

// ExtractStyleText concatenates the text content of every <style>
// element in the document, in document order, for hand-off to the CSS
// tokenizer (the "extract <style>" back-edge in spec.md §2).
func ExtractStyleText(doc *dom.Node) string {
	var sb strings.Builder
	var walk func(*dom.Node)
	walk = func(n *dom.Node) {
		if n.Type == dom.ElementNode && n.Tag == "style" {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if c.Type == dom.TextNode {
					sb.WriteString(c.Text)
				}
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}

// ExtractScriptText concatenates the text content of every <script>
// element in the document, in document order, for hand-off to the JS
// lexer.
func ExtractScriptText(doc *dom.Node) string {
	var sb strings.Builder
	var walk func(*dom.Node)
	walk = func(n *dom.Node) {
		if n.Type == dom.ElementNode && n.Tag == "script" {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if c.Type == dom.TextNode {
					sb.WriteString(c.Text)
				}
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}

// Parse is the package-level convenience entry point: tokenize and
// construct in one call, mirroring toybrowser's original ParseHTML.
func Parse(input string) *dom.Window {
	c := New(htmltok.New(input))
	return c.Parse()
}
