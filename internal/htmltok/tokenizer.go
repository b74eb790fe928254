package htmltok

import (
	"strconv"
	"strings"
)

// state is the tokenizer's own state machine, independent of the tree
// constructor's insertion modes (spec.md §9: "keep them as distinct
// types with their own state enums; the tokenizer is a lazy iterator
// over tokens and the constructor consumes it").
type state int

const (
	stateData state = iota
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDoubleQuoted
	stateAttributeValueSingleQuoted
	stateAttributeValueUnquoted
	stateAfterAttributeValueQuoted
	stateSelfClosingStartTag
	stateScriptData
	stateScriptDataLessThanSign
	stateScriptDataEndTagOpen
	stateScriptDataEndTagName
	stateTemporaryBuffer
	stateEOF
)

// Tokenizer pulls Tokens lazily out of an HTML source string. Next
// panics never occur; malformed input is absorbed into Char/EOF
// tokens per spec.md §7's tolerant-tokenizer design.
type Tokenizer struct {
	input []rune
	pos   int

	state state

	// reconsume replays the current rune in a new state without
	// advancing the cursor: a one-character lookahead channel that
	// avoids per-state peek logic (spec.md §9).
	reconsume bool
	current   rune
	atEOF     bool

	latest *Token // in-progress Start/EndTag token

	attrName  strings.Builder
	attrValue strings.Builder

	buf          strings.Builder // TemporaryBuffer
	scriptEndTag strings.Builder
}

// New creates a Tokenizer over the given HTML source.
func New(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input), state: stateData}
}

// nextRune consumes (or reconsumes) the current input position.
func (t *Tokenizer) nextRune() (rune, bool) {
	if t.reconsume {
		t.reconsume = false
		return t.current, !t.atEOF
	}
	if t.pos >= len(t.input) {
		t.current = 0
		t.atEOF = true
		return 0, false
	}
	t.current = t.input[t.pos]
	t.pos++
	t.atEOF = false
	return t.current, true
}

func (t *Tokenizer) reconsumeIn(s state) {
	t.reconsume = true
	t.state = s
}

func isAsciiAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (t *Tokenizer) startTag(isStart bool) {
	tt := StartTag
	if !isStart {
		tt = EndTag
	}
	t.latest = &Token{Type: tt}
}

func (t *Tokenizer) appendTagName(c rune) {
	t.latest.Tag += string(c)
}

func (t *Tokenizer) startAttribute() {
	t.attrName.Reset()
	t.attrValue.Reset()
}

func (t *Tokenizer) finishAttribute() {
	if t.attrName.Len() == 0 {
		return
	}
	t.latest.Attrs = append(t.latest.Attrs, Attribute{
		Name:  t.attrName.String(),
		Value: t.attrValue.String(),
	})
	t.attrName.Reset()
	t.attrValue.Reset()
}

func (t *Tokenizer) emitLatest() Token {
	t.finishAttribute()
	tok := *t.latest
	t.latest = nil
	return tok
}

// Next returns the next token, or (Token{Type: EOF}, false) once the
// input (and any trailing EOF token) has been fully consumed.
func (t *Tokenizer) Next() (Token, bool) {
	for {
		switch t.state {
		case stateEOF:
			return Token{Type: EOF}, false

		case stateData:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			if c == '<' {
				t.state = stateTagOpen
				continue
			}
			if c == '&' {
				if decoded, ok := t.consumeCharacterReference(); ok {
					return Token{Type: Char, Char: decoded}, true
				}
			}
			return Token{Type: Char, Char: c}, true

		case stateTagOpen:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			switch {
			case c == '/':
				t.state = stateEndTagOpen
			case isAsciiAlpha(c):
				t.startTag(true)
				t.reconsumeIn(stateTagName)
			default:
				t.reconsumeIn(stateData)
			}

		case stateEndTagOpen:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			if isAsciiAlpha(c) {
				t.startTag(false)
				t.reconsumeIn(stateTagName)
				continue
			}
			t.reconsumeIn(stateData)

		case stateTagName:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			switch {
			case isWhitespace(c):
				t.state = stateBeforeAttributeName
			case c == '/':
				t.state = stateSelfClosingStartTag
			case c == '>':
				tok := t.emitLatest()
				if tok.Type == StartTag && tok.Tag == "script" && !tok.SelfClosing {
					t.state = stateScriptData
				} else {
					t.state = stateData
				}
				return tok, true
			case c >= 'A' && c <= 'Z':
				t.appendTagName(c + ('a' - 'A'))
			default:
				t.appendTagName(c)
			}

		case stateBeforeAttributeName:
			c, ok := t.nextRune()
			if !ok || c == '/' || c == '>' {
				t.reconsumeIn(stateAfterAttributeName)
				continue
			}
			t.startAttribute()
			t.reconsumeIn(stateAttributeName)

		case stateAttributeName:
			c, ok := t.nextRune()
			if !ok || isWhitespace(c) || c == '/' || c == '>' {
				t.reconsumeIn(stateAfterAttributeName)
				continue
			}
			if c == '=' {
				t.state = stateBeforeAttributeValue
				continue
			}
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			t.attrName.WriteRune(c)

		case stateAfterAttributeName:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			switch {
			case isWhitespace(c):
				// ignore
			case c == '/':
				t.finishAttribute()
				t.state = stateSelfClosingStartTag
			case c == '=':
				t.state = stateBeforeAttributeValue
			case c == '>':
				t.finishAttribute()
				tok := t.emitLatest()
				if tok.Type == StartTag && tok.Tag == "script" && !tok.SelfClosing {
					t.state = stateScriptData
				} else {
					t.state = stateData
				}
				return tok, true
			default:
				t.finishAttribute()
				t.reconsumeIn(stateAttributeName)
			}

		case stateBeforeAttributeValue:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			switch {
			case isWhitespace(c):
				// ignore
			case c == '"':
				t.state = stateAttributeValueDoubleQuoted
			case c == '\'':
				t.state = stateAttributeValueSingleQuoted
			default:
				t.reconsumeIn(stateAttributeValueUnquoted)
			}

		case stateAttributeValueDoubleQuoted:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			if c == '"' {
				t.finishAttribute()
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			t.attrValue.WriteRune(c)

		case stateAttributeValueSingleQuoted:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			if c == '\'' {
				t.finishAttribute()
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			t.attrValue.WriteRune(c)

		case stateAttributeValueUnquoted:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			switch {
			case isWhitespace(c):
				t.finishAttribute()
				t.state = stateBeforeAttributeName
			case c == '>':
				t.finishAttribute()
				tok := t.emitLatest()
				if tok.Type == StartTag && tok.Tag == "script" && !tok.SelfClosing {
					t.state = stateScriptData
				} else {
					t.state = stateData
				}
				return tok, true
			default:
				t.attrValue.WriteRune(c)
			}

		case stateAfterAttributeValueQuoted:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			switch {
			case isWhitespace(c):
				t.state = stateBeforeAttributeName
			case c == '/':
				t.state = stateSelfClosingStartTag
			case c == '>':
				tok := t.emitLatest()
				if tok.Type == StartTag && tok.Tag == "script" && !tok.SelfClosing {
					t.state = stateScriptData
				} else {
					t.state = stateData
				}
				return tok, true
			default:
				t.reconsumeIn(stateBeforeAttributeValue)
			}

		case stateSelfClosingStartTag:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			if c == '>' {
				t.latest.SelfClosing = true
				t.state = stateData
				return t.emitLatest(), true
			}
			// Anything else: ignored (malformed), return to before-attr-name.
			t.reconsumeIn(stateBeforeAttributeName)

		case stateScriptData:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			if c == '<' {
				t.state = stateScriptDataLessThanSign
				continue
			}
			return Token{Type: Char, Char: c}, true

		case stateScriptDataLessThanSign:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			if c == '/' {
				t.buf.Reset()
				t.state = stateScriptDataEndTagOpen
				continue
			}
			t.reconsumeIn(stateScriptData)
			return Token{Type: Char, Char: '<'}, true

		case stateScriptDataEndTagOpen:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			if isAsciiAlpha(c) {
				t.scriptEndTag.Reset()
				t.reconsumeIn(stateScriptDataEndTagName)
				continue
			}
			t.buf.WriteString("</")
			t.reconsumeIn(stateTemporaryBuffer)

		case stateScriptDataEndTagName:
			c, ok := t.nextRune()
			if !ok {
				t.state = stateEOF
				return Token{Type: EOF}, true
			}
			lower := c
			if lower >= 'A' && lower <= 'Z' {
				lower += 'a' - 'A'
			}
			if isAsciiAlpha(c) {
				t.scriptEndTag.WriteRune(lower)
				continue
			}
			if t.scriptEndTag.String() == "script" {
				if c == '>' {
					t.state = stateData
					return Token{Type: EndTag, Tag: "script"}, true
				}
				if isWhitespace(c) {
					t.startTag(false)
					t.latest.Tag = "script"
					t.state = stateBeforeAttributeName
					continue
				}
			}
			// Mismatch: flush "</" + buffered name character-by-character.
			t.buf.WriteString("</")
			t.buf.WriteString(t.scriptEndTag.String())
			t.reconsumeIn(stateTemporaryBuffer)

		case stateTemporaryBuffer:
			s := t.buf.String()
			if s == "" {
				t.reconsumeIn(stateScriptData)
				continue
			}
			r := []rune(s)
			t.buf.Reset()
			t.buf.WriteString(string(r[1:]))
			return Token{Type: Char, Char: r[0]}, true
		}
	}
}

// consumeCharacterReference decodes the character reference starting
// right after an '&' the caller already consumed (HTML5 §12.2.4.2
// Character reference state). It reports ok=false, leaving t.pos
// untouched, if what follows isn't a well-formed reference, so the
// caller falls back to emitting the '&' literally.
func (t *Tokenizer) consumeCharacterReference() (rune, bool) {
	start := t.pos
	end := start
	for end < len(t.input) && end < start+32 && t.input[end] != ';' && t.input[end] != '&' && t.input[end] != '<' {
		end++
	}
	if end >= len(t.input) || t.input[end] != ';' {
		return 0, false
	}

	name := string(t.input[start:end])
	decoded, ok := decodeEntity(name)
	if !ok {
		return 0, false
	}
	t.pos = end + 1
	return decoded, true
}

// decodeEntity decodes a single HTML character reference name (the
// text between '&' and ';'), numeric or named.
func decodeEntity(name string) (rune, bool) {
	if name == "" {
		return 0, false
	}
	if name[0] == '#' {
		return decodeNumericReference(name[1:])
	}
	r, ok := namedEntities[name]
	return r, ok
}

// decodeNumericReference decodes a decimal ("60") or hexadecimal
// ("x3C"/"X3C") numeric character reference, without its leading '#'.
func decodeNumericReference(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	base := 10
	if s[0] == 'x' || s[0] == 'X' {
		base = 16
		s = s[1:]
	}
	codePoint, err := strconv.ParseInt(s, base, 32)
	if err != nil || codePoint <= 0 || codePoint > 0x10FFFF {
		return 0, false
	}
	return rune(codePoint), true
}

// namedEntities covers the named character references a toy browser's
// test pages actually use; HTML5 §12.2.4.4 defines over two thousand,
// but resolving the full table buys nothing here.
var namedEntities = map[string]rune{
	"amp":    '&',
	"lt":     '<',
	"gt":     '>',
	"quot":   '"',
	"apos":   '\'',
	"nbsp":   ' ',
	"copy":   '©',
	"reg":    '®',
	"trade":  '™',
	"deg":    '°',
	"plusmn": '±',
	"cent":   '¢',
	"pound":  '£',
	"euro":   '€',
	"yen":    '¥',
	"sect":   '§',
	"para":   '¶',
	"middot": '·',
	"bull":   '•',
	"hellip": '…',
	"mdash":  '—',
	"ndash":  '–',
}
