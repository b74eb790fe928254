package css

// Parser is a recursive-descent parser over a Tokenizer's output,
// implementing the grammar in spec.md §4.3:
//
//	stylesheet   := rule*
//	rule         := selector '{' declaration (';' declaration)* ';'? '}'
//	selector     := Ident | '.' Ident | '#' HashToken | otherwise
//	declaration  := Ident ':' component-value
//	component    := Ident | String | Number | Hash | Keyword-Ident
type Parser struct {
	tz   *Tokenizer
	peek *Token
}

// NewParser creates a Parser over the given CSS source.
func NewParser(input string) *Parser {
	return &Parser{tz: NewTokenizer(input)}
}

func (p *Parser) next() (Token, bool) {
	if p.peek != nil {
		t := *p.peek
		p.peek = nil
		return t, true
	}
	return p.tz.Next()
}

func (p *Parser) peekToken() (Token, bool) {
	if p.peek == nil {
		t, ok := p.tz.Next()
		if !ok {
			return Token{}, false
		}
		p.peek = &t
	}
	return *p.peek, true
}

// Parse runs the stylesheet grammar to completion.
func (p *Parser) Parse() *StyleSheet {
	sheet := &StyleSheet{}
	for {
		if _, ok := p.peekToken(); !ok {
			break
		}
		rule, ok := p.parseRule()
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet
}

func (p *Parser) parseRule() (Rule, bool) {
	sel, ok := p.parseSelector()
	if !ok {
		return Rule{}, false
	}
	tok, ok := p.next()
	if !ok || tok.Type != OpenCurly {
		return Rule{}, false
	}

	var decls []Declaration
	for {
		t, ok := p.peekToken()
		if !ok || t.Type == CloseCurly {
			break
		}
		if t.Type == Semi {
			p.next()
			continue
		}
		d, ok := p.parseDeclaration()
		if !ok {
			break
		}
		decls = append(decls, d)
		if t, ok := p.peekToken(); ok && t.Type == Semi {
			p.next()
		}
	}
	if t, ok := p.next(); !ok || t.Type != CloseCurly {
		// Unterminated block: tolerate, per spec.md §7's error-tolerant
		// parser design.
	}

	return Rule{Selector: sel, Declarations: decls}, true
}

// parseSelector reads one selector. Anything that doesn't match Ident,
// '.' Ident, or '#' HashToken resolves to Unknown, and the tokens
// already consumed while probing are folded into it so the caller can
// still find the block's '{'.
func (p *Parser) parseSelector() (Selector, bool) {
	tok, ok := p.next()
	if !ok {
		return Selector{}, false
	}
	switch {
	case tok.Type == Ident:
		return Selector{Kind: SelectorType, Name: tok.Str}, true
	case tok.Type == Delim && tok.Ch == '.':
		name, ok := p.next()
		if ok && name.Type == Ident {
			return Selector{Kind: SelectorClass, Name: name.Str}, true
		}
		return Selector{Kind: SelectorUnknown}, true
	case tok.Type == Hash:
		return Selector{Kind: SelectorID, Name: tok.Str}, true
	default:
		// Unknown selector: consume tokens until '{' so the block still
		// parses (spec.md §4.3: "Unknown selectors still parse their
		// block for forward compatibility but match no nodes").
		for {
			t, ok := p.peekToken()
			if !ok || t.Type == OpenCurly {
				break
			}
			p.next()
		}
		return Selector{Kind: SelectorUnknown}, true
	}
}

func (p *Parser) parseDeclaration() (Declaration, bool) {
	nameTok, ok := p.next()
	if !ok || nameTok.Type != Ident {
		return Declaration{}, false
	}
	colon, ok := p.next()
	if !ok || colon.Type != Colon {
		return Declaration{}, false
	}
	val, ok := p.parseComponentValue()
	if !ok {
		return Declaration{}, false
	}
	return Declaration{Property: nameTok.Str, Value: val}, true
}

func (p *Parser) parseComponentValue() (ComponentValue, bool) {
	tok, ok := p.next()
	if !ok {
		return ComponentValue{}, false
	}
	switch tok.Type {
	case Ident:
		if tok.Str == "none" || tok.Str == "block" || tok.Str == "inline" ||
			tok.Str == "underline" {
			return ComponentValue{Kind: ValueKeyword, Str: tok.Str}, true
		}
		return ComponentValue{Kind: ValueIdent, Str: tok.Str}, true
	case String:
		return ComponentValue{Kind: ValueIdent, Str: tok.Str}, true
	case Number:
		return ComponentValue{Kind: ValueNumber, Number: tok.Num}, true
	case Hash:
		return ComponentValue{Kind: ValueHash, Str: tok.Str}, true
	default:
		return ComponentValue{}, false
	}
}

// Parse is the package-level convenience entry point.
func Parse(input string) *StyleSheet {
	return NewParser(input).Parse()
}
