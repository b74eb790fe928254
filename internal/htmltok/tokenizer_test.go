package htmltok

import "testing"

func collect(input string) []Token {
	tz := New(input)
	var toks []Token
	for {
		tok, ok := tz.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}
	return toks
}

func TestSimpleTag(t *testing.T) {
	toks := collect("<p>hi</p>")
	want := []TokenType{StartTag, Char, Char, EndTag, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Type, tt)
		}
	}
	if toks[0].Tag != "p" || toks[3].Tag != "p" {
		t.Errorf("tag names not lowercased/captured: %+v %+v", toks[0], toks[3])
	}
}

func TestAttributes(t *testing.T) {
	toks := collect(`<A Href="x" disabled>`)
	if toks[0].Tag != "a" {
		t.Fatalf("tag not lowercased: %q", toks[0].Tag)
	}
	attrs := toks[0].Attrs
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2: %+v", len(attrs), attrs)
	}
	if attrs[0].Name != "href" || attrs[0].Value != "x" {
		t.Errorf("attr 0 = %+v", attrs[0])
	}
	if attrs[1].Name != "disabled" || attrs[1].Value != "" {
		t.Errorf("attr 1 = %+v", attrs[1])
	}
}

func TestSelfClosing(t *testing.T) {
	toks := collect(`<br/>`)
	if toks[0].Type != StartTag || !toks[0].SelfClosing {
		t.Fatalf("expected self-closing start tag, got %+v", toks[0])
	}
}

func TestScriptContentIsNotMisparsedAsTags(t *testing.T) {
	toks := collect(`<script>if (1<2) {}</script>`)
	if toks[0].Type != StartTag || toks[0].Tag != "script" {
		t.Fatalf("expected script start tag, got %+v", toks[0])
	}
	var text []rune
	i := 1
	for toks[i].Type == Char {
		text = append(text, toks[i].Char)
		i++
	}
	if string(text) != "if (1<2) {}" {
		t.Errorf("script body = %q, want %q", string(text), "if (1<2) {}")
	}
	if toks[i].Type != EndTag || toks[i].Tag != "script" {
		t.Fatalf("expected script end tag, got %+v", toks[i])
	}
}

func TestAttributeValueUnquotedTerminatesOnGreaterThan(t *testing.T) {
	toks := collect(`<div class=box>`)
	if toks[0].Attrs[0].Name != "class" || toks[0].Attrs[0].Value != "box" {
		t.Errorf("unquoted attribute = %+v", toks[0].Attrs)
	}
}

func textOf(toks []Token) string {
	var r []rune
	for _, tok := range toks {
		if tok.Type == Char {
			r = append(r, tok.Char)
		}
	}
	return string(r)
}

func TestNamedCharacterReferencesAreDecoded(t *testing.T) {
	toks := collect(`<p>Tom &amp; Jerry &lt;3&gt;</p>`)
	if got, want := textOf(toks), `Tom & Jerry <3>`; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestNumericCharacterReferencesAreDecoded(t *testing.T) {
	toks := collect(`<p>&#65;&#x42;</p>`)
	if got, want := textOf(toks), `AB`; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestUnknownOrUnterminatedReferenceIsKeptLiteral(t *testing.T) {
	toks := collect(`<p>Q&A &bogus; AT&T</p>`)
	if got, want := textOf(toks), `Q&A &bogus; AT&T`; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestScriptContentEntitiesAreNotDecoded(t *testing.T) {
	toks := collect(`<script>a &amp; b</script>`)
	var text []rune
	for i := 1; toks[i].Type == Char; i++ {
		text = append(text, toks[i].Char)
	}
	if got, want := string(text), `a &amp; b`; got != want {
		t.Errorf("script body = %q, want %q (raw text must not decode entities)", got, want)
	}
}
