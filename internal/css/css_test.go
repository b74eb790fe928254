package css

import "testing"

func TestTokenizerBasicRule(t *testing.T) {
	tz := NewTokenizer("p { color: red; }")
	var got []TokenType
	for {
		tok, ok := tz.Next()
		if !ok {
			break
		}
		got = append(got, tok.Type)
	}
	want := []TokenType{Ident, OpenCurly, Ident, Colon, Ident, Semi, CloseCurly}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, tt := range want {
		if got[i] != tt {
			t.Errorf("token %d = %v, want %v", i, got[i], tt)
		}
	}
}

func TestParserBasicRule(t *testing.T) {
	sheet := Parse("p { color: red; }")
	if len(sheet.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(sheet.Rules))
	}
	r := sheet.Rules[0]
	if r.Selector.Kind != SelectorType || r.Selector.Name != "p" {
		t.Fatalf("selector = %+v, want Type(p)", r.Selector)
	}
	if len(r.Declarations) != 1 || r.Declarations[0].Property != "color" {
		t.Fatalf("declarations = %+v", r.Declarations)
	}
	if r.Declarations[0].Value.Kind != ValueIdent || r.Declarations[0].Value.Str != "red" {
		t.Fatalf("value = %+v, want Ident(red)", r.Declarations[0].Value)
	}
}

func TestParserClassAndIdSelectors(t *testing.T) {
	sheet := Parse(".hidden { display: none; } #main { color: blue; }")
	if len(sheet.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(sheet.Rules))
	}
	if sheet.Rules[0].Selector != (Selector{Kind: SelectorClass, Name: "hidden"}) {
		t.Fatalf("selector 0 = %+v", sheet.Rules[0].Selector)
	}
	if sheet.Rules[1].Selector != (Selector{Kind: SelectorID, Name: "main"}) {
		t.Fatalf("selector 1 = %+v", sheet.Rules[1].Selector)
	}
}

func TestParserUnknownSelectorStillParsesBlock(t *testing.T) {
	sheet := Parse("::before { color: red; } p { color: blue; }")
	if len(sheet.Rules) != 2 {
		t.Fatalf("got %d rules, want 2: %+v", len(sheet.Rules), sheet.Rules)
	}
	if sheet.Rules[0].Selector.Kind != SelectorUnknown {
		t.Fatalf("rule 0 selector = %+v, want Unknown", sheet.Rules[0].Selector)
	}
	if sheet.Rules[1].Selector.Kind != SelectorType {
		t.Fatalf("rule 1 selector = %+v, want Type(p)", sheet.Rules[1].Selector)
	}
}

func TestNumberTokenFractional(t *testing.T) {
	tz := NewTokenizer("1.5")
	tok, _ := tz.Next()
	if tok.Type != Number || tok.Num != 1.5 {
		t.Fatalf("got %+v, want Number(1.5)", tok)
	}
}
