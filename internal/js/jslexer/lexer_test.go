package jslexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"toybrowser/internal/js/token"
)

func collect(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestVarDeclarationTokens(t *testing.T) {
	toks := collect(t, "var x = 1 + 2;")
	want := []token.Token{
		{Type: token.KEYWORD, Literal: "var"},
		{Type: token.IDENT, Literal: "x"},
		{Type: token.ASSIGN, Literal: "="},
		{Type: token.NUMBER, Literal: "1"},
		{Type: token.PLUS, Literal: "+"},
		{Type: token.NUMBER, Literal: "2"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.EOF, Literal: ""},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Fatalf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestStringLiteral(t *testing.T) {
	toks := collect(t, `"hello"`)
	if toks[0].Type != token.STRING || toks[0].Literal != "hello" {
		t.Fatalf("got %+v, want STRING hello", toks[0])
	}
}

func TestWhitespaceAndNewlinesSkipped(t *testing.T) {
	toks := collect(t, "var\n  x\t=\r\n5;")
	if len(toks) != 6 { // var, x, =, 5, ;, EOF
		t.Fatalf("got %d tokens, want 6: %+v", len(toks), toks)
	}
}

func TestIdentifierNotConfusedWithKeyword(t *testing.T) {
	toks := collect(t, "varx")
	if toks[0].Type != token.IDENT || toks[0].Literal != "varx" {
		t.Fatalf("got %+v, want IDENT varx", toks[0])
	}
}
