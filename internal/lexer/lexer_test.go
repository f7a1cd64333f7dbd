package lexer_test

import (
	"testing"

	"github.com/dieterlang/dieter/internal/lexer"
	"github.com/dieterlang/dieter/internal/token"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	l := lexer.New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := tokenize(t, "module foo_bar end")
	want := []struct {
		typ    token.Type
		lexeme string
	}{
		{token.IDENT, "module"},
		{token.IDENT, "foo_bar"},
		{token.IDENT, "end"},
		{token.EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Lexeme != w.lexeme {
			t.Fatalf("token %d: got %s %q, want %s %q", i, toks[i].Type, toks[i].Lexeme, w.typ, w.lexeme)
		}
	}
}

func TestIntLiteral(t *testing.T) {
	toks := tokenize(t, "42")
	if toks[0].Type != token.INT || toks[0].Lexeme != "42" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[0].Literal != 42 {
		t.Fatalf("literal value = %v, want 42", toks[0].Literal)
	}
}

func TestStringLiteralHasNoEscapes(t *testing.T) {
	toks := tokenize(t, `"hello world"`)
	if toks[0].Type != token.STRING {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[0].Literal != "hello world" {
		t.Fatalf("literal value = %q, want %q", toks[0].Literal, "hello world")
	}
}

func TestUnterminatedStringStopsAtEOF(t *testing.T) {
	toks := tokenize(t, `"unterminated`)
	if toks[0].Type != token.STRING || toks[0].Literal != "unterminated" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Type != token.EOF {
		t.Fatalf("expected EOF after unterminated string, got %+v", toks[1])
	}
}

func TestWalrusOperator(t *testing.T) {
	toks := tokenize(t, "x := 3")
	if toks[1].Type != token.OP || toks[1].Lexeme != ":=" {
		t.Fatalf("got %+v, want single := operator token", toks[1])
	}
}

func TestSingleCharOperators(t *testing.T) {
	toks := tokenize(t, "( ) [ ] : ,")
	want := []string{"(", ")", "[", "]", ":", ","}
	for i, w := range want {
		if toks[i].Type != token.OP || toks[i].Lexeme != w {
			t.Fatalf("token %d: got %+v, want OP %q", i, toks[i], w)
		}
	}
}

func TestTypeVariableSigil(t *testing.T) {
	toks := tokenize(t, "♥T")
	if toks[0].Type != token.OP || toks[0].Lexeme != string(lexer.TypeVarSigil) {
		t.Fatalf("sigil token = %+v, want OP %q", toks[0], string(lexer.TypeVarSigil))
	}
	if toks[1].Type != token.IDENT || toks[1].Lexeme != "T" {
		t.Fatalf("variable name token = %+v, want IDENT %q", toks[1], "T")
	}
}

func TestBlockCommentIsSkipped(t *testing.T) {
	toks := tokenize(t, "a /* this is ignored\nacross lines */ b")
	if toks[0].Lexeme != "a" || toks[1].Lexeme != "b" || toks[2].Type != token.EOF {
		t.Fatalf("got %v", toks)
	}
}

func TestUnterminatedBlockCommentStopsAtEOF(t *testing.T) {
	toks := tokenize(t, "a /* never closed")
	if toks[0].Lexeme != "a" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Type != token.EOF {
		t.Fatalf("expected EOF after unterminated comment, got %+v", toks[1])
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	toks := tokenize(t, "a\nb")
	if toks[0].Line != 1 {
		t.Fatalf("first token line = %d, want 1", toks[0].Line)
	}
	if toks[1].Line != 2 {
		t.Fatalf("second token line = %d, want 2", toks[1].Line)
	}
	if toks[0].Column != 1 {
		t.Fatalf("first token column = %d, want 1", toks[0].Column)
	}
	if toks[1].Column != 1 {
		t.Fatalf("second token column = %d, want 1 (column resets after a newline)", toks[1].Column)
	}
}
