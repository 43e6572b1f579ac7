package lexer

import (
	"testing"

	"github.com/tauclang/tauc/internal/token"
)

func TestLexer_Keywords(t *testing.T) {
	source := "func var if else while return call print int bool void true false and or not"
	l := New(source, "test.tau")

	expected := []token.Kind{
		"func", "var", "if", "else", "while", "return", "call", "print",
		"int", "bool", "void", "true", "false", "and", "or", "not",
		token.EOF,
	}

	for i, want := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Kind != want {
			t.Errorf("token %d: want kind %v, got %v", i, want, tok.Kind)
		}
	}
}

func TestLexer_Identifiers(t *testing.T) {
	source := "foo bar _temp myVar123"
	l := New(source, "test.tau")

	for _, name := range []string{"foo", "bar", "_temp", "myVar123"} {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != token.ID {
			t.Errorf("want ID, got %v", tok.Kind)
		}
		if tok.Value != name {
			t.Errorf("want %q, got %q", name, tok.Value)
		}
	}
}

func TestLexer_Ints(t *testing.T) {
	l := New("0 42 007", "test.tau")
	for _, want := range []string{"0", "42", "007"} {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != token.INT || tok.Value != want {
			t.Errorf("want INT %q, got %v %q", want, tok.Kind, tok.Value)
		}
	}
}

func TestLexer_MultiCharOperators(t *testing.T) {
	l := New("!= <= >= == < > = + - * /", "test.tau")
	want := []string{"!=", "<=", ">=", "==", "<", ">", "=", "+", "-", "*", "/"}
	for i, w := range want {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if string(tok.Kind) != w {
			t.Errorf("token %d: want %q, got %q", i, w, tok.Kind)
		}
	}
}

func TestLexer_SkipsCommentsAndWhitespace(t *testing.T) {
	source := "  // a comment\n\tvar x // trailing\n"
	l := New(source, "test.tau")

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != "var" {
		t.Fatalf("want var, got %v", tok.Kind)
	}
	tok, _ = l.NextToken()
	if tok.Kind != token.ID || tok.Value != "x" {
		t.Fatalf("want ID x, got %v %q", tok.Kind, tok.Value)
	}
	tok, _ = l.NextToken()
	if tok.Kind != token.EOF {
		t.Fatalf("want EOF, got %v", tok.Kind)
	}
}

func TestLexer_InvalidCharacter(t *testing.T) {
	l := New("@", "test.tau")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("want error for invalid character, got nil")
	}
}

func TestLexer_Spans(t *testing.T) {
	l := New("var", "test.tau")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := token.Span{Start: token.Coord{Line: 1, Column: 1}, End: token.Coord{Line: 1, Column: 4}}
	if tok.Span != want {
		t.Errorf("want span %v, got %v", want, tok.Span)
	}
}
