// Package lexer scans Tau source text into a token stream.
package lexer

import (
	"fmt"
	"unicode"

	"github.com/tauclang/tauc/internal/token"
)

// Lexer turns source text into tokens one at a time via NextToken.
type Lexer struct {
	source string

	start   int
	current int

	line   int
	column int

	startLine int
	startCol  int
}

// New creates a Lexer over source. filename is accepted for symmetry with
// other compiler entry points but carries no position information — Coord
// is file-relative, per the token contract.
func New(source, filename string) *Lexer {
	_ = filename
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// NextToken returns the next token, skipping whitespace and line comments.
// Returns an error carrying a LexError-shaped span when an invalid
// character is encountered; the returned token in that case has an empty
// value and should be discarded.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipTrivia()

	l.startLine, l.startCol = l.line, l.column
	l.start = l.current

	if l.atEnd() {
		return l.finish(token.EOF, ""), nil
	}

	ch := l.peek()

	if isIdentStart(ch) {
		return l.scanIdentifier(), nil
	}
	if isDigit(ch) {
		return l.scanInt(), nil
	}

	switch ch {
	case '(', ')', '{', '}', '[', ']', ',', ':', '+', '-', '*', '/':
		l.advance()
		return l.finish(token.Kind(string(ch)), string(ch)), nil
	case '!':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return l.finish("!=", "!="), nil
		}
		return token.Token{}, l.errorf("unexpected character %q", ch)
	case '<':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return l.finish("<=", "<="), nil
		}
		return l.finish("<", "<"), nil
	case '>':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return l.finish(">=", ">="), nil
		}
		return l.finish(">", ">"), nil
	case '=':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return l.finish("==", "=="), nil
		}
		return l.finish("=", "="), nil
	default:
		l.advance()
		return token.Token{}, l.errorf("unexpected character %q", ch)
	}
}

func (l *Lexer) scanIdentifier() token.Token {
	for !l.atEnd() && isIdentPart(l.peek()) {
		l.advance()
	}
	text := l.source[l.start:l.current]
	if kind, ok := token.Keywords[text]; ok {
		return l.finish(kind, text)
	}
	return l.finish(token.ID, text)
}

func (l *Lexer) scanInt() token.Token {
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	return l.finish(token.INT, l.source[l.start:l.current])
}

func (l *Lexer) skipTrivia() {
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.advance()
		case ch == '\n':
			l.advance()
			l.line++
			l.column = 1
		case ch == '/' && l.peekAt(1) == '/':
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) finish(kind token.Kind, value string) token.Token {
	return token.Token{
		Kind:  kind,
		Value: value,
		Span: token.Span{
			Start: token.Coord{Line: l.startLine, Column: l.startCol},
			End:   token.Coord{Line: l.line, Column: l.column},
		},
	}
}

func (l *Lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%d:%d: %s", l.startLine, l.startCol, fmt.Sprintf(format, args...))
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(offset int) rune {
	idx := l.current + offset
	if idx >= len(l.source) {
		return 0
	}
	return rune(l.source[idx])
}

func (l *Lexer) advance() rune {
	ch := rune(l.source[l.current])
	l.current++
	l.column++
	return ch
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
