// Package diag defines the compiler's closed error taxonomy: every
// user-facing failure is a structured {Kind, Message, Span} record, never
// a bare error string, so span-aware tooling (and tests) can inspect the
// failure without parsing text.
package diag

import (
	"fmt"

	"github.com/tauclang/tauc/internal/token"
)

// Kind is one of the five error kinds raised by the pipeline.
type Kind string

const (
	LexError      Kind = "LexError"
	ParseError    Kind = "ParseError"
	NameError     Kind = "NameError"
	TypeError     Kind = "TypeError"
	InternalError Kind = "InternalError"
)

// Error is a single diagnostic. It implements the error interface so it
// composes with ordinary Go error handling, but callers that need Kind or
// Span should type-assert rather than parse Error().
type Error struct {
	Kind    Kind
	Message string
	Span    token.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Span, e.Kind, e.Message)
}

func New(kind Kind, span token.Span, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}
