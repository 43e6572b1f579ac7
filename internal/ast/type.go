package ast

import (
	"github.com/tauclang/tauc/internal/token"
	"github.com/tauclang/tauc/internal/types"
)

// IntTypeAST is the `int` type annotation.
type IntTypeAST struct {
	Tok      token.Token
	Resolved types.Type
}

func (t *IntTypeAST) Span() token.Span         { return t.Tok.Span }
func (t *IntTypeAST) ResolvedType() types.Type { return t.Resolved }
func (t *IntTypeAST) typeNode()                {}

// BoolTypeAST is the `bool` type annotation.
type BoolTypeAST struct {
	Tok      token.Token
	Resolved types.Type
}

func (t *BoolTypeAST) Span() token.Span         { return t.Tok.Span }
func (t *BoolTypeAST) ResolvedType() types.Type { return t.Resolved }
func (t *BoolTypeAST) typeNode()                {}

// VoidTypeAST is the `void` type annotation.
type VoidTypeAST struct {
	Tok      token.Token
	Resolved types.Type
}

func (t *VoidTypeAST) Span() token.Span         { return t.Tok.Span }
func (t *VoidTypeAST) ResolvedType() types.Type { return t.Resolved }
func (t *VoidTypeAST) typeNode()                {}

// ArrayTypeAST is `"[" [expr] "]" type`. Size is nil when no size
// expression is present in source.
type ArrayTypeAST struct {
	Size     Expr // nil if omitted
	Element  TypeAST
	Resolved types.Type
	SpanFull token.Span
}

func (t *ArrayTypeAST) Span() token.Span         { return t.SpanFull }
func (t *ArrayTypeAST) ResolvedType() types.Type { return t.Resolved }
func (t *ArrayTypeAST) typeNode()                {}
