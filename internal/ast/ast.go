// Package ast defines the Tau abstract syntax tree.
//
// Nodes are created once by the parser and never rebuilt; later passes
// only populate the mutable decoration fields already present on each
// struct (Symbol, Type, LocalScope, FuncScope, Size). Each such field has
// exactly one writer pass — the binder writes Symbol/LocalScope/FuncScope,
// the type checker writes Type, the offsets pass writes Offset/Size.
package ast

import (
	"github.com/tauclang/tauc/internal/symtab"
	"github.com/tauclang/tauc/internal/token"
	"github.com/tauclang/tauc/internal/types"
)

// Node is anything with a source span.
type Node interface {
	Span() token.Span
}

// Expr is an expression node. Every expression gets a semantic type
// assigned by the type checker, readable via ResolvedType once that
// pass has run.
type Expr interface {
	Node
	ResolvedType() types.Type
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// TypeAST is a syntactic type annotation, pre-typecheck. ResolvedType
// is populated by the type checker.
type TypeAST interface {
	Node
	ResolvedType() types.Type
	typeNode()
}

// Program is the root node: an ordered list of function declarations.
type Program struct {
	Funcs    []*FuncDecl
	SpanFull token.Span
}

func (p *Program) Span() token.Span { return p.SpanFull }

// Id wraps an identifier token. Symbol is filled in by the binder (except
// at a FuncDecl's own declaration site, where the symbol is installed
// directly without a lookup). Type mirrors the resolved symbol's type
// once the type checker has run.
type Id struct {
	Tok    token.Token
	Symbol *symtab.Symbol
	Type   types.Type
}

func (i *Id) Span() token.Span { return i.Tok.Span }

// Name is the identifier text.
func (i *Id) Name() string { return i.Tok.Value }

// FuncDecl is a top-level function declaration.
type FuncDecl struct {
	Name      *Id
	Params    []*ParamDecl
	RetTypeA  TypeAST
	RetType   types.Type
	Body      *CompoundStmt
	FuncScope *symtab.FuncScope
	Size      int
	SpanFull  token.Span
}

func (f *FuncDecl) Span() token.Span { return f.SpanFull }

// ParamDecl is one function parameter.
type ParamDecl struct {
	Name     *Id
	TypeA    TypeAST
	Type     types.Type
	SpanFull token.Span
}

func (p *ParamDecl) Span() token.Span { return p.SpanFull }

// VarDecl is a local variable declaration inside a CompoundStmt.
type VarDecl struct {
	Name     *Id
	TypeA    TypeAST
	Type     types.Type
	SpanFull token.Span
}

func (v *VarDecl) Span() token.Span { return v.SpanFull }
