package ast

import (
	"github.com/tauclang/tauc/internal/symtab"
	"github.com/tauclang/tauc/internal/token"
)

// CompoundStmt is a `{ decls stmts }` block. Each CompoundStmt owns a
// LocalScope, filled in by the binder.
type CompoundStmt struct {
	Decls      []*VarDecl
	Stmts      []Stmt
	LocalScope *symtab.LocalScope
	SpanFull   token.Span
}

func (s *CompoundStmt) Span() token.Span { return s.SpanFull }
func (s *CompoundStmt) stmtNode()        {}

// AssignStmt assigns Rhs to Lhs. Lhs is an IdExpr or an ArrayCell; both
// type-check, but the code generator lowers only an IdExpr and rejects an
// ArrayCell target.
type AssignStmt struct {
	Lhs      Expr
	Rhs      Expr
	SpanFull token.Span
}

func (s *AssignStmt) Span() token.Span { return s.SpanFull }
func (s *AssignStmt) stmtNode()        {}

// IfStmt is `if expr nest [else nest]`.
type IfStmt struct {
	Cond     Expr
	Then     *CompoundStmt
	Else     *CompoundStmt // nil when there is no else clause
	SpanFull token.Span
}

func (s *IfStmt) Span() token.Span { return s.SpanFull }
func (s *IfStmt) stmtNode()        {}

// WhileStmt is `while expr nest`.
type WhileStmt struct {
	Cond     Expr
	Body     *CompoundStmt
	SpanFull token.Span
}

func (s *WhileStmt) Span() token.Span { return s.SpanFull }
func (s *WhileStmt) stmtNode()        {}

// ReturnStmt is `return [expr]`. Expr is nil for a void return.
type ReturnStmt struct {
	Expr     Expr // nil for void return
	SpanFull token.Span
}

func (s *ReturnStmt) Span() token.Span { return s.SpanFull }
func (s *ReturnStmt) stmtNode()        {}

// CallStmt is `call func_call` — a call used as a statement, discarding
// its result.
type CallStmt struct {
	Call     *CallExpr
	SpanFull token.Span
}

func (s *CallStmt) Span() token.Span { return s.SpanFull }
func (s *CallStmt) stmtNode()        {}

// PrintStmt is `print expr`.
type PrintStmt struct {
	Expr     Expr
	SpanFull token.Span
}

func (s *PrintStmt) Span() token.Span { return s.SpanFull }
func (s *PrintStmt) stmtNode()        {}
