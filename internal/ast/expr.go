package ast

import (
	"github.com/tauclang/tauc/internal/token"
	"github.com/tauclang/tauc/internal/types"
)

// IdExpr is an identifier used in value/l-value position.
type IdExpr struct {
	IdNode *Id
}

func (e *IdExpr) Span() token.Span        { return e.IdNode.Span() }
func (e *IdExpr) ResolvedType() types.Type { return e.IdNode.Type }
func (e *IdExpr) exprNode()               {}

// CallExpr invokes Fn with Args. Fn is itself an expression so indirect
// calls through a function-typed value are syntactically representable,
// though today only IdExpr resolving to a function symbol type-checks.
type CallExpr struct {
	Fn       Expr
	Args     []Expr
	Type     types.Type
	SpanFull token.Span
}

func (e *CallExpr) Span() token.Span         { return e.SpanFull }
func (e *CallExpr) ResolvedType() types.Type { return e.Type }
func (e *CallExpr) exprNode()                {}

// ArrayCell indexes Arr by Idx.
type ArrayCell struct {
	Arr      Expr
	Idx      Expr
	Type     types.Type
	SpanFull token.Span
}

func (e *ArrayCell) Span() token.Span         { return e.SpanFull }
func (e *ArrayCell) ResolvedType() types.Type { return e.Type }
func (e *ArrayCell) exprNode()                {}

// IntLiteral is a literal integer.
type IntLiteral struct {
	Tok   token.Token
	Value int64
	Type  types.Type
}

func (e *IntLiteral) Span() token.Span         { return e.Tok.Span }
func (e *IntLiteral) ResolvedType() types.Type { return e.Type }
func (e *IntLiteral) exprNode()                {}

// BoolLiteral is a literal true/false.
type BoolLiteral struct {
	Tok   token.Token
	Value bool
	Type  types.Type
}

func (e *BoolLiteral) Span() token.Span         { return e.Tok.Span }
func (e *BoolLiteral) ResolvedType() types.Type { return e.Type }
func (e *BoolLiteral) exprNode()                {}

// BinaryOp is a left-associative binary operation. Op.Kind is one of
// "and" "or" "<" ">" "<=" ">=" "==" "!=" "+" "-" "*" "/".
type BinaryOp struct {
	Op    token.Token
	Left  Expr
	Right Expr
	Type  types.Type
}

func (e *BinaryOp) Span() token.Span         { return e.Left.Span().Cover(e.Right.Span()) }
func (e *BinaryOp) ResolvedType() types.Type { return e.Type }
func (e *BinaryOp) exprNode()                {}

// UnaryOp is a prefix unary operation. Op.Kind is "-" or "not".
type UnaryOp struct {
	Op       token.Token
	Operand  Expr
	Type     types.Type
	SpanFull token.Span
}

func (e *UnaryOp) Span() token.Span         { return e.SpanFull }
func (e *UnaryOp) ResolvedType() types.Type { return e.Type }
func (e *UnaryOp) exprNode()                {}
