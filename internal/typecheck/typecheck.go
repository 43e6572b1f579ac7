// Package typecheck performs the second semantic pass: it synthesizes a
// types.Type for every expression, type annotation, and declaration, and
// checks the few places two types must agree (assignment, return, call
// arity). It runs after binder has resolved every identifier to a symbol.
package typecheck

import (
	"github.com/tauclang/tauc/internal/ast"
	"github.com/tauclang/tauc/internal/diag"
	"github.com/tauclang/tauc/internal/types"
)

type checker struct {
	err *diag.Error
}

// Check walks prog, assigning Type fields throughout and reporting the
// first TypeError encountered, if any.
func Check(prog *ast.Program) *diag.Error {
	c := &checker{}
	for _, fn := range prog.Funcs {
		c.funcDecl(fn)
		if c.err != nil {
			return c.err
		}
	}
	return nil
}

func (c *checker) funcDecl(fn *ast.FuncDecl) {
	c.typeAST(fn.RetTypeA)
	if c.err != nil {
		return
	}
	fn.RetType = fn.RetTypeA.ResolvedType()

	paramTypes := make([]types.Type, len(fn.Params))
	for i, param := range fn.Params {
		c.typeAST(param.TypeA)
		if c.err != nil {
			return
		}
		param.Type = param.TypeA.ResolvedType()
		param.Name.Type = param.Type
		param.Name.Symbol.Type = param.Type
		paramTypes[i] = param.Type
	}

	funcType := types.NewFunc(paramTypes, fn.RetType)
	fn.Name.Symbol.Type = funcType
	fn.Name.Type = funcType

	c.compoundStmt(fn.Body, fn.RetType)
}

func (c *checker) compoundStmt(cs *ast.CompoundStmt, retType types.Type) {
	for _, decl := range cs.Decls {
		c.varDecl(decl)
		if c.err != nil {
			return
		}
	}
	for _, s := range cs.Stmts {
		c.stmt(s, retType)
		if c.err != nil {
			return
		}
	}
}

func (c *checker) varDecl(decl *ast.VarDecl) {
	c.typeAST(decl.TypeA)
	if c.err != nil {
		return
	}
	decl.Type = decl.TypeA.ResolvedType()
	decl.Name.Type = decl.Type
	decl.Name.Symbol.Type = decl.Type
}

func (c *checker) stmt(s ast.Stmt, retType types.Type) {
	switch s := s.(type) {
	case *ast.CompoundStmt:
		c.compoundStmt(s, retType)
	case *ast.AssignStmt:
		c.expr(s.Lhs)
		if c.err != nil {
			return
		}
		c.expr(s.Rhs)
		if c.err != nil {
			return
		}
		if !s.Lhs.ResolvedType().Equals(s.Rhs.ResolvedType()) {
			c.err = diag.New(diag.TypeError, s.Lhs.Span().Cover(s.Rhs.Span()), "mismatched types in assignment")
		}
	case *ast.IfStmt:
		c.expr(s.Cond)
		if c.err != nil {
			return
		}
		if !types.IsBool(s.Cond.ResolvedType()) {
			c.err = diag.New(diag.TypeError, s.Cond.Span(), "if condition must be bool")
			return
		}
		c.compoundStmt(s.Then, retType)
		if c.err != nil {
			return
		}
		if s.Else != nil {
			c.compoundStmt(s.Else, retType)
		}
	case *ast.WhileStmt:
		c.expr(s.Cond)
		if c.err != nil {
			return
		}
		if !types.IsBool(s.Cond.ResolvedType()) {
			c.err = diag.New(diag.TypeError, s.Cond.Span(), "while condition must be bool")
			return
		}
		c.compoundStmt(s.Body, retType)
	case *ast.ReturnStmt:
		if s.Expr != nil {
			c.expr(s.Expr)
			if c.err != nil {
				return
			}
			if !s.Expr.ResolvedType().Equals(retType) {
				c.err = diag.New(diag.TypeError, s.Span(), "wrong return type")
			}
			return
		}
		if !types.IsVoid(retType) {
			c.err = diag.New(diag.TypeError, s.Span(), "missing return value")
		}
	case *ast.CallStmt:
		c.callExpr(s.Call)
	case *ast.PrintStmt:
		c.expr(s.Expr)
		if c.err != nil {
			return
		}
		if !types.IsInt(s.Expr.ResolvedType()) {
			c.err = diag.New(diag.TypeError, s.Expr.Span(), "print operand must be int")
		}
	default:
		c.err = diag.New(diag.InternalError, s.Span(), "typecheck: unhandled statement %T", s)
	}
}

func (c *checker) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.IdExpr:
		e.IdNode.Type = e.IdNode.Symbol.Type
	case *ast.CallExpr:
		c.callExpr(e)
	case *ast.ArrayCell:
		c.expr(e.Arr)
		if c.err != nil {
			return
		}
		c.expr(e.Idx)
		if c.err != nil {
			return
		}
		arr, ok := types.AsArray(e.Arr.ResolvedType())
		if !ok {
			c.err = diag.New(diag.TypeError, e.Arr.Span(), "indexed value is not an array")
			return
		}
		e.Type = arr.Element
	case *ast.IntLiteral:
		e.Type = types.Int
	case *ast.BoolLiteral:
		e.Type = types.Bool
	case *ast.BinaryOp:
		c.expr(e.Left)
		if c.err != nil {
			return
		}
		c.expr(e.Right)
		if c.err != nil {
			return
		}
		switch e.Op.Value {
		case "+", "-", "*", "/":
			e.Type = types.Int
		case "or", "and", ">", "<", ">=", "<=", "==", "!=":
			e.Type = types.Bool
		default:
			c.err = diag.New(diag.InternalError, e.Span(), "typecheck: unhandled binary operator %q", e.Op.Value)
		}
	case *ast.UnaryOp:
		c.expr(e.Operand)
		if c.err != nil {
			return
		}
		switch e.Op.Value {
		case "-":
			e.Type = types.Int
		case "not":
			e.Type = types.Bool
		default:
			c.err = diag.New(diag.InternalError, e.Span(), "typecheck: unhandled unary operator %q", e.Op.Value)
		}
	default:
		c.err = diag.New(diag.InternalError, e.Span(), "typecheck: unhandled expression %T", e)
	}
}

func (c *checker) callExpr(call *ast.CallExpr) {
	c.expr(call.Fn)
	if c.err != nil {
		return
	}
	fnType, ok := types.AsFunc(call.Fn.ResolvedType())
	if !ok {
		c.err = diag.New(diag.TypeError, call.Fn.Span(), "called value is not a function")
		return
	}
	if len(call.Args) != len(fnType.Params) {
		c.err = diag.New(diag.TypeError, call.Span(), "wrong number of arguments: want %d, got %d", len(fnType.Params), len(call.Args))
		return
	}
	for i, arg := range call.Args {
		c.expr(arg)
		if c.err != nil {
			return
		}
		if !arg.ResolvedType().Equals(fnType.Params[i]) {
			c.err = diag.New(diag.TypeError, arg.Span(), "argument %d type mismatch", i+1)
			return
		}
	}
	call.Type = fnType.Return
}

func (c *checker) typeAST(t ast.TypeAST) {
	switch t := t.(type) {
	case *ast.IntTypeAST:
		t.Resolved = types.Int
	case *ast.BoolTypeAST:
		t.Resolved = types.Bool
	case *ast.VoidTypeAST:
		t.Resolved = types.Void
	case *ast.ArrayTypeAST:
		if t.Size != nil {
			c.expr(t.Size)
			if c.err != nil {
				return
			}
		}
		c.typeAST(t.Element)
		if c.err != nil {
			return
		}
		t.Resolved = types.NewArray(t.Element.ResolvedType())
	default:
		c.err = diag.New(diag.InternalError, t.Span(), "typecheck: unhandled type %T", t)
	}
}
