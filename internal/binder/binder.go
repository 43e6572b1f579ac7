// Package binder performs the first semantic pass: it builds the scope
// tree (GlobalScope → FuncScope → LocalScope) and resolves every IdExpr
// to its declaring Symbol. Redeclaration within one scope and unresolved
// identifiers are reported as NameError; nothing else is checked here —
// type checking is a separate, later pass.
package binder

import (
	"github.com/tauclang/tauc/internal/ast"
	"github.com/tauclang/tauc/internal/diag"
	"github.com/tauclang/tauc/internal/symtab"
)

type binder struct {
	err *diag.Error
}

// Bind walks prog, installing a GlobalScope/FuncScope/LocalScope tree and
// resolving identifiers. Returns the first NameError encountered, if any.
func Bind(prog *ast.Program) *diag.Error {
	b := &binder{}
	global := symtab.NewGlobalScope(prog.Span())
	for _, fn := range prog.Funcs {
		b.funcDecl(fn, global)
		if b.err != nil {
			return b.err
		}
	}
	return nil
}

func (b *binder) define(scope symtab.Scope, id *ast.Id) *symtab.Symbol {
	sym := &symtab.Symbol{Name: id.Name(), Scope: scope}
	if err := scope.Define(sym); err != nil {
		b.err = diag.New(diag.NameError, id.Span(), "%s", err.Error())
		return nil
	}
	id.Symbol = sym
	return sym
}

func (b *binder) funcDecl(fn *ast.FuncDecl, global *symtab.GlobalScope) {
	sym := b.define(global, fn.Name)
	if b.err != nil {
		return
	}
	fs := symtab.NewFuncScope(global, sym, fn.Span())
	fn.FuncScope = fs

	for _, param := range fn.Params {
		b.define(fs, param.Name)
		if b.err != nil {
			return
		}
		b.typeAST(param.TypeA, fs)
		if b.err != nil {
			return
		}
	}
	b.typeAST(fn.RetTypeA, fs)
	if b.err != nil {
		return
	}
	b.compoundStmt(fn.Body, fs)
}

func (b *binder) compoundStmt(cs *ast.CompoundStmt, parent symtab.Scope) {
	local := symtab.NewLocalScope(parent, cs.Span())
	cs.LocalScope = local

	for _, decl := range cs.Decls {
		b.define(local, decl.Name)
		if b.err != nil {
			return
		}
		b.typeAST(decl.TypeA, local)
		if b.err != nil {
			return
		}
	}
	for _, s := range cs.Stmts {
		b.stmt(s, local)
		if b.err != nil {
			return
		}
	}
}

func (b *binder) stmt(s ast.Stmt, scope symtab.Scope) {
	switch s := s.(type) {
	case *ast.CompoundStmt:
		b.compoundStmt(s, scope)
	case *ast.AssignStmt:
		b.expr(s.Lhs, scope)
		if b.err != nil {
			return
		}
		b.expr(s.Rhs, scope)
	case *ast.IfStmt:
		b.expr(s.Cond, scope)
		if b.err != nil {
			return
		}
		b.compoundStmt(s.Then, scope)
		if b.err != nil {
			return
		}
		if s.Else != nil {
			b.compoundStmt(s.Else, scope)
		}
	case *ast.WhileStmt:
		b.expr(s.Cond, scope)
		if b.err != nil {
			return
		}
		b.compoundStmt(s.Body, scope)
	case *ast.ReturnStmt:
		if s.Expr != nil {
			b.expr(s.Expr, scope)
		}
	case *ast.CallStmt:
		b.expr(s.Call, scope)
	case *ast.PrintStmt:
		b.expr(s.Expr, scope)
	default:
		b.err = diag.New(diag.InternalError, s.Span(), "binder: unhandled statement %T", s)
	}
}

func (b *binder) expr(e ast.Expr, scope symtab.Scope) {
	switch e := e.(type) {
	case *ast.IdExpr:
		sym, ok := scope.Lookup(e.IdNode.Name())
		if !ok {
			b.err = diag.New(diag.NameError, e.Span(), "undefined name %q", e.IdNode.Name())
			return
		}
		e.IdNode.Symbol = sym
	case *ast.CallExpr:
		b.expr(e.Fn, scope)
		if b.err != nil {
			return
		}
		for _, arg := range e.Args {
			b.expr(arg, scope)
			if b.err != nil {
				return
			}
		}
	case *ast.ArrayCell:
		b.expr(e.Arr, scope)
		if b.err != nil {
			return
		}
		b.expr(e.Idx, scope)
	case *ast.IntLiteral, *ast.BoolLiteral:
		// leaves: nothing to resolve
	case *ast.BinaryOp:
		b.expr(e.Left, scope)
		if b.err != nil {
			return
		}
		b.expr(e.Right, scope)
	case *ast.UnaryOp:
		b.expr(e.Operand, scope)
	default:
		b.err = diag.New(diag.InternalError, e.Span(), "binder: unhandled expression %T", e)
	}
}

func (b *binder) typeAST(t ast.TypeAST, scope symtab.Scope) {
	switch t := t.(type) {
	case *ast.IntTypeAST, *ast.BoolTypeAST, *ast.VoidTypeAST:
		// leaves: no symbols to resolve
	case *ast.ArrayTypeAST:
		if t.Size != nil {
			b.expr(t.Size, scope)
			if b.err != nil {
				return
			}
		}
		b.typeAST(t.Element, scope)
	default:
		b.err = diag.New(diag.InternalError, t.Span(), "binder: unhandled type %T", t)
	}
}
