// Package offsets computes frame-relative storage locations: every
// symbol gets a slot offset from the frame pointer, and every function
// gets a total frame size. It runs after typecheck and assumes every
// symbol already carries a resolved type (sizes are uniform per slot,
// so the type itself is not consulted here).
package offsets

import "github.com/tauclang/tauc/internal/ast"

// Assign walks prog, writing Symbol.Offset on every parameter and local,
// and Size on every FuncDecl.
func Assign(prog *ast.Program) {
	for _, fn := range prog.Funcs {
		funcDecl(fn)
	}
}

func funcDecl(fn *ast.FuncDecl) {
	fn.Name.Symbol.Offset = 0

	ctx := -2
	for _, param := range fn.Params {
		param.Name.Symbol.Offset = ctx
		ctx--
	}

	ctx = 3
	fn.Size = compoundStmt(fn.Body, ctx)
}

// compoundStmt assigns offsets to this block's own locals starting at
// ctx, then lays out every nested statement's locals from the running
// frontier, and returns the frontier after the last slot it allocated.
// Sibling blocks are offset past one another — each starts where the
// previous one stopped — so the slots they use are not shared; the
// function's frame size is the final high-water mark, which is why it
// can exceed the depth of any single execution path.
func compoundStmt(cs *ast.CompoundStmt, ctx int) int {
	for _, decl := range cs.Decls {
		decl.Name.Symbol.Offset = ctx
		ctx++
	}
	for _, s := range cs.Stmts {
		ctx = stmt(s, ctx)
	}
	return ctx
}

func stmt(s ast.Stmt, ctx int) int {
	switch s := s.(type) {
	case *ast.CompoundStmt:
		return compoundStmt(s, ctx)
	case *ast.AssignStmt:
		return ctx
	case *ast.IfStmt:
		ctx = compoundStmt(s.Then, ctx)
		if s.Else != nil {
			ctx = compoundStmt(s.Else, ctx)
		}
		return ctx
	case *ast.WhileStmt:
		return compoundStmt(s.Body, ctx)
	case *ast.ReturnStmt:
		return ctx
	case *ast.CallStmt:
		return ctx
	case *ast.PrintStmt:
		return ctx
	default:
		panic("offsets: unhandled statement")
	}
}
