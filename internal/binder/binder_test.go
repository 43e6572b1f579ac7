package binder

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tauclang/tauc/internal/ast"
	"github.com/tauclang/tauc/internal/diag"
	"github.com/tauclang/tauc/internal/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := parser.New(src, "test.tau")
	require.Nil(t, err)
	prog, perr := p.Parse()
	require.Nil(t, perr)
	return prog
}

func TestBind_ResolvesFunctionAndLocals(t *testing.T) {
	prog := parse(t, `func main(): void { var x: int x = 10 print x }`)
	err := Bind(prog)
	require.Nil(t, err)

	fn := prog.Funcs[0]
	require.NotNil(t, fn.Name.Symbol)
	require.NotNil(t, fn.Body.LocalScope)

	assign := fn.Body.Stmts[0].(*ast.AssignStmt)
	lhs := assign.Lhs.(*ast.IdExpr)
	require.NotNil(t, lhs.IdNode.Symbol)
	require.Equal(t, "x", lhs.IdNode.Symbol.Name)
}

func TestBind_RecursiveCallResolvesToOwnFunction(t *testing.T) {
	src := `func fact(n: int): int { if n <= 1 { return 1 } return n * fact(n - 1) } func main(): void { print fact(5) }`
	prog := parse(t, src)
	err := Bind(prog)
	require.Nil(t, err)

	fact := prog.Funcs[0]
	ret := fact.Body.Stmts[1].(*ast.ReturnStmt)
	mul := ret.Expr.(*ast.BinaryOp)
	call := mul.Right.(*ast.CallExpr)
	callee := call.Fn.(*ast.IdExpr)
	require.Same(t, fact.Name.Symbol, callee.IdNode.Symbol)
}

func TestBind_UndefinedNameIsNameError(t *testing.T) {
	prog := parse(t, `func main(): void { print y }`)
	err := Bind(prog)
	require.NotNil(t, err)
	require.Equal(t, diag.NameError, err.Kind)
}

func TestBind_DuplicateDeclarationInSameScopeIsNameError(t *testing.T) {
	prog := parse(t, `func main(): void { var x: int var x: int print x }`)
	err := Bind(prog)
	require.NotNil(t, err)
	require.Equal(t, diag.NameError, err.Kind)
}

func TestBind_ShadowingAcrossScopesIsAllowed(t *testing.T) {
	prog := parse(t, `func main(): void { var x: int { var x: int x = 1 } print x }`)
	err := Bind(prog)
	require.Nil(t, err)
}
