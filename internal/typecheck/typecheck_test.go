package typecheck

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tauclang/tauc/internal/ast"
	"github.com/tauclang/tauc/internal/binder"
	"github.com/tauclang/tauc/internal/diag"
	"github.com/tauclang/tauc/internal/parser"
	"github.com/tauclang/tauc/internal/types"
)

func bound(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := parser.New(src, "test.tau")
	require.Nil(t, err)
	prog, perr := p.Parse()
	require.Nil(t, perr)
	berr := binder.Bind(prog)
	require.Nil(t, berr)
	return prog
}

func TestCheck_ArithmeticYieldsInt(t *testing.T) {
	prog := bound(t, `func main(): void { print 1 + 2 * 3 }`)
	err := Check(prog)
	require.Nil(t, err)

	print := prog.Funcs[0].Body.Stmts[0].(*ast.PrintStmt)
	require.True(t, types.IsInt(print.Expr.ResolvedType()))
}

func TestCheck_ComparisonYieldsBool(t *testing.T) {
	prog := bound(t, `func main(): void { if 1 < 2 { print 1 } }`)
	err := Check(prog)
	require.Nil(t, err)

	ifStmt := prog.Funcs[0].Body.Stmts[0].(*ast.IfStmt)
	require.True(t, types.IsBool(ifStmt.Cond.ResolvedType()))
}

func TestCheck_RecursiveCallHasFunctionReturnType(t *testing.T) {
	src := `func fact(n: int): int { if n <= 1 { return 1 } return n * fact(n - 1) } func main(): void { print fact(5) }`
	prog := bound(t, src)
	err := Check(prog)
	require.Nil(t, err)

	fact := prog.Funcs[0]
	ret := fact.Body.Stmts[1].(*ast.ReturnStmt)
	mul := ret.Expr.(*ast.BinaryOp)
	call := mul.Right.(*ast.CallExpr)
	require.True(t, types.IsInt(call.ResolvedType()))
}

func TestCheck_AssignmentTypeMismatchIsTypeError(t *testing.T) {
	prog := bound(t, `func main(): void { var x: int x = true }`)
	err := Check(prog)
	require.NotNil(t, err)
	require.Equal(t, diag.TypeError, err.Kind)
}

func TestCheck_WrongReturnTypeIsTypeError(t *testing.T) {
	prog := bound(t, `func f(): int { return true } func main(): void { print f() }`)
	err := Check(prog)
	require.NotNil(t, err)
	require.Equal(t, diag.TypeError, err.Kind)
}

func TestCheck_NonBoolIfConditionIsTypeError(t *testing.T) {
	prog := bound(t, `func main(): void { if 1 { print 1 } }`)
	err := Check(prog)
	require.NotNil(t, err)
	require.Equal(t, diag.TypeError, err.Kind)
}

func TestCheck_ArgumentCountMismatchIsTypeError(t *testing.T) {
	src := `func f(n: int): void { print n } func main(): void { call f() }`
	prog := bound(t, src)
	err := Check(prog)
	require.NotNil(t, err)
	require.Equal(t, diag.TypeError, err.Kind)
}

func TestCheck_ArrayCellElementType(t *testing.T) {
	prog := bound(t, `func main(): void { var xs: [10] int xs[0] = 1 print xs[0] }`)
	err := Check(prog)
	require.Nil(t, err)

	print := prog.Funcs[0].Body.Stmts[len(prog.Funcs[0].Body.Stmts)-1].(*ast.PrintStmt)
	cell := print.Expr.(*ast.ArrayCell)
	require.True(t, types.IsInt(cell.ResolvedType()))
}

func TestCheck_PrintOfBoolIsTypeError(t *testing.T) {
	prog := bound(t, `func main(): void { print true }`)
	err := Check(prog)
	require.NotNil(t, err)
	require.Equal(t, diag.TypeError, err.Kind)
}
