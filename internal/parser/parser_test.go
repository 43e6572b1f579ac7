package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tauclang/tauc/internal/ast"
	"github.com/tauclang/tauc/internal/diag"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := New(src, "test.tau")
	require.Nil(t, err)
	prog, perr := p.Parse()
	require.Nil(t, perr, "unexpected parse error: %v", perr)
	return prog
}

func TestParse_ArithmeticPrint(t *testing.T) {
	prog := parse(t, `func main(): void { print 1 + 2 * 3 }`)
	require.Len(t, prog.Funcs, 1)
	fn := prog.Funcs[0]
	require.Equal(t, "main", fn.Name.Name())
	require.Len(t, fn.Body.Stmts, 1)

	print, ok := fn.Body.Stmts[0].(*ast.PrintStmt)
	require.True(t, ok)

	add, ok := print.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, "+", string(add.Op.Kind))

	mul, ok := add.Right.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, "*", string(mul.Op.Kind))
}

func TestParse_LocalsAndAssignment(t *testing.T) {
	prog := parse(t, `func main(): void { var x: int x = 10 x = x - 4 print x }`)
	fn := prog.Funcs[0]
	require.Len(t, fn.Body.Decls, 1)
	require.Equal(t, "x", fn.Body.Decls[0].Name.Name())
	require.Len(t, fn.Body.Stmts, 3)
}

func TestParse_Recursion(t *testing.T) {
	src := `func fact(n: int): int { if n <= 1 { return 1 } return n * fact(n - 1) } func main(): void { print fact(5) }`
	prog := parse(t, src)
	require.Len(t, prog.Funcs, 2)

	fact := prog.Funcs[0]
	require.Equal(t, "fact", fact.Name.Name())
	require.Len(t, fact.Params, 1)
	ifStmt, ok := fact.Body.Stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Nil(t, ifStmt.Else)
}

func TestParse_ShortCircuitAndElse(t *testing.T) {
	src := `func side(): int { print 99 return 1 } func main(): void { if false and side() > 0 { print 1 } else { print 2 } }`
	prog := parse(t, src)
	main := prog.Funcs[1]
	ifStmt := main.Body.Stmts[0].(*ast.IfStmt)
	require.NotNil(t, ifStmt.Else)

	cond, ok := ifStmt.Cond.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, "and", string(cond.Op.Kind))
}

func TestParse_WhileWithOrPredicate(t *testing.T) {
	src := `func main(): void { var i: int i = 0 while i < 3 or false { print i i = i + 1 } }`
	prog := parse(t, src)
	fn := prog.Funcs[0]
	var whileStmt *ast.WhileStmt
	for _, s := range fn.Body.Stmts {
		if w, ok := s.(*ast.WhileStmt); ok {
			whileStmt = w
		}
	}
	require.NotNil(t, whileStmt)
	cond := whileStmt.Cond.(*ast.BinaryOp)
	require.Equal(t, "or", string(cond.Op.Kind))
}

func TestParse_UnaryChainIsRightNested(t *testing.T) {
	prog := parse(t, `func main(): void { print - - 1 }`)
	print := prog.Funcs[0].Body.Stmts[0].(*ast.PrintStmt)
	outer, ok := print.Expr.(*ast.UnaryOp)
	require.True(t, ok)
	inner, ok := outer.Operand.(*ast.UnaryOp)
	require.True(t, ok)
	_, ok = inner.Operand.(*ast.IntLiteral)
	require.True(t, ok)
}

func TestParse_ArrayTypeAndCell(t *testing.T) {
	prog := parse(t, `func main(): void { var xs: [10] int xs[0] = 1 print xs[0] }`)
	fn := prog.Funcs[0]
	arrType, ok := fn.Body.Decls[0].TypeA.(*ast.ArrayTypeAST)
	require.True(t, ok)
	require.NotNil(t, arrType.Size)

	assign := fn.Body.Stmts[0].(*ast.AssignStmt)
	_, ok = assign.Lhs.(*ast.ArrayCell)
	require.True(t, ok)
}

func TestParse_UnexpectedTokenIsParseError(t *testing.T) {
	p, err := New(`func main(): void { print }`, "test.tau")
	require.Nil(t, err)
	_, perr := p.Parse()
	require.NotNil(t, perr)
	require.Equal(t, diag.ParseError, perr.Kind)
}

func TestParse_SpanContainment(t *testing.T) {
	prog := parse(t, `func main(): void { print 1 + 2 }`)
	fn := prog.Funcs[0]
	print := fn.Body.Stmts[0].(*ast.PrintStmt)
	add := print.Expr.(*ast.BinaryOp)

	require.True(t, print.Span().Contains(add.Span()))
}
