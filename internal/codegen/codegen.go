// Package codegen lowers a type-checked, offset-assigned AST into a flat
// vm.Insn listing. It runs last in the pipeline. Grounded rule-by-rule on
// the prologue/epilogue/call-sequence/control-lowering design the
// offsets and typecheck passes were themselves grounded on; see each
// function's doc comment for the specific rule it implements.
package codegen

import (
	"fmt"

	"github.com/tauclang/tauc/internal/ast"
	"github.com/tauclang/tauc/internal/diag"
	"github.com/tauclang/tauc/internal/symtab"
	"github.com/tauclang/tauc/internal/vm"
)

type generator struct {
	insns   []vm.Insn
	counter int
	err     *diag.Error
}

// Generate emits the full listing for prog: the entry trampoline
// (PushLabel("main"), Call, Halt) followed by every function body.
// Arrays are accepted through parsing and type checking but rejected
// here at the point of use, per the language's current storage model
// (every frame slot holds exactly one scalar).
func Generate(prog *ast.Program) ([]vm.Insn, *diag.Error) {
	g := &generator{}
	g.emit(vm.PushLabel("main"), vm.Call(), vm.Halt())
	for _, fn := range prog.Funcs {
		g.funcDecl(fn)
		if g.err != nil {
			return nil, g.err
		}
	}
	return g.insns, nil
}

func (g *generator) emit(insns ...vm.Insn) {
	g.insns = append(g.insns, insns...)
}

// freshLabel returns a name unique within this compilation, tagged with
// purpose for readability in dumped listings.
func (g *generator) freshLabel(purpose string) string {
	g.counter++
	return fmt.Sprintf("L%d_%s", g.counter, purpose)
}

func (g *generator) funcDecl(fn *ast.FuncDecl) {
	g.emit(vm.Label(fn.Name.Name()))
	g.prologue(fn.Size)
	g.compoundStmt(fn.Body)
	if g.err != nil {
		return
	}
	g.epilogue()
}

// prologue implements the §4.5.2 sequence: store the return address
// (already on top of stack) at the new frame's offset 0, save the
// caller's FP/SP at offsets 1/2, then move FP to the new frame and
// reserve size slots above it.
func (g *generator) prologue(size int) {
	g.emit(vm.PushSP(0), vm.Swap(), vm.Store())
	g.emit(vm.PushSP(1), vm.PushFP(0), vm.Store())
	g.emit(vm.PushSP(2), vm.PushSP(0), vm.Store())
	g.emit(vm.PushSP(0), vm.PopFP())
	g.emit(vm.PushSP(int64(size)), vm.PopSP())
}

// epilogue implements §4.5.3: restore the caller's SP/FP from the saved
// slots and jump back to the saved return address.
func (g *generator) epilogue() {
	g.emit(vm.PushFP(0), vm.Load())
	g.emit(vm.PushFP(2), vm.Load(), vm.PopSP())
	g.emit(vm.PushFP(1), vm.Load(), vm.PopFP())
	g.emit(vm.JumpIndirect())
}

func (g *generator) compoundStmt(cs *ast.CompoundStmt) {
	for _, s := range cs.Stmts {
		g.stmt(s)
		if g.err != nil {
			return
		}
	}
}

func (g *generator) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.CompoundStmt:
		g.compoundStmt(s)
	case *ast.AssignStmt:
		g.lval(s.Lhs)
		if g.err != nil {
			return
		}
		g.rval(s.Rhs)
		if g.err != nil {
			return
		}
		g.emit(vm.Store())
	case *ast.IfStmt:
		elseLabel := g.freshLabel("else")
		exitLabel := g.freshLabel("exit")
		g.control(s.Cond, elseLabel, false)
		if g.err != nil {
			return
		}
		g.compoundStmt(s.Then)
		if g.err != nil {
			return
		}
		g.emit(vm.Jump(exitLabel), vm.Label(elseLabel))
		if s.Else != nil {
			g.compoundStmt(s.Else)
			if g.err != nil {
				return
			}
		}
		g.emit(vm.Label(exitLabel))
	case *ast.WhileStmt:
		topLabel := g.freshLabel("top")
		exitLabel := g.freshLabel("exit")
		g.emit(vm.Label(topLabel))
		g.control(s.Cond, exitLabel, false)
		if g.err != nil {
			return
		}
		g.compoundStmt(s.Body)
		if g.err != nil {
			return
		}
		g.emit(vm.Jump(topLabel), vm.Label(exitLabel))
	case *ast.ReturnStmt:
		if s.Expr != nil {
			g.emit(vm.PushFP(-1))
			g.rval(s.Expr)
			if g.err != nil {
				return
			}
			g.emit(vm.Store())
		}
		g.epilogue()
	case *ast.CallStmt:
		g.rvalCall(s.Call)
		if g.err != nil {
			return
		}
		g.emit(vm.Pop())
	case *ast.PrintStmt:
		g.rval(s.Expr)
		if g.err != nil {
			return
		}
		g.emit(vm.Print())
	default:
		g.err = diag.New(diag.InternalError, s.Span(), "codegen: unhandled statement %T", s)
	}
}

// lval pushes the address an l-value refers to. Only identifiers are
// valid l-values; a global-scope symbol names a function and resolves
// to its code label, everything else resolves to a frame-relative
// offset.
func (g *generator) lval(e ast.Expr) {
	switch e := e.(type) {
	case *ast.IdExpr:
		sym := e.IdNode.Symbol
		if symtab.IsGlobal(sym.Scope) {
			g.emit(vm.PushLabel(e.IdNode.Name()))
		} else {
			g.emit(vm.PushFP(int64(sym.Offset)))
		}
	case *ast.ArrayCell:
		g.err = diag.New(diag.TypeError, e.Span(), "array element assignment is not supported")
	default:
		g.err = diag.New(diag.InternalError, e.Span(), "codegen: unhandled lvalue %T", e)
	}
}

func (g *generator) rval(e ast.Expr) {
	switch e := e.(type) {
	case *ast.IdExpr:
		g.emit(vm.PushFP(int64(e.IdNode.Symbol.Offset)), vm.Load())
	case *ast.IntLiteral:
		g.emit(vm.PushImmediate(e.Value))
	case *ast.BoolLiteral:
		if e.Value {
			g.emit(vm.PushImmediate(1))
		} else {
			g.emit(vm.PushImmediate(0))
		}
	case *ast.CallExpr:
		g.rvalCall(e)
	case *ast.ArrayCell:
		g.err = diag.New(diag.TypeError, e.Span(), "array element access is not supported")
	case *ast.UnaryOp:
		g.rval(e.Operand)
		if g.err != nil {
			return
		}
		switch e.Op.Value {
		case "-":
			g.emit(vm.Negate())
		case "not":
			g.emit(vm.Not())
		default:
			g.err = diag.New(diag.InternalError, e.Span(), "codegen: unhandled unary operator %q", e.Op.Value)
		}
	case *ast.BinaryOp:
		g.rvalBinaryOp(e)
	default:
		g.err = diag.New(diag.InternalError, e.Span(), "codegen: unhandled expression %T", e)
	}
}

func (g *generator) rvalBinaryOp(e *ast.BinaryOp) {
	switch e.Op.Value {
	case "+", "-", "*", "/", "<", "<=", ">", ">=", "==", "!=":
		g.rval(e.Left)
		if g.err != nil {
			return
		}
		g.rval(e.Right)
		if g.err != nil {
			return
		}
		g.emit(arithmeticOp(e.Op.Value))
	case "and":
		falseLabel := g.freshLabel("false")
		exitLabel := g.freshLabel("exit")
		g.control(e, falseLabel, false)
		if g.err != nil {
			return
		}
		g.emit(vm.PushImmediate(1), vm.Jump(exitLabel), vm.Label(falseLabel), vm.PushImmediate(0), vm.Label(exitLabel))
	case "or":
		trueLabel := g.freshLabel("true")
		exitLabel := g.freshLabel("exit")
		g.control(e, trueLabel, true)
		if g.err != nil {
			return
		}
		g.emit(vm.PushImmediate(0), vm.Jump(exitLabel), vm.Label(trueLabel), vm.PushImmediate(1), vm.Label(exitLabel))
	default:
		g.err = diag.New(diag.InternalError, e.Span(), "codegen: unhandled binary operator %q", e.Op.Value)
	}
}

func arithmeticOp(op string) vm.Insn {
	switch op {
	case "+":
		return vm.Add()
	case "-":
		return vm.Sub()
	case "*":
		return vm.Mul()
	case "/":
		return vm.Div()
	case "<":
		return vm.LessThan()
	case "<=":
		return vm.LessThanEqual()
	case ">":
		return vm.GreaterThan()
	case ">=":
		return vm.GreaterThanEqual()
	case "==":
		return vm.Equal()
	default:
		return vm.NotEqual()
	}
}

// rvalCall implements the §4.5.4 call sequence: reserve the return and
// argument slots below the current top of stack, store each argument
// into its slot, push the callee's code address, call, then pull the
// return value back onto the operand stack and release the reserved
// slots.
func (g *generator) rvalCall(call *ast.CallExpr) {
	argc := int64(len(call.Args))
	g.emit(vm.PushSP(1+argc), vm.PopSP())
	for i, arg := range call.Args {
		g.emit(vm.PushSP(-int64(i) - 2))
		g.rval(arg)
		if g.err != nil {
			return
		}
		g.emit(vm.Store())
	}
	g.lval(call.Fn)
	if g.err != nil {
		return
	}
	g.emit(vm.Call())
	g.emit(vm.PushSP(-1), vm.Load())
	g.emit(vm.PushSP(-1-argc), vm.PopSP())
}

// control emits code that transfers to label iff e evaluates to sense,
// leaving nothing on the operand stack. Implements §4.5.6.
func (g *generator) control(e ast.Expr, label string, sense bool) {
	switch e := e.(type) {
	case *ast.BoolLiteral:
		if e.Value == sense {
			g.emit(vm.Jump(label))
		}
	case *ast.UnaryOp:
		if e.Op.Value == "not" {
			g.control(e.Operand, label, !sense)
			return
		}
		g.controlFallback(e, label, sense)
	case *ast.BinaryOp:
		g.controlBinaryOp(e, label, sense)
	default:
		g.controlFallback(e, label, sense)
	}
}

func (g *generator) controlFallback(e ast.Expr, label string, sense bool) {
	g.rval(e)
	if g.err != nil {
		return
	}
	if sense {
		g.emit(vm.JumpIfNotZero(label))
	} else {
		g.emit(vm.JumpIfZero(label))
	}
}

func (g *generator) controlBinaryOp(e *ast.BinaryOp, label string, sense bool) {
	switch e.Op.Value {
	case "and":
		if sense {
			exit := g.freshLabel("exit")
			g.control(e.Left, exit, false)
			if g.err != nil {
				return
			}
			g.control(e.Right, label, true)
			if g.err != nil {
				return
			}
			g.emit(vm.Label(exit))
			return
		}
		g.control(e.Left, label, false)
		if g.err != nil {
			return
		}
		g.control(e.Right, label, false)
	case "or":
		if sense {
			g.control(e.Left, label, true)
			if g.err != nil {
				return
			}
			g.control(e.Right, label, true)
			return
		}
		exit := g.freshLabel("exit")
		g.control(e.Left, exit, true)
		if g.err != nil {
			return
		}
		g.control(e.Right, label, false)
		if g.err != nil {
			return
		}
		g.emit(vm.Label(exit))
	default:
		g.controlFallback(e, label, sense)
	}
}
