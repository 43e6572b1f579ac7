package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, code []Insn) string {
	t.Helper()
	var buf bytes.Buffer
	v := New(code, &buf)
	require.NoError(t, v.Run())
	return buf.String()
}

func TestVM_ArithmeticAndPrint(t *testing.T) {
	code := []Insn{
		PushImmediate(1),
		PushImmediate(2),
		PushImmediate(3),
		Mul(),
		Add(),
		Print(),
		Halt(),
	}
	require.Equal(t, "7\n", run(t, code))
}

func TestVM_ComparisonOperators(t *testing.T) {
	code := []Insn{
		PushImmediate(5),
		PushImmediate(1),
		LessThanEqual(),
		Print(),
		Halt(),
	}
	require.Equal(t, "0\n", run(t, code))
}

func TestVM_JumpIfZeroSkipsBranch(t *testing.T) {
	code := []Insn{
		PushImmediate(0),
		JumpIfZero("skip"),
		PushImmediate(99),
		Print(),
		Label("skip"),
		PushImmediate(2),
		Print(),
		Halt(),
	}
	require.Equal(t, "2\n", run(t, code))
}

func TestVM_StoreAndLoadRoundTrip(t *testing.T) {
	code := []Insn{
		PushImmediate(10), // address
		PushImmediate(42), // value
		Store(),
		PushImmediate(10),
		Load(),
		Print(),
		Halt(),
	}
	require.Equal(t, "42\n", run(t, code))
}

func TestVM_CallAndJumpIndirectReturns(t *testing.T) {
	code := []Insn{
		PushLabel("callee"),
		Call(),
		Print(),
		Halt(),
		Label("callee"),
		PushImmediate(7),
		Swap(),
		JumpIndirect(),
	}
	require.Equal(t, "7\n", run(t, code))
}

func TestVM_NegateAndNot(t *testing.T) {
	code := []Insn{
		PushImmediate(5),
		Negate(),
		Print(),
		PushImmediate(0),
		Not(),
		Print(),
		Halt(),
	}
	require.Equal(t, "-5\n1\n", run(t, code))
}
