package vm

import "fmt"

// Insn is one entry in an emitted listing: an opcode plus whichever
// operand it needs. Int carries deltas/immediates; Label carries label
// names (for PushLabel/Jump*/Label itself).
type Insn struct {
	Op    Op
	Int   int64
	Label string
}

func (i Insn) String() string {
	switch i.Op {
	case PushImmediateOp:
		return fmt.Sprintf("PushImmediate(%d)", i.Int)
	case PushLabelOp:
		return fmt.Sprintf("PushLabel(%s)", i.Label)
	case PushFPOp, PushSPOp:
		return fmt.Sprintf("%s(%d)", i.Op, i.Int)
	case JumpOp, JumpIfZeroOp, JumpIfNotZeroOp:
		return fmt.Sprintf("%s(%s)", i.Op, i.Label)
	case LabelOp:
		return fmt.Sprintf("Label(%s)", i.Label)
	default:
		return i.Op.String()
	}
}

func PushImmediate(k int64) Insn   { return Insn{Op: PushImmediateOp, Int: k} }
func PushLabel(l string) Insn      { return Insn{Op: PushLabelOp, Label: l} }
func PushFP(delta int64) Insn      { return Insn{Op: PushFPOp, Int: delta} }
func PushSP(delta int64) Insn      { return Insn{Op: PushSPOp, Int: delta} }
func PopFP() Insn                  { return Insn{Op: PopFPOp} }
func PopSP() Insn                  { return Insn{Op: PopSPOp} }
func Load() Insn                   { return Insn{Op: LoadOp} }
func Store() Insn                  { return Insn{Op: StoreOp} }
func Add() Insn                    { return Insn{Op: AddOp} }
func Sub() Insn                    { return Insn{Op: SubOp} }
func Mul() Insn                    { return Insn{Op: MulOp} }
func Div() Insn                    { return Insn{Op: DivOp} }
func LessThan() Insn                { return Insn{Op: LessThanOp} }
func LessThanEqual() Insn           { return Insn{Op: LessThanEqualOp} }
func GreaterThan() Insn             { return Insn{Op: GreaterThanOp} }
func GreaterThanEqual() Insn        { return Insn{Op: GreaterThanEqualOp} }
func Equal() Insn                   { return Insn{Op: EqualOp} }
func NotEqual() Insn                { return Insn{Op: NotEqualOp} }
func Negate() Insn                  { return Insn{Op: NegateOp} }
func Not() Insn                     { return Insn{Op: NotOp} }
func Jump(l string) Insn            { return Insn{Op: JumpOp, Label: l} }
func JumpIfZero(l string) Insn      { return Insn{Op: JumpIfZeroOp, Label: l} }
func JumpIfNotZero(l string) Insn   { return Insn{Op: JumpIfNotZeroOp, Label: l} }
func JumpIndirect() Insn            { return Insn{Op: JumpIndirectOp} }
func Call() Insn                    { return Insn{Op: CallOp} }
func Label(name string) Insn        { return Insn{Op: LabelOp, Label: name} }
func Print() Insn                   { return Insn{Op: PrintOp} }
func Pop() Insn                     { return Insn{Op: PopOp} }
func Swap() Insn                    { return Insn{Op: SwapOp} }
func Noop() Insn                    { return Insn{Op: NoopOp} }
func SaveEvalStack() Insn           { return Insn{Op: SaveEvalStackOp} }
func RestoreEvalStack() Insn        { return Insn{Op: RestoreEvalStackOp} }
func Halt() Insn                    { return Insn{Op: HaltOp} }
