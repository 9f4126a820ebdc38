// This file is part of IPP-proj2.

package vm

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runToEnd runs prog to completion against a fresh Instance with the given
// Options and returns it along with any error from Run.
func runToEnd(t *testing.T, prog *Program, opts ...Option) (*Instance, error) {
	t.Helper()
	in := New(prog, opts...)
	err := in.Run()
	return in, err
}

// Scenario 1 (§8): Hello.
func TestHello(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@s")),
		instr(OpMove, varArg("GF@s"), strArg("hello")),
		instr(OpWrite, varArg("GF@s")),
	)
	var out bytes.Buffer
	in, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
	assert.Equal(t, 0, in.ExitStatus())
}

// Scenario 2 (§8): Arithmetic.
func TestArithmeticIDiv(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@a")),
		instr(OpMove, varArg("GF@a"), intArg("7")),
		instr(OpDefVar, varArg("GF@b")),
		instr(OpMove, varArg("GF@b"), intArg("2")),
		instr(OpDefVar, varArg("GF@c")),
		instr(OpIDiv, varArg("GF@c"), varArg("GF@a"), varArg("GF@b")),
		instr(OpWrite, varArg("GF@c")),
	)
	var out bytes.Buffer
	_, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "3", out.String())
}

// Scenario 3 (§8): IDIV by zero.
func TestIDivByZero(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@c")),
		instr(OpIDiv, varArg("GF@c"), intArg("1"), intArg("0")),
	)
	_, err := runToEnd(t, prog)
	require.Error(t, err)
	assert.Equal(t, 57, ExitCode(err))
}

// Scenario 4 (§8): Label+Jump loops forever; bound it with a step budget.
func TestInfiniteLoopBudget(t *testing.T) {
	prog := buildProgram(
		instr(OpLabel, labelArg("L")),
		instr(OpJump, labelArg("L")),
	)
	in := New(prog, MaxSteps(1000))
	err := in.Run()
	require.Error(t, err)
	assert.Equal(t, CodeInternal, err.(*Error).Code)
}

// RunContext should also respect external cancellation for a looping
// program, without the interpreter needing any concurrency of its own.
func TestRunContextCancellation(t *testing.T) {
	prog := buildProgram(
		instr(OpLabel, labelArg("L")),
		instr(OpJump, labelArg("L")),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	in := New(prog)
	err := in.RunContext(ctx)
	require.Error(t, err)
	assert.Equal(t, CodeInternal, err.(*Error).Code)
}

// Scenario 5 (§8): Call/Return.
func TestCallReturn(t *testing.T) {
	prog := buildProgram(
		instr(OpCall, labelArg("F")),
		instr(OpWrite, strArg("A")),
		instr(OpExit, intArg("0")),
		instr(OpLabel, labelArg("F")),
		instr(OpWrite, strArg("B")),
		instr(OpReturn),
	)
	var out bytes.Buffer
	in, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "BA", out.String())
	assert.Equal(t, 0, in.ExitStatus())
}

// Scenario 6 (§8): Frame lifetime.
func TestFrameLifetime(t *testing.T) {
	prog := buildProgram(
		instr(OpCreateFrame),
		instr(OpDefVar, varArg("TF@x")),
		instr(OpPushFrame),
		instr(OpMove, varArg("LF@x"), intArg("5")),
		instr(OpPopFrame),
		instr(OpWrite, varArg("TF@x")),
	)
	var out bytes.Buffer
	in, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "5", out.String())
	assert.Equal(t, 0, in.FrameDepth())
}

// Scenario 7 (§8): Unicode SETCHAR operates on scalars, not bytes.
func TestSetCharUnicode(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@s")),
		instr(OpMove, varArg("GF@s"), strArg("αβγ")), // αβγ
		instr(OpSetChar, varArg("GF@s"), intArg("1"), strArg("ω")), // ω
		instr(OpWrite, varArg("GF@s")),
	)
	var out bytes.Buffer
	_, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "αωγ", out.String())
}

// Scenario 8 (§8): Undefined variable.
func TestUndefinedVariable(t *testing.T) {
	prog := buildProgram(
		instr(OpWrite, varArg("GF@z")),
	)
	_, err := runToEnd(t, prog)
	require.Error(t, err)
	assert.Equal(t, 54, ExitCode(err))
}

// Scenario 9 (§8): Stack underflow.
func TestStackUnderflow(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@x")),
		instr(OpPopS, varArg("GF@x")),
	)
	_, err := runToEnd(t, prog)
	require.Error(t, err)
	assert.Equal(t, 56, ExitCode(err))
}

// Scenario 10 (§8): EXIT out of range.
func TestExitOutOfRange(t *testing.T) {
	prog := buildProgram(
		instr(OpExit, intArg("10")),
	)
	_, err := runToEnd(t, prog)
	require.Error(t, err)
	assert.Equal(t, 57, ExitCode(err))
}

// DEFVAR idempotence (§8 invariant 5): a program of only DEFVARs produces
// no output and exit 0; redefining the same name fails with code 52.
func TestDefvarIdempotence(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@a")),
		instr(OpDefVar, varArg("GF@b")),
	)
	var out bytes.Buffer
	in, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "", out.String())
	assert.Equal(t, 0, in.ExitStatus())

	redef := buildProgram(
		instr(OpDefVar, varArg("GF@a")),
		instr(OpDefVar, varArg("GF@a")),
	)
	_, err = runToEnd(t, redef)
	require.Error(t, err)
	assert.Equal(t, 52, ExitCode(err))
}

// MOVE round-trip (§8 invariant 6).
func TestMoveRoundTrip(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@x")),
		instr(OpMove, varArg("GF@x"), intArg("42")),
		instr(OpWrite, varArg("GF@x")),
	)
	var out bytes.Buffer
	_, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "42", out.String())
}

// Missing instruction orders are skipped silently (§3, §4.2); jumps still
// land correctly across the gap.
func TestSkipsMissingOrders(t *testing.T) {
	table := InstructionTable{
		1: {Order: 1, Opcode: OpJump, Args: []Arg{labelArg("L")}},
		5: {Order: 5, Opcode: OpLabel, Args: []Arg{labelArg("L")}},
		6: {Order: 6, Opcode: OpExit, Args: []Arg{intArg("0")}},
	}
	prog := &Program{Instructions: table, Labels: LabelTable{"L": 5}, LastOrder: 6}
	in, err := runToEnd(t, prog)
	require.NoError(t, err)
	assert.Equal(t, 0, in.ExitStatus())
}

// EQ/LT/GT accept literal-vs-literal operands (Open Question 3, §9).
func TestEqAcceptsLiterals(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@r")),
		instr(OpEq, varArg("GF@r"), intArg("1"), intArg("1")),
		instr(OpWrite, varArg("GF@r")),
	)
	var out bytes.Buffer
	_, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "true", out.String())
}

// WRITE decodes \DDD escapes exactly at write time.
func TestWriteDecodesEscapes(t *testing.T) {
	prog := buildProgram(
		instr(OpWrite, strArg("a\\098c")), // \098 -> 'b'
	)
	var out bytes.Buffer
	_, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "abc", out.String())
}

// TYPE on an Undef variable writes the empty string, not an error.
func TestTypeOnUndef(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@x")),
		instr(OpDefVar, varArg("GF@t")),
		instr(OpType, varArg("GF@t"), varArg("GF@x")),
		instr(OpWrite, varArg("GF@t")),
	)
	var out bytes.Buffer
	_, err := runToEnd(t, prog, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "", out.String())
}

// READ stores Nil on a failed query.
func TestReadFailureStoresNil(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@x")),
		instr(OpRead, varArg("GF@x"), typeArg("int")),
		instr(OpDefVar, varArg("GF@t")),
		instr(OpType, varArg("GF@t"), varArg("GF@x")),
		instr(OpWrite, varArg("GF@t")),
	)
	var out bytes.Buffer
	_, err := runToEnd(t, prog, Input(noInput{}), Output(&out))
	require.NoError(t, err)
	assert.Equal(t, "nil", out.String())
}

// Arity mismatch fails with CodeStructure.
func TestArityMismatch(t *testing.T) {
	prog := buildProgram(instr(OpAdd, varArg("GF@a")))
	_, err := runToEnd(t, prog)
	require.Error(t, err)
	assert.Equal(t, 32, ExitCode(err))
}

// Unknown opcode fails with CodeStructure.
func TestUnknownOpcode(t *testing.T) {
	prog := buildProgram(instr(Opcode("FROB")))
	_, err := runToEnd(t, prog)
	require.Error(t, err)
	assert.Equal(t, 32, ExitCode(err))
}

// SETCHAR on a declared-but-unassigned destination fails with CodeValue
// (§3: reading a variable's current value observes the Undef/VALUE rule),
// not CodeOperandType.
func TestSetCharOnUndefDestination(t *testing.T) {
	prog := buildProgram(
		instr(OpDefVar, varArg("GF@s")),
		instr(OpSetChar, varArg("GF@s"), intArg("0"), strArg("x")),
	)
	_, err := runToEnd(t, prog)
	require.Error(t, err)
	assert.Equal(t, 56, ExitCode(err))
}

// Disassemble walks prog.Orders, so its output is in ascending order even
// when Instructions was populated out of order.
func TestDisassembleOrdersAscending(t *testing.T) {
	prog := &Program{
		Instructions: InstructionTable{
			5: {Order: 5, Opcode: OpExit, Args: []Arg{intArg("0")}},
			1: {Order: 1, Opcode: OpLabel, Args: []Arg{labelArg("L")}},
		},
		Labels:    LabelTable{"L": 1},
		LastOrder: 5,
		Orders:    []uint32{1, 5},
	}
	lines := Disassemble(prog)
	require.Len(t, lines, 2)
	assert.Equal(t, "1: LABEL L", lines[0])
	assert.Equal(t, "5: EXIT 0", lines[1])
}
