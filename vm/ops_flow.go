// This file is part of IPP-proj2.

package vm

// opCall implements CALL label (§4.4): push ip+1, jump to the label's
// order. Unknown label fails with CodeSemantic.
func opCall(in *Instance, args []Arg) (uint32, bool, error) {
	target, err := in.resolveLabel(args[0])
	if err != nil {
		return fail(err)
	}
	in.calls.push(in.ip + 1)
	return jumpTo(target)
}

// opReturn implements RETURN (§4.4). An empty call stack is Open Question
// 1 (§9): this module returns CodeValue over VARIABLE.
func opReturn(in *Instance, args []Arg) (uint32, bool, error) {
	addr, err := in.calls.pop()
	if err != nil {
		return fail(err)
	}
	return jumpTo(addr)
}

// opLabel implements LABEL name: no runtime effect (label placement is
// resolved entirely at load time, §4.1).
func opLabel(in *Instance, args []Arg) (uint32, bool, error) {
	return ok()
}

// opJump implements JUMP label: unconditional, like CALL without pushing a
// return address.
func opJump(in *Instance, args []Arg) (uint32, bool, error) {
	target, err := in.resolveLabel(args[0])
	if err != nil {
		return fail(err)
	}
	return jumpTo(target)
}

// resolveLabel looks up a label Arg's order, failing with CodeSemantic if
// unknown (§4.4).
func (in *Instance) resolveLabel(a Arg) (uint32, error) {
	if a.Kind != ArgLabel {
		return 0, errStructure("expected a label operand, got %s", a.Kind)
	}
	order, ok := in.program.Labels[a.Lexeme]
	if !ok {
		return 0, errSemantic("undefined label %q", a.Lexeme)
	}
	return order, nil
}

// opJumpIfEq / opJumpIfNeq implement JUMPIFEQ/JUMPIFNEQ label, symb1, symb2
// (§4.4). Per Open Question 3 (§9), both literal and variable operands are
// accepted uniformly.
func opJumpIfEq(in *Instance, args []Arg) (uint32, bool, error) {
	return jumpIfCond(in, args, true)
}

func opJumpIfNeq(in *Instance, args []Arg) (uint32, bool, error) {
	return jumpIfCond(in, args, false)
}

func jumpIfCond(in *Instance, args []Arg, wantEq bool) (uint32, bool, error) {
	target, err := in.resolveLabel(args[0])
	if err != nil {
		return fail(err)
	}
	x, err := in.resolveSymb(args[1])
	if err != nil {
		return fail(err)
	}
	y, err := in.resolveSymb(args[2])
	if err != nil {
		return fail(err)
	}
	eq, err := valuesEqual(x, y)
	if err != nil {
		return fail(err)
	}
	if eq == wantEq {
		return jumpTo(target)
	}
	return ok()
}

// valuesEqual implements the common-type equality relation of §4.4's
// JUMPIFEQ/JUMPIFNEQ/EQ: types must match, or at least one side must be
// nil, otherwise CodeOperandType.
func valuesEqual(x, y Value) (bool, error) {
	if x.Kind() == NilKind || y.Kind() == NilKind {
		return x.Kind() == y.Kind(), nil
	}
	if !sameType(x, y) {
		return false, errOperandType("cannot compare %s with %s", x.Kind(), y.Kind())
	}
	switch x.Kind() {
	case Int:
		return x.Int() == y.Int(), nil
	case Str:
		return x.Str() == y.Str(), nil
	case Bool:
		return x.Bool() == y.Bool(), nil
	default:
		return false, errOperandType("cannot compare values of type %s", x.Kind())
	}
}
