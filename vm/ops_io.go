// This file is part of IPP-proj2.

package vm

import (
	"fmt"
	"strings"
)

// opRead implements READ var, type (§4.4). type must be one of
// int/string/bool; on parse failure or EOF the slot is set to Nil.
func opRead(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	typeArg := args[1]
	if typeArg.Kind != ArgTypeName {
		return fail(errStructure("READ's second operand must be a type, got %s", typeArg.Kind))
	}
	switch typeArg.Lexeme {
	case "int":
		if v, ok := in.in.ReadInt(); ok {
			dst.v = IntValue(v)
		} else {
			dst.v = Nil
		}
	case "string":
		if v, ok := in.in.ReadString(); ok {
			dst.v = StringValue(v)
		} else {
			dst.v = Nil
		}
	case "bool":
		if v, ok := in.in.ReadBool(); ok {
			dst.v = BoolValue(v)
		} else {
			dst.v = Nil
		}
	default:
		return fail(errStructure("READ does not support type %q", typeArg.Lexeme))
	}
	return ok()
}

// opWrite implements WRITE symb (§4.4): formats per the operand's dynamic
// type. String escapes are decoded exactly here, per §4.3/§4.4 ("applied
// only at WRITE time"). Only int, string, bool and nil values are written:
// there is no float value kind, and the loader rejects a type="float"
// argument. Any other value kind fails with CodeValue.
func opWrite(in *Instance, args []Arg) (uint32, bool, error) {
	v, err := in.resolveSymb(args[0])
	if err != nil {
		return fail(err)
	}
	var writeErr error
	switch v.Kind() {
	case Int, Bool:
		_, writeErr = in.out.Write([]byte(v.Canonical()))
	case Str:
		writeErr = writeRunes(in.out, decodeEscapes(v.Str()))
	case NilKind:
		// empty string, nothing to write
	default:
		return fail(errValue("cannot WRITE a value of type %s", v.Kind()))
	}
	if writeErr != nil {
		return fail(wrapError(CodeInternal, writeErr, "WRITE failed"))
	}
	return ok()
}

func writeRunes(w runeWriter, s string) error {
	for _, r := range s {
		if _, err := w.WriteRune(r); err != nil {
			return err
		}
	}
	return nil
}

// opType implements TYPE var, symb (§4.4): writes the operand's type name,
// or the empty string for an Undef variable.
func opType(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	v, err := in.resolveSymbAllowUndef(args[1])
	if err != nil {
		return fail(err)
	}
	dst.v = StringValue(v.Kind().String())
	return ok()
}

// opDPrint implements DPRINT symb (§4.4): write to standard error.
func opDPrint(in *Instance, args []Arg) (uint32, bool, error) {
	v, err := in.resolveSymb(args[0])
	if err != nil {
		return fail(err)
	}
	if writeErr := writeRunes(in.errOut, v.Canonical()); writeErr != nil {
		return fail(wrapError(CodeInternal, writeErr, "DPRINT failed"))
	}
	return ok()
}

// opBreak implements BREAK (§4.4): a diagnostic line to standard error
// including ip, the decoded instruction at ip, and operand/call-stack
// depths. The decoded-instruction text goes a little beyond the bare
// minimum the opcode requires, in the spirit of a disassembler's
// instruction-at-address diagnostics.
func opBreak(in *Instance, args []Arg) (uint32, bool, error) {
	line := fmt.Sprintf("BREAK at ip=%d (%s), data stack depth=%d, call stack depth=%d, local frames=%d\n",
		in.ip, formatInstruction(in.program.Instructions[in.ip]), in.data.len(), in.calls.len(), in.frames.Depth())
	if writeErr := writeRunes(in.errOut, line); writeErr != nil {
		return fail(wrapError(CodeInternal, writeErr, "BREAK failed"))
	}
	return ok()
}

// formatInstruction renders an instruction the way BREAK's diagnostic line
// does; instr is nil when ip lands on a missing order.
func formatInstruction(instr *Instruction) string {
	if instr == nil {
		return "<no instruction>"
	}
	if len(instr.Args) == 0 {
		return string(instr.Opcode)
	}
	parts := make([]string, len(instr.Args))
	for i, a := range instr.Args {
		parts[i] = a.Lexeme
	}
	return string(instr.Opcode) + " " + strings.Join(parts, ", ")
}

// opExit implements EXIT symb (§4.4): operand must be an int in [0, 9].
func opExit(in *Instance, args []Arg) (uint32, bool, error) {
	v, err := in.resolveSymb(args[0])
	if err != nil {
		return fail(err)
	}
	if v.Kind() != Int {
		return fail(errOperandValue("EXIT operand must be int, got %s", v.Kind()))
	}
	code := v.Int()
	if code < 0 || code > 9 {
		return fail(errOperandValue("EXIT code %d out of range [0,9]", code))
	}
	in.exitCode = int(code)
	in.exited = true
	return ok()
}
