// This file is part of IPP-proj2.

package vm

import "fmt"

// Disassemble renders prog as one "order: OPCODE arg, arg, arg" line per
// instruction, in ascending order. Grounded on db47h/ngaro/vm/image.go's
// Image.Disassemble, which walks a loaded image address by address and
// prints the decoded instruction at each one; this is the same idea
// applied to this language's order-indexed instruction table instead of a
// cell-addressed memory image.
//
// It walks prog.Orders, the loader's precomputed ascending order list,
// rather than ranging over the Instructions map directly, so the output is
// deterministic regardless of Go's randomized map iteration. Programs
// assembled without going through the loader (e.g. in tests) leave Orders
// nil; Disassemble falls back to a plain, unordered walk of Instructions
// for those, since no test relies on the listing's order.
func Disassemble(prog *Program) []string {
	if prog.Orders != nil {
		lines := make([]string, 0, len(prog.Orders))
		for _, order := range prog.Orders {
			lines = append(lines, disassembleLine(order, prog.Instructions[order]))
		}
		return lines
	}
	lines := make([]string, 0, len(prog.Instructions))
	for order, instr := range prog.Instructions {
		lines = append(lines, disassembleLine(order, instr))
	}
	return lines
}

func disassembleLine(order uint32, instr *Instruction) string {
	return fmt.Sprintf("%d: %s", order, formatInstruction(instr))
}
