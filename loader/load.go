// This file is part of IPP-proj2.

package loader

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/Im0ne/IPP-proj2/vm"
)

// argNames is the closed, positional set of argument element names, in
// the order they must be stored into Instruction.Args.
var argNames = [...]string{"arg1", "arg2", "arg3"}

// Load validates root's shape and builds a *vm.Program from it. Every
// failure is a *vm.Error tagged vm.CodeStructure or vm.CodeSemantic, per
// the structural rules this mirrors.
func Load(root Node) (*vm.Program, error) {
	if root.Name() != "program" {
		return nil, vm.NewStructureError("root element must be <program>, got <%s>", root.Name())
	}

	table := make(vm.InstructionTable)
	labels := make(vm.LabelTable)
	seenOrders := make(map[uint32]bool)
	var last uint32

	for _, child := range root.Children() {
		if child.Name() != "instruction" {
			return nil, vm.NewStructureError("unexpected child <%s> of <program>, want <instruction>", child.Name())
		}

		instr, err := loadInstruction(child)
		if err != nil {
			return nil, err
		}
		if seenOrders[instr.Order] {
			return nil, vm.NewStructureError("duplicate instruction order %d", instr.Order)
		}
		seenOrders[instr.Order] = true
		table[instr.Order] = instr
		if instr.Order > last {
			last = instr.Order
		}

		if instr.Opcode == vm.OpLabel {
			name := instr.Args[0].Lexeme
			if _, dup := labels[name]; dup {
				return nil, vm.NewSemanticError("label %q defined more than once", name)
			}
			labels[name] = instr.Order
		}
	}

	// Deterministic traversal of the orders collected above, for any
	// diagnostics that enumerate them (vm.Disassemble, in particular); the
	// table itself stays a map, keyed by order, for O(1) executor lookup.
	orders := make([]uint32, 0, len(table))
	for order := range table {
		orders = append(orders, order)
	}
	slices.Sort(orders)

	return &vm.Program{Instructions: table, Labels: labels, LastOrder: last, Orders: orders}, nil
}

// loadInstruction validates and decodes one <instruction> element.
func loadInstruction(n Node) (*vm.Instruction, error) {
	orderAttr, ok := n.Attr("order")
	if !ok || orderAttr == "" {
		return nil, vm.NewStructureError("<instruction> is missing a non-empty order attribute")
	}
	order, err := strconv.ParseUint(orderAttr, 10, 32)
	if err != nil || order < 1 {
		return nil, vm.NewStructureError("<instruction order=%q>: order must be a positive integer", orderAttr)
	}

	opcodeAttr, ok := n.Attr("opcode")
	if !ok || opcodeAttr == "" {
		return nil, vm.NewStructureError("<instruction order=%d> is missing a non-empty opcode attribute", order)
	}
	opcode := vm.Opcode(strings.ToUpper(opcodeAttr))

	args, err := loadArgs(n, uint32(order), opcode)
	if err != nil {
		return nil, err
	}

	return &vm.Instruction{Order: uint32(order), Opcode: opcode, Args: args}, nil
}

// loadArgs validates the arg1/arg2/arg3 gap rule and decodes each present
// argument in positional order.
func loadArgs(n Node, order uint32, opcode vm.Opcode) ([]vm.Arg, error) {
	byName := make(map[string]Node, 3)
	for _, child := range n.Children() {
		for _, want := range argNames {
			if child.Name() == want {
				if _, dup := byName[want]; dup {
					return nil, vm.NewStructureError("<instruction order=%d>: duplicate %s", order, want)
				}
				byName[want] = child
			}
		}
		// Any other element child is ignored, mirroring the tolerant
		// source behavior this loader otherwise tightens.
	}

	_, has1 := byName["arg1"]
	_, has2 := byName["arg2"]
	_, has3 := byName["arg3"]
	if has3 && !(has1 && has2) {
		return nil, vm.NewStructureError("<instruction order=%d opcode=%s>: arg3 present without arg1 and arg2", order, opcode)
	}
	if has2 && !has1 {
		return nil, vm.NewStructureError("<instruction order=%d opcode=%s>: arg2 present without arg1", order, opcode)
	}

	var args []vm.Arg
	for _, name := range argNames {
		child, ok := byName[name]
		if !ok {
			break // gap rule above guarantees remaining names are also absent
		}
		arg, err := loadArg(child, order, opcode)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// loadArg decodes one argN element into a vm.Arg.
func loadArg(n Node, order uint32, opcode vm.Opcode) (vm.Arg, error) {
	typeAttr, ok := n.Attr("type")
	if !ok || typeAttr == "" {
		return vm.Arg{}, vm.NewStructureError("<instruction order=%d opcode=%s>: %s is missing a type attribute", order, opcode, n.Name())
	}
	kind, ok := vm.ParseArgKind(typeAttr)
	if !ok {
		return vm.Arg{}, vm.NewStructureError("<instruction order=%d opcode=%s>: %s has unknown type %q", order, opcode, n.Name(), typeAttr)
	}

	lexeme := n.Text()
	if kind == vm.ArgInt && lexeme != "" {
		if _, err := strconv.ParseInt(lexeme, 10, 64); err != nil {
			return vm.Arg{}, vm.NewStructureError("<instruction order=%d opcode=%s>: %s has non-numeric int lexeme %q", order, opcode, n.Name(), lexeme)
		}
	}

	return vm.Arg{Kind: kind, Lexeme: lexeme}, nil
}
