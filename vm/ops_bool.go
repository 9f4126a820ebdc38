// This file is part of IPP-proj2.

package vm

// resolveBoolPair reads and type-checks two bool operands for AND/OR
// (§4.4).
func (in *Instance) resolveBoolPair(a, b Arg) (x, y bool, err error) {
	vx, err := in.resolveSymb(a)
	if err != nil {
		return false, false, err
	}
	vy, err := in.resolveSymb(b)
	if err != nil {
		return false, false, err
	}
	if vx.Kind() != Bool || vy.Kind() != Bool {
		return false, false, errOperandType("logical operands must be bool, got %s and %s", vx.Kind(), vy.Kind())
	}
	return vx.Bool(), vy.Bool(), nil
}

// opAnd implements AND var, symb, symb (§4.4).
func opAnd(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	x, y, err := in.resolveBoolPair(args[1], args[2])
	if err != nil {
		return fail(err)
	}
	dst.v = BoolValue(x && y)
	return ok()
}

// opOr implements OR var, symb, symb (§4.4).
func opOr(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	x, y, err := in.resolveBoolPair(args[1], args[2])
	if err != nil {
		return fail(err)
	}
	dst.v = BoolValue(x || y)
	return ok()
}

// opNot implements NOT var, symb (§4.4).
func opNot(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	v, err := in.resolveSymb(args[1])
	if err != nil {
		return fail(err)
	}
	if v.Kind() != Bool {
		return fail(errOperandType("NOT operand must be bool, got %s", v.Kind()))
	}
	dst.v = BoolValue(!v.Bool())
	return ok()
}
