// This file is part of IPP-proj2.

package vm

// resolveIntPair reads and type-checks two operands for the int-only
// arithmetic opcodes (§4.4).
func (in *Instance) resolveIntPair(a, b Arg) (x, y int64, err error) {
	vx, err := in.resolveSymb(a)
	if err != nil {
		return 0, 0, err
	}
	vy, err := in.resolveSymb(b)
	if err != nil {
		return 0, 0, err
	}
	if vx.Kind() != Int || vy.Kind() != Int {
		return 0, 0, errOperandType("arithmetic operands must be int, got %s and %s", vx.Kind(), vy.Kind())
	}
	return vx.Int(), vy.Int(), nil
}

func arith(in *Instance, args []Arg, f func(x, y int64) (int64, error)) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	x, y, err := in.resolveIntPair(args[1], args[2])
	if err != nil {
		return fail(err)
	}
	z, err := f(x, y)
	if err != nil {
		return fail(err)
	}
	dst.v = IntValue(z)
	return ok()
}

// opAdd implements ADD var, symb, symb (§4.4).
func opAdd(in *Instance, args []Arg) (uint32, bool, error) {
	return arith(in, args, func(x, y int64) (int64, error) { return x + y, nil })
}

// opSub implements SUB var, symb, symb (§4.4).
func opSub(in *Instance, args []Arg) (uint32, bool, error) {
	return arith(in, args, func(x, y int64) (int64, error) { return x - y, nil })
}

// opMul implements MUL var, symb, symb (§4.4).
func opMul(in *Instance, args []Arg) (uint32, bool, error) {
	return arith(in, args, func(x, y int64) (int64, error) { return x * y, nil })
}

// opIDiv implements IDIV var, symb, symb (§4.4). Division by zero fails
// with CodeOperandValue. Per Open Question 4 (§9), division truncates like
// Go's native integer "/", never floating point.
func opIDiv(in *Instance, args []Arg) (uint32, bool, error) {
	return arith(in, args, func(x, y int64) (int64, error) {
		if y == 0 {
			return 0, errOperandValue("IDIV by zero")
		}
		return x / y, nil
	})
}
