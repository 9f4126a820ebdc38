// This file is part of IPP-proj2.

package vm

// opLt / opGt implement LT/GT var, symb, symb (§4.4). Operand types must
// match; nil on either side fails with CodeOperandValue (nil has no
// ordering). Per Open Question 3 (§9), literal operands are accepted, not
// just variables.
func opLt(in *Instance, args []Arg) (uint32, bool, error) {
	return relation(in, args, func(x, y Value) (bool, error) { return compareOrdered(x, y, true) })
}

func opGt(in *Instance, args []Arg) (uint32, bool, error) {
	return relation(in, args, func(x, y Value) (bool, error) { return compareOrdered(x, y, false) })
}

// opEq implements EQ var, symb, symb (§4.4). Unlike LT/GT, nil is allowed
// on either side.
func opEq(in *Instance, args []Arg) (uint32, bool, error) {
	return relation(in, args, valuesEqual)
}

func relation(in *Instance, args []Arg, f func(x, y Value) (bool, error)) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
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
	res, err := f(x, y)
	if err != nil {
		return fail(err)
	}
	dst.v = BoolValue(res)
	return ok()
}

// compareOrdered implements LT (less) and GT (less == false means
// greater) for int, string and bool operands of matching type. nil on
// either side is an ordering violation (CodeOperandValue, §4.4).
func compareOrdered(x, y Value, less bool) (bool, error) {
	if x.Kind() == NilKind || y.Kind() == NilKind {
		return false, errOperandValue("nil has no ordering")
	}
	if !sameType(x, y) {
		return false, errOperandType("cannot order %s against %s", x.Kind(), y.Kind())
	}
	switch x.Kind() {
	case Int:
		if less {
			return x.Int() < y.Int(), nil
		}
		return x.Int() > y.Int(), nil
	case Str:
		if less {
			return x.Str() < y.Str(), nil
		}
		return x.Str() > y.Str(), nil
	case Bool:
		// false < true, matching a boolean's natural ordering.
		xb, yb := boolOrd(x.Bool()), boolOrd(y.Bool())
		if less {
			return xb < yb, nil
		}
		return xb > yb, nil
	default:
		return false, errOperandType("cannot order values of type %s", x.Kind())
	}
}

func boolOrd(b bool) int {
	if b {
		return 1
	}
	return 0
}
