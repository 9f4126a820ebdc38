// This file is part of IPP-proj2.

package vm

// opMove implements MOVE var, symb (§4.4): copy value and type from symb
// into var.
func opMove(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	v, err := in.resolveSymb(args[1])
	if err != nil {
		return fail(err)
	}
	dst.v = v
	return ok()
}

// opCreateFrame implements CREATEFRAME (§4.4): (re)create TF as empty.
func opCreateFrame(in *Instance, args []Arg) (uint32, bool, error) {
	in.frames.CreateFrame()
	return ok()
}

// opPushFrame implements PUSHFRAME (§4.4).
func opPushFrame(in *Instance, args []Arg) (uint32, bool, error) {
	if err := in.frames.PushFrame(); err != nil {
		return fail(err)
	}
	return ok()
}

// opPopFrame implements POPFRAME (§4.4).
func opPopFrame(in *Instance, args []Arg) (uint32, bool, error) {
	if err := in.frames.PopFrame(); err != nil {
		return fail(err)
	}
	return ok()
}

// opDefVar implements DEFVAR var (§4.4): define a new Undef slot.
func opDefVar(in *Instance, args []Arg) (uint32, bool, error) {
	a := args[0]
	if a.Kind != ArgVar {
		return fail(errStructure("DEFVAR expects a variable operand, got %s", a.Kind))
	}
	kind, name, err := splitVar(a.Lexeme)
	if err != nil {
		return fail(err)
	}
	frame, err := in.frames.Resolve(kind)
	if err != nil {
		return fail(err)
	}
	if err := frame.Define(name); err != nil {
		return fail(err)
	}
	return ok()
}
