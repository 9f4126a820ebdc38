// This file is part of IPP-proj2.

package vm

// opPushS implements PUSHS symb (§4.4): push the operand's value/type pair.
func opPushS(in *Instance, args []Arg) (uint32, bool, error) {
	v, err := in.resolveSymb(args[0])
	if err != nil {
		return fail(err)
	}
	in.data.push(v)
	return ok()
}

// opPopS implements POPS var (§4.4): pop, CodeValue if empty, write into
// var.
func opPopS(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	v, err := in.data.pop()
	if err != nil {
		return fail(err)
	}
	dst.v = v
	return ok()
}
