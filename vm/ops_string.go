// This file is part of IPP-proj2.

package vm

import "unicode/utf8"

// opInt2Char implements INT2CHAR var, symb (§4.4): operand must be an int
// Unicode scalar value in [0, 0x10FFFF]; out of range fails with
// CodeStringOp.
func opInt2Char(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	v, err := in.resolveSymb(args[1])
	if err != nil {
		return fail(err)
	}
	if v.Kind() != Int {
		return fail(errOperandType("INT2CHAR operand must be int, got %s", v.Kind()))
	}
	cp := v.Int()
	if cp < 0 || cp > 0x10FFFF || !utf8.ValidRune(rune(cp)) {
		return fail(errStringOp("codepoint %d is not a valid Unicode scalar value", cp))
	}
	dst.v = StringValue(string(rune(cp)))
	return ok()
}

// opStri2Int implements STRI2INT var, symb, symb (§4.4): first operand a
// string, second an int index into its Unicode scalar sequence. Per Open
// Question 2 (§9), an out-of-range index fails with CodeStringOp (not
// CodeValue, for consistency with GETCHAR/SETCHAR).
func opStri2Int(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	sv, err := in.resolveSymb(args[1])
	if err != nil {
		return fail(err)
	}
	iv, err := in.resolveSymb(args[2])
	if err != nil {
		return fail(err)
	}
	if sv.Kind() != Str {
		return fail(errOperandType("STRI2INT first operand must be string, got %s", sv.Kind()))
	}
	if iv.Kind() != Int {
		return fail(errOperandType("STRI2INT second operand must be int, got %s", iv.Kind()))
	}
	runes := []rune(sv.Str())
	idx := iv.Int()
	if idx < 0 || idx >= int64(len(runes)) {
		return fail(errStringOp("index %d out of range for string of length %d", idx, len(runes)))
	}
	dst.v = IntValue(int64(runes[idx]))
	return ok()
}

// opConcat implements CONCAT var, symb, symb (§4.4).
func opConcat(in *Instance, args []Arg) (uint32, bool, error) {
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
	if x.Kind() != Str || y.Kind() != Str {
		return fail(errOperandType("CONCAT operands must be string, got %s and %s", x.Kind(), y.Kind()))
	}
	dst.v = StringValue(x.Str() + y.Str())
	return ok()
}

// opStrLen implements STRLEN var, symb (§4.4): result is the Unicode
// scalar count, not the byte length.
func opStrLen(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	v, err := in.resolveSymb(args[1])
	if err != nil {
		return fail(err)
	}
	if v.Kind() != Str {
		return fail(errOperandType("STRLEN operand must be string, got %s", v.Kind()))
	}
	dst.v = IntValue(int64(utf8.RuneCountInString(v.Str())))
	return ok()
}

// opGetChar implements GETCHAR var, symb, symb (§4.4): index in
// [0, length) by Unicode scalar, out of range fails with CodeStringOp.
func opGetChar(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	sv, err := in.resolveSymb(args[1])
	if err != nil {
		return fail(err)
	}
	iv, err := in.resolveSymb(args[2])
	if err != nil {
		return fail(err)
	}
	if sv.Kind() != Str {
		return fail(errOperandType("GETCHAR first operand must be string, got %s", sv.Kind()))
	}
	if iv.Kind() != Int {
		return fail(errOperandType("GETCHAR second operand must be int, got %s", iv.Kind()))
	}
	runes := []rune(sv.Str())
	idx := iv.Int()
	if idx < 0 || idx >= int64(len(runes)) {
		return fail(errStringOp("index %d out of range for string of length %d", idx, len(runes)))
	}
	dst.v = StringValue(string(runes[idx]))
	return ok()
}

// opSetChar implements SETCHAR var, symb, symb (§4.4): var's current value
// must already be a string; index by Unicode scalar; replacement string's
// first rune replaces the indexed rune. An empty replacement or an
// out-of-range index fails with CodeStringOp.
func opSetChar(in *Instance, args []Arg) (uint32, bool, error) {
	dst, err := in.resolveVarDest(args[0])
	if err != nil {
		return fail(err)
	}
	if dst.v.IsUndef() {
		return fail(errValue("SETCHAR destination has no value"))
	}
	if dst.v.Kind() != Str {
		return fail(errOperandType("SETCHAR destination must already hold a string, got %s", dst.v.Kind()))
	}
	iv, err := in.resolveSymb(args[1])
	if err != nil {
		return fail(err)
	}
	rv, err := in.resolveSymb(args[2])
	if err != nil {
		return fail(err)
	}
	if iv.Kind() != Int {
		return fail(errOperandType("SETCHAR second operand must be int, got %s", iv.Kind()))
	}
	if rv.Kind() != Str {
		return fail(errOperandType("SETCHAR third operand must be string, got %s", rv.Kind()))
	}
	replacement := []rune(rv.Str())
	if len(replacement) == 0 {
		return fail(errStringOp("SETCHAR replacement string must not be empty"))
	}
	runes := []rune(dst.v.Str())
	idx := iv.Int()
	if idx < 0 || idx >= int64(len(runes)) {
		return fail(errStringOp("index %d out of range for string of length %d", idx, len(runes)))
	}
	runes[idx] = replacement[0]
	dst.v = StringValue(string(runes))
	return ok()
}
