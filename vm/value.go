// This file is part of IPP-proj2.

package vm

import "strconv"

// Kind identifies the dynamic type tag carried by a Value.
type Kind int

// The closed set of dynamic types a Value can hold. Undef is a distinct
// fifth state: a DEFVAR'd slot that has never been assigned.
const (
	Undef Kind = iota
	Int
	Str
	Bool
	NilKind
)

// String returns the type name as used by the TYPE opcode and in error
// messages. Undef has no source-level name; TYPE writes the empty string
// for it instead (see opType).
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Str:
		return "string"
	case Bool:
		return "bool"
	case NilKind:
		return "nil"
	case Undef:
		return ""
	default:
		return "invalid"
	}
}

// Value is a runtime datum: one of int, string, bool, nil, or the
// undefined state of a declared-but-unassigned variable slot.
//
// Value is a plain data type, copied by assignment (MOVE, PUSHS, POPS all
// copy by value), matching §3's move-copy semantics.
type Value struct {
	kind Kind
	i    int64
	s    string
	b    bool
}

// UndefValue is the zero Value: an Undef-kind datum.
var UndefValue = Value{kind: Undef}

// Nil is the singleton nil value.
var Nil = Value{kind: NilKind}

// True and False are the two bool values.
var (
	True  = Value{kind: Bool, b: true}
	False = Value{kind: Bool, b: false}
)

// IntValue constructs an int Value.
func IntValue(i int64) Value { return Value{kind: Int, i: i} }

// StringValue constructs a string Value.
func StringValue(s string) Value { return Value{kind: Str, s: s} }

// BoolValue constructs a bool Value.
func BoolValue(b bool) Value {
	if b {
		return True
	}
	return False
}

// Kind returns the dynamic type tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsUndef reports whether v is the Undef state.
func (v Value) IsUndef() bool { return v.kind == Undef }

// Int returns the int payload of v. Only valid when v.Kind() == Int.
func (v Value) Int() int64 { return v.i }

// Str returns the string payload of v. Only valid when v.Kind() == Str.
func (v Value) Str() string { return v.s }

// Bool returns the bool payload of v. Only valid when v.Kind() == Bool.
func (v Value) Bool() bool { return v.b }

// Canonical renders v using the host's canonical text form for the WRITE
// opcode (decimal ints, literal true/false, empty string for nil). String
// escape decoding is handled separately by decodeEscapes, since it only
// applies to the Str kind and only at WRITE time (§4.3).
func (v Value) Canonical() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Str:
		return v.s
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	case NilKind:
		return ""
	default:
		return ""
	}
}

// sameType reports whether a and b carry the same dynamic Kind, which is
// the precondition JUMPIFEQ/JUMPIFNEQ/EQ/LT/GT need before comparing, with
// nil treated as compatible with any kind on the nil-accepting opcodes.
func sameType(a, b Value) bool { return a.kind == b.kind }
