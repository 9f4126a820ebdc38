// This file is part of IPP-proj2.

package vm

import "strings"

// splitVar splits a var lexeme of the form "FRAME@name" into its frame
// kind and variable name (§6).
func splitVar(lexeme string) (FrameKind, string, error) {
	idx := strings.IndexByte(lexeme, '@')
	if idx < 0 {
		return 0, "", errStructure("malformed variable lexeme %q", lexeme)
	}
	name := lexeme[idx+1:]
	switch lexeme[:idx] {
	case "GF":
		return FrameGlobal, name, nil
	case "TF":
		return FrameTemporary, name, nil
	case "LF":
		return FrameLocal, name, nil
	default:
		return 0, "", errStructure("unknown frame %q in variable lexeme %q", lexeme[:idx], lexeme)
	}
}

// lookupSlot resolves a var Arg to its backing slot, applying the frame
// and variable existence checks of §3/§4.3.
func (in *Instance) lookupSlot(a Arg) (*slot, error) {
	if a.Kind != ArgVar {
		return nil, errStructure("expected a variable operand, got %s", a.Kind)
	}
	kind, name, err := splitVar(a.Lexeme)
	if err != nil {
		return nil, err
	}
	frame, err := in.frames.Resolve(kind)
	if err != nil {
		return nil, err
	}
	return frame.Lookup(name)
}

// resolveSymb evaluates a symb operand (§4.3): a var is resolved through
// the frame registry and must hold a defined (non-Undef) value; any other
// ArgKind is decoded from its lexeme directly, the literal value itself.
func (in *Instance) resolveSymb(a Arg) (Value, error) {
	if a.Kind != ArgVar {
		return in.decodeLiteral(a)
	}
	s, err := in.lookupSlot(a)
	if err != nil {
		return Value{}, err
	}
	if s.v.IsUndef() {
		return Value{}, errValue("variable %q has no value", a.Lexeme)
	}
	return s.v, nil
}

// resolveSymbAllowUndef is like resolveSymb but does not reject an Undef
// variable; only TYPE needs this (§4.4: "empty string if the operand is a
// variable whose value has never been set").
func (in *Instance) resolveSymbAllowUndef(a Arg) (Value, error) {
	if a.Kind != ArgVar {
		return in.decodeLiteral(a)
	}
	s, err := in.lookupSlot(a)
	if err != nil {
		return Value{}, err
	}
	return s.v, nil
}

// decodeLiteral turns a non-var Arg into its literal Value (§4.3). The
// loader validates non-empty int lexemes (§4.1 rule 6), but not empty int
// lexemes or bool lexemes; one of those that fails to parse here is
// CodeOperandType rather than CodeStructure, per §4.3's own
// note ("out-of-lex-form => SOURCE_STRUCTURE at load, OPERAND_TYPE at use
// if somehow unchecked").
func (in *Instance) decodeLiteral(a Arg) (Value, error) {
	switch a.Kind {
	case ArgInt:
		n, ok := parseInt(a.Lexeme)
		if !ok {
			return Value{}, errOperandType("invalid int literal %q", a.Lexeme)
		}
		return IntValue(n), nil
	case ArgString:
		return StringValue(a.Lexeme), nil
	case ArgBool:
		switch a.Lexeme {
		case "true":
			return True, nil
		case "false":
			return False, nil
		default:
			return Value{}, errOperandType("invalid bool literal %q", a.Lexeme)
		}
	case ArgNil:
		return Nil, nil
	default:
		return Value{}, errStructure("argument of type %s cannot be used as a symbol", a.Kind)
	}
}

// resolveVarDest resolves a var Arg to its backing slot for writing,
// without the Undef/value check resolveSymb applies for reads.
func (in *Instance) resolveVarDest(a Arg) (*slot, error) {
	return in.lookupSlot(a)
}
