// This file is part of IPP-proj2.

package vm

// ArgKind is the type_tag carried by an instruction argument (§3, §6).
type ArgKind int

// The closed set of argument type tags a <argN type="..."> attribute may
// carry.
const (
	ArgInt ArgKind = iota
	ArgString
	ArgBool
	ArgNil
	ArgVar
	ArgLabel
	ArgTypeName // the literal "type" tag, the operand kind TYPE itself writes
)

// ParseArgKind maps an XML type attribute value to an ArgKind. ok is false
// for any value outside the closed set, which the loader turns into a
// CodeStructure error (§4.1 rule 6).
func ParseArgKind(s string) (k ArgKind, ok bool) {
	switch s {
	case "int":
		return ArgInt, true
	case "string":
		return ArgString, true
	case "bool":
		return ArgBool, true
	case "nil":
		return ArgNil, true
	case "var":
		return ArgVar, true
	case "label":
		return ArgLabel, true
	case "type":
		return ArgTypeName, true
	default:
		return 0, false
	}
}

func (k ArgKind) String() string {
	switch k {
	case ArgInt:
		return "int"
	case ArgString:
		return "string"
	case ArgBool:
		return "bool"
	case ArgNil:
		return "nil"
	case ArgVar:
		return "var"
	case ArgLabel:
		return "label"
	case ArgTypeName:
		return "type"
	default:
		return "invalid"
	}
}

// Arg is one decoded operand: its type tag and its lexeme (trimmed text
// content of the argN element). Decoding the lexeme into a typed literal,
// or resolving it through a frame when Kind == ArgVar, is the job of the
// executor's operand resolution (§4.3), not of Arg itself.
type Arg struct {
	Kind   ArgKind
	Lexeme string
}

// Opcode is an instruction's normalized (uppercase) mnemonic.
type Opcode string

// The closed set of opcodes this interpreter implements (§4.4).
const (
	OpMove        Opcode = "MOVE"
	OpCreateFrame Opcode = "CREATEFRAME"
	OpPushFrame   Opcode = "PUSHFRAME"
	OpPopFrame    Opcode = "POPFRAME"
	OpDefVar      Opcode = "DEFVAR"
	OpCall        Opcode = "CALL"
	OpReturn      Opcode = "RETURN"
	OpLabel       Opcode = "LABEL"
	OpJump        Opcode = "JUMP"
	OpJumpIfEq    Opcode = "JUMPIFEQ"
	OpJumpIfNeq   Opcode = "JUMPIFNEQ"
	OpPushS       Opcode = "PUSHS"
	OpPopS        Opcode = "POPS"
	OpAdd         Opcode = "ADD"
	OpSub         Opcode = "SUB"
	OpMul         Opcode = "MUL"
	OpIDiv        Opcode = "IDIV"
	OpLt          Opcode = "LT"
	OpGt          Opcode = "GT"
	OpEq          Opcode = "EQ"
	OpAnd         Opcode = "AND"
	OpOr          Opcode = "OR"
	OpNot         Opcode = "NOT"
	OpInt2Char    Opcode = "INT2CHAR"
	OpStri2Int    Opcode = "STRI2INT"
	OpRead        Opcode = "READ"
	OpWrite       Opcode = "WRITE"
	OpConcat      Opcode = "CONCAT"
	OpStrLen      Opcode = "STRLEN"
	OpGetChar     Opcode = "GETCHAR"
	OpSetChar     Opcode = "SETCHAR"
	OpType        Opcode = "TYPE"
	OpDPrint      Opcode = "DPRINT"
	OpBreak       Opcode = "BREAK"
	OpExit        Opcode = "EXIT"
)

// arity is the normative argument count for each opcode (§4.4). The loader
// does not enforce this (§4.1); the executor does, failing with
// CodeStructure on mismatch.
var arity = map[Opcode]int{
	OpMove:        2,
	OpCreateFrame: 0,
	OpPushFrame:   0,
	OpPopFrame:    0,
	OpDefVar:      1,
	OpCall:        1,
	OpReturn:      0,
	OpLabel:       1,
	OpJump:        1,
	OpJumpIfEq:    3,
	OpJumpIfNeq:   3,
	OpPushS:       1,
	OpPopS:        1,
	OpAdd:         3,
	OpSub:         3,
	OpMul:         3,
	OpIDiv:        3,
	OpLt:          3,
	OpGt:          3,
	OpEq:          3,
	OpAnd:         3,
	OpOr:          3,
	OpNot:         2,
	OpInt2Char:    2,
	OpStri2Int:    3,
	OpRead:        2,
	OpWrite:       1,
	OpConcat:      3,
	OpStrLen:      2,
	OpGetChar:     3,
	OpSetChar:     3,
	OpType:        2,
	OpDPrint:      1,
	OpBreak:       0,
	OpExit:        1,
}

// Instruction is one parsed <instruction> element: its positive, unique
// order, its normalized opcode, and up to three positional arguments.
type Instruction struct {
	Order  uint32
	Opcode Opcode
	Args   []Arg
}

// InstructionTable is indexed by instruction order. Orders need not be
// contiguous; the executor skips missing orders silently (§3, §4.2).
type InstructionTable map[uint32]*Instruction

// LabelTable maps a label identifier to the order of the instruction that
// defines it. Built by the loader from LABEL instructions (§4.1); after
// loading it is injective (§8 invariant 4).
type LabelTable map[string]uint32

// Program is the loader's output: a validated, order-indexed instruction
// table, its label map, and the highest instruction order present, which
// bounds the executor's main loop (§4.1, §4.2).
//
// Orders is the ascending, deduplicated list of instruction orders present
// in Instructions, precomputed by the loader (which already sorts them for
// deterministic traversal) so that anything enumerating the program — the
// Disassemble listing, diagnostics — doesn't need to sort a map's keys
// itself. It is nil for programs assembled directly in-memory rather than
// through the loader; Disassemble falls back to an unordered walk in that
// case.
type Program struct {
	Instructions InstructionTable
	Labels       LabelTable
	LastOrder    uint32
	Orders       []uint32
}
