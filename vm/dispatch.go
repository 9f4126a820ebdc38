// This file is part of IPP-proj2.

package vm

// handlerFunc implements one opcode's semantics (§4.4). It returns the
// next instruction order and whether that value should replace the
// post-increment (jumped == true), following §4.2's normative jump
// convention: "a jump target T is realized by setting ip = T and
// suppressing the post-increment for this tick". Handlers that do not
// alter control flow return (0, false, nil) and let Step increment ip.
type handlerFunc func(in *Instance, args []Arg) (next uint32, jumped bool, err error)

// dispatch is the opcode -> handler table, resolved once instead of via
// reflection or a giant switch on a string (§9: "String-keyed opcode
// dispatch via reflection -> replace with an explicit map from uppercase
// opcode string to handler function").
var dispatch = map[Opcode]handlerFunc{
	OpMove:        opMove,
	OpCreateFrame: opCreateFrame,
	OpPushFrame:   opPushFrame,
	OpPopFrame:    opPopFrame,
	OpDefVar:      opDefVar,
	OpCall:        opCall,
	OpReturn:      opReturn,
	OpLabel:       opLabel,
	OpJump:        opJump,
	OpJumpIfEq:    opJumpIfEq,
	OpJumpIfNeq:   opJumpIfNeq,
	OpPushS:       opPushS,
	OpPopS:        opPopS,
	OpAdd:         opAdd,
	OpSub:         opSub,
	OpMul:         opMul,
	OpIDiv:        opIDiv,
	OpLt:          opLt,
	OpGt:          opGt,
	OpEq:          opEq,
	OpAnd:         opAnd,
	OpOr:          opOr,
	OpNot:         opNot,
	OpInt2Char:    opInt2Char,
	OpStri2Int:    opStri2Int,
	OpRead:        opRead,
	OpWrite:       opWrite,
	OpConcat:      opConcat,
	OpStrLen:      opStrLen,
	OpGetChar:     opGetChar,
	OpSetChar:     opSetChar,
	OpType:        opType,
	OpDPrint:      opDPrint,
	OpBreak:       opBreak,
	OpExit:        opExit,
}

const noJump uint32 = 0

func ok() (uint32, bool, error)                { return noJump, false, nil }
func jumpTo(order uint32) (uint32, bool, error) { return order, true, nil }
func fail(err error) (uint32, bool, error)      { return noJump, false, err }
