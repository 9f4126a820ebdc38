// This file is part of IPP-proj2.

package vm

import "github.com/pkg/errors"

// Code classifies an interpreter error into the closed taxonomy of §7 and
// carries the process exit code it maps to (§6).
type Code int

// The closed set of error classes. Values match the exit codes mandated by
// §6 so that ExitCode can return Code(err) directly.
const (
	// CodeStructure covers malformed XML shape, bad order, bad arity and
	// unknown opcodes (§4.1, §4.4).
	CodeStructure Code = 32
	// CodeSemantic covers redefined variables, duplicate labels and jumps
	// to undefined labels.
	CodeSemantic Code = 52
	// CodeOperandType covers a value of the wrong dynamic type reaching an
	// opcode that requires a specific one (e.g. a string operand to ADD).
	CodeOperandType Code = 53
	// CodeVariable covers use of a variable name with no DEFVAR in scope.
	CodeVariable Code = 54
	// CodeFrame covers LF/TF/POPFRAME/PUSHFRAME precondition violations.
	CodeFrame Code = 55
	// CodeValue covers missing values: an Undef read, an empty data-stack
	// pop, or an empty call-stack RETURN (Open Question 1, §9).
	CodeValue Code = 56
	// CodeOperandValue covers arithmetic/logical preconditions: IDIV by
	// zero, an EXIT operand that is not an int in [0,9], and a nil operand
	// to LT/GT. A type mismatch between compared operands is
	// CodeOperandType.
	CodeOperandValue Code = 57
	// CodeStringOp covers INT2CHAR out of Unicode range and
	// GETCHAR/SETCHAR/STRI2INT index out of range (Open Question 2, §9).
	CodeStringOp Code = 58
	// CodeInternal is the implementation-defined code for host faults
	// (I/O failure, context cancellation) that are not part of the
	// language-level taxonomy.
	CodeInternal Code = 99
)

// Error is the typed error every opcode handler and the loader return on
// failure. It always carries a Code from the closed taxonomy above, and
// wraps an underlying cause with github.com/pkg/errors so that
// errors.Cause still reaches the original low-level error for host
// faults.
type Error struct {
	Code Code
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

// Unwrap lets errors.As/errors.Is see through to the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Cause supports github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.err }

func newError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, err: errors.Errorf(format, args...)}
}

func wrapError(code Code, cause error, msg string) *Error {
	return &Error{Code: code, err: errors.Wrap(cause, msg)}
}

func errStructure(format string, args ...interface{}) *Error {
	return newError(CodeStructure, format, args...)
}

func errSemantic(format string, args ...interface{}) *Error {
	return newError(CodeSemantic, format, args...)
}

func errOperandType(format string, args ...interface{}) *Error {
	return newError(CodeOperandType, format, args...)
}

func errVariable(format string, args ...interface{}) *Error {
	return newError(CodeVariable, format, args...)
}

func errFrame(format string, args ...interface{}) *Error {
	return newError(CodeFrame, format, args...)
}

func errValue(format string, args ...interface{}) *Error {
	return newError(CodeValue, format, args...)
}

func errOperandValue(format string, args ...interface{}) *Error {
	return newError(CodeOperandValue, format, args...)
}

func errStringOp(format string, args ...interface{}) *Error {
	return newError(CodeStringOp, format, args...)
}

// NewStructureError builds a CodeStructure error, exported for the loader
// package (§4.1's structural rules all fail this way).
func NewStructureError(format string, args ...interface{}) error {
	return errStructure(format, args...)
}

// NewSemanticError builds a CodeSemantic error, exported for the loader
// package (§4.1's duplicate-label rule fails this way).
func NewSemanticError(format string, args ...interface{}) error {
	return errSemantic(format, args...)
}

// ExitCode maps an error returned by Load/Run to the process exit code
// mandated by §6. A nil error maps to 0. An error not produced by this
// package (a host fault that reached the caller some other way) maps to
// CodeInternal.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ve *Error
	if errors.As(err, &ve) {
		return int(ve.Code)
	}
	return int(CodeInternal)
}
