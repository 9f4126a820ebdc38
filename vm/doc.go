// This file is part of IPP-proj2.

// Package vm implements the runtime for a three-address, XML-encoded
// instruction language: value representation, frames, the data and call
// stacks, the label table, and the instruction dispatch loop.
//
// The package does not parse the source document itself (see the sibling
// loader package); it consumes an already validated *Program and drives it
// to completion, exposing injection points for input and output so that
// hosts and tests can supply their own I/O without the interpreter touching
// any global state.
package vm
