// This file is part of IPP-proj2.

package vm

import "github.com/dolthub/swiss"

// slot is the storage cell backing one variable. Frame stores *slot rather
// than Value directly so that a reference obtained once (e.g. by MOVE's
// destination resolution) observes later writes through the same frame.
type slot struct {
	v Value
}

// FrameKind names which of the three frame kinds a variable reference
// targets (GF, TF, LF — §3, §6).
type FrameKind int

// The three frame kinds a var lexeme's FRAME@name prefix can name.
const (
	FrameGlobal FrameKind = iota
	FrameTemporary
	FrameLocal
)

// Frame is a named mapping from variable identifier to a Value slot.
// Insertion is only ever done through DEFVAR (Frame.Define); Frame itself
// does not expose a way to create a slot implicitly.
type Frame struct {
	vars *swiss.Map[string, *slot]
}

// newFrame returns an empty Frame.
func newFrame() *Frame {
	return &Frame{vars: swiss.NewMap[string, *slot](8)}
}

// Define creates a new Undef slot named name. Redefining an existing name
// fails with CodeSemantic (§3, DEFVAR).
func (f *Frame) Define(name string) error {
	if _, ok := f.vars.Get(name); ok {
		return errSemantic("variable %q already defined in this frame", name)
	}
	f.vars.Put(name, &slot{v: UndefValue})
	return nil
}

// Lookup returns the slot for name, or CodeVariable if it was never
// DEFVAR'd in this frame.
func (f *Frame) Lookup(name string) (*slot, error) {
	s, ok := f.vars.Get(name)
	if !ok {
		return nil, errVariable("variable %q is not defined", name)
	}
	return s, nil
}

// Len reports the number of variables defined in the frame. The
// interpreter itself does not call it; not part of the language-level
// surface.
func (f *Frame) Len() int { return f.vars.Count() }
