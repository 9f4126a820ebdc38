// This file is part of IPP-proj2.

package vm

// FrameRegistry owns the global frame, the optional temporary frame, and
// the stack of local frames (§3, §4.1).
//
// Per §4.2, the bottom of the local-frame stack is the global frame
// itself, pushed once at construction time so that LF on an otherwise
// empty program-user local-frame stack resolves to GF rather than failing
// with CodeFrame — this mirrors the source interpreter's behavior exactly
// (see §4.2's executor construction note).
type FrameRegistry struct {
	gf    *Frame
	tf    *Frame
	stack []*Frame // stack[0] is the GF sentinel; the top is the active LF.
}

// NewFrameRegistry constructs a registry with a fresh, empty global frame.
func NewFrameRegistry() *FrameRegistry {
	gf := newFrame()
	return &FrameRegistry{gf: gf, stack: []*Frame{gf}}
}

// Global returns the global frame. It always exists.
func (r *FrameRegistry) Global() *Frame { return r.gf }

// Local returns the currently active local frame. Thanks to the GF
// sentinel at the bottom of the stack this never fails with CodeFrame; an
// empty user-frame stack simply resolves to GF.
func (r *FrameRegistry) Local() *Frame { return r.stack[len(r.stack)-1] }

// Temporary returns the temporary frame, or CodeFrame if CREATEFRAME has
// not been called (or TF was consumed by PUSHFRAME and never recreated).
func (r *FrameRegistry) Temporary() (*Frame, error) {
	if r.tf == nil {
		return nil, errFrame("temporary frame does not exist")
	}
	return r.tf, nil
}

// CreateFrame (re)creates TF as an empty frame, discarding any previous TF.
func (r *FrameRegistry) CreateFrame() { r.tf = newFrame() }

// PushFrame requires TF to exist, pushes it as the new active local frame,
// and clears TF.
func (r *FrameRegistry) PushFrame() error {
	if r.tf == nil {
		return errFrame("cannot PUSHFRAME: no temporary frame")
	}
	r.stack = append(r.stack, r.tf)
	r.tf = nil
	return nil
}

// PopFrame requires a user frame above the GF sentinel, and moves it into
// TF.
func (r *FrameRegistry) PopFrame() error {
	if len(r.stack) <= 1 {
		return errFrame("cannot POPFRAME: no local frame")
	}
	n := len(r.stack) - 1
	r.tf = r.stack[n]
	r.stack = r.stack[:n]
	return nil
}

// Depth reports the number of user-pushed local frames (excluding the GF
// sentinel). Used by tests to check the frame-balance invariant (§8.3).
func (r *FrameRegistry) Depth() int { return len(r.stack) - 1 }

// Resolve returns the frame named by kind, or CodeFrame if it does not
// currently exist (§3: "references like LF@x or TF@x fail with FRAME if
// the referenced frame does not currently exist").
func (r *FrameRegistry) Resolve(kind FrameKind) (*Frame, error) {
	switch kind {
	case FrameGlobal:
		return r.gf, nil
	case FrameTemporary:
		return r.Temporary()
	case FrameLocal:
		return r.Local(), nil
	default:
		return nil, errStructure("invalid frame kind %d", kind)
	}
}
