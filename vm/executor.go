// This file is part of IPP-proj2.

package vm

import (
	"context"
	"io"
)

// Instance is the executor: it owns the frame registry, both stacks, the
// instruction pointer, and the injected I/O ports, and drives a *Program to
// completion (§4.2).
type Instance struct {
	ip uint32 // current instruction order, §4.2 ("initially 1")

	program *Program
	frames  *FrameRegistry
	data    dataStack
	calls   callStack

	in     InputPort
	out    runeWriter
	errOut runeWriter

	maxSteps int64 // 0 means unbounded
	steps    int64

	exitCode int
	exited   bool
}

// Option configures an Instance at construction time using the functional
// options pattern.
type Option func(*Instance)

// Input sets the InputPort READ consumes. The zero value is an InputPort
// that always fails (noInput{}).
func Input(p InputPort) Option {
	return func(in *Instance) { in.in = p }
}

// Output sets the io.Writer WRITE writes to. Write errors are latched and
// surfaced as a CodeInternal error from the WRITE that triggers them.
func Output(w io.Writer) Option {
	return func(in *Instance) { in.out = &errLatchWriter{w: newRuneWriter(w)} }
}

// ErrorOutput sets the io.Writer DPRINT/BREAK write to. Write errors are
// latched the same way as Output's.
func ErrorOutput(w io.Writer) Option {
	return func(in *Instance) { in.errOut = &errLatchWriter{w: newRuneWriter(w)} }
}

// MaxSteps bounds the number of ticks Run/RunContext will execute before
// giving up with a CodeInternal error. Zero (the default) means unbounded.
// This is host/test tooling (see SPEC_FULL.md's supplemented features), not
// a language feature.
func MaxSteps(n int64) Option {
	return func(in *Instance) { in.maxSteps = n }
}

// New constructs an Instance ready to run prog from its first instruction.
func New(prog *Program, opts ...Option) *Instance {
	in := &Instance{
		ip:      1,
		program: prog,
		frames:  NewFrameRegistry(),
		in:      noInput{},
		out:     discardRuneWriter{},
		errOut:  discardRuneWriter{},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// discardRuneWriter is the default sink when no Output/ErrorOutput option
// is given: writes succeed and vanish, like io.Discard.
type discardRuneWriter struct{}

func (discardRuneWriter) Write(p []byte) (int, error)      { return len(p), nil }
func (discardRuneWriter) WriteRune(r rune) (int, error)     { return 1, nil }

// IP returns the current instruction pointer (order), useful for
// diagnostics and tests.
func (in *Instance) IP() uint32 { return in.ip }

// ExitStatus returns the process exit status to use after a nil error from
// Run/RunContext: the EXIT opcode's code if the program terminated via
// EXIT, or 0 for normal fallthrough completion (§6).
func (in *Instance) ExitStatus() int {
	if in.exited {
		return in.exitCode
	}
	return 0
}

// Data exposes the data stack contents for tests; it must not be mutated
// directly.
func (in *Instance) Data() []Value { return append([]Value(nil), in.data.items...) }

// FrameDepth exposes the local-frame stack depth for tests (§8 invariant 3).
func (in *Instance) FrameDepth() int { return in.frames.Depth() }

// Run executes the program to completion: normal fallthrough past the last
// instruction, an EXIT opcode, or the first error. It is equivalent to
// RunContext(context.Background()).
func (in *Instance) Run() error {
	return in.RunContext(context.Background())
}

// RunContext is like Run but also stops, with a CodeInternal error, as
// soon as ctx is done between two instruction ticks. Supplemented feature:
// this interpreter has no concurrency of its own (§5), but a host
// embedding a long-running program should still be able to cancel it from
// the outside.
func (in *Instance) RunContext(ctx context.Context) error {
	for in.ip <= in.program.LastOrder {
		if err := ctx.Err(); err != nil {
			return wrapError(CodeInternal, err, "execution cancelled")
		}
		if in.maxSteps > 0 && in.steps >= in.maxSteps {
			return newError(CodeInternal, "exceeded step budget of %d instructions", in.maxSteps)
		}
		done, err := in.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return nil
}

// Step executes a single instruction tick and reports whether the program
// has terminated (EXIT was executed). Missing orders are skipped silently
// (§3, §4.2); control-flow opcodes set the next ip themselves and suppress
// the post-increment for that tick (§4.2's normative convention).
func (in *Instance) Step() (done bool, err error) {
	instr, ok := in.program.Instructions[in.ip]
	if !ok {
		in.ip++
		return false, nil
	}

	in.steps++
	handler, ok := dispatch[instr.Opcode]
	if !ok {
		return false, errStructure("unknown opcode %q", instr.Opcode)
	}
	want := arity[instr.Opcode]
	if len(instr.Args) != want {
		return false, errStructure("opcode %s expects %d argument(s), got %d", instr.Opcode, want, len(instr.Args))
	}

	next, jumped, err := handler(in, instr.Args)
	if err != nil {
		return false, err
	}
	if in.exited {
		return true, nil
	}
	if jumped {
		in.ip = next
	} else {
		in.ip++
	}
	return false, nil
}
