// This file is part of IPP-proj2.

// Command ippvm loads an XML-encoded source file and executes it.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/mna/mainer"
	"github.com/pkg/errors"

	"github.com/Im0ne/IPP-proj2/loader"
	"github.com/Im0ne/IPP-proj2/vm"
)

// envConfig holds the runtime knobs that make sense as environment
// variables rather than flags: host-tooling limits that a CI harness sets
// once for every invocation instead of repeating on every command line.
type envConfig struct {
	MaxSteps int64 `env:"IPPVM_MAX_STEPS" envDefault:"0"`
	Debug    bool  `env:"IPPVM_DEBUG" envDefault:"false"`
}

// Cmd is the mainer.Parser target: flags are decoded into its exported
// fields via the `flag` struct tag.
type Cmd struct {
	Help   bool   `flag:"h,help"`
	Source string `flag:"source"`
	Input  string `flag:"input"`
	List   bool   `flag:"list"`
}

func (c *Cmd) SetArgs([]string)         {}
func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help {
		return nil
	}
	if c.Source == "" {
		return errors.New("missing required -source flag")
	}
	return nil
}

const usage = `usage: ippvm -source <file.xml> [-input <file>] [-list]

Loads an XML-encoded instruction list from -source and executes it.
Program input, when not redirected from -input, is read from stdin.
Exit status follows the interpreter's error taxonomy; see DESIGN.md.

-list prints a disassembly listing of the loaded program to stdout
instead of executing it.
`

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, usage)
		return mainer.InvalidArgs
	}
	if c.Help {
		fmt.Fprint(stdio.Stdout, usage)
		return mainer.Success
	}

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid environment: %s\n", err)
		return mainer.InvalidArgs
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	code := run(ctx, c, cfg, stdio)
	return mainer.ExitCode(code)
}

func run(ctx context.Context, c *Cmd, cfg envConfig, stdio mainer.Stdio) int {
	src, err := os.Open(c.Source)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%v\n", err)
		return int(vm.CodeInternal)
	}
	defer src.Close()

	doc, err := loader.NewXMLDocument(src)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%v\n", err)
		return vm.ExitCode(err)
	}

	prog, err := loader.Load(doc)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%v\n", err)
		return vm.ExitCode(err)
	}

	if c.List {
		for _, line := range vm.Disassemble(prog) {
			fmt.Fprintln(stdio.Stdout, line)
		}
		return 0
	}

	input := stdio.Stdin
	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%v\n", err)
			return int(vm.CodeInternal)
		}
		defer f.Close()
		input = f
	}

	out := bufio.NewWriter(stdio.Stdout)
	defer out.Flush()

	opts := []vm.Option{
		vm.Input(vm.NewInputPort(input)),
		vm.Output(out),
		vm.ErrorOutput(stdio.Stderr),
	}
	if cfg.MaxSteps > 0 {
		opts = append(opts, vm.MaxSteps(cfg.MaxSteps))
	}

	in := vm.New(prog, opts...)
	runErr := in.RunContext(ctx)
	out.Flush()

	if runErr != nil {
		if cfg.Debug {
			fmt.Fprintf(stdio.Stderr, "%+v\n", runErr)
		} else {
			fmt.Fprintf(stdio.Stderr, "%v\n", runErr)
		}
		return vm.ExitCode(runErr)
	}
	return in.ExitStatus()
}

func main() {
	c := &Cmd{}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
