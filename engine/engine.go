// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"iter"
	"strings"

	"github.com/ezrec/bef93/field"
	"github.com/ezrec/bef93/internal"
	"github.com/ezrec/bef93/interp"
	"github.com/ezrec/bef93/io"
)

const VERSION = "1.0.0"

// Engine runs one program per instance. Playfield, stack, and pointer
// state are owned by the embedded interpreter, which Load replaces.
type Engine struct {
	Verbose bool // If set, verbosely log execution.

	*interp.Interp            // Reference to the interpreter simulation.
	Console        io.Console // Console IO device.

	Seed     int64 // Entropy seed for random travel; 0 picks a host seed.
	MaxSteps int   // Step budget; 0 runs unbounded.
	Strict   bool  // Reject programs larger than the canonical playfield.
}

// NewEngine creates a new engine.
func NewEngine() (eng *Engine) {
	eng = &Engine{}

	return
}

// Defines returns the defines published to playfield templates.
func (eng *Engine) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		field.Defines(),
		eng.Console.Defines(),
	)
}

// Load parses program text and readies the interpreter.
func (eng *Engine) Load(src string) (err error) {
	fd, err := field.Load(src)
	if err != nil {
		return
	}

	if eng.Strict && (fd.Width() > field.FIELD_COLUMNS || fd.Height() > field.FIELD_ROWS) {
		err = &ErrFieldSize{Width: fd.Width(), Height: fd.Height()}
		return
	}

	eng.Interp = interp.NewInterp(fd, &eng.Console)
	eng.Interp.Verbose = eng.Verbose
	if eng.Seed != 0 {
		eng.Interp.Seed(eng.Seed)
	}

	return
}

// Expand expands template text into plain program text.
func (eng *Engine) Expand(src string) (out string, err error) {
	tmpl := &field.Template{Verbose: eng.Verbose}
	for attr, val := range eng.Defines() {
		tmpl.Predefine(attr, val)
	}

	out, err = tmpl.Expand(strings.NewReader(src))
	return
}

// LoadTemplate expands template text and loads the result.
func (eng *Engine) LoadTemplate(src string) (err error) {
	expanded, err := eng.Expand(src)
	if err != nil {
		return
	}

	err = eng.Load(expanded)
	return
}

// Result is the terminal outcome of a run.
type Result struct {
	State interp.State // Terminal machine state.
	Steps int          // Count of executed steps.
	Fault error        // Fault reason, when State is STATE_FAULTED.
}

// ExitCode maps the outcome to a process exit status.
func (res Result) ExitCode() int {
	if res.State == interp.STATE_HALTED {
		return 0
	}
	return 1
}

// Run drives the interpreter until the program halts, faults, or
// exceeds the step budget.
func (eng *Engine) Run() (res Result) {
	if eng.Interp == nil {
		res = Result{State: interp.STATE_FAULTED, Fault: ErrNotLoaded}
		return
	}

	in := eng.Interp
	in.Verbose = eng.Verbose

	var done bool
	for !done {
		if eng.MaxSteps > 0 && in.Steps >= eng.MaxSteps {
			in.Abort(ErrStepLimit(eng.MaxSteps))
			break
		}
		done, _ = in.Step()
	}

	res = Result{
		State: in.State,
		Steps: in.Steps,
		Fault: in.Fault,
	}

	if res.Fault != nil {
		res.Fault = &ErrRuntime{X: in.X, Y: in.Y, Err: res.Fault}
	}

	return
}
