// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package interp

import (
	"log"
	"math/rand"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ezrec/bef93/field"
	"github.com/ezrec/bef93/io"
)

// Direction of instruction pointer travel.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	DIR_RIGHT = Direction(0) // right
	DIR_DOWN  = Direction(1) // down
	DIR_LEFT  = Direction(2) // left
	DIR_UP    = Direction(3) // up
)

// State of the machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Interp is the simulation context for one program run.
type Interp struct {
	Verbose bool // If set, verbosely log execution.

	Field *field.Field // Reference to the playfield.
	Stack Stack        // Operand stack.
	Port  io.Port      // Input/output device.

	X, Y       int       // Instruction pointer position.
	Dir        Direction // Travel direction.
	StringMode bool      // Cells push their own value while set.
	State      State     // Machine state.
	Fault      error     // Fault reason, when State is STATE_FAULTED.

	Rand *rand.Rand // Entropy for the random travel opcode.

	Steps int // Count of executed steps.
}

// NewInterp creates an interpreter over a loaded playfield.
func NewInterp(fd *field.Field, port io.Port) (in *Interp) {
	in = &Interp{
		Field: fd,
		Port:  port,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	return
}

// Seed reseeds the random travel source, for reproducible runs.
func (in *Interp) Seed(seed int64) {
	in.Rand = rand.New(rand.NewSource(seed))
}

// Reset restores the initial machine state. The playfield keeps any
// self-modifications, so a pristine re-run needs a fresh load.
func (in *Interp) Reset() {
	in.X = 0
	in.Y = 0
	in.Dir = DIR_RIGHT
	in.StringMode = false
	in.State = STATE_RUNNING
	in.Fault = nil
	in.Stack.Reset()
	in.Steps = 0
}

// Halt stops the run from outside the dispatch loop.
func (in *Interp) Halt() {
	in.State = STATE_HALTED
}

// Abort marks the run faulted with the given reason.
func (in *Interp) Abort(err error) {
	in.State = STATE_FAULTED
	in.Fault = err
}

// advance moves the pointer one cell, wrapping at the playfield edges.
func (in *Interp) advance() {
	switch in.Dir {
	case DIR_RIGHT:
		in.X += 1
		if in.X >= in.Field.Width() {
			in.X = 0
		}
	case DIR_DOWN:
		in.Y += 1
		if in.Y >= in.Field.Height() {
			in.Y = 0
		}
	case DIR_LEFT:
		in.X -= 1
		if in.X < 0 {
			in.X = in.Field.Width() - 1
		}
	case DIR_UP:
		in.Y -= 1
		if in.Y < 0 {
			in.Y = in.Field.Height() - 1
		}
	}
}

// Step fetches and executes the cell under the pointer, then advances.
// Once the machine leaves STATE_RUNNING, done is true and err holds
// the fault reason, if any.
func (in *Interp) Step() (done bool, err error) {
	if in.State != STATE_RUNNING {
		done = true
		err = in.Fault
		return
	}

	// Wraparound keeps the pointer in bounds; escaping is a defect.
	if in.X < 0 || in.X >= in.Field.Width() || in.Y < 0 || in.Y >= in.Field.Height() {
		err = &ErrPointerRange{X: in.X, Y: in.Y}
		in.Abort(err)
		done = true
		return
	}

	cell := in.Field.Get(in.X, in.Y)

	if in.Verbose {
		log.Printf("%3v,%3v: %v", in.X, in.Y, cellString(cell))
	}

	if in.StringMode {
		if cell == OP_STRING {
			in.StringMode = false
		} else {
			in.Stack.Push(cell)
		}
	} else {
		err = in.Execute(cell)
		if err != nil {
			in.Abort(err)
			done = true
			return
		}
	}

	in.Steps += 1

	if in.State != STATE_RUNNING {
		done = true
		return
	}

	in.advance()

	return
}

// Run steps the machine until the program halts or faults.
func (in *Interp) Run() (err error) {
	var done bool
	for !done {
		done, err = in.Step()
	}
	return
}

// Execute runs a single cell as an opcode. Unknown cells, including
// spaces and empty cells, are no-ops. Anomalies the language tolerates
// are substituted here and never return an error.
func (in *Interp) Execute(cell field.Cell) (err error) {
	if cell >= '0' && cell <= '9' {
		in.Stack.Push(cell - '0')
		return
	}

	switch cell {
	case OP_ADD:
		a := in.Stack.Pop()
		b := in.Stack.Pop()
		in.Stack.Push(b + a)
	case OP_SUB:
		a := in.Stack.Pop()
		b := in.Stack.Pop()
		in.Stack.Push(b - a)
	case OP_MUL:
		a := in.Stack.Pop()
		b := in.Stack.Pop()
		in.Stack.Push(b * a)
	case OP_DIV:
		a := in.Stack.Pop()
		b := in.Stack.Pop()
		if a == 0 {
			in.Stack.Push(0)
		} else {
			in.Stack.Push(b / a)
		}
	case OP_MOD:
		a := in.Stack.Pop()
		b := in.Stack.Pop()
		if a == 0 {
			in.Stack.Push(0)
		} else {
			in.Stack.Push(b % a)
		}
	case OP_NOT:
		a := in.Stack.Pop()
		if a == 0 {
			in.Stack.Push(1)
		} else {
			in.Stack.Push(0)
		}
	case OP_GREATER:
		a := in.Stack.Pop()
		b := in.Stack.Pop()
		if b > a {
			in.Stack.Push(1)
		} else {
			in.Stack.Push(0)
		}
	case OP_RIGHT:
		in.Dir = DIR_RIGHT
	case OP_LEFT:
		in.Dir = DIR_LEFT
	case OP_UP:
		in.Dir = DIR_UP
	case OP_DOWN:
		in.Dir = DIR_DOWN
	case OP_RANDOM:
		in.Dir = Direction(in.Rand.Intn(4))
	case OP_IF_EW:
		if in.Stack.Pop() == 0 {
			in.Dir = DIR_RIGHT
		} else {
			in.Dir = DIR_LEFT
		}
	case OP_IF_NS:
		if in.Stack.Pop() == 0 {
			in.Dir = DIR_DOWN
		} else {
			in.Dir = DIR_UP
		}
	case OP_STRING:
		in.StringMode = true
	case OP_DUP:
		in.Stack.Dup()
	case OP_SWAP:
		in.Stack.Swap()
	case OP_DROP:
		in.Stack.Drop()
	case OP_OUT_NUMBER:
		err = in.Port.WriteNumber(int64(in.Stack.Pop()))
	case OP_OUT_CHAR:
		value := in.Stack.Pop()
		if value < 0 || value > unicode.MaxRune || !utf8.ValidRune(rune(value)) {
			err = ErrCharCode(value)
			return
		}
		err = in.Port.WriteChar(rune(value))
	case OP_BRIDGE:
		in.advance()
	case OP_PUT:
		y := in.Stack.Pop()
		x := in.Stack.Pop()
		value := in.Stack.Pop()
		in.Field.PutWrap(x, y, value)
	case OP_GET:
		y := in.Stack.Pop()
		x := in.Stack.Pop()
		in.Stack.Push(in.Field.GetWrap(x, y))
	case OP_IN_NUMBER:
		value, ok := in.Port.ReadNumber()
		if !ok {
			value = 0
		}
		in.Stack.Push(field.Cell(value))
	case OP_IN_CHAR:
		r, ok := in.Port.ReadChar()
		if ok {
			in.Stack.Push(field.Cell(r))
		} else {
			in.Stack.Push(field.CELL_EOF)
		}
	case OP_HALT:
		in.State = STATE_HALTED
	default:
		// No-op.
	}

	return
}
