package engine

import (
	"errors"

	"github.com/ezrec/bef93/field"
	"github.com/ezrec/bef93/translate"
)

var f = translate.From

var (
	// Engine errors
	ErrNotLoaded = errors.New(f("no program loaded"))
)

// ErrStepLimit is the step budget that the run exceeded.
type ErrStepLimit int

func (el ErrStepLimit) Error() string {
	return f("step limit %v exceeded", int(el))
}

func (el ErrStepLimit) Is(err error) (ok bool) {
	_, ok = err.(ErrStepLimit)
	return
}

// ErrFieldSize reports a program larger than the canonical playfield.
type ErrFieldSize struct {
	Width  int
	Height int
}

func (ef *ErrFieldSize) Error() string {
	return f("program is %vx%v, larger than %vx%v",
		ef.Width, ef.Height, field.FIELD_COLUMNS, field.FIELD_ROWS)
}

// ErrRuntime annotates a fault with the pointer position.
type ErrRuntime struct {
	X, Y int   // Pointer position of the fault
	Err  error // Underlying fault
}

func (er *ErrRuntime) Error() string {
	return f("at %v,%v %v", er.X, er.Y, er.Err)
}

func (er *ErrRuntime) Unwrap() error {
	return er.Err
}
