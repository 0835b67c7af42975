package interp

import (
	"github.com/ezrec/bef93/field"
	"github.com/ezrec/bef93/translate"
)

var f = translate.From

// ErrCharCode is a character output code with no valid encoding.
type ErrCharCode field.Cell

func (ec ErrCharCode) Error() string {
	return f("bad character code %v", int64(ec))
}

func (ec ErrCharCode) Is(err error) (ok bool) {
	_, ok = err.(ErrCharCode)
	return
}

// ErrPointerRange reports a pointer outside the playfield, which the
// wraparound rule is supposed to make impossible.
type ErrPointerRange struct {
	X, Y int
}

func (ep *ErrPointerRange) Error() string {
	return f("pointer out of range at %v,%v", ep.X, ep.Y)
}
