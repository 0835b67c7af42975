package interp

import (
	"fmt"

	"github.com/ezrec/bef93/field"
)

// Opcodes are the cell values with dispatch behavior. Digits '0'
// through '9' push their own value, and any other cell is a no-op.
const (
	OP_ADD        = field.Cell('+')  // add
	OP_SUB        = field.Cell('-')  // subtract
	OP_MUL        = field.Cell('*')  // multiply
	OP_DIV        = field.Cell('/')  // divide
	OP_MOD        = field.Cell('%')  // modulo
	OP_NOT        = field.Cell('!')  // logical not
	OP_GREATER    = field.Cell('`')  // greater than
	OP_RIGHT      = field.Cell('>')  // travel right
	OP_LEFT       = field.Cell('<')  // travel left
	OP_UP         = field.Cell('^')  // travel up
	OP_DOWN       = field.Cell('v')  // travel down
	OP_RANDOM     = field.Cell('?')  // travel randomly
	OP_IF_EW      = field.Cell('_')  // branch east/west
	OP_IF_NS      = field.Cell('|')  // branch north/south
	OP_STRING     = field.Cell('"')  // toggle string mode
	OP_DUP        = field.Cell(':')  // duplicate top of stack
	OP_SWAP       = field.Cell('\\') // swap top of stack
	OP_DROP       = field.Cell('$')  // drop top of stack
	OP_OUT_NUMBER = field.Cell('.')  // output number
	OP_OUT_CHAR   = field.Cell(',')  // output character
	OP_BRIDGE     = field.Cell('#')  // bridge over next cell
	OP_PUT        = field.Cell('p')  // put cell
	OP_GET        = field.Cell('g')  // get cell
	OP_IN_NUMBER  = field.Cell('&')  // input number
	OP_IN_CHAR    = field.Cell('~')  // input character
	OP_HALT       = field.Cell('@')  // halt
)

// cellString formats a cell for trace output.
func cellString(cell field.Cell) string {
	if cell >= 0x20 && cell < 0x7f {
		return fmt.Sprintf("'%c'", rune(cell))
	}
	return fmt.Sprintf("%#x", int64(cell))
}
