package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"math"
	"strconv"
)

// Console connects a Port to host streams. Writes pass straight
// through unbuffered, so partial program output survives a fault. A
// zero Console reads as immediate end of input and discards output.
type Console struct {
	Input  io.Reader // Program input stream.
	Output io.Writer // Program output stream.

	reader *bufio.Reader
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}

// buffered wraps Input once for scanning.
func (con *Console) buffered() *bufio.Reader {
	if con.reader == nil {
		input := con.Input
		if input == nil {
			input = eofReader{}
		}
		con.reader = bufio.NewReader(input)
	}
	return con.reader
}

// writer returns the output stream.
func (con *Console) writer() io.Writer {
	if con.Output == nil {
		return io.Discard
	}
	return con.Output
}

// ReadChar reads one character from the input stream.
func (con *Console) ReadChar() (r rune, ok bool) {
	r, _, err := con.buffered().ReadRune()
	if err != nil {
		return 0, false
	}

	return r, true
}

// ReadNumber scans forward to the next digit run, honoring a sign
// immediately before it, and parses the run as a decimal number. Text
// before the run is consumed, the delimiter after it is not. Runs
// beyond the 64-bit range saturate.
func (con *Console) ReadNumber() (n int64, ok bool) {
	input := con.buffered()

	negative := false
	var digits []byte

	for {
		b, err := input.ReadByte()
		if err != nil {
			return 0, false
		}
		if b >= '0' && b <= '9' {
			digits = append(digits, b)
			break
		}
		if b == '-' || b == '+' {
			peek, perr := input.Peek(1)
			if perr == nil && peek[0] >= '0' && peek[0] <= '9' {
				negative = b == '-'
			}
		}
	}

	for {
		b, err := input.ReadByte()
		if err != nil {
			break
		}
		if b < '0' || b > '9' {
			input.UnreadByte()
			break
		}
		digits = append(digits, b)
	}

	text := string(digits)
	if negative {
		text = "-" + text
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Saturate overlong runs.
		n = math.MaxInt64
		if negative {
			n = math.MinInt64
		}
	}

	return n, true
}

// WriteChar writes a single character to the output stream.
func (con *Console) WriteChar(r rune) (err error) {
	_, err = fmt.Fprintf(con.writer(), "%c", r)
	if err != nil {
		err = errors.Join(ErrWrite, err)
	}
	return
}

// WriteNumber writes the decimal value and a trailing space.
func (con *Console) WriteNumber(n int64) (err error) {
	_, err = fmt.Fprintf(con.writer(), "%d ", n)
	if err != nil {
		err = errors.Join(ErrWrite, err)
	}
	return
}

// Defines returns the device's published constants.
func (con *Console) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}
