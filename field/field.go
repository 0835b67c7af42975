// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package field implements the program playfield, a mutable grid of
// character cells addressed on a torus.
package field

import (
	"fmt"
	"iter"
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cell is a single playfield cell, and also the operand word size.
type Cell int64

const (
	CELL_EMPTY = Cell(0)  // Unwritten playfield positions read as empty.
	CELL_EOF   = Cell(-1) // End-of-input sentinel for character reads.
)

// Canonical playfield geometry.
const (
	FIELD_COLUMNS = 80
	FIELD_ROWS    = 25
)

var _field_defines = map[string]string{
	"FIELD_COLUMNS": fmt.Sprintf("%v", FIELD_COLUMNS),
	"FIELD_ROWS":    fmt.Sprintf("%v", FIELD_ROWS),
}

// Defines returns the published playfield constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(_field_defines)
}

// Field is program text as a mutable grid. Dimensions are fixed at
// load; cell contents are not.
type Field struct {
	Cell []Cell // Cell storage, row-major.

	width  int
	height int
}

// Load parses program text into a new playfield. The widest line sets
// the width, the line count sets the height, and short lines pad out
// with CELL_EMPTY.
func Load(src string) (fd *Field, err error) {
	if !utf8.ValidString(src) {
		err = ErrEncoding
		return
	}

	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.TrimSuffix(src, "\n")
	lines := strings.Split(src, "\n")

	var width int
	for _, line := range lines {
		chars := utf8.RuneCountInString(line)
		if chars > width {
			width = chars
		}
	}
	height := len(lines)

	if width == 0 {
		err = ErrFieldEmpty
		return
	}

	fd = &Field{
		Cell:   make([]Cell, width*height),
		width:  width,
		height: height,
	}

	for y, line := range lines {
		for x, r := range []rune(line) {
			fd.Cell[y*width+x] = Cell(r)
		}
	}

	return
}

// Width of the playfield, fixed at load.
func (fd *Field) Width() int {
	return fd.width
}

// Height of the playfield, fixed at load.
func (fd *Field) Height() int {
	return fd.height
}

// Get reads the cell at (x, y). Coordinates must be in range.
func (fd *Field) Get(x int, y int) Cell {
	return fd.Cell[y*fd.width+x]
}

// Put overwrites the cell at (x, y). Coordinates must be in range.
func (fd *Field) Put(x int, y int, value Cell) {
	fd.Cell[y*fd.width+x] = value
}

// wrap folds a cell coordinate into [0, limit) on the torus.
func wrap(v Cell, limit int) int {
	folded := int(v % Cell(limit))
	if folded < 0 {
		folded += limit
	}
	return folded
}

// GetWrap reads the cell at operand coordinates, wrapped modulo the
// playfield dimensions.
func (fd *Field) GetWrap(x Cell, y Cell) Cell {
	return fd.Get(wrap(x, fd.width), wrap(y, fd.height))
}

// PutWrap writes the cell at operand coordinates, wrapped modulo the
// playfield dimensions.
func (fd *Field) PutWrap(x Cell, y Cell, value Cell) {
	fd.Put(wrap(x, fd.width), wrap(y, fd.height), value)
}

// String renders the playfield back to text. Empty and unprintable
// cells render as spaces.
func (fd *Field) String() (text string) {
	for y := range fd.height {
		row := make([]rune, fd.width)
		for x := range fd.width {
			cell := fd.Get(x, y)
			r := ' '
			if cell > 0x20 && cell <= Cell(unicode.MaxRune) && unicode.IsPrint(rune(cell)) {
				r = rune(cell)
			}
			row[x] = r
		}
		text += string(row) + "\n"
	}
	return
}
