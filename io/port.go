// Package io provides the input/output devices for the playfield
// machine. Programs read and write through a Port, which keeps the
// interpreter dispatch free of host stream details.
package io

// Port is the device interface the interpreter drives.
//
// Reads report ok as false at end of input; the interpreter
// substitutes the language's end-of-input values. Write errors are
// host failures, never program conditions.
type Port interface {
	// ReadChar reads a single character.
	ReadChar() (r rune, ok bool)
	// ReadNumber reads the next decimal number, skipping any
	// non-numeric text before it.
	ReadNumber() (n int64, ok bool)
	// WriteChar writes a single character.
	WriteChar(r rune) error
	// WriteNumber writes a decimal number and a trailing space.
	WriteNumber(n int64) error
}
