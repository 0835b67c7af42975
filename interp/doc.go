// Package interp implements the playfield machine interpreter.
//
// The machine is an instruction pointer walking a toroidal grid of
// character cells in one of four directions, executing each cell it
// lands on against an operand stack. Programs may rewrite their own
// cells while running. Anomalies the language tolerates (stack
// underflow, division by zero, end of input, out-of-range operand
// coordinates) substitute fixed values and keep running; the only
// fatal conditions are host output failures, invalid character output
// codes, and internal invariant violations.
package interp
