package interp

import (
	"github.com/ezrec/bef93/field"
)

// Stack is the operand stack. Depth is unbounded, and reads below the
// bottom substitute zero instead of faulting.
type Stack struct {
	Data []field.Cell
}

func (s *Stack) Push(value field.Cell) {
	s.Data = append(s.Data, value)
}

// Pop returns the top of stack, or zero when the stack is empty.
func (s *Stack) Pop() (value field.Cell) {
	if len(s.Data) == 0 {
		return
	}

	value = s.Data[len(s.Data)-1]
	s.Data = s.Data[:len(s.Data)-1]
	return
}

func (s *Stack) Peek() (value field.Cell, ok bool) {
	if len(s.Data) == 0 {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

// Dup pops the top of stack and pushes it back twice. An empty stack
// gains two zeros.
func (s *Stack) Dup() {
	value := s.Pop()
	s.Push(value)
	s.Push(value)
}

// Swap exchanges the top two entries, substituting zeros when absent.
func (s *Stack) Swap() {
	a := s.Pop()
	b := s.Pop()
	s.Push(a)
	s.Push(b)
}

// Drop discards the top of stack.
func (s *Stack) Drop() {
	s.Pop()
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
