package stack

import "errors"

var (
	ErrOverflow  = errors.New("loop stack overflow")
	ErrUnderflow = errors.New("loop stack underflow")
)

// Stack is a fixed-capacity LIFO of instruction pointer values.
// The backing array is allocated once and never grows.
type Stack struct {
	a []int
	l int
}

// NewStack creates a new stack that holds at most limit elements
func NewStack(limit int, elm ...int) *Stack {
	stack := Stack{
		a: make([]int, limit),
		l: 0,
	}

	for _, e := range elm {
		if err := stack.Push(e); err != nil {
			break
		}
	}

	return &stack
}

// Push adds an element to the top of the stack
func (s *Stack) Push(elm int) error {
	if s.l >= len(s.a) {
		return ErrOverflow
	}

	s.a[s.l] = elm
	s.l++

	return nil
}

// Pop removes and returns the top element of the stack, zeroing its slot
func (s *Stack) Pop() (int, error) {
	if s.l < 1 {
		return 0, ErrUnderflow
	}

	s.l--
	elm := s.a[s.l]
	s.a[s.l] = 0

	return elm, nil
}

// Peek returns the top element of the stack without removing it
func (s *Stack) Peek() (int, error) {
	if s.l < 1 {
		return 0, ErrUnderflow
	}

	return s.a[s.l-1], nil
}

// Reset empties the stack and clears every slot
func (s *Stack) Reset() {
	clear(s.a)
	s.l = 0
}

// Get the size of the stack
func (s *Stack) Size() int {
	return s.l
}

// Cap returns the maximum depth of the stack
func (s *Stack) Cap() int {
	return len(s.a)
}

// Array returns the live portion of the stack, bottom first
func (s Stack) Array() []int {
	return s.a[:s.l]
}
