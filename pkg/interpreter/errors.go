package interpreter

import (
	"bfcore/pkg/program"
	"bfcore/pkg/stack"
	"errors"
	"fmt"
)

var (
	// ErrLoopStackOverflow is returned when a '[' would nest deeper than the loop limit
	ErrLoopStackOverflow = fmt.Errorf("nested loop limit exceeded: %w", stack.ErrOverflow)
	// ErrLoopStackUnderflow is returned when a ']' has no open loop to return to
	ErrLoopStackUnderflow = fmt.Errorf("unmatched ']': %w", stack.ErrUnderflow)
	// ErrUnterminatedLoop is returned when a '[' has no matching ']'
	ErrUnterminatedLoop = errors.New("unterminated loop")
	// ErrInstructionOverrun is returned when the program fills the tape and has no sentinel
	ErrInstructionOverrun = errors.New("instruction pointer ran past the end of the program tape")
	// ErrMaxStepsExceeded is returned once WithMaxSteps is reached
	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
)

// ExecError is a fatal condition raised while executing an instruction
type ExecError struct {
	Op  program.Cell // instruction being executed
	IP  int          // its position on the program tape
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s at instruction %d (%q)", e.Err, e.IP, rune(e.Op))
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
