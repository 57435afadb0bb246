package interpreter

import (
	"bfcore/pkg/program"
	"fmt"
)

// coreStep is the main single-step execution function
// it returns (halted, error).
func coreStep(i *Interpreter) (bool, error) {
	op := i.prog.At(i.ip)

	if op == program.Sentinel {
		if i.loops.Size() > 0 {
			// a '[' was entered and its ']' never reached
			top, _ := i.loops.Peek()
			return false, &ExecError{Op: program.LoopOpen, IP: top, Err: ErrUnterminatedLoop}
		}
		return true, nil
	}

	switch op {
	case program.Increment:
		i.tape[i.dp]++ // wraps at MaxCell

	case program.Decrement:
		i.tape[i.dp]-- // wraps at 0

	case program.Right:
		i.dp++
		if i.dp == len(i.tape) {
			i.dp = 0
		}

	case program.Left:
		if i.dp == 0 {
			i.dp = len(i.tape)
		}
		i.dp--

	case program.Write:
		if err := i.out.Output(rune(i.tape[i.dp])); err != nil {
			return false, i.fail(fmt.Errorf("output: %w", err))
		}

	case program.Read:
		ch, err := i.in.Input()
		if err != nil {
			return false, i.fail(fmt.Errorf("input: %w", err))
		}
		i.tape[i.dp] = program.Cell(ch)

	case program.LoopOpen:
		if err := i.enterLoop(); err != nil {
			return false, err
		}

	case program.LoopClose:
		if err := i.exitLoop(); err != nil {
			return false, err
		}

	default:
		// anything else is a comment
	}

	// ip stays on the last slot so it never indexes past the tape
	next := i.ip + 1
	if next >= i.prog.Cap() {
		return false, i.fail(ErrInstructionOverrun)
	}

	i.ip = next
	return false, nil
}

// enterLoop records the '[' position when the current cell is nonzero,
// otherwise moves ip onto the matching ']' so the advance skips the body.
func (i *Interpreter) enterLoop() error {
	if i.tape[i.dp] != 0 {
		if err := i.loops.Push(i.ip); err != nil {
			return i.fail(ErrLoopStackOverflow)
		}
		return nil
	}

	end, ok := i.prog.MatchForward(i.ip)
	if !ok {
		return i.fail(ErrUnterminatedLoop)
	}

	i.ip = end
	return nil
}

// exitLoop jumps back to the innermost '[' when the current cell is
// nonzero. The advance that follows lands on the first body instruction,
// so the '[' is not pushed twice. A zero cell leaves the loop.
func (i *Interpreter) exitLoop() error {
	if i.tape[i.dp] != 0 {
		open, err := i.loops.Peek()
		if err != nil {
			return i.fail(ErrLoopStackUnderflow)
		}
		i.ip = open
		return nil
	}

	if _, err := i.loops.Pop(); err != nil {
		return i.fail(ErrLoopStackUnderflow)
	}

	return nil
}

// fail wraps err with the instruction currently under ip
func (i *Interpreter) fail(err error) error {
	return &ExecError{Op: i.prog.At(i.ip), IP: i.ip, Err: err}
}
