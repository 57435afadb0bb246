package interpreter

import (
	"bfcore/pkg/program"
	"bfcore/pkg/stack"
)

// DefaultLoopLimit is how deeply loops may nest unless WithLoopLimit says otherwise
const DefaultLoopLimit = 1024

// Interpreter executes a program tape against a data tape.
// It is not safe for concurrent use.
type Interpreter struct {
	prog *program.Program // instruction tape, immutable
	ip   int              // instruction pointer (index into prog)

	tape []program.Cell // data tape
	dp   int            // data pointer (index into tape)

	loops *stack.Stack // loop-return stack of '[' positions

	in  Input  // owned by the caller, never reset
	out Output // owned by the caller, never reset

	tapeSize  int
	loopLimit int
	maxSteps  int // maximum steps (0 = unlimited)
	steps     int // steps executed

	err error // fatal error of the current run, kept until Reset
}

// State is a snapshot of the interpreter registers
type State struct {
	IP        int
	DP        int
	Cell      program.Cell
	LoopDepth int
	LoopLimit int
	OpenLoops []int // positions of the '[' still open, outermost first
	Steps     int
}

type Option func(*Interpreter)

// WithTapeSize sets the capacity of both the program and the data tape
func WithTapeSize(n int) Option {
	return func(i *Interpreter) { i.tapeSize = n }
}

// WithLoopLimit sets how many loops may be nested
func WithLoopLimit(n int) Option {
	return func(i *Interpreter) { i.loopLimit = n }
}

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// New creates an interpreter for text. A nil in or out falls back to
// NullInput or Discard.
func New(text string, in Input, out Output, opts ...Option) *Interpreter {
	it := &Interpreter{
		in:        in,
		out:       out,
		tapeSize:  program.DefaultCapacity,
		loopLimit: DefaultLoopLimit,
	}

	for _, o := range opts {
		o(it)
	}

	if it.tapeSize < 1 {
		it.tapeSize = program.DefaultCapacity
	}

	if it.loopLimit < 1 {
		it.loopLimit = DefaultLoopLimit
	}

	if it.in == nil {
		it.in = NullInput{}
	}

	if it.out == nil {
		it.out = Discard{}
	}

	it.prog = program.Load(text, it.tapeSize)
	it.tape = make([]program.Cell, it.tapeSize)
	it.loops = stack.NewStack(it.loopLimit)

	return it
}

// Reset clears the data tape, both pointers, the loop stack and the step
// counter. Collaborator state is left untouched.
func (i *Interpreter) Reset() {
	i.ip = 0
	i.dp = 0
	clear(i.tape)
	i.loops.Reset()
	i.steps = 0
	i.err = nil
}

// Run resets the interpreter and executes until the sentinel or an error.
// Input already consumed by the Input collaborator stays consumed.
func (i *Interpreter) Run() error {
	i.Reset()

	for {
		halted, err := i.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// Step executes a single instruction, returning (halted, error).
// After a fatal error every further Step returns that error until Reset.
func (i *Interpreter) Step() (bool, error) {
	if i.err != nil {
		return false, i.err
	}

	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		i.err = i.fail(ErrMaxStepsExceeded)
		return false, i.err
	}

	halted, err := coreStep(i)
	if err != nil {
		i.err = err
		return false, err
	}

	if !halted {
		i.steps++
	}

	return halted, nil
}

// Program returns the loaded instruction tape
func (i *Interpreter) Program() *program.Program {
	return i.prog
}

// State returns the current registers
func (i *Interpreter) State() State {
	return State{
		IP:        i.ip,
		DP:        i.dp,
		Cell:      i.tape[i.dp],
		LoopDepth: i.loops.Size(),
		LoopLimit: i.loops.Cap(),
		OpenLoops: append([]int(nil), i.loops.Array()...),
		Steps:     i.steps,
	}
}

// Cells returns a copy of the first n data cells
func (i *Interpreter) Cells(n int) []program.Cell {
	n = min(n, len(i.tape))
	return append([]program.Cell(nil), i.tape[:n]...)
}
