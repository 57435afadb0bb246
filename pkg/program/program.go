package program

// Cell is one fixed-width slot of a tape
type Cell = uint8

const (
	MaxCell Cell = 1<<8 - 1

	// DefaultCapacity is the number of slots addressable by a 16 bit pointer
	DefaultCapacity = 1<<16 - 1

	// Sentinel marks the end of the program
	Sentinel Cell = 0
)

const (
	Increment = '+'
	Decrement = '-'
	Right     = '>'
	Left      = '<'
	Write     = '.'
	Read      = ','
	LoopOpen  = '['
	LoopClose = ']'
)

// Program is an immutable, zero-padded instruction tape
type Program struct {
	tape      []Cell // instruction cells, len(tape) == capacity
	length    int    // number of characters actually loaded
	truncated bool   // source had more characters than capacity
}

// Load fills a tape of the given capacity with the characters of text.
// Each character is truncated to the cell width. Characters that do not
// fit are dropped and reported through Truncated.
func Load(text string, capacity int) *Program {
	if capacity < 1 {
		panic("program: capacity must be positive")
	}

	p := &Program{tape: make([]Cell, capacity)}

	for _, ch := range text {
		if p.length == capacity {
			p.truncated = true
			break
		}

		p.tape[p.length] = Cell(ch)
		p.length++
	}

	return p
}

// At returns the cell at index i
func (p *Program) At(i int) Cell {
	return p.tape[i]
}

// Cap returns the tape capacity
func (p *Program) Cap() int {
	return len(p.tape)
}

// Len returns how many characters of the source were loaded
func (p *Program) Len() int {
	return p.length
}

// Truncated reports whether the source was longer than the tape
func (p *Program) Truncated() bool {
	return p.truncated
}

// MatchForward scans forward from the instruction after open for the
// matching LoopClose and returns its index. Zero cells inside a skipped
// body do not end the scan; only the end of the tape does.
func (p *Program) MatchForward(open int) (int, bool) {
	depth := 1

	for i := open + 1; i < len(p.tape); i++ {
		switch p.tape[i] {
		case LoopOpen:
			depth++
		case LoopClose:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

// String returns the loaded portion of the tape
func (p *Program) String() string {
	return string(p.tape[:p.length])
}
