package interpreter

// Input produces the next character for ','.
// Returning '\0' signals that input is exhausted.
type Input interface {
	Input() (rune, error)
}

// Output consumes one character for '.'
type Output interface {
	Output(ch rune) error
}

// InputFunc adapts a function to Input
type InputFunc func() (rune, error)

func (f InputFunc) Input() (rune, error) { return f() }

// OutputFunc adapts a function to Output
type OutputFunc func(ch rune) error

func (f OutputFunc) Output(ch rune) error { return f(ch) }

// NullInput always reports exhausted input
type NullInput struct{}

func (NullInput) Input() (rune, error) { return 0, nil }

// Discard drops every character
type Discard struct{}

func (Discard) Output(rune) error { return nil }
