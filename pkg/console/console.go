package console

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// Reader hands out one rune per call, reading a whole line from the
// underlying reader only when its buffer runs dry. The newline is part
// of the line. Once input is exhausted it yields '\0'.
type Reader struct {
	r   *bufio.Reader
	buf []rune
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

func (c *Reader) Input() (rune, error) {
	if len(c.buf) == 0 {
		line, err := c.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		c.buf = []rune(line)
	}

	if len(c.buf) == 0 {
		return 0, nil
	}

	ch := c.buf[0]
	c.buf = c.buf[1:]

	return ch, nil
}

// Buffered returns how many runes of the current line are still pending
func (c *Reader) Buffered() int {
	return len(c.buf)
}

// Writer encodes each rune as UTF-8 and writes it through immediately
type Writer struct {
	w   io.Writer
	buf [utf8.UTFMax]byte
	n   int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (c *Writer) Output(ch rune) error {
	size := utf8.EncodeRune(c.buf[:], ch)
	if _, err := c.w.Write(c.buf[:size]); err != nil {
		return err
	}

	c.n++
	return nil
}

// Count returns how many characters were written
func (c *Writer) Count() int {
	return c.n
}
