package console_test

import (
	"bfcore/pkg/console"
	"bfcore/pkg/interpreter"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReaderLines(t *testing.T) {
	r := console.NewReader(strings.NewReader("ab\nc"))

	expected := []rune{'a', 'b', '\n', 'c', 0, 0}
	for i, e := range expected {
		ch, err := r.Input()
		if err != nil {
			t.Fatalf("rune %d: unexpected error %v", i, err)
		}
		if ch != e {
			t.Errorf("rune %d: expected %q, got %q", i, e, ch)
		}
	}
}

func TestReaderBuffersOneLine(t *testing.T) {
	r := console.NewReader(strings.NewReader("xyz\nrest\n"))

	if _, err := r.Input(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if r.Buffered() != 3 {
		t.Errorf("expected 3 runes left of the first line, got %d", r.Buffered())
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := console.NewWriter(&buf)

	for _, ch := range "hé!" {
		if err := w.Output(ch); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}

	if buf.String() != "hé!" {
		t.Errorf("expected %q, got %q", "hé!", buf.String())
	}
	if w.Count() != 3 {
		t.Errorf("expected 3 characters, got %d", w.Count())
	}

	if err := console.NewWriter(failingWriter{}).Output('x'); !errors.Is(err, errWrite) {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestEchoProgram(t *testing.T) {
	var out bytes.Buffer
	in := console.NewReader(strings.NewReader("cat\n"))

	// copy input to output until '\0'
	it := interpreter.New(",[.,]", in, console.NewWriter(&out))
	if err := it.Run(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if out.String() != "cat\n" {
		t.Errorf("expected %q, got %q", "cat\n", out.String())
	}
}
