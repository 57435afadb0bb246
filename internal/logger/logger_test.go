package logger_test

import (
	"bfcore/internal/logger"
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, false, true)

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("program truncated", "kept", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug and info must be filtered without -v, got %q", out)
	}
	if !strings.Contains(out, "program truncated") || !strings.Contains(out, "kept=4") {
		t.Errorf("expected warning with fields, got %q", out)
	}
	if !strings.Contains(out, "BFCORE") {
		t.Errorf("expected prefix, got %q", out)
	}
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, true, true)

	l.Debug("step", "ip", 3)
	if !strings.Contains(buf.String(), "ip=3") {
		t.Errorf("expected debug output, got %q", buf.String())
	}
}
