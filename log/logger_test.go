package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	SetLevel(Warning)
	defer SetLevel(Notice)

	logger := New("test")
	logger.Info("hidden message")
	logger.Warning("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Fatalf("expected info message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected warning message tagged with module name; got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	type spec struct {
		in    string
		level Level
		ok    bool
	}
	specs := []spec{
		{"debug", Debug, true},
		{"INFO", Info, true},
		{"notice", Notice, true},
		{"warn", Warning, true},
		{"error", Error, true},
		{"loud", Notice, false},
	}

	for idx, s := range specs {
		level, ok := ParseLevel(s.in)
		if level != s.level || ok != s.ok {
			t.Fatalf("[spec %d] expected (%d, %t); got (%d, %t)", idx, s.level, s.ok, level, ok)
		}
	}
}
