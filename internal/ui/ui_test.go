package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalPlainOutput(t *testing.T) {
	out := new(bytes.Buffer)
	term := NewTerminal(out)

	term.Info("found %d files", 3)
	term.Success("done")
	term.Warn("count mismatch")
	term.Error("rename failed")

	got := out.String()
	for _, want := range []string{
		"[INFO] found 3 files",
		"[OK] done",
		"[WARN] count mismatch",
		"[ERROR] rename failed",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
	// A bytes.Buffer is not a TTY, so no escape codes.
	if strings.Contains(got, "\033[") {
		t.Error("color codes must be off for non-TTY writers")
	}
}

func TestTerminalColorOverride(t *testing.T) {
	out := new(bytes.Buffer)
	term := NewTerminal(out)
	term.SetColorEnabled(true)

	term.Error("boom")
	if !strings.Contains(out.String(), "\033[31m") {
		t.Errorf("output %q missing red escape", out.String())
	}
}
