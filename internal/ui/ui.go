// Package ui is the event sink for user-visible output. The engine talks to
// the Sink interface only; formatting and coloring live in the terminal
// implementation so tests can capture plain events.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Sink receives user-visible events from the engine.
type Sink interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Terminal writes leveled, optionally colored lines to a writer.
type Terminal struct {
	w     io.Writer
	color bool
}

// NewTerminal returns a sink writing to w. Color is enabled only when w is
// a TTY and NO_COLOR is unset.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, color: detectColor(w)}
}

// SetColorEnabled overrides color detection (for testing).
func (t *Terminal) SetColorEnabled(enabled bool) { t.color = enabled }

func detectColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *Terminal) line(tag, code, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if t.color {
		fmt.Fprintf(t.w, "\033[%sm[%s]\033[0m %s\n", code, tag, msg)
		return
	}
	fmt.Fprintf(t.w, "[%s] %s\n", tag, msg)
}

// Info reports run progress.
func (t *Terminal) Info(format string, args ...any) { t.line("INFO", "36", format, args...) }

// Success reports a completed step.
func (t *Terminal) Success(format string, args ...any) { t.line("OK", "32", format, args...) }

// Warn reports a recoverable condition.
func (t *Terminal) Warn(format string, args ...any) { t.line("WARN", "33", format, args...) }

// Error reports a failure.
func (t *Terminal) Error(format string, args ...any) { t.line("ERROR", "31", format, args...) }
