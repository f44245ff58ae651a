package fault

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"config", &ConfigError{Msg: "bad roster"}, ExitValidation},
		{"validation", &ValidationError{Msg: "no files"}, ExitValidation},
		{"state", &StateError{Msg: "backup exists"}, ExitGeneral},
		{"cancelled", &CancelledError{Checkpoint: "rename confirmation"}, ExitCancelled},
		{"plain", errors.New("disk full"), ExitGeneral},
		{"wrapped validation", fmt.Errorf("context: %w", &ValidationError{Msg: "dup"}), ExitValidation},
		{"wrapped cancelled", fmt.Errorf("context: %w", &CancelledError{Checkpoint: "undo"}), ExitCancelled},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestValidationErrorListsDetails(t *testing.T) {
	err := &ValidationError{Msg: "unsupported file types", Details: []string{"a.txt", "b.pdf"}}
	msg := err.Error()
	for _, want := range []string{"unsupported file types", "a.txt", "b.pdf"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestValidationErrorWithoutDetails(t *testing.T) {
	err := &ValidationError{Msg: "no files"}
	if err.Error() != "no files" {
		t.Errorf("Error() = %q, want %q", err.Error(), "no files")
	}
}

func TestConfigErrorUnwrap(t *testing.T) {
	inner := errors.New("open failed")
	err := &ConfigError{Msg: "opening roster", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("ConfigError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "open failed") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestItemErrorMessage(t *testing.T) {
	err := &ItemError{Name: "img1.png", Op: "rename", Err: errors.New("file locked")}
	want := "rename img1.png: file locked"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
