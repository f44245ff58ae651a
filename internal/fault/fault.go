// Package fault defines the error categories used across psutils and their
// mapping to process exit codes. Fatal categories stop a run immediately;
// per-item failures are aggregated by the caller and never carried as a
// fault themselves.
package fault

import (
	"errors"
	"strings"
)

// Exit codes for the CLI surface.
const (
	ExitOK         = 0 // run completed (possibly with per-item failures)
	ExitGeneral    = 1 // I/O, backup, or other unclassified failure
	ExitValidation = 2 // bad roster, bad files, class mismatch, duplicates
	ExitCancelled  = 3 // operator declined a confirmation checkpoint
)

// ConfigError reports a roster or settings file that is missing or
// unparsable. It is fatal before any directory interaction.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ValidationError reports input that fails a pre-mutation check. Details
// carries the specific offenders (file names, available classes, colliding
// targets) so the message tells the operator how to fix the input.
type ValidationError struct {
	Msg     string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Msg
	}
	return e.Msg + ":\n  " + strings.Join(e.Details, "\n  ")
}

// StateError reports on-disk state the tool refuses to resolve on its own:
// a pre-existing backup directory, or a missing manifest on undo. The
// operator must intervene manually.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string { return e.Msg }

// CancelledError reports that the operator declined a confirmation
// checkpoint. The run ends cleanly; mutations already committed stay.
type CancelledError struct {
	Checkpoint string
}

func (e *CancelledError) Error() string {
	return "cancelled at " + e.Checkpoint
}

// ItemError records a single file's copy, rename, or restore failure.
// Item errors do not abort a batch; they are aggregated and summarized.
type ItemError struct {
	Name string
	Op   string
	Err  error
}

func (e *ItemError) Error() string {
	return e.Op + " " + e.Name + ": " + e.Err.Error()
}

func (e *ItemError) Unwrap() error { return e.Err }

// ExitCode maps err to the CLI exit code. nil maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var v *ValidationError
	var c *ConfigError
	var x *CancelledError
	switch {
	case errors.As(err, &v), errors.As(err, &c):
		return ExitValidation
	case errors.As(err, &x):
		return ExitCancelled
	default:
		return ExitGeneral
	}
}
