// Package prompt abstracts every interactive checkpoint of a run: folder
// selection, free-text entry, and yes/no confirmation. The engine depends
// on the Prompter interface only, so a scripted implementation drives it in
// tests without any terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// ErrCancelled is returned when the operator cancels a folder pick or
// closes the input stream mid-prompt.
var ErrCancelled = errors.New("cancelled by operator")

// Prompter is the contract every interactive collaborator satisfies.
type Prompter interface {
	// PickFolder returns an absolute directory path, or ErrCancelled.
	PickFolder(purpose string) (string, error)
	// ReadLine solicits one line of text (e.g. the class identifier).
	ReadLine(message string) (string, error)
	// Confirm asks a yes/no question; false means the operator declined.
	Confirm(message string) (bool, error)
}

// Stdio prompts on an input/output stream pair, normally the terminal.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdio returns a Prompter reading from in and writing prompts to out.
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out}
}

// Interactive reports whether stdin is a terminal, i.e. whether soliciting
// input can work at all.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PickFolder asks for a directory path. An empty line cancels. The path is
// resolved to absolute and must name an existing directory.
func (s *Stdio) PickFolder(purpose string) (string, error) {
	line, err := s.readLine("Folder " + purpose + " (empty line cancels): ")
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", ErrCancelled
	}
	abs, err := filepath.Abs(line)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", line, err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", abs, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

// ReadLine solicits one line of text.
func (s *Stdio) ReadLine(message string) (string, error) {
	return s.readLine(message + ": ")
}

// Confirm asks a yes/no question. Only "y"/"yes" (case-insensitive) count
// as approval.
func (s *Stdio) Confirm(message string) (bool, error) {
	line, err := s.readLine(message + " [y/N]: ")
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(line)
	return answer == "y" || answer == "yes", nil
}

func (s *Stdio) readLine(promptText string) (string, error) {
	fmt.Fprint(s.out, promptText)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
