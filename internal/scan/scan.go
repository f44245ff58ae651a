// Package scan enumerates and validates the candidate photo files of a
// target directory. Lexicographic filename order is the only correlation
// mechanism to the roster, so the returned sequence is always sorted.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NYJC-Edtech/psutils/internal/fault"
)

// Candidate is one photo file discovered in the target directory.
type Candidate struct {
	// Name is the base filename, including extension.
	Name string
	// Extension is the original extension with leading dot, case preserved.
	Extension string
	// AbsolutePath is the full path to the file.
	AbsolutePath string
}

// Candidates lists the non-directory entries of dir, validates every
// extension against the whitelist, and returns the files sorted ascending
// by name. skip names files excluded from enumeration (the manifest file,
// which the tool itself leaves behind). Extension matching is
// case-insensitive; whitelist entries must be lowercase.
func Candidates(dir string, extensions []string, skip ...string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[ext] = struct{}{}
	}
	skipped := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		skipped[name] = struct{}{}
	}

	var files []Candidate
	var offenders []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if _, ok := skipped[name]; ok {
			continue
		}
		ext := filepath.Ext(name)
		if _, ok := allowed[strings.ToLower(ext)]; !ok {
			offenders = append(offenders, name)
			continue
		}
		files = append(files, Candidate{
			Name:         name,
			Extension:    ext,
			AbsolutePath: filepath.Join(dir, name),
		})
	}

	if len(offenders) > 0 {
		return nil, &fault.ValidationError{
			Msg:     fmt.Sprintf("unsupported file types in %s (allowed: %s)", dir, strings.Join(extensions, ", ")),
			Details: offenders,
		}
	}
	if len(files) == 0 {
		return nil, &fault.ValidationError{Msg: "no files found in " + dir}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
