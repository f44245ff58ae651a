// Package plan builds the rename mapping for a run and rejects mappings
// that would collide. Building is pure: given identical inputs the mapping
// is identical, with no filesystem or clock dependence.
package plan

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/NYJC-Edtech/psutils/internal/fault"
	"github.com/NYJC-Edtech/psutils/internal/roster"
	"github.com/NYJC-Edtech/psutils/internal/scan"
)

// Mapping is a single old-name to new-name pairing with full paths.
type Mapping struct {
	OldName string
	NewName string
	OldPath string
	NewPath string
}

// NewName composes the target filename for one student photo. The extension
// comes verbatim from the source file, never normalized.
func NewName(class, fullName, ext string) string {
	return class + "_" + fullName + ext
}

// Build zips the i-th candidate (sorted order) with the i-th roster entry
// (file order) up to the shorter of the two sequences. The caller resolves
// any length mismatch before calling; Build itself truncates silently.
func Build(files []scan.Candidate, students []roster.Entry, class string) []Mapping {
	n := min(len(files), len(students))
	mappings := make([]Mapping, 0, n)
	for i := 0; i < n; i++ {
		f := files[i]
		newName := NewName(class, students[i].FullName, f.Extension)
		mappings = append(mappings, Mapping{
			OldName: f.Name,
			NewName: newName,
			OldPath: f.AbsolutePath,
			NewPath: filepath.Join(filepath.Dir(f.AbsolutePath), newName),
		})
	}
	return mappings
}

// CheckDuplicates rejects a mapping set containing two entries with the
// same NewName. This runs before any filesystem mutation; a collision must
// never be discovered via a rename error.
func CheckDuplicates(mappings []Mapping) error {
	owners := make(map[string][]string)
	for _, m := range mappings {
		owners[m.NewName] = append(owners[m.NewName], m.OldName)
	}

	var details []string
	for newName, sources := range owners {
		if len(sources) > 1 {
			details = append(details, fmt.Sprintf("%s <- %v", newName, sources))
		}
	}
	if len(details) == 0 {
		return nil
	}
	sort.Strings(details)
	return &fault.ValidationError{
		Msg:     "duplicate target names; fix the roster before renaming",
		Details: details,
	}
}
