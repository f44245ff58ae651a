// Package roster loads the student roster CSV and selects the class subset
// for a run. Row order is preserved exactly as read; it is the matching key
// against sorted photo filenames, so the loader never re-sorts.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/NYJC-Edtech/psutils/internal/fault"
)

// Entry is one roster row. Fields are kept verbatim: leading or trailing
// whitespace in the source file is significant.
type Entry struct {
	FullName string
	Class    string
}

// Roster is the ordered sequence of entries as they appeared in the file.
type Roster struct {
	Entries []Entry
}

// Load parses the CSV at path. The header row must contain nameCol and
// classCol; every failure is a ConfigError because a bad roster means the
// run cannot even begin.
func Load(path, nameCol, classCol string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &fault.ConfigError{Msg: "opening roster " + path, Err: err}
	}
	defer f.Close()

	r, err := Parse(f, nameCol, classCol)
	if err != nil {
		return nil, &fault.ConfigError{Msg: "parsing roster " + path, Err: err}
	}
	return r, nil
}

// Parse reads roster CSV from r. Split out from Load so tests can feed
// in-memory data.
func Parse(r io.Reader, nameCol, classCol string) (*Roster, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = false

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	nameIdx, classIdx := -1, -1
	for i, h := range header {
		switch h {
		case nameCol:
			nameIdx = i
		case classCol:
			classIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("header has no %q column", nameCol)
	}
	if classIdx < 0 {
		return nil, fmt.Errorf("header has no %q column", classCol)
	}

	var entries []Entry
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}
		if nameIdx >= len(rec) || classIdx >= len(rec) {
			return nil, fmt.Errorf("row %d has %d fields, need at least %d", row, len(rec), max(nameIdx, classIdx)+1)
		}
		entries = append(entries, Entry{FullName: rec[nameIdx], Class: rec[classIdx]})
	}
	return &Roster{Entries: entries}, nil
}

// Classes returns the distinct class values present, sorted ascending.
func (r *Roster) Classes() []string {
	seen := make(map[string]struct{})
	var classes []string
	for _, e := range r.Entries {
		if _, ok := seen[e.Class]; ok {
			continue
		}
		seen[e.Class] = struct{}{}
		classes = append(classes, e.Class)
	}
	sort.Strings(classes)
	return classes
}

// SelectClass returns the entries whose Class equals class, in roster order.
// An empty result is a ValidationError that names the classes actually
// present so the operator can correct the input. Duplicate full names
// within the class are rejected here, not discovered later as a target
// name collision.
func (r *Roster) SelectClass(class string) ([]Entry, error) {
	var selected []Entry
	seen := make(map[string]bool)
	var dups []string
	for _, e := range r.Entries {
		if e.Class != class {
			continue
		}
		if seen[e.FullName] && !contains(dups, e.FullName) {
			dups = append(dups, e.FullName)
		}
		seen[e.FullName] = true
		selected = append(selected, e)
	}
	if len(selected) == 0 {
		return nil, &fault.ValidationError{
			Msg:     fmt.Sprintf("class %q not found in roster; available classes", class),
			Details: r.Classes(),
		}
	}
	if len(dups) > 0 {
		return nil, &fault.ValidationError{
			Msg:     fmt.Sprintf("duplicate names in class %q", class),
			Details: dups,
		}
	}
	return selected, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
