// Package manifest persists the mappings a run actually applied, so a
// later, independent invocation can reverse them. The manifest file is the
// durable source of truth once written; it is consumed and deleted by undo.
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NYJC-Edtech/psutils/internal/fault"
	"github.com/NYJC-Edtech/psutils/internal/plan"
)

var header = []string{"OldName", "NewName", "OldPath", "NewPath"}

// Path returns the manifest location for a target directory.
func Path(dir, name string) string {
	return filepath.Join(dir, name)
}

// Save writes the applied mappings as CSV at Path(dir, name). The write is
// atomic (temp file then rename) so a crash never leaves a half manifest.
// An empty mapping set writes nothing and removes no existing manifest.
func Save(dir, name string, applied []plan.Mapping) error {
	if len(applied) == 0 {
		return nil
	}

	tmp, err := os.CreateTemp(dir, ".manifest-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp manifest: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing manifest header: %w", err)
	}
	for _, m := range applied {
		if err := w.Write([]string{m.OldName, m.NewName, m.OldPath, m.NewPath}); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
			return fmt.Errorf("writing manifest row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("flushing manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp manifest: %w", err)
	}
	if err := os.Rename(tmpName, Path(dir, name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming temp manifest: %w", err)
	}
	return nil
}

// Load reads the manifest for dir. Absence is a StateError ("nothing to
// undo"), never a silently empty result.
func Load(dir, name string) ([]plan.Mapping, error) {
	path := Path(dir, name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &fault.StateError{Msg: "no manifest found in " + dir + "; nothing to undo"}
		}
		return nil, fmt.Errorf("opening manifest %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	first, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading manifest header: %w", err)
	}
	if len(first) != len(header) {
		return nil, fmt.Errorf("manifest %s: header has %d columns, want %d", path, len(first), len(header))
	}

	var mappings []plan.Mapping
	for row := 2; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading manifest row %d: %w", row, err)
		}
		mappings = append(mappings, plan.Mapping{
			OldName: rec[0],
			NewName: rec[1],
			OldPath: rec[2],
			NewPath: rec[3],
		})
	}
	return mappings, nil
}

// Delete removes the manifest for dir. Called by undo regardless of partial
// restore failures; the backup directory remains the ultimate fallback.
func Delete(dir, name string) error {
	if err := os.Remove(Path(dir, name)); err != nil {
		return fmt.Errorf("deleting manifest: %w", err)
	}
	return nil
}
