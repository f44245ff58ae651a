// Package rename applies and reverses rename mappings. Both directions are
// best-effort batches: a failed item is recorded and the rest of the batch
// continues, because the backup directory preserves full recoverability.
package rename

import (
	"errors"
	"os"

	"github.com/NYJC-Edtech/psutils/internal/fault"
	"github.com/NYJC-Edtech/psutils/internal/plan"
)

// Result summarizes one executor pass.
type Result struct {
	// Applied holds the mappings that actually took effect, in order.
	Applied []plan.Mapping
	// Errors holds one entry per failed item.
	Errors []*fault.ItemError
	// Skipped counts undo items whose renamed file was already gone.
	Skipped int
}

// SuccessCount returns the number of applied items.
func (r *Result) SuccessCount() int { return len(r.Applied) }

// ErrorCount returns the number of failed items.
func (r *Result) ErrorCount() int { return len(r.Errors) }

// Apply renames each mapping's OldPath to NewPath sequentially. Per-item
// failures (file locked, already renamed) do not stop the batch.
func Apply(mappings []plan.Mapping) *Result {
	res := &Result{}
	for _, m := range mappings {
		if err := os.Rename(m.OldPath, m.NewPath); err != nil {
			res.Errors = append(res.Errors, &fault.ItemError{Name: m.OldName, Op: "rename", Err: err})
			continue
		}
		res.Applied = append(res.Applied, m)
	}
	return res
}

// Revert renames each mapping's NewPath back to OldPath. A missing NewPath
// is counted as skipped, not failed: an item already restored by hand (or
// never renamed) must not fail the batch. missing is called for each
// skipped name so the caller can warn.
func Revert(mappings []plan.Mapping, missing func(name string)) *Result {
	res := &Result{}
	for _, m := range mappings {
		if _, err := os.Stat(m.NewPath); errors.Is(err, os.ErrNotExist) {
			res.Skipped++
			if missing != nil {
				missing(m.NewName)
			}
			continue
		}
		if err := os.Rename(m.NewPath, m.OldPath); err != nil {
			res.Errors = append(res.Errors, &fault.ItemError{Name: m.NewName, Op: "restore", Err: err})
			continue
		}
		res.Applied = append(res.Applied, m)
	}
	return res
}
