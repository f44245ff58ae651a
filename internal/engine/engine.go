// Package engine orchestrates a rename or undo run. Each run is strictly
// sequential: roster, folder, validation, mapping, duplicate check, backup,
// rename, manifest. Any failed validation ends the run before the first
// mutation; once the backup exists, renames are best-effort.
package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/NYJC-Edtech/psutils/internal/backup"
	"github.com/NYJC-Edtech/psutils/internal/config"
	"github.com/NYJC-Edtech/psutils/internal/fault"
	"github.com/NYJC-Edtech/psutils/internal/manifest"
	"github.com/NYJC-Edtech/psutils/internal/plan"
	"github.com/NYJC-Edtech/psutils/internal/prompt"
	"github.com/NYJC-Edtech/psutils/internal/rename"
	"github.com/NYJC-Edtech/psutils/internal/roster"
	"github.com/NYJC-Edtech/psutils/internal/scan"
	"github.com/NYJC-Edtech/psutils/internal/ui"
)

// Options carries the non-interactive overrides from the CLI surface.
type Options struct {
	// RosterPath is the roster CSV location (rename mode only).
	RosterPath string
	// Dir bypasses the folder picker when non-empty.
	Dir string
	// Class bypasses the class prompt when non-empty.
	Class string
	// Yes pre-approves every confirmation checkpoint.
	Yes bool
}

// Run threads the state of one invocation through the pipeline stages.
// It replaces what the legacy tool kept in script-scope globals.
type Run struct {
	ID      string
	Cfg     *config.Config
	Prompt  prompt.Prompter
	Sink    ui.Sink
	Options Options
}

// New returns a Run with a fresh identity.
func New(cfg *config.Config, p prompt.Prompter, sink ui.Sink, opts Options) *Run {
	return &Run{
		ID:      uuid.NewString(),
		Cfg:     cfg,
		Prompt:  p,
		Sink:    sink,
		Options: opts,
	}
}

// Rename executes the full rename pipeline. The returned error is nil on
// success (including partial per-item failures, which are reported via the
// sink and the summary) and a fault category otherwise.
func (r *Run) Rename() error {
	ros, err := roster.Load(r.Options.RosterPath, r.Cfg.Roster.NameColumn, r.Cfg.Roster.ClassColumn)
	if err != nil {
		return err
	}
	r.Sink.Info("loaded %d roster entries from %s", len(ros.Entries), r.Options.RosterPath)

	dir, err := r.pickFolder("containing the photos to rename")
	if err != nil {
		return err
	}

	files, err := scan.Candidates(dir, r.Cfg.Extensions, r.Cfg.ManifestFile)
	if err != nil {
		return err
	}
	r.Sink.Info("found %d photo files in %s", len(files), dir)

	class := r.Options.Class
	if class == "" {
		class, err = r.Prompt.ReadLine("Class to process")
		if err != nil {
			return Cancelled(err, "class entry")
		}
	}

	students, err := ros.SelectClass(class)
	if err != nil {
		return err
	}

	if len(files) != len(students) {
		r.Sink.Warn("count mismatch: %d photo files vs %d students in class %s", len(files), len(students), class)
		ok, err := r.confirm(fmt.Sprintf("Continue with the first %d pairs anyway?", min(len(files), len(students))))
		if err != nil {
			return Cancelled(err, "count mismatch")
		}
		if !ok {
			return &fault.CancelledError{Checkpoint: "count mismatch"}
		}
	}

	mappings := plan.Build(files, students, class)
	if err := plan.CheckDuplicates(mappings); err != nil {
		return err
	}

	for _, m := range mappings {
		r.Sink.Info("  %s -> %s", m.OldName, m.NewName)
	}
	ok, err := r.confirm(fmt.Sprintf("Rename %d files in %s?", len(mappings), dir))
	if err != nil {
		return Cancelled(err, "rename confirmation")
	}
	if !ok {
		return &fault.CancelledError{Checkpoint: "rename confirmation"}
	}

	backupDir, err := backup.Create(dir, r.Cfg.BackupDir, files)
	if err != nil {
		return err
	}
	r.Sink.Success("backed up %d files to %s", len(files), backupDir)

	res := rename.Apply(mappings)
	for _, ie := range res.Errors {
		r.Sink.Error("%s", ie.Error())
	}

	if err := manifest.Save(dir, r.Cfg.ManifestFile, res.Applied); err != nil {
		return err
	}

	r.Sink.Success("run %s: renamed %d files, %d errors", r.ID, res.SuccessCount(), res.ErrorCount())
	if res.SuccessCount() > 0 {
		r.Sink.Info("manifest written to %s; run undo to reverse", manifest.Path(dir, r.Cfg.ManifestFile))
	}
	return nil
}

// Undo reverses a previous run recorded in the target folder's manifest.
// The manifest is deleted on completion even when some items failed: the
// backup directory remains as the ultimate fallback, and is never touched.
func (r *Run) Undo() error {
	dir, err := r.pickFolder("to restore")
	if err != nil {
		return err
	}

	mappings, err := manifest.Load(dir, r.Cfg.ManifestFile)
	if err != nil {
		return err
	}

	for _, m := range mappings {
		r.Sink.Info("  %s -> %s", m.NewName, m.OldName)
	}
	ok, err := r.confirm(fmt.Sprintf("Restore %d original names in %s?", len(mappings), dir))
	if err != nil {
		return Cancelled(err, "undo confirmation")
	}
	if !ok {
		return &fault.CancelledError{Checkpoint: "undo confirmation"}
	}

	res := rename.Revert(mappings, func(name string) {
		r.Sink.Warn("%s not found, skipping (already restored?)", name)
	})
	for _, ie := range res.Errors {
		r.Sink.Error("%s", ie.Error())
	}

	if err := manifest.Delete(dir, r.Cfg.ManifestFile); err != nil {
		return err
	}

	r.Sink.Success("run %s: restored %d files, %d skipped, %d errors",
		r.ID, res.SuccessCount(), res.Skipped, res.ErrorCount())
	r.Sink.Info("backup directory is left for manual cleanup")
	return nil
}

func (r *Run) pickFolder(purpose string) (string, error) {
	if r.Options.Dir != "" {
		return r.Options.Dir, nil
	}
	dir, err := r.Prompt.PickFolder(purpose)
	if err != nil {
		return "", Cancelled(err, "folder selection")
	}
	return dir, nil
}

func (r *Run) confirm(message string) (bool, error) {
	if r.Options.Yes {
		return true, nil
	}
	return r.Prompt.Confirm(message)
}

// Cancelled maps a prompt cancellation to the Cancelled fault category and
// passes every other error through.
func Cancelled(err error, checkpoint string) error {
	if errors.Is(err, prompt.ErrCancelled) {
		return &fault.CancelledError{Checkpoint: checkpoint}
	}
	return err
}
