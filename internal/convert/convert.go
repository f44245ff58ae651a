// Package convert wraps the external document-to-PDF converter. It is a
// stateless iterate-and-call layer: no backup, no manifest, and per-file
// failures never stop the batch.
package convert

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NYJC-Edtech/psutils/internal/config"
	"github.com/NYJC-Edtech/psutils/internal/fault"
	"github.com/NYJC-Edtech/psutils/internal/ui"
)

// Runner invokes the converter for one document. Replaced in tests.
type Runner interface {
	Convert(ctx context.Context, file, outDir string) error
}

// ExecRunner runs the configured converter command.
type ExecRunner struct {
	Command string
	Args    []string
}

// Convert invokes the external converter for file, writing into outDir.
// The output directory is appended after the configured args, then the
// input file, matching the libreoffice --outdir convention.
func (e *ExecRunner) Convert(ctx context.Context, file, outDir string) error {
	args := append(append([]string{}, e.Args...), outDir, file)
	cmd := exec.CommandContext(ctx, e.Command, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w (%s)", e.Command, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Documents lists the convertible documents in dir, sorted by name.
func Documents(dir string, extensions []string) ([]string, error) {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[ext] = struct{}{}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var docs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			docs = append(docs, filepath.Join(dir, e.Name()))
		}
	}
	if len(docs) == 0 {
		return nil, &fault.ValidationError{Msg: "no convertible documents found in " + dir}
	}
	sort.Strings(docs)
	return docs, nil
}

// All converts every document in dir sequentially, reporting progress and
// per-item failures through sink. Returns the success and error counts.
func All(ctx context.Context, runner Runner, cfg *config.Pdf, dir string, sink ui.Sink) (int, int, error) {
	docs, err := Documents(dir, cfg.Extensions)
	if err != nil {
		return 0, 0, err
	}

	succeeded, failed := 0, 0
	for i, doc := range docs {
		sink.Info("[%d/%d] %s", i+1, len(docs), filepath.Base(doc))
		if err := runner.Convert(ctx, doc, dir); err != nil {
			sink.Error("convert %s: %v", filepath.Base(doc), err)
			failed++
			continue
		}
		succeeded++
	}
	sink.Success("converted %d documents, %d errors", succeeded, failed)
	return succeeded, failed, nil
}
