// Package backup copies the original files into a fresh backup
// subdirectory before any rename happens. A copy failure aborts the whole
// run: nothing irreversible may occur without a complete backup.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NYJC-Edtech/psutils/internal/fault"
	"github.com/NYJC-Edtech/psutils/internal/scan"
)

// Create copies every candidate into dir/name under its original filename.
// The backup directory must not already exist; two runs must never merge
// their backup sets. Returns the backup directory path.
func Create(dir, name string, files []scan.Candidate) (string, error) {
	backupDir := filepath.Join(dir, name)
	if _, err := os.Stat(backupDir); err == nil {
		return "", &fault.StateError{
			Msg: "backup directory " + backupDir + " already exists; remove it manually before renaming",
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("checking backup directory %s: %w", backupDir, err)
	}

	if err := os.Mkdir(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup directory %s: %w", backupDir, err)
	}
	for _, f := range files {
		if err := copyFile(f.AbsolutePath, filepath.Join(backupDir, f.Name)); err != nil {
			return "", fmt.Errorf("backing up %s: %w", f.Name, err)
		}
	}
	return backupDir, nil
}

// copyFile copies src to dst byte for byte. dst must not exist.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}
