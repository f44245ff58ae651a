// Package config holds runtime settings: compiled-in defaults plus an
// optional psutils.yaml override file. Settings are loaded once at startup
// and passed (by pointer) to the packages that need them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NYJC-Edtech/psutils/internal/fault"
)

// DefaultFile is the settings filename looked up in the working directory
// when no --config flag is given.
const DefaultFile = "psutils.yaml"

// Roster names the two required columns of the roster CSV header.
type Roster struct {
	NameColumn  string `yaml:"name_column"`
	ClassColumn string `yaml:"class_column"`
}

// Pdf configures the external document-to-PDF converter.
type Pdf struct {
	// Command is the converter executable.
	Command string `yaml:"command"`
	// Args are passed before the input file path.
	Args []string `yaml:"args"`
	// Extensions lists the document extensions handed to the converter.
	Extensions []string `yaml:"extensions"`
}

// Config holds all runtime settings.
type Config struct {
	Roster Roster `yaml:"roster"`
	// Extensions is the photo extension whitelist (lowercase, leading dot).
	Extensions []string `yaml:"extensions"`
	// BackupDir is the backup subdirectory name created inside the target folder.
	BackupDir string `yaml:"backup_dir"`
	// ManifestFile is the manifest filename written inside the target folder.
	ManifestFile string `yaml:"manifest_file"`
	Pdf          Pdf    `yaml:"pdf"`
}

// Default returns the compiled-in settings.
func Default() *Config {
	return &Config{
		Roster: Roster{
			NameColumn:  "Full Name",
			ClassColumn: "Class",
		},
		Extensions:   []string{".jpg", ".jpeg", ".png"},
		BackupDir:    "photo_backup",
		ManifestFile: "rename_manifest.csv",
		Pdf: Pdf{
			Command:    "libreoffice",
			Args:       []string{"--headless", "--convert-to", "pdf", "--outdir"},
			Extensions: []string{".doc", ".docx"},
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An absent file
// is not an error when optional is true (the DefaultFile lookup); any other
// read or parse failure is a ConfigError.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, &fault.ConfigError{Msg: "reading settings " + path, Err: err}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &fault.ConfigError{Msg: "parsing settings " + path, Err: err}
	}
	if err := cfg.validate(); err != nil {
		return nil, &fault.ConfigError{Msg: "invalid settings " + path, Err: err}
	}
	return cfg, nil
}

// validate rejects settings that would make a run meaningless.
func (c *Config) validate() error {
	if c.Roster.NameColumn == "" || c.Roster.ClassColumn == "" {
		return errors.New("roster column names must not be empty")
	}
	if len(c.Extensions) == 0 {
		return errors.New("extension whitelist must not be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	if c.BackupDir == "" || c.ManifestFile == "" {
		return errors.New("backup_dir and manifest_file must not be empty")
	}
	return nil
}
