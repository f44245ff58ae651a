package cmd

import (
	"github.com/spf13/cobra"

	"github.com/NYJC-Edtech/psutils/internal/config"
	"github.com/NYJC-Edtech/psutils/internal/convert"
	"github.com/NYJC-Edtech/psutils/internal/engine"
)

// NewPdfCmd creates the pdf subcommand, a thin wrapper around the external
// document converter. A nil runner means the configured converter command;
// tests inject a mock runner.
func NewPdfCmd(runner convert.Runner) *cobra.Command {
	var (
		configPath string
		dir        string
	)

	cmd := &cobra.Command{
		Use:          "pdf",
		Short:        "Convert a folder of documents to PDF via the configured converter",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			target := dir
			if target == "" {
				p := resolvePrompter(cmd, nil)
				target, err = p.PickFolder("containing the documents to convert")
				if err != nil {
					return engine.Cancelled(err, "folder selection")
				}
			}

			r := runner
			if r == nil {
				r = &convert.ExecRunner{Command: cfg.Pdf.Command, Args: cfg.Pdf.Args}
			}
			_, _, err = convert.All(cmd.Context(), r, &cfg.Pdf, target, newSink(cmd))
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "settings file (default: "+config.DefaultFile+" if present)")
	cmd.Flags().StringVar(&dir, "dir", "", "folder to convert (skips the interactive folder prompt)")

	return cmd
}
