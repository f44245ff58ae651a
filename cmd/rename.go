package cmd

import (
	"github.com/spf13/cobra"

	"github.com/NYJC-Edtech/psutils/internal/config"
	"github.com/NYJC-Edtech/psutils/internal/engine"
	"github.com/NYJC-Edtech/psutils/internal/prompt"
	"github.com/NYJC-Edtech/psutils/internal/ui"
)

// NewRenameCmd creates the rename subcommand. A nil prompter means the
// command builds one from its own input/output streams at run time; tests
// inject a scripted prompter instead.
func NewRenameCmd(p prompt.Prompter) *cobra.Command {
	var (
		configPath string
		rosterPath string
		dir        string
		class      string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:          "rename",
		Short:        "Rename a folder of photos to roster names, with backup and manifest",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			sink := newSink(cmd)
			if dir == "" && p == nil && !prompt.Interactive() {
				sink.Warn("stdin is not a terminal; prompts will read from piped input")
			}
			run := engine.New(cfg, resolvePrompter(cmd, p), sink, engine.Options{
				RosterPath: rosterPath,
				Dir:        dir,
				Class:      class,
				Yes:        yes,
			})
			return run.Rename()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "settings file (default: "+config.DefaultFile+" if present)")
	cmd.Flags().StringVar(&rosterPath, "roster", "roster.csv", "roster CSV with name and class columns")
	cmd.Flags().StringVar(&dir, "dir", "", "target folder (skips the interactive folder prompt)")
	cmd.Flags().StringVar(&class, "class", "", "class to process (skips the interactive class prompt)")
	cmd.Flags().BoolVar(&yes, "yes", false, "pre-approve all confirmation checkpoints")

	return cmd
}

// loadConfig loads the settings file. Without --config the default file is
// optional; with --config the file must exist and parse.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load(config.DefaultFile, true)
	}
	return config.Load(path, false)
}

// resolvePrompter returns the injected prompter, or a stdio prompter on the
// command's streams. Prompts read from stdin fail fast on EOF rather than
// blocking, so a scripted caller that forgot a flag gets a clean cancel.
func resolvePrompter(cmd *cobra.Command, p prompt.Prompter) prompt.Prompter {
	if p != nil {
		return p
	}
	return prompt.NewStdio(cmd.InOrStdin(), cmd.OutOrStdout())
}

// newSink builds the terminal event sink on the command's output stream.
func newSink(cmd *cobra.Command) ui.Sink {
	return ui.NewTerminal(cmd.OutOrStdout())
}
