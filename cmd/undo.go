package cmd

import (
	"github.com/spf13/cobra"

	"github.com/NYJC-Edtech/psutils/internal/config"
	"github.com/NYJC-Edtech/psutils/internal/engine"
	"github.com/NYJC-Edtech/psutils/internal/prompt"
)

// NewUndoCmd creates the undo subcommand. A nil prompter means a stdio
// prompter built at run time, as with rename.
func NewUndoCmd(p prompt.Prompter) *cobra.Command {
	var (
		configPath string
		dir        string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:          "undo",
		Short:        "Reverse a previous rename run using its manifest",
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
				Dir: dir,
				Yes: yes,
			})
			return run.Undo()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "settings file (default: "+config.DefaultFile+" if present)")
	cmd.Flags().StringVar(&dir, "dir", "", "folder to restore (skips the interactive folder prompt)")
	cmd.Flags().BoolVar(&yes, "yes", false, "pre-approve the restore confirmation")

	return cmd
}
