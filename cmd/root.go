// Package cmd implements the psutils CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root psutils command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "psutils",
		Short:         "psutils - batch photo renaming and document conversion for class rosters",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(NewRenameCmd(nil))
	root.AddCommand(NewUndoCmd(nil))
	root.AddCommand(NewPdfCmd(nil))
	return root
}
