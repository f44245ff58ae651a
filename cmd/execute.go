package cmd

import (
	"fmt"
	"os"

	"github.com/NYJC-Edtech/psutils/internal/fault"
)

// Execute runs the root command and returns the process exit code mapped
// from the error category. Error text is sanitized before printing.
func Execute(version string) int {
	root := NewRootCmd()
	root.Version = version
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: "+sanitize(err.Error()))
	}
	return fault.ExitCode(err)
}
