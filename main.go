// Package main is the entry point for the psutils CLI application.
package main

import (
	"os"

	"github.com/NYJC-Edtech/psutils/cmd"
)

// Version information, injected at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	os.Exit(cmd.Execute(Version))
}
