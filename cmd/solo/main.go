// Package main is the entry point for the solo CLI.
//
// The binary parses and rolls tabletop dice notation. All
// functionality lives in the internal/cli package; this file only
// wires build-time version information and runs the root command.
package main

import (
	"github.com/cjfuller/solo-ttrpg-helper/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
