// Package cli implements the cobra-based commands for the solo CLI.
//
// The root command defined here carries the global flags (--json,
// --verbose) and translates errors into exit codes; the actual work
// happens in the subcommands (currently just roll).
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cjfuller/solo-ttrpg-helper/internal/model"
)

// Global flag variables, bound to cobra persistent flags on the root
// command so every subcommand sees them.
var (
	// jsonOutput switches command output to a machine-readable JSON
	// form on stdout.
	jsonOutput bool

	// verbose enables extra diagnostics on stderr, including the
	// seed used for a roll.
	verbose bool
)

// Version, Commit, and Date identify the build. They are injected
// from the main package, which receives them via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solo",
		Short: "Solo tabletop RPG helper",
		Long: `solo is a helper for solo tabletop RPG sessions.

It parses standard dice notation ("2d6 + 3 + d4 + -1"), rolls the
dice, and prints the full breakdown alongside the total. Rolls can
be replayed exactly by passing an explicit --seed.`,

		// Errors are formatted by Execute (text or JSON per --json),
		// so cobra's own usage/error printing stays off.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewRollCommand())

	return rootCmd
}

// Execute runs the root command and exits the process with the
// error's exit code on failure. A CLIError carries its own code;
// anything else exits 1. Errors are printed, never panicked or
// aborted on.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes an error to stderr in the format selected by
// the --json flag. Stdout stays reserved for successful output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]any{
			"error": map[string]any{
				"message": message,
			},
		}
		if underlying != nil {
			errObj["error"].(map[string]any)["detail"] = underlying.Error()
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a diagnostic line to stderr when --verbose is
// set.
func VerboseLog(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// IsJSONOutput reports whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
