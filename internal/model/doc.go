// Package model defines the shared value types for the solo CLI.
//
// This package contains pure data structures with no dependencies on
// the other internal packages: process exit codes (ExitCode), the
// CLIError type that carries an exit code out of a failed command,
// and the RollReport record used for machine-readable (--json)
// output.
package model
