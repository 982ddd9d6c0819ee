package model

import "fmt"

// ExitCode defines the CLI exit codes. These codes allow scripts to
// programmatically distinguish failure modes.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitBadExpression indicates the roll expression did not match
	// the dice grammar.
	ExitBadExpression ExitCode = 2

	// ExitInvalidDie indicates the expression parsed but contained a
	// die that cannot be rolled (zero sides).
	ExitInvalidDie ExitCode = 3

	// ExitConfigError indicates the settings or alias file could not
	// be loaded.
	ExitConfigError ExitCode = 4
)

// CLIError is an error that carries an exit code, so the CLI layer
// can translate domain failures into process exit statuses.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface, including the underlying
// error when present.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// RollReport is the machine-readable record of one evaluation,
// emitted by `solo roll --json`.
type RollReport struct {
	// Expression is the canonical form of the parsed expression,
	// which may differ from the raw input (normalized order,
	// explicit counts).
	Expression string `json:"expression"`

	// Rolls lists every physical die in draw order.
	Rolls []ReportedDie `json:"rolls"`

	// Modifier is the flat modifier applied to the total, 0 when the
	// expression had none.
	Modifier int `json:"modifier"`

	// Total is the modifier plus the sum of all rolled values.
	Total int `json:"total"`

	// Seed is the RNG seed the roll was drawn with. Re-running with
	// --seed set to this value reproduces the roll exactly.
	Seed int64 `json:"seed"`
}

// ReportedDie is a single die outcome inside a RollReport.
type ReportedDie struct {
	// Die is the canonical die form, e.g. "d8".
	Die string `json:"die"`

	// Value is the sampled face value.
	Value int `json:"value"`
}
