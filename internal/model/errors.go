package model

import "fmt"

// ExitCode defines the CLI exit codes. Each code corresponds to one class
// of failure in the error taxonomy, so scripts and CI systems can tell an
// input mistake apart from a failing compiler or an unreachable chain.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInputError indicates a user-supplied value (project directory,
	// private key, token name/symbol) failed validation.
	ExitInputError ExitCode = 2

	// ExitEnvironmentError indicates a filesystem or dependency problem:
	// directory creation denied, package install failed, manifest missing.
	ExitEnvironmentError ExitCode = 3

	// ExitToolError indicates an external tool (hardhat scaffold, compiler)
	// exited non-zero. The tool's own diagnostics are surfaced verbatim.
	ExitToolError ExitCode = 4

	// ExitChainError indicates a deployment or RPC failure against the
	// target network.
	ExitChainError ExitCode = 5

	// ExitNoDeployment indicates the contract address record is missing or
	// empty — the user must run deploy before mint/transfer/status.
	ExitNoDeployment ExitCode = 6

	// ExitUserCancelled indicates the user cancelled an interactive prompt.
	ExitUserCancelled ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// It lets any component classify its failure once; the command layer
// translates the code into the process exit status.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
