package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	exitCodeSuccess      = 0
	exitCodeError        = 1
	exitCodeParseFailure = 2
)

// ExitCodeError represents an error that only carries an exit code without a message.
// The cause has already been reported when it is returned.
type ExitCodeError struct {
	exitCode int
}

// Error implements the error interface
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code: %d", e.exitCode)
}

// NewExitCodeError creates a new ExitCodeError
func NewExitCodeError(exitCode int) error {
	if exitCode == exitCodeSuccess {
		return nil
	}

	return &ExitCodeError{
		exitCode: exitCode,
	}
}

// ParseFailureError reports that some inputs could not be parsed.
// Diagnostics for each input have already been written when it is returned.
type ParseFailureError struct {
	Failed int
	Total  int
}

func (e *ParseFailureError) Error() string {
	return fmt.Sprintf("%d of %d inputs failed to parse", e.Failed, e.Total)
}

// GetExitCode returns the appropriate exit code based on the error type.
// It returns exitCodeSuccess for nil errors, the carried code for
// ExitCodeError, exitCodeParseFailure for ParseFailureError and exitCodeError
// for all other errors.
func GetExitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}

	var exitCodeErr *ExitCodeError
	if errors.As(err, &exitCodeErr) {
		return exitCodeErr.exitCode
	}

	var parseErr *ParseFailureError
	if errors.As(err, &parseErr) {
		return exitCodeParseFailure
	}

	return exitCodeError
}

// isReported reports whether err has already been written to the user.
func isReported(err error) bool {
	var exitCodeErr *ExitCodeError
	var parseErr *ParseFailureError
	return errors.As(err, &exitCodeErr) || errors.As(err, &parseErr)
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
)

func printError(w io.Writer, err error) {
	errorLabel.Fprint(w, "error:")
	fmt.Fprintf(w, " %v\n", err)
}

func printWarning(w io.Writer, format string, args ...any) {
	warningLabel.Fprint(w, "warning:")
	fmt.Fprintf(w, " "+format+"\n", args...)
}
