// Package exit maps command outcomes to process exit codes and final
// messages. The codes follow the grep convention: 0 for results, 1 for a
// clean run with no results, 2 for any hard failure.
package exit

import (
	"fmt"
	"io"
)

const (
	CodeSuccess   = 0
	CodeNoMatches = 1
	CodeFailure   = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a result that writes to the given output with exit code 0.
func Success(output io.Writer, message string) *Result {
	return &Result{
		Output:   output,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// NoMatches creates a silent result for a clean run that found nothing.
func NoMatches(output io.Writer) *Result {
	return &Result{
		Output:   output,
		ExitCode: CodeNoMatches,
	}
}

// Error creates a failure result that writes to the given output with
// exit code 2.
func Error(output io.Writer, message string) *Result {
	return &Result{
		Output:   output,
		ExitCode: CodeFailure,
		Message:  message,
	}
}

// Errorf creates a failure result with a formatted message.
func Errorf(output io.Writer, format string, a ...any) *Result {
	return Error(output, fmt.Sprintf(format, a...))
}
