package main

import "fmt"

// Exit codes for the testlens CLI.
const (
	ExitOK          = 0 // Report parsed and output written.
	ExitInvalidArgs = 1 // Invalid arguments or bad path.
	ExitParseError  = 2 // Input could not be read or decoded.
	ExitLLMError    = 3 // Summary generation failed.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitParseError:
			msg = "testlens: report could not be parsed"
		case ExitLLMError:
			msg = "testlens: summary generation failed"
		default:
			msg = "testlens: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
