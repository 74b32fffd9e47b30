package main

import "fmt"

// Exit codes for the dbgreport CLI.
const (
	ExitOK           = 0 // Report written, or nothing to write.
	ExitInvalidArgs  = 1 // Bad arguments, manifest, or config.
	ExitWriteFailure = 2 // The report could not be finalized or written.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
	err  error
}

func (e *exitCodeError) Error() string { return e.msg }

// Unwrap returns the underlying cause, if any.
func (e *exitCodeError) Unwrap() error { return e.err }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError wraps err with an exit code. The message is "dbgreport: " plus
// context and the error text.
func exitError(code int, err error, context string) *exitCodeError {
	msg := "dbgreport: " + context
	if err != nil {
		msg = fmt.Sprintf("%s (%v)", msg, err)
	}
	return &exitCodeError{code: code, msg: msg, err: err}
}
