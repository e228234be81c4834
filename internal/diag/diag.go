// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

// Package diag renders user-facing diagnostics. Every message has the
// shape "error: <context>[: <arg>]" and goes to the diagnostic stream.
package diag

import (
	"errors"
	"fmt"
	"io"
)

// Error is a diagnostic with a fixed context and an optional offending
// argument. Err carries the underlying cause for errors.Is/As and logging;
// it is never printed.
type Error struct {
	Context string
	Arg     string
	Err     error
}

func (e *Error) Error() string {
	if e.Arg == "" {
		return e.Context
	}
	return e.Context + ": " + e.Arg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a diagnostic for context and arg wrapping cause.
func New(context, arg string, cause error) *Error {
	return &Error{Context: context, Arg: arg, Err: cause}
}

// Report writes err to w as a single diagnostic line. Errors that are not
// (and do not wrap) an *Error are printed with their own message.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var de *Error
	if errors.As(err, &de) {
		fmt.Fprintf(w, "error: %s\n", de)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
