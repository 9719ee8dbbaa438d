package main

import (
	"errors"
	"fmt"

	"github.com/kailas-cloud/scriptdex"
)

// Exit codes.
const (
	ExitFailure  = 1
	ExitNotFound = 2
	ExitUsage    = 3
	ExitCorpus   = 4
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// classify maps a query error to its exit code.
func classify(err error) *ExitError {
	code := ExitFailure
	switch {
	case errors.Is(err, scriptdex.ErrExampleNotFound),
		errors.Is(err, scriptdex.ErrScriptNotFound),
		errors.Is(err, scriptdex.ErrResourceNotFound):
		code = ExitNotFound
	case errors.Is(err, scriptdex.ErrInvalidResource):
		code = ExitUsage
	case errors.Is(err, scriptdex.ErrCorpusUnavailable):
		code = ExitCorpus
	}
	return &ExitError{Code: code, Err: err}
}

// hint suggests a next step for common failures, or returns "".
func hint(err error) string {
	switch {
	case errors.Is(err, scriptdex.ErrExampleNotFound):
		return "run 'scriptdexctl list' to see available examples"
	case errors.Is(err, scriptdex.ErrInvalidResource):
		return "resource kinds are script, documentation (readme) and metadata (meta)"
	case errors.Is(err, scriptdex.ErrCorpusUnavailable):
		return "check --root or SCRIPTDEX_ROOT"
	default:
		return ""
	}
}
