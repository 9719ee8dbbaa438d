package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCorpusUnavailable signals a missing or unreadable corpus root.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
	// ErrExampleNotFound signals an identifier that does not name a discovered example.
	ErrExampleNotFound = errors.New("example not found")
	// ErrScriptNotFound signals an example without any analyzable script.
	ErrScriptNotFound = errors.New("script not found")
	// ErrFileVanished signals a file that disappeared between discovery and read.
	ErrFileVanished = errors.New("file vanished")
	// ErrResourceNotFound signals a resource kind the example does not carry.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrInvalidResource signals an unknown resource kind or malformed resource URI.
	ErrInvalidResource = errors.New("invalid resource")
	// ErrInvalidEncoding signals a file that is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// ExampleError ties a sentinel to the example (and optionally the file) that caused it.
type ExampleError struct {
	Example string
	File    string
	Err     error
}

func (e *ExampleError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s/%s", e.Err.Error(), e.Example, e.File)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Example)
}

func (e *ExampleError) Unwrap() error { return e.Err }

// NewExampleError wraps sentinel with the offending example identifier.
func NewExampleError(example string, sentinel error) error {
	return &ExampleError{Example: example, Err: sentinel}
}

// NewFileError wraps sentinel with the offending example and file name.
func NewFileError(example, file string, sentinel error) error {
	return &ExampleError{Example: example, File: file, Err: sentinel}
}

// ExampleOf returns the example identifier carried by err, if any.
func ExampleOf(err error) string {
	var ee *ExampleError
	if errors.As(err, &ee) {
		return ee.Example
	}
	return ""
}
