package sberrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidSource indicates a fragment registration failure.
	ErrInvalidSource = errors.New("invalid source")

	// ErrConflictingSource indicates the same filename was registered
	// twice with differing original content.
	ErrConflictingSource = errors.New("conflicting source")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// InvalidSourceError represents a fragment registration that was given a
// malformed or missing content descriptor.
type InvalidSourceError struct {
	// Reason describes what was wrong with the descriptor
	Reason string
}

// Error returns a human-readable error message.
func (e *InvalidSourceError) Error() string {
	msg := "invalid source"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidSourceError) Is(target error) bool {
	return target == ErrInvalidSource
}

// ConflictingSourceError represents a registration of a filename that was
// already registered with different original content. Two fragments may
// share a filename only when their original texts are byte-identical;
// anything else is a correctness hazard for downstream tools resolving
// positions, so it is never silently overwritten.
type ConflictingSourceError struct {
	// Filename is the duplicated source filename
	Filename string
}

// Error returns a human-readable error message.
func (e *ConflictingSourceError) Error() string {
	return fmt.Sprintf("conflicting source: same filename (%s), different original content", e.Filename)
}

// Is reports whether target matches this error type.
func (e *ConflictingSourceError) Is(target error) bool {
	return target == ErrConflictingSource
}

// ConfigError represents invalid configuration or caller-supplied input,
// such as a character class that does not compile or an edit span outside
// the original text.
type ConfigError struct {
	// Option is the option or argument that was invalid
	Option string
	// Message describes why the value was rejected
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
