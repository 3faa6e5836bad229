package irerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrSplit indicates any per-string split failure.
	ErrSplit = errors.New("split error")

	// ErrExpectedInteger indicates the scan position did not begin a valid
	// decimal integer literal.
	ErrExpectedInteger = errors.New("decimal integer expected")

	// ErrIntegerOutOfRange indicates a literal parsed but exceeds the
	// representable int32 range.
	ErrIntegerOutOfRange = errors.New("out of range integer")

	// ErrExpectedSeparator indicates a character other than the configured
	// separator followed a successfully scanned literal.
	ErrExpectedSeparator = errors.New("separator expected")

	// ErrConfig indicates an invalid splitter configuration.
	ErrConfig = errors.New("configuration error")

	// ErrNullInput indicates a required input string was absent.
	ErrNullInput = errors.New("input contains null strings")

	// ErrBatch indicates a failure while splitting a batch of strings.
	ErrBatch = errors.New("batch error")
)

// Reason identifies why a split failed at a particular position.
type Reason string

// Split failure reasons. The string values are the message prefixes the
// historical implementation printed, kept verbatim so diagnostics remain
// byte-for-byte familiar.
const (
	ReasonExpectedInteger   Reason = "decimal integer expected"
	ReasonIntegerOutOfRange Reason = "out of range integer"
	ReasonExpectedSeparator Reason = "separator expected"
)

// SplitError represents a parse failure in a single input string.
type SplitError struct {
	// Reason identifies the failure category
	Reason Reason
	// Offset is the 1-based character offset where the failure was detected
	Offset int
}

// Error returns a human-readable error message, e.g.
// "decimal integer expected at char 5".
func (e *SplitError) Error() string {
	return fmt.Sprintf("%s at char %d", e.Reason, e.Offset)
}

// Unwrap returns nil as SplitError has no underlying cause.
func (e *SplitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches ErrSplit, and also the sentinel for the specific reason.
func (e *SplitError) Is(target error) bool {
	if target == ErrSplit {
		return true
	}
	switch e.Reason {
	case ReasonExpectedInteger:
		return target == ErrExpectedInteger
	case ReasonIntegerOutOfRange:
		return target == ErrIntegerOutOfRange
	case ReasonExpectedSeparator:
		return target == ErrExpectedSeparator
	}
	return false
}

// ConfigError represents an invalid splitter configuration.
type ConfigError struct {
	// Field is the configuration field with the issue (e.g., "sep")
	Field string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes the configuration failure
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Field != "" {
		msg += " in " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ConfigError has no underlying cause.
func (e *ConfigError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewSeparatorError returns the ConfigError reported for a separator that is
// a decimal digit, '+', or '-'.
func NewSeparatorError(sep byte) *ConfigError {
	return &ConfigError{
		Field:   "sep",
		Value:   sep,
		Message: `'sep' cannot be a digit, "+" or "-"`,
	}
}

// BatchError represents a failure while splitting a collection of strings.
// It wraps the per-string error so errors.Is and errors.As reach the
// underlying reason.
type BatchError struct {
	// Index is the 1-based position of the offending element
	Index int
	// Cause is the underlying per-string error
	Cause error
}

// Error returns a human-readable error message, e.g.
// "in list element 2: decimal integer expected at char 5".
func (e *BatchError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("in list element %d", e.Index)
	}
	return fmt.Sprintf("in list element %d: %s", e.Index, e.Cause.Error())
}

// Unwrap returns the underlying cause for error chaining.
func (e *BatchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *BatchError) Is(target error) bool {
	return target == ErrBatch
}
