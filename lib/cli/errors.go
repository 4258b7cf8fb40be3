// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies errors so callers can make programmatic
// decisions (fix input, retry, give up) without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// bad flag values, an unparseable config file, malformed DIDs.
	// The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// an unresolvable DID, a missing config file. Retrying with the
	// same parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryTransient indicates a temporary failure: a ledger publish
	// that timed out, an interrupted network operation. The caller may
	// back off and retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, encoding
	// failures on data the system produced. Report rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// Error is a categorized error. It wraps an inner error, preserving the
// full chain for errors.Is/errors.As while adding category metadata.
// Use the category-specific constructors (Validation, NotFound, etc.)
// rather than constructing Error directly.
type Error struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category is not part
// of the string; it travels separately for callers that inspect it.
func (e *Error) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and errors.As
// to walk the full chain through the categorized wrapper.
func (e *Error) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *Error {
	return &Error{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may
// succeed on retry.
func Transient(format string, args ...any) *Error {
	return &Error{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure or bug.
func Internal(format string, args ...any) *Error {
	return &Error{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// CategoryOf returns the category of err if it is (or wraps) a
// categorized Error, and CategoryInternal otherwise.
func CategoryOf(err error) ErrorCategory {
	for err != nil {
		if categorized, ok := err.(*Error); ok {
			return categorized.Category
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
	}
	return CategoryInternal
}
