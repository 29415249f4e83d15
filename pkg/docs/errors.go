package docs

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a request-scoped failure. Every failure in this
// package is deterministic given the current filesystem state, so callers
// should never retry without an external change.
type ErrorKind string

const (
	// KindNotFound indicates the path does not resolve to an existing
	// markdown file.
	KindNotFound ErrorKind = "not_found"

	// KindForbidden indicates the path escapes the configured docs root.
	KindForbidden ErrorKind = "forbidden"

	// KindUnavailable indicates the docs root is missing or unreadable,
	// or a file could not be read or decoded.
	KindUnavailable ErrorKind = "unavailable"
)

// Error is the typed failure returned by the docs core. The HTTP boundary
// maps Kind to a status code and emits it verbatim in the error body.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatusCode returns the HTTP status code for the error kind.
func (e *Error) HTTPStatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewNotFound creates a NotFound error for the given requested path.
func NewNotFound(path string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("documentation file not found: %s", path)}
}

// NewForbidden creates a Forbidden error for the given requested path.
func NewForbidden(path string) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf("path escapes docs root: %s", path)}
}

// NewUnavailable creates an Unavailable error wrapping an underlying cause.
func NewUnavailable(message string, err error) *Error {
	return &Error{Kind: KindUnavailable, Message: message, Err: err}
}

// KindOf extracts the ErrorKind from err. Unclassified errors report as
// KindUnavailable so the boundary never maps them to a success status.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnavailable
}
