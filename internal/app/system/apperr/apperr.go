// Package apperr defines the small, fixed set of error kinds the matching
// and directory layers report to the request-handling layer.
//
// Handlers should never inspect error strings. Use KindOf (or errors.As with
// *Error) and map the kind to a transport status with HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the caller.
type Kind string

const (
	KindInvalidInput           Kind = "invalid_input"
	KindNotFound               Kind = "not_found"
	KindInvalidStateTransition Kind = "invalid_state_transition"
	KindInternal               Kind = "internal"
)

// Error is the typed error carried across package boundaries.
type Error struct {
	Kind    Kind
	Message string
	Field   string // offending input field, if any
	Err     error  // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Field == "" && t.Err == nil
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidInput           = &Error{Kind: KindInvalidInput}
	ErrNotFound               = &Error{Kind: KindNotFound}
	ErrInvalidStateTransition = &Error{Kind: KindInvalidStateTransition}
)

// InvalidInput reports a malformed or out-of-range caller value.
func InvalidInput(field, msg string) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Message: msg}
}

// NotFound reports that the named entity does not exist.
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", entity, id)}
}

// InvalidTransition reports a rejected status change.
func InvalidTransition(from, to string) *Error {
	return &Error{
		Kind:    KindInvalidStateTransition,
		Field:   "status",
		Message: fmt.Sprintf("cannot move from %q to %q", from, to),
	}
}

// Internal wraps an unexpected failure (database, encoding, ...).
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps a kind onto a response status code.
func HTTPStatus(k Kind) int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidStateTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
