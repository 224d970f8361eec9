// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "errors"

// Kind classifies a failure so handlers can map it to an HTTP status.
type Kind int

const (
	KindStore Kind = iota // generic document-store / infrastructure failure
	KindValidation
	KindConflict
	KindNotFound
)

// Error is a user-presentable failure with a taxonomy kind. Detail is what
// the frontend shows as a toast; it never carries internal state.
type Error struct {
	Kind   Kind
	Detail string
	// Warning marks soft failures (e.g. deleting an already-deleted record)
	// that the UI presents as a warning toast rather than an error.
	Warning bool
	cause   error
}

func (e *Error) Error() string { return e.Detail }
func (e *Error) Unwrap() error { return e.cause }

func Conflict(detail string) *Error { return &Error{Kind: KindConflict, Detail: detail} }
func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail, Warning: true}
}
func Invalid(detail string) *Error { return &Error{Kind: KindValidation, Detail: detail} }
func Store(detail string, cause error) *Error {
	return &Error{Kind: KindStore, Detail: detail, cause: cause}
}

// KindOf extracts the taxonomy kind from any error. Untyped errors are
// treated as store failures.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStore
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
