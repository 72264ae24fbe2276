// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// ── Error kinds ──────────────────────────────────────────────────────────────
// Services return *Error so handlers can map the failure to the right status
// without string matching: validation (caller-fixable input), not-found
// (unknown referenced entity), conflict (state precondition, e.g. caja already
// open), internal (unexpected persistence failure, transaction rolled back).

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Detail: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Detail: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Detail: msg} }
func Internal(msg string) *Error   { return &Error{Kind: KindInternal, Detail: msg} }

// Status maps an error to its HTTP status code. Unknown error types are
// treated as internal failures.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
