package rpc

import (
	"errors"

	"github.com/sitedesk/sitedesk/internal/shared"
)

// Code identifies a stable failure category returned to callers.
type Code string

const (
	// CodeUnauthorized indicates no valid identity.
	CodeUnauthorized Code = "UNAUTHORIZED"
	// CodeForbidden indicates a valid identity with insufficient role.
	CodeForbidden Code = "FORBIDDEN"
	// CodeNotFound indicates an unknown procedure or missing entity.
	CodeNotFound Code = "NOT_FOUND"
	// CodeBadInput indicates input that failed schema validation.
	CodeBadInput Code = "BAD_INPUT"
	// CodeConflict indicates the store rejected a mutation due to a constraint.
	CodeConflict Code = "CONFLICT"
	// CodeInternal indicates an unexpected failure.
	CodeInternal Code = "INTERNAL"
)

// FieldError carries field-level validation detail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the typed failure returned by dispatch. The explicit code is
// authoritative; callers must not infer success from control flow.
type Error struct {
	Code    Code         `json:"errorCode"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`

	cause error
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Unwrap exposes the underlying failure, if any, for logging.
func (e *Error) Unwrap() error {
	return e.cause
}

// Unauthorized builds an UNAUTHORIZED error.
func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

// Forbidden builds a FORBIDDEN error.
func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg}
}

// NotFound builds a NOT_FOUND error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// BadInput builds a BAD_INPUT error with optional field detail.
func BadInput(msg string, fields []FieldError) *Error {
	return &Error{Code: CodeBadInput, Message: msg, Fields: fields}
}

// Conflict builds a CONFLICT error carrying the violated constraint name.
func Conflict(constraint string) *Error {
	msg := "constraint violation"
	if constraint != "" {
		msg = "constraint violation: " + constraint
	}
	return &Error{Code: CodeConflict, Message: msg}
}

// Internal builds an INTERNAL error with a generic message.
func Internal() *Error {
	return &Error{Code: CodeInternal, Message: "internal error"}
}

// Wrap translates a handler error into the taxonomy. Typed *Error values and
// store sentinels pass through; anything else becomes INTERNAL.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	var conflict *shared.ConflictError
	if errors.As(err, &conflict) {
		return Conflict(conflict.Constraint)
	}
	if errors.Is(err, shared.ErrNotFound) {
		return NotFound("resource not found")
	}
	wrapped := Internal()
	wrapped.cause = err
	return wrapped
}
