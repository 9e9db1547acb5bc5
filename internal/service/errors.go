package service

import (
	"errors"
	"fmt"

	"github.com/pageza/calendara/backend/internal/validation"
)

// Kind is the closed set of failure classes a resource operation can
// produce. Handlers map kinds to HTTP statuses; nothing else inspects
// error text.
type Kind int

const (
	KindUnexpected Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidationFailed
	KindConflict
)

// Error is the structured failure carried out of the service layer.
type Error struct {
	Kind    Kind
	Message string
	Details validation.Errors
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf classifies any error; non-service errors are Unexpected.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnexpected
}

// AsServiceError extracts the structured error when present.
func AsServiceError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "Forbidden"}
}

func unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func invalid(details validation.Errors) *Error {
	return &Error{Kind: KindValidationFailed, Message: "Invalid request body", Details: details}
}

func conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func unexpected(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}
