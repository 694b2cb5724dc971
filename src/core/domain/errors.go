package domain

import (
	"errors"
	"fmt"
)

// Error kinds shared by the use cases and the HTTP layer. Storage errors are
// translated into these by the repository; anything left untranslated is an
// internal error.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")

	// ErrUnavailable means the database could not be reached in time.
	ErrUnavailable = errors.New("service unavailable")
)

// DomainError is one of the kinds above plus what it applies to.
type DomainError struct {
	Base error

	// Message is the detail shown to clients, e.g. the missing resource or
	// the constraint that was violated.
	Message string

	// Field names the offending request field for validation errors.
	Field string
}

func (e *DomainError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s: %s", e.Base, e.Field, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Base, e.Message)
	default:
		return e.Base.Error()
	}
}

func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError reports that resource (e.g. "order") does not exist.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Base: ErrNotFound, Message: resource}
}

func NewValidationError(field, message string) *DomainError {
	return &DomainError{Base: ErrInvalidInput, Field: field, Message: message}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Base: ErrConflict, Message: message}
}

func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{Base: ErrUnauthorized, Message: message}
}

func NewUnavailableError(message string) *DomainError {
	return &DomainError{Base: ErrUnavailable, Message: message}
}

func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }
func IsConflict(err error) bool        { return errors.Is(err, ErrConflict) }
func IsUnauthorized(err error) bool    { return errors.Is(err, ErrUnauthorized) }
func IsUnavailable(err error) bool     { return errors.Is(err, ErrUnavailable) }
