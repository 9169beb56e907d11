package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrContactNotFound      = errors.New("contact message not found")
	ErrImageNotFound        = errors.New("gallery image not found")
)

var (
	ErrEventFull             = errors.New("event is full")
	ErrRegistrationClosed    = errors.New("registration is closed for this event")
	ErrAlreadyRegistered     = errors.New("user already has a registration for this event")
	ErrEventHasRegistrations = errors.New("event has registrations and cannot be deleted")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrCancellationWindow    = errors.New("cancellation deadline has passed")
)

var (
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violated field of a request, not just the
// first one. errors.Is(err, ErrValidation) matches it through Unwrap.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}

	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

// AsError returns the collected error, or nil when nothing was violated.
func (e *ValidationError) AsError() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
