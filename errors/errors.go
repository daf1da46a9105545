package errors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

const (
	// TypeError is raised by the object model when a property operation
	// violates a descriptor (read-only, non-configurable, non-extensible).
	TypeError = "TypeError"
	// InvalidArgument is raised when a listener is not callable.
	InvalidArgument = "InvalidArgument"
	// UnhandledSignal carries the payload of an "error" event nobody listens to.
	UnhandledSignal = "UnhandledSignal"
)

var (
	// Sentinels usable with errors.Is.
	ErrTypeError       = &Error{Type: TypeError}
	ErrInvalidArgument = &Error{Type: InvalidArgument}
	ErrUnhandledSignal = &Error{Type: UnhandledSignal}
)

type Error struct {
	Message     string
	Type        string
	Description string
	Cause       error
}

func New(message string) *Error {
	return &Error{Message: message}
}

func NewTypeError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Type: TypeError}
}

func NewInvalidArgument(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Type: InvalidArgument}
}

// NewUnhandledSignal wraps the payload of an unobserved "error" event. A payload
// that is already an error is kept as the cause so errors.Is finds it.
func NewUnhandledSignal(payload any) *Error {
	cause, ok := payload.(error)
	if !ok {
		cause = pkgerrors.Errorf("unhandled error event: %v", payload)
	}
	return &Error{Message: cause.Error(), Type: UnhandledSignal, Cause: cause}
}

func (e *Error) Err() error {
	return e
}

func (e *Error) Error() string {
	if e.Type == "" {
		return e.Message
	}
	return e.Type + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches sentinels by Type, so errors.Is(err, ErrTypeError) holds for any TypeError.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil {
		return false
	}
	return t.Message == "" && t.Type != "" && t.Type == e.Type
}
