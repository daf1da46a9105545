package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		if msg := New("plain").Error(); msg != "plain" {
			t.Fatalf(`New("plain").Error() = %q, want match for %q`, msg, "plain")
		}
		if msg := NewTypeError("x %d", 1).Error(); msg != "TypeError: x 1" {
			t.Fatalf(`NewTypeError("x %%d", 1).Error() = %q, want match for %q`, msg, "TypeError: x 1")
		}
	})

	t.Run("sentinels", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", NewInvalidArgument("listener for %s must be a function", "e"))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf(`errors.Is(%v, ErrInvalidArgument) = false, want match for true`, err)
		}
		if errors.Is(err, ErrTypeError) {
			t.Fatalf(`errors.Is(%v, ErrTypeError) = true, want match for false`, err)
		}
		if errors.Is(NewTypeError("a"), NewTypeError("a")) {
			t.Fatal(`errors.Is should only match sentinels by type`)
		}
	})

	t.Run("unhandled signal keeps the payload", func(t *testing.T) {
		cause := errors.New("Hi!")
		err := NewUnhandledSignal(cause)
		if !errors.Is(err, cause) || !errors.Is(err, ErrUnhandledSignal) {
			t.Fatalf(`NewUnhandledSignal(cause) = %v, want it to match cause and ErrUnhandledSignal`, err)
		}

		err = NewUnhandledSignal(42)
		if err.Cause == nil || err.Error() != "UnhandledSignal: unhandled error event: 42" {
			t.Fatalf(`NewUnhandledSignal(42).Error() = %q`, err.Error())
		}
	})
}
