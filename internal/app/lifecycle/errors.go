package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the event or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the actor lacks rights for the
	// operation.
	ErrUnauthorized = errors.New("not authorized")
	// ErrEventUnavailable is returned when the event is not accepting
	// the operation, including reads and writes on a soft-deleted event.
	ErrEventUnavailable = errors.New("event is not accepting registrations")
	// ErrEventFull is returned when the event is at capacity.
	ErrEventFull = errors.New("event is at capacity")
	// ErrAlreadyRegistered is returned when the user is already a
	// participant.
	ErrAlreadyRegistered = errors.New("user is already registered")
	// ErrInvalidTransition is returned for a status change the
	// lifecycle does not allow. It wraps ErrEventUnavailable so callers
	// that only care about availability match both.
	ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", ErrEventUnavailable)
	// ErrInvalidInput is returned when event fields fail validation.
	ErrInvalidInput = errors.New("invalid input")
)

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
