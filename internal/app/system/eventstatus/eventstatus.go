// internal/app/system/eventstatus/eventstatus.go

// Package eventstatus is the event status state machine.
//
// Planned is the only initial state. Completed and Cancelled are terminal:
// no operation moves an event out of them. The Planned -> Completed
// transition also fires automatically when an event's scheduled time passes
// (the expiry sweep in the event store); this package only answers the pure
// "is this transition legal" question so the rule is testable on its own.
package eventstatus

import (
	"errors"
	"strings"
)

// Status is the lifecycle state of an event.
type Status string

const (
	Planned   Status = "planned"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

// ErrUnknownStatus is returned by Parse for values outside the closed set.
var ErrUnknownStatus = errors.New("unknown event status")

// Parse normalizes and validates a status value from user input.
func Parse(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case Planned:
		return Planned, nil
	case Completed:
		return Completed, nil
	case Cancelled:
		return Cancelled, nil
	default:
		return "", ErrUnknownStatus
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func IsTerminal(s Status) bool {
	return s == Completed || s == Cancelled
}

// CanTransition reports whether an explicit setStatus from -> to is legal.
// Setting the current status again is legal (idempotent no-op); any move
// out of a terminal state is not.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	return from == Planned && (to == Completed || to == Cancelled)
}
