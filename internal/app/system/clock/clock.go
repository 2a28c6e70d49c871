// internal/app/system/clock/clock.go

// Package clock abstracts the current time so the expiry sweep can be
// exercised in tests without waiting for wall-clock time to pass.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant. Useful in tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
