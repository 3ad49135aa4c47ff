// Package clock provides the time source the form builder and generators use
// for default field values and generation timestamps.
package clock

import "time"

// Clock supplies the current local calendar date and wall time. Implementations
// must be cheap to call; the builder resolves defaults exactly once per build.
type Clock interface {
	// Today returns the current local date in ISO form (2006-01-02).
	Today() string
	// Now returns the current local time truncated to minutes (15:04).
	Now() string
}

type systemClock struct{}

func (systemClock) Today() string { return time.Now().Format("2006-01-02") }
func (systemClock) Now() string   { return time.Now().Format("15:04") }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

// Fixed returns a Clock pinned to the supplied date and time strings. Intended
// for tests and replayable generation.
func Fixed(today, now string) Clock {
	return fixedClock{today: today, now: now}
}

type fixedClock struct {
	today string
	now   string
}

func (c fixedClock) Today() string { return c.today }
func (c fixedClock) Now() string   { return c.now }
