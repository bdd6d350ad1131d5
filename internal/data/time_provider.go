package data

import "time"

// TimeProvider abstracts the clock so repositories can be tested with a
// fixed time.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the wall clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (RealTimeProvider) Now() time.Time { return time.Now() }

// FixedTimeProvider always returns T.
type FixedTimeProvider struct {
	T time.Time
}

// Now returns the fixed time.
func (p FixedTimeProvider) Now() time.Time { return p.T }
