// Package bench provides a small monotonic elapsed-time helper for ad hoc
// timing measurements.
package bench

import "time"

// Timer measures elapsed time from its creation or last reset, using the
// monotonic clock.
type Timer struct {
	start time.Time
}

// NewTimer creates a running timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started or was last reset.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Reset restarts the timer.
func (t *Timer) Reset() {
	t.start = time.Now()
}
