package utils

import "time"

// Timer measures one interval. The zero value is not usable; create one with
// NewTimer, which starts it.
type Timer struct {
	started  time.Time
	duration time.Duration
}

// NewTimer returns a running timer.
func NewTimer() *Timer {
	return &Timer{started: time.Now()}
}

// Stop freezes the measured interval and returns it. Calling Stop again
// extends the interval to the new instant.
func (t *Timer) Stop() time.Duration {
	t.duration = time.Since(t.started)
	return t.duration
}

// Duration is the interval captured by the last Stop, or zero.
func (t *Timer) Duration() time.Duration {
	return t.duration
}
