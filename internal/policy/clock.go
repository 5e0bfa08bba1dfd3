package policy

import "time"

// Clock reports the current calendar date. The gateway never reads wall-clock
// time directly; injecting a Clock keeps every expiry decision reproducible
// in tests.
type Clock interface {
	// Today returns the current date as midnight UTC.
	Today() time.Time
}

// SystemClock is the production Clock, backed by time.Now.
type SystemClock struct{}

// Today returns the current date, truncated to midnight UTC.
func (SystemClock) Today() time.Time {
	return Midnight(time.Now())
}

// Midnight normalizes t to midnight UTC on the same calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
