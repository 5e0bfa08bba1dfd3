package policy

import "time"

// Default window widths, in weeks.
const (
	// DefaultHorizonWeeks is the look-ahead used when synthesizing the dummy
	// workflow: references expiring within this window are excluded.
	DefaultHorizonWeeks = 4

	// DefaultGraceWeeks is how far out sibling references are pushed when a
	// newer reference for the same action is observed.
	DefaultGraceWeeks = 12
)

// NeverExpires is the sentinel expiry assigned to a freshly observed
// reference. It keeps the entry alive until a newer sibling supersedes it.
var NeverExpires = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)

// Policy holds the tunable expiry windows. The zero value is not useful;
// construct with Default.
type Policy struct {
	// HorizonWeeks is the workflow synthesizer's look-ahead window.
	HorizonWeeks int

	// GraceWeeks is the delayed-expiry window applied to superseded siblings.
	GraceWeeks int
}

// Default returns a Policy with the standard 4-week horizon and 12-week
// grace window.
func Default() Policy {
	return Policy{
		HorizonWeeks: DefaultHorizonWeeks,
		GraceWeeks:   DefaultGraceWeeks,
	}
}

// Expiry returns the date weeks weeks from today.
func Expiry(clock Clock, weeks int) time.Time {
	return clock.Today().AddDate(0, 0, 7*weeks)
}

// Horizon returns the synthesizer cut-off date under p.
func (p Policy) Horizon(clock Clock) time.Time {
	return Expiry(clock, p.HorizonWeeks)
}

// Grace returns the delayed expiry date for superseded references under p.
func (p Policy) Grace(clock Clock) time.Time {
	return Expiry(clock, p.GraceWeeks)
}
