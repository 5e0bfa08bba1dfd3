package testutil

import (
	"time"

	"github.com/gopidesupavan/infrastructure-actions/internal/policy"
)

// FixedClock is a policy.Clock pinned to a single date.
//
// Tests pin "today" so that every expiry window and boundary comparison is
// reproducible regardless of when the test runs.
type FixedClock struct {
	day time.Time
}

// NewFixedClock creates a clock pinned to the given date. The value is
// normalized to midnight UTC.
func NewFixedClock(day time.Time) *FixedClock {
	return &FixedClock{day: policy.Midnight(day)}
}

// Date is a shorthand for pinning a clock to a year/month/day triple.
func Date(year int, month time.Month, day int) *FixedClock {
	return NewFixedClock(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today returns the pinned date.
func (c *FixedClock) Today() time.Time {
	return c.day
}

// Advance moves the pinned date forward by the given number of days.
// Negative values move it backward.
func (c *FixedClock) Advance(days int) {
	c.day = c.day.AddDate(0, 0, days)
}
