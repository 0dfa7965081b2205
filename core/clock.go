package core

import "time"

// Clock abstracts "now" so date-scoped behavior (override expiry, session TTLs)
// can be pinned in tests.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now() }

// Today returns the current local calendar day per this clock.
func (c Clock) Today() Date {
	return DateOf(c())
}
