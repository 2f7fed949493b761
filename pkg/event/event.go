package event

import (
	"time"
)

// imminenceThreshold is how close to its start an event must be before the
// status bar highlights it.
const imminenceThreshold = 5 * time.Minute

// Event is the next upcoming calendar entry. StartTime is an absolute
// instant, derived from the wall-clock time the agenda tool printed.
type Event struct {
	StartTime   time.Time
	Description string
}

// StartsIn returns how long until the event starts (negative if it already
// started).
func (e Event) StartsIn(now time.Time) time.Duration {
	return e.StartTime.Sub(now)
}

// IsImminent reports whether the event starts within the threshold of now,
// inclusive. Only the upper bound is checked: an event that already started
// still counts as imminent, so a just-started meeting keeps showing as
// urgent.
func (e Event) IsImminent(now time.Time) bool {
	return e.StartsIn(now) <= imminenceThreshold
}
