package scheduling

import "time"

// Interval is a half-open [Start, End) time range. All overlap
// arithmetic in the calendar uses this convention, so back-to-back
// appointments never conflict.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}
