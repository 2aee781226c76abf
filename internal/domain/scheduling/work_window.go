package scheduling

import (
	"time"

	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
)

const timeLayout = "15:04"

// WorkWindow is a master's daily [Start, End) working interval,
// stored as "HH:MM" strings on the profile.
type WorkWindow struct {
	Start time.Duration // offset from midnight
	End   time.Duration
}

func ParseClock(hm string) (time.Duration, error) {
	t, err := time.Parse(timeLayout, hm)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// ParseWorkWindow validates both clock values and the start < end
// invariant enforced at profile create/update.
func ParseWorkWindow(start, end string) (WorkWindow, error) {
	s, err := ParseClock(start)
	if err != nil {
		return WorkWindow{}, httperr.ErrBusinessField("invalid_time", "work_start", "Use the HH:MM format.")
	}
	e, err := ParseClock(end)
	if err != nil {
		return WorkWindow{}, httperr.ErrBusinessField("invalid_time", "work_end", "Use the HH:MM format.")
	}
	if s >= e {
		return WorkWindow{}, httperr.ErrBusinessField("invalid_work_window", "work_end", "End of the working day must be after its start.")
	}
	return WorkWindow{Start: s, End: e}, nil
}

// ContainsStart reports whether a start offset falls inside the
// half-open window. Only the start is gated; a booking may legally
// run past the end of the working day.
func (w WorkWindow) ContainsStart(offset time.Duration) bool {
	return offset >= w.Start && offset < w.End
}
