package scheduling

import (
	"time"

	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

const (
	SlotStep = 15 * time.Minute

	MinDurationMinutes = 15
	MaxDurationMinutes = 600
)

// BookingRequest is a candidate booking after transport-level binding.
type BookingRequest struct {
	ServiceDate time.Time // midnight in the deployment timezone
	StartTime   string    // "HH:MM"
	DurationMin int
	ClientName  string
	ClientPhone string
	Notes       string
}

// ValidateBooking runs the pre-storage gates in a fixed order; the
// first failing gate wins and short-circuits the rest. Conflict
// detection against existing appointments is the store's job and
// happens after these gates.
func ValidateBooking(master *models.MasterProfile, req BookingRequest) (Interval, error) {

	// 1. status gate
	if !master.IsActive() {
		return Interval{}, httperr.ErrBusinessField(
			"master_not_active", "master",
			"Bookings are allowed only for approved masters.",
		)
	}

	window, err := ParseWorkWindow(master.WorkStart, master.WorkEnd)
	if err != nil {
		return Interval{}, err
	}

	start, err := ParseClock(req.StartTime)
	if err != nil {
		return Interval{}, httperr.ErrBusinessField(
			"invalid_time", "start_time",
			"Use the HH:MM format.",
		)
	}

	// 2. work-hours gate: only the start is checked, the end may run
	// past the end of the working day
	if !window.ContainsStart(start) {
		return Interval{}, httperr.ErrBusinessField(
			"outside_working_hours", "start_time",
			"Start time must fall within the master's working day.",
		)
	}

	// 3. granularity gate: offset from work start in 15-minute steps
	if (start-window.Start)%SlotStep != 0 {
		return Interval{}, httperr.ErrBusinessField(
			"invalid_granularity", "start_time",
			"Start times are offered in 15-minute steps only.",
		)
	}

	// 4. duration bound, re-checked in case binding was bypassed
	if req.DurationMin < MinDurationMinutes || req.DurationMin > MaxDurationMinutes {
		return Interval{}, httperr.ErrBusinessField(
			"invalid_duration", "duration_minutes",
			"Duration must be between 15 minutes and 10 hours.",
		)
	}

	// 5. interval construction
	d := req.ServiceDate
	startsAt := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).Add(start)
	endsAt := startsAt.Add(time.Duration(req.DurationMin) * time.Minute)

	return Interval{Start: startsAt, End: endsAt}, nil
}
