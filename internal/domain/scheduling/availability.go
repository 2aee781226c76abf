package scheduling

import (
	"time"

	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

// DayCell is one cell of the month calendar grid.
type DayCell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
	Count   int       `json:"count"`
}

// MonthGrid builds Monday-first full weeks covering the given month:
// from the Monday on/before the 1st through the Sunday on/after the
// last day, so the total cell count is always a multiple of 7.
func MonthGrid(year int, month time.Month, loc *time.Location) [][]DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	// time.Weekday is Sunday-based, the grid is Monday-based
	gridStart := first.AddDate(0, 0, -int((first.Weekday()+6)%7))
	gridEnd := last.AddDate(0, 0, int((7-last.Weekday())%7))

	var weeks [][]DayCell
	for day := gridStart; !day.After(gridEnd); {
		week := make([]DayCell, 0, 7)
		for i := 0; i < 7; i++ {
			week = append(week, DayCell{
				Date:    day,
				InMonth: day.Month() == month && day.Year() == year,
			})
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// GridRange returns the half-open [first cell, day after last cell)
// range used to load appointments for the whole grid at once.
func GridRange(weeks [][]DayCell) (time.Time, time.Time) {
	first := weeks[0][0].Date
	last := weeks[len(weeks)-1][6].Date
	return first, last.AddDate(0, 0, 1)
}

// AnnotateCounts fills per-day appointment counts. Timestamps are
// normalized to the grid's location first: the driver may hand back
// UTC instants, and near local midnight those bucket onto the wrong
// calendar day otherwise.
func AnnotateCounts(weeks [][]DayCell, appointments []models.Appointment) {
	if len(weeks) == 0 {
		return
	}
	loc := weeks[0][0].Date.Location()

	counts := make(map[string]int, len(appointments))
	for _, ap := range appointments {
		counts[ap.StartsAt.In(loc).Format("2006-01-02")]++
	}
	for _, week := range weeks {
		for i := range week {
			week[i].Count = counts[week[i].Date.Format("2006-01-02")]
		}
	}
}

// DaySlots lists candidate start times at 15-minute steps from the
// start of the working day (inclusive) to its end (exclusive).
// Occupancy is deliberately not filtered here; callers cross-reference
// the store to mark booked slots.
func DaySlots(window WorkWindow, date time.Time) []time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var slots []time.Time
	for cur := window.Start; cur < window.End; cur += SlotStep {
		slots = append(slots, midnight.Add(cur))
	}
	return slots
}
