package scheduling

import (
	"context"
	"time"

	domain "github.com/kirienkoandrew/HairCut-1/internal/domain/scheduling"
	"github.com/kirienkoandrew/HairCut-1/internal/dto"
	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/infra/cache"
)

type DaySchedule struct {
	repo  domain.Repository
	cache *cache.DayScheduleCache
	loc   *time.Location
}

func NewDaySchedule(
	repo domain.Repository,
	cache *cache.DayScheduleCache,
	loc *time.Location,
) *DaySchedule {
	return &DaySchedule{repo: repo, cache: cache, loc: loc}
}

// Execute lists every candidate 15-minute start of the working day and
// marks the ones falling inside a committed appointment. Slot
// generation stays separate from occupancy so display logic never leaks
// into conflict logic.
func (uc *DaySchedule) Execute(
	ctx context.Context,
	masterID uint,
	dateStr string,
) ([]dto.DaySlotDTO, error) {

	master, err := uc.repo.GetMasterByID(ctx, masterID)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusinessField("invalid_date", "date", "Use the YYYY-MM-DD date format.")
	}

	if cached, ok := uc.cache.Get(ctx, master.ID, dateStr); ok {
		return cached, nil
	}

	window, err := domain.ParseWorkWindow(master.WorkStart, master.WorkEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.DaySlots(window, date)

	// the whole day, not just the current window: bookings made under
	// an earlier window may still spill into today's slots
	appointments, err := uc.repo.AppointmentsForMaster(ctx, master.ID, date, date.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	out := make([]dto.DaySlotDTO, 0, len(slots))
	for _, slot := range slots {
		booked := false
		for _, ap := range appointments {
			if (domain.Interval{Start: ap.StartsAt, End: ap.EndsAt}).Contains(slot) {
				booked = true
				break
			}
		}
		out = append(out, dto.DaySlotDTO{
			Time:   slot.Format("15:04"),
			Booked: booked,
		})
	}

	uc.cache.Set(ctx, master.ID, dateStr, out)
	return out, nil
}
