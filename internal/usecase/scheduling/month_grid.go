package scheduling

import (
	"context"
	"time"

	domain "github.com/kirienkoandrew/HairCut-1/internal/domain/scheduling"
)

type MonthGrid struct {
	repo domain.Repository
	loc  *time.Location
}

func NewMonthGrid(repo domain.Repository, loc *time.Location) *MonthGrid {
	return &MonthGrid{repo: repo, loc: loc}
}

// Execute renders the month calendar: Monday-first full weeks with
// per-day appointment counts pulled in a single range query.
func (uc *MonthGrid) Execute(
	ctx context.Context,
	masterID uint,
	year int,
	month int,
) ([][]domain.DayCell, error) {

	master, err := uc.repo.GetMasterByID(ctx, masterID)
	if err != nil {
		return nil, err
	}

	weeks := domain.MonthGrid(year, time.Month(month), uc.loc)

	from, to := domain.GridRange(weeks)
	appointments, err := uc.repo.AppointmentsForMaster(ctx, master.ID, from, to)
	if err != nil {
		return nil, err
	}

	domain.AnnotateCounts(weeks, appointments)
	return weeks, nil
}
