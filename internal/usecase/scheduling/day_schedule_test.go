package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

func TestDaySchedule_MarksBookedSlots(t *testing.T) {
	repo := &mockRepository{
		appointmentsForMasterFunc: func(ctx context.Context, masterID uint, from, to time.Time) ([]models.Appointment, error) {
			return []models.Appointment{
				{
					MasterID: masterID,
					StartsAt: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
					EndsAt:   time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	uc := NewDaySchedule(repo, nil, time.UTC)

	slots, err := uc.Execute(context.Background(), 1, "2026-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 36 {
		t.Fatalf("got %d slots, want 36", len(slots))
	}

	booked := map[string]bool{}
	for _, s := range slots {
		booked[s.Time] = s.Booked
	}

	// [10:00, 10:30) blocks exactly two 15-minute slots
	for _, at := range []string{"10:00", "10:15"} {
		if !booked[at] {
			t.Errorf("slot %s should be marked booked", at)
		}
	}
	for _, at := range []string{"09:45", "10:30"} {
		if booked[at] {
			t.Errorf("slot %s should be free (half-open occupancy)", at)
		}
	}
}

// A booking made under an earlier work window (08:30 start, before
// the window moved to 09:00) still occupies the slots it spills into.
func TestDaySchedule_EarlierBookingSpillsIn(t *testing.T) {
	var gotFrom time.Time
	repo := &mockRepository{
		appointmentsForMasterFunc: func(ctx context.Context, masterID uint, from, to time.Time) ([]models.Appointment, error) {
			gotFrom = from
			return []models.Appointment{
				{
					MasterID: masterID,
					StartsAt: time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC),
					EndsAt:   time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	uc := NewDaySchedule(repo, nil, time.UTC)

	slots, err := uc.Execute(context.Background(), 1, "2026-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC); !gotFrom.Equal(want) {
		t.Errorf("occupancy query starts at %s, want midnight", gotFrom)
	}

	booked := map[string]bool{}
	for _, s := range slots {
		booked[s.Time] = s.Booked
	}
	if !booked["09:00"] {
		t.Error("09:00 should be booked by the spill from [08:30, 09:15)")
	}
	if booked["09:15"] {
		t.Error("09:15 should be free (half-open occupancy)")
	}
}

func TestMonthGrid_CountsFromStore(t *testing.T) {
	repo := &mockRepository{
		appointmentsForMasterFunc: func(ctx context.Context, masterID uint, from, to time.Time) ([]models.Appointment, error) {
			return []models.Appointment{
				{StartsAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
				{StartsAt: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)},
			}, nil
		},
	}
	uc := NewMonthGrid(repo, time.UTC)

	weeks, err := uc.Execute(context.Background(), 1, 2026, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, week := range weeks {
		for _, cell := range week {
			if cell.Date.Format("2006-01-02") == "2026-03-10" {
				found = true
				if cell.Count != 2 {
					t.Errorf("count = %d, want 2", cell.Count)
				}
				if !cell.InMonth {
					t.Error("March 10 should be in-month")
				}
			}
		}
	}
	if !found {
		t.Fatal("March 10 missing from the grid")
	}
}
