package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

func TestClientHistory_VisibilityIsolation(t *testing.T) {
	// client 3 has visits with master 1 only
	visits := []models.Appointment{
		{ID: 2, MasterID: 1, ClientID: 3, StartsAt: time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)},
		{ID: 1, MasterID: 1, ClientID: 3, StartsAt: time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)},
	}

	repo := &mockRepository{
		byClientAndMasterFunc: func(ctx context.Context, clientID, masterID uint) ([]models.Appointment, error) {
			if masterID == 1 && clientID == 3 {
				return visits, nil
			}
			return []models.Appointment{}, nil
		},
	}
	uc := NewClientHistory(repo)

	// the owning master sees the history, newest first
	client, history, err := uc.Execute(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.ID != 3 {
		t.Errorf("client id = %d, want 3", client.ID)
	}
	if len(history) != 2 || history[0].ID != 2 {
		t.Errorf("history = %+v, want two visits, newest first", history)
	}

	// a foreign master gets not_found, never an empty listing
	_, _, err = uc.Execute(context.Background(), 2, 3)
	if !httperr.IsBusiness(err, "not_found") {
		t.Errorf("foreign master: got %v, want not_found", err)
	}
}

func TestListBookings_DayFilter(t *testing.T) {
	var gotFrom, gotTo time.Time
	repo := &mockRepository{
		appointmentsForMasterFunc: func(ctx context.Context, masterID uint, from, to time.Time) ([]models.Appointment, error) {
			gotFrom, gotTo = from, to
			return []models.Appointment{}, nil
		},
	}
	uc := NewListBookings(repo, time.UTC)

	if _, err := uc.Execute(context.Background(), 1, "2026-03-10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFrom := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !gotFrom.Equal(wantFrom) || !gotTo.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Errorf("range = [%s, %s), want one day from %s", gotFrom, gotTo, wantFrom)
	}

	if _, err := uc.Execute(context.Background(), 1, "10.03.2026"); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("got %v, want invalid_date", err)
	}
}
