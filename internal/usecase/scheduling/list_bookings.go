package scheduling

import (
	"context"
	"time"

	domain "github.com/kirienkoandrew/HairCut-1/internal/domain/scheduling"
	"github.com/kirienkoandrew/HairCut-1/internal/dto"
	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

type ListBookings struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListBookings(repo domain.Repository, loc *time.Location) *ListBookings {
	return &ListBookings{repo: repo, loc: loc}
}

// Execute lists a master's bookings, optionally narrowed to one day.
// dateStr == "" means the whole calendar.
func (uc *ListBookings) Execute(
	ctx context.Context,
	masterID uint,
	dateStr string,
) ([]dto.AppointmentDTO, error) {

	master, err := uc.repo.GetMasterByID(ctx, masterID)
	if err != nil {
		return nil, err
	}

	var from, to time.Time
	if dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusinessField("invalid_date", "date", "Use the YYYY-MM-DD date format.")
		}
		from = day
		to = day.AddDate(0, 0, 1)
	} else {
		from = time.Date(2000, 1, 1, 0, 0, 0, 0, uc.loc)
		to = time.Date(2100, 1, 1, 0, 0, 0, 0, uc.loc)
	}

	appointments, err := uc.repo.AppointmentsForMaster(ctx, master.ID, from, to)
	if err != nil {
		return nil, err
	}

	return toDTOs(appointments), nil
}

func toDTOs(appointments []models.Appointment) []dto.AppointmentDTO {
	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentDTO{
			ID:          ap.ID,
			MasterID:    ap.MasterID,
			ClientID:    ap.ClientID,
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
			StartsAt:    ap.StartsAt,
			EndsAt:      ap.EndsAt,
			Notes:       ap.Notes,
			CreatedAt:   ap.CreatedAt,
		})
	}
	return out
}
