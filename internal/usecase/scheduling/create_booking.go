package scheduling

import (
	"context"
	"time"

	"github.com/kirienkoandrew/HairCut-1/internal/audit"
	domain "github.com/kirienkoandrew/HairCut-1/internal/domain/scheduling"
	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/infra/cache"
	"github.com/kirienkoandrew/HairCut-1/internal/models"
	"github.com/kirienkoandrew/HairCut-1/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	MasterID  uint
	CreatedBy uint
	RequestID string

	ServiceDate string // "2006-01-02"
	StartTime   string // "15:04"
	DurationMin int

	ClientName  string
	ClientPhone string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.DayScheduleCache
	loc   *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.DayScheduleCache,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	master, err := uc.repo.GetMasterByID(ctx, in.MasterID)
	if err != nil {
		return nil, err
	}

	if !validators.IsPhoneValid(in.ClientPhone) {
		return nil, httperr.ErrBusinessField(
			"invalid_phone", "client_phone",
			"Use the +71234567890 phone format.",
		)
	}

	serviceDate, err := time.ParseInLocation("2006-01-02", in.ServiceDate, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusinessField(
			"invalid_date", "service_date",
			"Use the YYYY-MM-DD date format.",
		)
	}

	// status, work-hours, granularity and duration gates, then the
	// concrete [starts_at, ends_at) interval
	interval, err := domain.ValidateBooking(master, domain.BookingRequest{
		ServiceDate: serviceDate,
		StartTime:   in.StartTime,
		DurationMin: in.DurationMin,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		Notes:       in.Notes,
	})
	if err != nil {
		return nil, err
	}

	// overlap pre-check; the commit below re-checks under lock, so a
	// clean result here is advisory only
	overlapping, err := uc.repo.AppointmentsOverlapping(
		ctx,
		master.ID,
		interval.Start,
		interval.End,
	)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, httperr.ErrBusinessField(
			"slot_conflict", "start_time",
			"This slot is already taken.",
		)
	}

	client, err := uc.repo.UpsertClientByPhone(ctx, in.ClientPhone, in.ClientName)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		MasterID:    master.ID,
		ClientID:    client.ID,
		ClientName:  client.FullName,
		ClientPhone: client.Phone,
		StartsAt:    interval.Start,
		EndsAt:      interval.End,
		Notes:       in.Notes,
		CreatedBy:   in.CreatedBy,
	}

	if err := uc.repo.CommitAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			uc.audit.Dispatch(audit.Event{
				MasterID:  master.ID,
				UserID:    &in.CreatedBy,
				Action:    "appointment_conflict",
				Entity:    "appointment",
				RequestID: in.RequestID,
				Metadata: map[string]any{
					"starts_at": interval.Start,
					"ends_at":   interval.End,
				},
			})
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, master.ID, in.ServiceDate)

	uc.audit.Dispatch(audit.Event{
		MasterID:  master.ID,
		UserID:    &in.CreatedBy,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: in.RequestID,
	})

	return ap, nil
}
