package scheduling

import (
	"context"
	"time"

	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

type Repository interface {
	// -------- Master --------
	GetMasterByID(
		ctx context.Context,
		id uint,
	) (*models.MasterProfile, error)

	// GetMasterByUserID resolves the user -> profile link explicitly:
	// found=false means the user has no master profile yet.
	GetMasterByUserID(
		ctx context.Context,
		userID uint,
	) (*models.MasterProfile, bool, error)

	UpdateMaster(
		ctx context.Context,
		m *models.MasterProfile,
	) error

	// -------- Client registry --------
	// UpsertClientByPhone is an idempotent insert-on-conflict-update:
	// phone is the immutable key, the name is last-write-wins.
	UpsertClientByPhone(
		ctx context.Context,
		phone string,
		fullName string,
	) (*models.Client, error)

	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Appointments (queries) --------
	AppointmentsForMaster(
		ctx context.Context,
		masterID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	AppointmentsOverlapping(
		ctx context.Context,
		masterID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ByClientAndMaster(
		ctx context.Context,
		clientID uint,
		masterID uint,
	) ([]models.Appointment, error)

	// -------- Appointments (commit) --------
	// CommitAppointment re-checks overlap inside the insert
	// transaction; a lost race surfaces as the slot_conflict
	// business error, same as the pre-check.
	CommitAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
