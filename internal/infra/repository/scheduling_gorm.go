package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/kirienkoandrew/HairCut-1/internal/domain/scheduling"
	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Master
// --------------------------------------------------

func (r *SchedulingGormRepository) GetMasterByID(
	ctx context.Context,
	id uint,
) (*models.MasterProfile, error) {

	var master models.MasterProfile
	if err := r.db.WithContext(ctx).
		Preload("Profession").
		First(&master, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessField("not_found", "master", "Master not found.")
		}
		return nil, err
	}
	return &master, nil
}

func (r *SchedulingGormRepository) GetMasterByUserID(
	ctx context.Context,
	userID uint,
) (*models.MasterProfile, bool, error) {

	var master models.MasterProfile
	err := r.db.WithContext(ctx).
		Preload("Profession").
		Where("user_id = ?", userID).
		First(&master).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &master, true, nil
}

func (r *SchedulingGormRepository) UpdateMaster(
	ctx context.Context,
	m *models.MasterProfile,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// --------------------------------------------------
// Client registry
// --------------------------------------------------

// UpsertClientByPhone inserts the client or, when the phone is already
// registered, updates the stored name to the latest value. A single
// ON CONFLICT statement closes the read-then-write race of a naive
// get-or-create.
func (r *SchedulingGormRepository) UpsertClientByPhone(
	ctx context.Context,
	phone string,
	fullName string,
) (*models.Client, error) {

	client := models.Client{
		FullName: fullName,
		Phone:    phone,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoUpdates: clause.Assignments(map[string]any{"full_name": fullName}),
		}).
		Create(&client).Error; err != nil {
		return nil, err
	}

	// reload to get the authoritative row regardless of dialect
	var saved models.Client
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *SchedulingGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessField("not_found", "client", "Client not found.")
		}
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Appointments (queries)
// --------------------------------------------------

func (r *SchedulingGormRepository) AppointmentsForMaster(
	ctx context.Context,
	masterID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	apps := []models.Appointment{}
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"master_id = ? AND starts_at >= ? AND starts_at < ?",
			masterID, from, to,
		).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// AppointmentsOverlapping is the sole conflict-detection primitive:
// half-open intersection, so an appointment ending exactly when the
// candidate starts never counts.
func (r *SchedulingGormRepository) AppointmentsOverlapping(
	ctx context.Context,
	masterID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	apps := []models.Appointment{}
	if err := r.db.WithContext(ctx).
		Where(
			"master_id = ? AND starts_at < ? AND ends_at > ?",
			masterID, end, start,
		).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// ByClientAndMaster returns the client's history with one master only.
// Appointments owned by other masters are never visible here.
func (r *SchedulingGormRepository) ByClientAndMaster(
	ctx context.Context,
	clientID uint,
	masterID uint,
) ([]models.Appointment, error) {

	apps := []models.Appointment{}
	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND master_id = ?", clientID, masterID).
		Order("starts_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointments (commit)
// --------------------------------------------------

// CommitAppointment inserts atomically. Commits are serialized per
// master with a transaction-scoped advisory lock before the overlap
// re-check: under READ COMMITTED two racing transactions would each
// see an empty overlap set while the other's insert is still
// uncommitted, and row locks on an empty match set lock nothing. The
// (master_id, starts_at) unique index additionally backstops
// exact-start races. Either way the loser gets slot_conflict.
func (r *SchedulingGormRepository) CommitAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// sqlite (used in tests) serializes writers on its own
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(?)",
				int64(ap.MasterID),
			).Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where(
				"master_id = ? AND starts_at < ? AND ends_at > ?",
				ap.MasterID, ap.EndsAt, ap.StartsAt,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusinessField("slot_conflict", "start_time", "This slot is already taken.")
		}

		if err := tx.Create(ap).Error; err != nil {
			if isUniqueViolation(err) {
				return httperr.ErrBusinessField("slot_conflict", "start_time", "This slot is already taken.")
			}
			return err
		}

		return nil
	})
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
