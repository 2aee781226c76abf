package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kirienkoandrew/HairCut-1/internal/httperr"
	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

func newTestRepo(t *testing.T) (*SchedulingGormRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// one connection: every pool connection gets its own :memory:
	// database, and a single writer makes concurrent commits serialize
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profession{},
		&models.MasterProfile{},
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewSchedulingGormRepository(db), db
}

func seedMaster(t *testing.T, db *gorm.DB, userID uint) *models.MasterProfile {
	t.Helper()

	master := &models.MasterProfile{
		UserID:    userID,
		WorkStart: "09:00",
		WorkEnd:   "18:00",
		Status:    models.MasterStatusActive,
	}
	if err := db.Create(master).Error; err != nil {
		t.Fatalf("seed master: %v", err)
	}
	return master
}

func ts(day, h, m int) time.Time {
	return time.Date(2026, 3, day, h, m, 0, 0, time.UTC)
}

func TestAppointmentsOverlapping_HalfOpen(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	master := seedMaster(t, db, 1)

	existing := &models.Appointment{
		MasterID: master.ID,
		StartsAt: ts(10, 10, 0),
		EndsAt:   ts(10, 10, 30),
	}
	if err := db.Create(existing).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"identical", ts(10, 10, 0), ts(10, 10, 30), 1},
		{"straddles start", ts(10, 9, 45), ts(10, 10, 15), 1},
		{"straddles end", ts(10, 10, 15), ts(10, 10, 45), 1},
		{"touching before", ts(10, 9, 30), ts(10, 10, 0), 0},
		{"touching after", ts(10, 10, 30), ts(10, 11, 0), 0},
		{"disjoint", ts(10, 14, 0), ts(10, 15, 0), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := repo.AppointmentsOverlapping(ctx, master.ID, c.start, c.end)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if len(got) != c.want {
				t.Errorf("got %d overlapping, want %d", len(got), c.want)
			}
		})
	}

	// other masters never conflict
	other := seedMaster(t, db, 2)
	got, err := repo.AppointmentsOverlapping(ctx, other.ID, ts(10, 10, 0), ts(10, 10, 30))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("foreign master sees %d conflicts, want 0", len(got))
	}
}

func TestCommitAppointment_RejectsOverlap(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	master := seedMaster(t, db, 1)

	first := &models.Appointment{
		MasterID: master.ID,
		StartsAt: ts(10, 10, 0),
		EndsAt:   ts(10, 10, 30),
	}
	if err := repo.CommitAppointment(ctx, first); err != nil {
		t.Fatalf("first commit: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("commit did not assign an id")
	}

	// same start, the (master_id, starts_at) key
	dup := &models.Appointment{
		MasterID: master.ID,
		StartsAt: ts(10, 10, 0),
		EndsAt:   ts(10, 10, 15),
	}
	if err := repo.CommitAppointment(ctx, dup); !httperr.IsBusiness(err, "slot_conflict") {
		t.Errorf("duplicate start: got %v, want slot_conflict", err)
	}

	// different start, overlapping interval
	overlap := &models.Appointment{
		MasterID: master.ID,
		StartsAt: ts(10, 10, 15),
		EndsAt:   ts(10, 10, 45),
	}
	if err := repo.CommitAppointment(ctx, overlap); !httperr.IsBusiness(err, "slot_conflict") {
		t.Errorf("overlapping commit: got %v, want slot_conflict", err)
	}

	// back-to-back is legal
	adjacent := &models.Appointment{
		MasterID: master.ID,
		StartsAt: ts(10, 10, 30),
		EndsAt:   ts(10, 11, 0),
	}
	if err := repo.CommitAppointment(ctx, adjacent); err != nil {
		t.Errorf("adjacent commit rejected: %v", err)
	}
}

// Two concurrent commits for overlapping-but-different start times:
// the unique index never fires (different starts_at), so only the
// serialized in-transaction re-check can reject the loser.
func TestCommitAppointment_ConcurrentOverlapOneWinner(t *testing.T) {
	repo, db := newTestRepo(t)
	master := seedMaster(t, db, 1)

	commits := []*models.Appointment{
		{MasterID: master.ID, StartsAt: ts(10, 10, 0), EndsAt: ts(10, 10, 30)},
		{MasterID: master.ID, StartsAt: ts(10, 10, 15), EndsAt: ts(10, 10, 45)},
	}

	errs := make(chan error, len(commits))
	start := make(chan struct{})

	for _, ap := range commits {
		go func(ap *models.Appointment) {
			<-start
			errs <- repo.CommitAppointment(context.Background(), ap)
		}(ap)
	}
	close(start)

	var wins, conflicts int
	for range commits {
		switch err := <-errs; {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, "slot_conflict"):
			conflicts++
		default:
			t.Fatalf("unexpected commit error: %v", err)
		}
	}

	if wins != 1 || conflicts != 1 {
		t.Errorf("got %d winners and %d conflicts, want exactly one of each", wins, conflicts)
	}

	var count int64
	db.Model(&models.Appointment{}).Where("master_id = ?", master.ID).Count(&count)
	if count != 1 {
		t.Errorf("%d appointments committed, want 1", count)
	}
}

func TestUpsertClientByPhone_Idempotent(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.UpsertClientByPhone(ctx, "+79161234567", "Anna Petrova")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.UpsertClientByPhone(ctx, "+79161234567", "Anna P.")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("upsert created a second record: %d != %d", first.ID, second.ID)
	}
	if second.FullName != "Anna P." {
		t.Errorf("name = %q, want the latest value", second.FullName)
	}

	var count int64
	db.Model(&models.Client{}).Where("phone = ?", "+79161234567").Count(&count)
	if count != 1 {
		t.Errorf("client rows = %d, want 1", count)
	}
}

func TestByClientAndMaster_Isolation(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	masterA := seedMaster(t, db, 1)
	masterB := seedMaster(t, db, 2)

	client, err := repo.UpsertClientByPhone(ctx, "+79161234567", "Anna Petrova")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	for i, m := range []*models.MasterProfile{masterA, masterA, masterB} {
		ap := &models.Appointment{
			MasterID: m.ID,
			ClientID: client.ID,
			StartsAt: ts(10+i, 10, 0),
			EndsAt:   ts(10+i, 10, 30),
		}
		if err := repo.CommitAppointment(ctx, ap); err != nil {
			t.Fatalf("seed commit %d: %v", i, err)
		}
	}

	history, err := repo.ByClientAndMaster(ctx, client.ID, masterA.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("master A sees %d visits, want 2", len(history))
	}
	if history[0].StartsAt.Before(history[1].StartsAt) {
		t.Error("history should be ordered newest first")
	}
	for _, ap := range history {
		if ap.MasterID != masterA.ID {
			t.Errorf("foreign appointment %d leaked into history", ap.ID)
		}
	}
}

func TestGetMasterByUserID_FoundAbsent(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	seeded := seedMaster(t, db, 5)

	master, found, err := repo.GetMasterByUserID(ctx, 5)
	if err != nil || !found {
		t.Fatalf("expected found, got found=%v err=%v", found, err)
	}
	if master.ID != seeded.ID {
		t.Errorf("master id = %d, want %d", master.ID, seeded.ID)
	}

	_, found, err = repo.GetMasterByUserID(ctx, 6)
	if err != nil {
		t.Fatalf("absent lookup errored: %v", err)
	}
	if found {
		t.Error("expected absent for a user without a profile")
	}
}

func TestUpdateMaster_PersistsStatusAndWindow(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	master := seedMaster(t, db, 1)
	master.Status = models.MasterStatusPending
	if err := db.Save(master).Error; err != nil {
		t.Fatalf("reset status: %v", err)
	}

	approved := ts(1, 12, 0)
	master.Status = models.MasterStatusActive
	master.ApprovedAt = &approved
	master.WorkStart = "10:00"
	master.WorkEnd = "19:00"
	if err := repo.UpdateMaster(ctx, master); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetMasterByID(ctx, master.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != models.MasterStatusActive {
		t.Errorf("status = %q, want active", got.Status)
	}
	if got.ApprovedAt == nil || !got.ApprovedAt.Equal(approved) {
		t.Errorf("approved_at = %v, want %s", got.ApprovedAt, approved)
	}
	if got.WorkStart != "10:00" || got.WorkEnd != "19:00" {
		t.Errorf("window = %s-%s, want 10:00-19:00", got.WorkStart, got.WorkEnd)
	}
}

func TestAppointmentsForMaster_EmptyRange(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	master := seedMaster(t, db, 1)

	got, err := repo.AppointmentsForMaster(ctx, master.ID, ts(10, 0, 0), ts(10, 0, 0))
	if err != nil {
		t.Fatalf("empty range must not error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty range returned %d rows", len(got))
	}
}
