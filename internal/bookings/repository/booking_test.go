package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	bookingserrors "pawbook/internal/bookings/errors"
	"pawbook/pkg/config"
	"pawbook/pkg/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test; cache=shared keeps it alive
	// across the pool's connections.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestRepository(t *testing.T) (BookingRepository, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	return NewGormBookingRepository(cfg, db), db
}

func seedDoctor(t *testing.T, db *gorm.DB, name, specialty string) int {
	t.Helper()

	doctor := &model.Doctor{
		Name:          name,
		Specialty:     specialty,
		Timings:       model.StringList{"09:00-12:00"},
		AvailableDays: model.StringList{"Monday", "Wednesday"},
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	return doctor.ID
}

func newBooking(code string, doctorID int, date time.Time) *model.Booking {
	return &model.Booking{
		ID:        uuid.NewString(),
		Code:      code,
		Service:   model.ServiceVaccination,
		DoctorID:  doctorID,
		Date:      date,
		TimeSlot:  "10:00 AM",
		OwnerName: "Asha Rao",
		Phone:     "+919876543210",
		PetType:   "dog",
		Status:    model.StatusPending,
	}
}

func TestCreateAndFindByID(t *testing.T) {
	repo, db := newTestRepository(t)
	doctorID := seedDoctor(t, db, "Dr. Ashok Kumar", "General Veterinary Medicine")

	booking := newBooking("BK1234", doctorID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := repo.FindByID(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got.Code != "BK1234" {
		t.Errorf("expected code BK1234, got %s", got.Code)
	}
	if got.Status != model.StatusPending {
		t.Errorf("expected status pending, got %s", got.Status)
	}
	if got.Doctor == nil {
		t.Fatal("expected doctor projection to be attached")
	}
	if got.Doctor.ID != doctorID || got.Doctor.Name != "Dr. Ashok Kumar" {
		t.Errorf("unexpected doctor projection: %+v", got.Doctor)
	}
}

func TestCreateDuplicateCode(t *testing.T) {
	repo, db := newTestRepository(t)
	doctorID := seedDoctor(t, db, "Dr. Priya Mehta", "Dermatology")

	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	if err := repo.Create(context.Background(), newBooking("BK2000", doctorID, date)); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	err := repo.Create(context.Background(), newBooking("BK2000", doctorID, date))
	if !errors.Is(err, bookingserrors.ErrCodeExists) {
		t.Fatalf("expected ErrCodeExists, got %v", err)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.FindByID(context.Background(), uuid.NewString())
	if !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByCode(t *testing.T) {
	repo, db := newTestRepository(t)
	doctorID := seedDoctor(t, db, "Dr. Rajesh Kumar", "Surgery")

	booking := newBooking("BK3456", doctorID, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := repo.FindByCode(context.Background(), "BK3456")
	if err != nil {
		t.Fatalf("FindByCode returned error: %v", err)
	}
	if got.ID != booking.ID {
		t.Errorf("expected id %s, got %s", booking.ID, got.ID)
	}

	if _, err := repo.FindByCode(context.Background(), "BK0000"); !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown code, got %v", err)
	}
}

func TestFindAllFiltersAndOrder(t *testing.T) {
	repo, db := newTestRepository(t)
	doctorA := seedDoctor(t, db, "Dr. Ashok Kumar", "General Veterinary Medicine")
	doctorB := seedDoctor(t, db, "Dr. Priya Mehta", "Dermatology")

	older := newBooking("BK4001", doctorA, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	newer := newBooking("BK4002", doctorA, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	other := newBooking("BK4003", doctorB, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
	other.Status = model.StatusConfirmed

	for _, b := range []*model.Booking{older, newer, other} {
		if err := repo.Create(context.Background(), b); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	all, err := repo.FindAll(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(all))
	}
	if all[0].Code != "BK4002" || all[1].Code != "BK4003" || all[2].Code != "BK4001" {
		t.Errorf("expected newest-first order, got %s %s %s", all[0].Code, all[1].Code, all[2].Code)
	}
	for _, b := range all {
		if b.Doctor == nil {
			t.Errorf("expected doctor projection on %s", b.Code)
		}
	}

	byDoctor, err := repo.FindAll(context.Background(), Filter{DoctorID: doctorA})
	if err != nil {
		t.Fatalf("FindAll by doctor returned error: %v", err)
	}
	if len(byDoctor) != 2 {
		t.Fatalf("expected 2 bookings for doctor %d, got %d", doctorA, len(byDoctor))
	}

	byStatus, err := repo.FindAll(context.Background(), Filter{Status: model.StatusConfirmed})
	if err != nil {
		t.Fatalf("FindAll by status returned error: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].Code != "BK4003" {
		t.Fatalf("expected only BK4003 confirmed, got %+v", byStatus)
	}

	both, err := repo.FindAll(context.Background(), Filter{Status: model.StatusConfirmed, DoctorID: doctorA})
	if err != nil {
		t.Fatalf("FindAll with both filters returned error: %v", err)
	}
	if len(both) != 0 {
		t.Fatalf("expected no matches for combined filter, got %d", len(both))
	}
}

func TestUpdateStatus(t *testing.T) {
	repo, db := newTestRepository(t)
	doctorID := seedDoctor(t, db, "External Specialist", "Advanced Surgery")

	booking := newBooking("BK5001", doctorID, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.UpdateStatus(context.Background(), booking.ID, model.StatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	got, err := repo.FindByID(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got.Status != model.StatusConfirmed {
		t.Errorf("expected status confirmed, got %s", got.Status)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	err := repo.UpdateStatus(context.Background(), uuid.NewString(), model.StatusCancelled)
	if !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDoctorSummaryNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.DoctorSummary(context.Background(), 404)
	if !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
