package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	bookingserrors "pawbook/internal/bookings/errors"
	"pawbook/pkg/config"
	"pawbook/pkg/model"
)

// Filter narrows ListAll; zero values mean "no constraint".
type Filter struct {
	Status   string
	DoctorID int
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindByCode(ctx context.Context, code string) (*model.Booking, error)
	FindAll(ctx context.Context, filter Filter) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	DoctorSummary(ctx context.Context, doctorID int) (*model.DoctorSummary, error)
}

type gormBookingRepository struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewGormBookingRepository(cfg *config.Config, db *gorm.DB) BookingRepository {
	return &gormBookingRepository{
		cfg: cfg,
		db:  db,
	}
}

// withTimeout bounds a store call without shortening an inherited deadline
// past the caller's own budget.
func (r *gormBookingRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// Create persists the booking. The unique index on the code column is the
// real uniqueness authority; a duplicate insert comes back as ErrCodeExists
// regardless of what any earlier probe saw.
func (r *gormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return bookingserrors.ErrCodeExists
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *gormBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var booking model.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	if err := r.attachDoctor(ctx, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByCode is the uniqueness probe used during code allocation; it skips
// enrichment on purpose.
func (r *gormBookingRepository) FindByCode(ctx context.Context, code string) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var booking model.Booking
	err := r.db.WithContext(ctx).First(&booking, `"bookingId" = ?`, code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking by code: %w", err)
	}
	return &booking, nil
}

func (r *gormBookingRepository) FindAll(ctx context.Context, filter Filter) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Model(&model.Booking{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DoctorID > 0 {
		q = q.Where(`"doctorId" = ?`, filter.DoctorID)
	}

	var bookings []*model.Booking
	if err := q.Order(`"date" DESC`).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	if err := r.attachDoctors(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormBookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bookingserrors.ErrNotFound
	}
	return nil
}

// DoctorSummary is the read-side projection joined into booking responses.
func (r *gormBookingRepository) DoctorSummary(ctx context.Context, doctorID int) (*model.DoctorSummary, error) {
	var summary model.DoctorSummary
	err := r.db.WithContext(ctx).
		Model(&model.Doctor{}).
		Select("id", "name", "specialty").
		Where("id = ?", doctorID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load doctor summary: %w", err)
	}
	return &summary, nil
}

func (r *gormBookingRepository) attachDoctor(ctx context.Context, booking *model.Booking) error {
	summary, err := r.DoctorSummary(ctx, booking.DoctorID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			// Doctors are never deleted by this flow; tolerate the gap
			// instead of failing the read.
			return nil
		}
		return err
	}
	booking.Doctor = summary
	return nil
}

func (r *gormBookingRepository) attachDoctors(ctx context.Context, bookings []*model.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int, 0, len(bookings))
	seen := make(map[int]bool, len(bookings))
	for _, b := range bookings {
		if !seen[b.DoctorID] {
			seen[b.DoctorID] = true
			ids = append(ids, b.DoctorID)
		}
	}

	var summaries []model.DoctorSummary
	err := r.db.WithContext(ctx).
		Model(&model.Doctor{}).
		Select("id", "name", "specialty").
		Where("id IN ?", ids).
		Find(&summaries).Error
	if err != nil {
		return fmt.Errorf("failed to load doctor summaries: %w", err)
	}

	byID := make(map[int]*model.DoctorSummary, len(summaries))
	for i := range summaries {
		byID[summaries[i].ID] = &summaries[i]
	}
	for _, b := range bookings {
		b.Doctor = byID[b.DoctorID]
	}
	return nil
}
