package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	bookingserrors "pawbook/internal/bookings/errors"
	"pawbook/internal/bookings/events"
	"pawbook/internal/bookings/repository"
	"pawbook/internal/bookings/validator"
	"pawbook/pkg/config"
	apperrors "pawbook/pkg/errors"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"
	"pawbook/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, filter repository.Filter) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, update *model.BookingUpdate) (*model.Booking, error)
}

type bookingService struct {
	cfg       *config.Config
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	logger    *logger.Logger
}

func NewBookingService(
	cfg *config.Config,
	repo repository.BookingRepository,
	v *validator.BookingValidator,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		cfg:       cfg,
		repo:      repo,
		validator: v,
		publisher: publisher,
		logger:    log,
	}
}

func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	s.sanitizeRequest(req)

	if err := s.validator.ValidateRequest(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, apperrors.Validation("Validation failed", verrs)
		}
		return nil, apperrors.Internal("failed to validate booking request", err)
	}

	date, err := validator.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.InvalidInput("date must be an RFC 3339 timestamp or a YYYY-MM-DD calendar date")
	}

	// The doctor must exist before a code is spent on the booking.
	if _, err := s.repo.DoctorSummary(ctx, req.DoctorID); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Doctor", fmt.Sprintf("%d", req.DoctorID))
		}
		return nil, apperrors.Internal("failed to look up doctor", err)
	}

	code, err := s.allocateCode(ctx)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		ID:        uuid.NewString(),
		Code:      code,
		Service:   req.Service,
		DoctorID:  req.DoctorID,
		Date:      date,
		TimeSlot:  req.TimeSlot,
		OwnerName: req.OwnerName,
		Phone:     req.Phone,
		PetType:   req.PetType,
		Breed:     req.Breed,
		Age:       req.Age,
		Notes:     req.Notes,
		Status:    model.StatusPending,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingserrors.ErrCodeExists) {
			// The probe loop lost a race; the unique index caught it.
			return nil, apperrors.Conflict("Booking code already exists")
		}
		return nil, apperrors.Internal("failed to create booking", err)
	}

	s.logger.Info("Booking created",
		"booking_id", booking.Code,
		"doctor_id", booking.DoctorID,
		"service", booking.Service,
	)

	s.publisher.BookingCreated(ctx, booking)

	// Re-read for the enriched doctor projection; fall back to the bare
	// record if the read fails so creation still succeeds.
	enriched, err := s.repo.FindByID(ctx, booking.ID)
	if err != nil {
		s.logger.Warn("Failed to enrich booking after create",
			"booking_id", booking.Code,
			"error", err,
		)
		return booking, nil
	}
	return enriched, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.InvalidInput("Invalid booking ID format")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("failed to find booking", err)
	}
	return booking, nil
}

// List passes the filter through verbatim; a status outside the enumeration
// simply matches nothing.
func (s *bookingService) List(ctx context.Context, filter repository.Filter) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("failed to list bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, update *model.BookingUpdate) (*model.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.InvalidInput("Invalid booking ID format")
	}

	if err := s.validator.ValidateUpdate(update); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, apperrors.Validation("Validation failed", verrs)
		}
		return nil, apperrors.Internal("failed to validate booking update", err)
	}

	previous, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("failed to find booking", err)
	}

	// An empty update changes nothing and returns the record as-is.
	if update.Status == "" {
		return previous, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, update.Status); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("failed to update booking status", err)
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to reload booking", err)
	}

	s.logger.Info("Booking status updated",
		"booking_id", booking.Code,
		"previous_status", previous.Status,
		"status", booking.Status,
	)

	if previous.Status != booking.Status {
		s.publisher.BookingStatusChanged(ctx, booking, previous.Status)
	}

	return booking, nil
}

// allocateCode draws random candidates and probes the store for each. The
// attempt count is bounded so a nearly full code space degrades into a clear
// error instead of an unbounded loop.
func (s *bookingService) allocateCode(ctx context.Context) (string, error) {
	span := s.cfg.BookingCodeMax - s.cfg.BookingCodeMin + 1

	for attempt := 0; attempt < s.cfg.BookingCodeMaxAttempts; attempt++ {
		code := fmt.Sprintf("%s%04d", s.cfg.BookingCodePrefix, s.cfg.BookingCodeMin+rand.IntN(span))

		_, err := s.repo.FindByCode(ctx, code)
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", apperrors.Internal("failed to probe booking code", err)
		}

		s.logger.Debug("Booking code collision, retrying",
			"code", code,
			"attempt", attempt+1,
		)
	}

	s.logger.Error("Booking code space exhausted",
		"max_attempts", s.cfg.BookingCodeMaxAttempts,
	)
	return "", apperrors.ResourceExhausted("Unable to allocate a booking code, please retry")
}

func (s *bookingService) sanitizeRequest(req *model.BookingRequest) {
	req.Service = sanitizer.NormalizeLabel(req.Service)
	req.Date = sanitizer.TrimAndNormalize(req.Date)
	req.TimeSlot = sanitizer.TrimAndNormalize(req.TimeSlot)
	req.OwnerName = sanitizer.NormalizeName(req.OwnerName)
	req.Phone = sanitizer.NormalizePhone(req.Phone)
	req.PetType = sanitizer.NormalizeLabel(req.PetType)

	if req.Breed != nil {
		breed := sanitizer.NormalizeName(*req.Breed)
		if breed == "" {
			req.Breed = nil
		} else {
			req.Breed = &breed
		}
	}
	if req.Age != nil {
		age := sanitizer.TrimAndNormalize(*req.Age)
		if age == "" {
			req.Age = nil
		} else {
			req.Age = &age
		}
	}
	if req.Notes != nil {
		notes := sanitizer.NormalizeNotes(*req.Notes)
		if notes == "" {
			req.Notes = nil
		} else {
			req.Notes = &notes
		}
	}
}
