package events

import (
	"context"
	"time"

	"pawbook/pkg/kafka"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"

	eventSource   = "pawbook-booking-service"
	schemaVersion = "1"
)

// Publisher announces booking lifecycle changes. Publishing is best effort;
// callers log failures and carry on.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
	BookingStatusChanged(ctx context.Context, booking *model.Booking, previousStatus string)
	Close() error
}

// BookingCreatedEvent is the payload for booking.created.
type BookingCreatedEvent struct {
	BookingID string    `json:"bookingId"`
	Service   string    `json:"service"`
	DoctorID  int       `json:"doctorId"`
	Date      time.Time `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingStatusChangedEvent is the payload for booking.status_changed.
type BookingStatusChangedEvent struct {
	BookingID      string    `json:"bookingId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type kafkaPublisher struct {
	producer *kafka.Producer
	logger   *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		logger:   log,
	}
}

func createdMessage(booking *model.Booking) kafka.Message {
	return kafka.NewMessage().
		WithKey(booking.Code).
		WithEventType(EventBookingCreated).
		WithSource(eventSource).
		WithHeader(kafka.HeaderSchemaVersion, schemaVersion).
		WithValue(BookingCreatedEvent{
			BookingID: booking.Code,
			Service:   booking.Service,
			DoctorID:  booking.DoctorID,
			Date:      booking.Date,
			TimeSlot:  booking.TimeSlot,
			Status:    booking.Status,
			CreatedAt: booking.CreatedAt,
		}).
		Build()
}

func statusChangedMessage(booking *model.Booking, previousStatus string) kafka.Message {
	return kafka.NewMessage().
		WithKey(booking.Code).
		WithEventType(EventBookingStatusChanged).
		WithSource(eventSource).
		WithHeader(kafka.HeaderSchemaVersion, schemaVersion).
		WithValue(BookingStatusChangedEvent{
			BookingID:      booking.Code,
			PreviousStatus: previousStatus,
			Status:         booking.Status,
			UpdatedAt:      booking.UpdatedAt,
		}).
		Build()
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) {
	if err := p.producer.Publish(ctx, createdMessage(booking)); err != nil {
		p.logger.Error("Failed to publish booking event",
			"event_type", EventBookingCreated,
			"booking_id", booking.Code,
			"error", err,
		)
	}
}

func (p *kafkaPublisher) BookingStatusChanged(ctx context.Context, booking *model.Booking, previousStatus string) {
	if err := p.producer.Publish(ctx, statusChangedMessage(booking, previousStatus)); err != nil {
		p.logger.Error("Failed to publish booking event",
			"event_type", EventBookingStatusChanged,
			"booking_id", booking.Code,
			"error", err,
		)
	}
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when event publishing is disabled.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) BookingCreated(context.Context, *model.Booking)                {}
func (noopPublisher) BookingStatusChanged(context.Context, *model.Booking, string) {}
func (noopPublisher) Close() error                                                 { return nil }
