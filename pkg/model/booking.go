package model

import (
	"time"
)

const (
	ServiceVaccination = "vaccination"
	ServiceTreatment   = "treatment"
	ServiceSurgery     = "surgery"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is the persisted appointment record. The internal UUID id is never
// shown to clinic staff; the short Code (column "bookingId") is.
type Booking struct {
	ID        string    `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	Code      string    `json:"bookingId" gorm:"column:bookingId;uniqueIndex;not null"`
	Service   string    `json:"service" gorm:"column:service;not null"`
	DoctorID  int       `json:"doctorId" gorm:"column:doctorId;not null;index"`
	Date      time.Time `json:"date" gorm:"column:date;not null;index"`
	TimeSlot  string    `json:"timeSlot" gorm:"column:timeSlot;not null"`
	OwnerName string    `json:"ownerName" gorm:"column:ownerName;not null"`
	Phone     string    `json:"phone" gorm:"column:phone;not null"`
	PetType   string    `json:"petType" gorm:"column:petType;not null"`
	Breed     *string   `json:"breed" gorm:"column:breed"`
	Age       *string   `json:"age" gorm:"column:age"`
	Notes     *string   `json:"notes" gorm:"column:notes;type:text"`
	Status    string    `json:"status" gorm:"column:status;not null;default:pending;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:createdAt;not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updatedAt;not null"`

	// Read-side projection of the referenced doctor, never persisted here.
	Doctor *DoctorSummary `json:"doctor,omitempty" gorm:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingRequest is the creation payload accepted by POST /bookings.
type BookingRequest struct {
	Service   string  `json:"service" validate:"required,oneof=vaccination treatment surgery"`
	DoctorID  int     `json:"doctorId" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"required"`
	TimeSlot  string  `json:"timeSlot" validate:"required"`
	OwnerName string  `json:"ownerName" validate:"required"`
	Phone     string  `json:"phone" validate:"required"`
	PetType   string  `json:"petType" validate:"required"`
	Breed     *string `json:"breed" validate:"omitempty"`
	Age       *string `json:"age" validate:"omitempty"`
	Notes     *string `json:"notes" validate:"omitempty"`
}

// BookingUpdate carries the only mutable field after creation. Any status in
// the enumeration may follow any other; there is no transition graph.
type BookingUpdate struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
}
