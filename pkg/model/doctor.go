package model

import (
	"time"
)

// Doctor is administrative reference data; the booking flow only ever reads it.
type Doctor struct {
	ID            int        `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name          string     `json:"name" gorm:"column:name;not null"`
	Photo         *string    `json:"photo" gorm:"column:photo"`
	Qualification string     `json:"qualification" gorm:"column:qualification;not null"`
	Experience    int        `json:"experience" gorm:"column:experience;not null"`
	Specialty     string     `json:"specialty" gorm:"column:specialty;not null"`
	Phone         *string    `json:"phone" gorm:"column:phone"`
	Timings       StringList `json:"timings" gorm:"column:timings;type:text;not null"`
	AvailableDays StringList `json:"availableDays" gorm:"column:availableDays;type:text;not null"`
	Bio           *string    `json:"bio" gorm:"column:bio;type:text"`
	IsExternal    bool       `json:"isExternal" gorm:"column:isExternal;not null;default:false"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"column:createdAt;not null"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"column:updatedAt;not null"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorSummary is the slice of doctor data joined into booking responses.
type DoctorSummary struct {
	ID        int    `json:"id" gorm:"column:id"`
	Name      string `json:"name" gorm:"column:name"`
	Specialty string `json:"specialty" gorm:"column:specialty"`
}
