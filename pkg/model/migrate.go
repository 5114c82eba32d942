package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the doctors and bookings tables. Doctors
// first, so the bookings foreign key has something to point at.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Doctor{},
		&Booking{},
	)
}
