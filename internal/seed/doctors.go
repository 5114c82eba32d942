package seed

import (
	"fmt"

	"gorm.io/gorm"

	"pawbook/pkg/logger"
	"pawbook/pkg/model"
)

func strPtr(s string) *string { return &s }

// Doctors returns the clinic's staff roster.
func Doctors() []*model.Doctor {
	return []*model.Doctor{
		{
			Name:          "Dr. Ashok Kumar",
			Photo:         strPtr("/doctors/doctor1.jpg"),
			Qualification: "BVSc & AH, MVSc (Medicine)",
			Experience:    34,
			Specialty:     "Internal Medicine & Vaccination",
			Phone:         strPtr("+919876543210"),
			Timings:       model.StringList{"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM", "2:00 PM", "2:30 PM", "3:00 PM"},
			AvailableDays: model.StringList{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			Bio:           strPtr("Specializes in preventive care and complex medical cases with over a decade of experience."),
			IsExternal:    false,
		},
		{
			Name:          "Dr. Rajesh Kumar",
			Photo:         strPtr("/doctors/doctor2.jpg"),
			Qualification: "BVSc & AH, PhD (Veterinary Surgery)",
			Experience:    15,
			Specialty:     "Orthopedic & Soft Tissue Surgery",
			Phone:         strPtr("+919876543211"),
			Timings:       model.StringList{"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "4:00 PM", "4:30 PM", "5:00 PM"},
			AvailableDays: model.StringList{"Monday", "Wednesday", "Friday", "Saturday"},
			Bio:           strPtr("Expert in surgical procedures with a gentle approach to patient care."),
			IsExternal:    false,
		},
		{
			Name:          "Dr. Priya Mehta",
			Photo:         strPtr("/doctors/doctor3.jpg"),
			Qualification: "BVSc & AH, MVSc (Dermatology)",
			Experience:    8,
			Specialty:     "Dermatology & General Practice",
			Phone:         strPtr("+919876543212"),
			Timings:       model.StringList{"11:00 AM", "11:30 AM", "12:00 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM"},
			AvailableDays: model.StringList{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			Bio:           strPtr("Focused on skin conditions and allergies with compassionate pet handling."),
			IsExternal:    false,
		},
		{
			Name:          "External Specialist",
			Photo:         strPtr("/doctors/specialist.jpg"),
			Qualification: "Visiting Surgeon",
			Experience:    20,
			Specialty:     "Advanced Surgical Procedures",
			Phone:         strPtr("+919876543213"),
			Timings:       model.StringList{"On-Call"},
			AvailableDays: model.StringList{"By Appointment"},
			Bio:           strPtr("Available for complex surgeries and specialized procedures upon request."),
			IsExternal:    true,
		},
	}
}

// SeedDoctors inserts the roster only into an empty table so reruns are safe.
func SeedDoctors(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&model.Doctor{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count doctors: %w", err)
	}
	if count > 0 {
		log.Info("Doctors already seeded, skipping", "count", count)
		return nil
	}

	doctors := Doctors()
	if err := db.Create(&doctors).Error; err != nil {
		return fmt.Errorf("failed to seed doctors: %w", err)
	}

	log.Info("Seeded doctors", "count", len(doctors))
	return nil
}
