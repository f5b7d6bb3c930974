package models

import "time"

// Prescription represents the prescriptions table.
// Visibility follows the underlying appointment: its patient, its doctor, admin.
type Prescription struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AppointmentID uint      `gorm:"not null;index" json:"appointment_id"`
	Medication    string    `gorm:"type:text;not null" json:"medication"`
	Dosage        string    `gorm:"size:100" json:"dosage"`
	Instructions  string    `gorm:"type:text" json:"instructions"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

// TableName specifies the table name for Prescription model
func (Prescription) TableName() string {
	return "prescriptions"
}
