package models

import "time"

// HealthRecord represents the health_records table
type HealthRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	AppointmentID uint      `gorm:"not null;index" json:"appointment_id"`
	Diagnosis     string    `gorm:"type:text;not null" json:"diagnosis"`
	Treatment     string    `gorm:"type:text" json:"treatment"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Patient     User        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

// TableName specifies the table name for HealthRecord model
func (HealthRecord) TableName() string {
	return "health_records"
}
