package models

// AppointmentStatusBooked is the initial status of every appointment
const AppointmentStatusBooked = "booked"

// Appointment represents the appointments table.
// HospitalID is a snapshot of the doctor's hospital taken at booking time;
// it is never updated when the doctor later moves hospital.
type Appointment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PatientID  uint   `gorm:"not null;index" json:"patient_id"`
	DoctorID   uint   `gorm:"not null;index" json:"doctor_id"`
	HospitalID uint   `gorm:"not null;index" json:"hospital_id"`
	Date       string `gorm:"size:10;not null" json:"date"`
	Time       string `gorm:"size:5;not null" json:"time"`
	Status     string `gorm:"size:20;default:'booked'" json:"status"`

	// Relationships
	Patient  User     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor   Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
