package models

import "time"

// Audit actions recorded by services
const (
	AuditUserRegister    = "user_register"
	AuditUserLogin       = "user_login"
	AuditUserLogout      = "user_logout"
	AuditProfileUpdate   = "profile_update"
	AuditHospitalCreate  = "hospital_create"
	AuditHospitalUpdate  = "hospital_update"
	AuditHospitalDelete  = "hospital_delete"
	AuditDoctorCreate    = "doctor_create"
	AuditDoctorUpdate    = "doctor_update"
	AuditDoctorDelete    = "doctor_delete"
	AuditLeaveTransition = "leave_transition"
)

// AuditLog represents the audit_logs table
// Used for security tracking and admin action logging
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
