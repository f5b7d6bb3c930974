package service

import (
	"errors"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/notification"
)

// Store interfaces consumed by the services. The gorm repositories implement
// them; tests substitute mocks.

type UserStore interface {
	FindUserByUsername(username string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error
	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshTokenByHash(hash string) (*models.RefreshToken, error)
	RevokeRefreshToken(id uint) error
	RevokeRefreshTokenByHash(hash string) error
}

type HospitalStore interface {
	GetAllHospitals() ([]models.Hospital, error)
	GetHospitalByID(id uint) (*models.Hospital, error)
	CreateHospital(hospital *models.Hospital) error
	UpdateHospital(hospital *models.Hospital) error
	DeleteHospital(id uint) error
}

type DoctorStore interface {
	GetAllDoctors() ([]models.Doctor, error)
	GetDoctorByID(id uint) (*models.Doctor, error)
	GetDoctorByUserID(userID uint) (*models.Doctor, error)
	CreateDoctorWithUser(user *models.User, doctor *models.Doctor) error
	UpdateDoctor(doctor *models.Doctor) error
	DeleteDoctor(id uint) error
}

type AppointmentStore interface {
	ListAppointments(scope authz.Scope) ([]models.Appointment, error)
	GetAppointmentByID(id uint) (*models.Appointment, error)
	CreateAppointment(appointment *models.Appointment) error
	UpdateAppointment(appointment *models.Appointment) error
	DeleteAppointment(id uint) error
}

type PrescriptionStore interface {
	ListPrescriptions(scope authz.Scope) ([]models.Prescription, error)
	GetPrescriptionByID(id uint) (*models.Prescription, error)
	CreatePrescription(prescription *models.Prescription) error
	UpdatePrescription(prescription *models.Prescription) error
	DeletePrescription(id uint) error
}

type HealthRecordStore interface {
	ListHealthRecords(scope authz.Scope) ([]models.HealthRecord, error)
	GetHealthRecordByID(id uint) (*models.HealthRecord, error)
	CreateHealthRecord(record *models.HealthRecord) error
	UpdateHealthRecord(record *models.HealthRecord) error
	DeleteHealthRecord(id uint) error
}

type LeaveStore interface {
	ListLeaves(scope authz.Scope) ([]models.Leave, error)
	GetLeaveByID(id uint) (*models.Leave, error)
	CreateLeave(leave *models.Leave) error
	TransitionStatus(id uint, status string, adminID uint) (int64, error)
	DeleteLeave(id uint) error
}

type AuditStore interface {
	CreateAuditLog(userID *uint, action string, details string) error
	ListRecent(limit int) ([]models.AuditLog, error)
}

// Notifier queues a notification intent for best-effort delivery
type Notifier interface {
	Emit(intent notification.Intent)
}

// wrap passes typed service errors through and hides everything else behind
// an internal error so store details never leak to clients.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *apperr.Error
	if errors.As(err, &e) {
		return err
	}
	return apperr.Internal(op, err)
}
