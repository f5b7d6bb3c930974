package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// ListAppointments retrieves appointments visible under the given scope
func (r *AppointmentRepository) ListAppointments(scope authz.Scope) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Scopes(scope).
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Hospital").
		Order("appointments.date ASC, appointments.time ASC").
		Find(&appointments).Error
	return appointments, err
}

// GetAppointmentByID retrieves an appointment with its doctor's user loaded
// so ownership checks can relate the doctor to a principal.
func (r *AppointmentRepository) GetAppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Hospital").
		First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("appointment")
		}
		return nil, err
	}
	return &appointment, nil
}

// CreateAppointment creates a new appointment
func (r *AppointmentRepository) CreateAppointment(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// UpdateAppointment persists changes to an existing appointment
func (r *AppointmentRepository) UpdateAppointment(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

// DeleteAppointment removes an appointment row
func (r *AppointmentRepository) DeleteAppointment(id uint) error {
	res := r.db.Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("appointment")
	}
	return nil
}
