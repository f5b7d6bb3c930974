package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
)

type PrescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepo(db *gorm.DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

// ListPrescriptions retrieves prescriptions visible under the given scope
func (r *PrescriptionRepository) ListPrescriptions(scope authz.Scope) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.
		Scopes(scope).
		Preload("Appointment.Patient").
		Preload("Appointment.Doctor.User").
		Order("prescriptions.created_at DESC").
		Find(&prescriptions).Error
	return prescriptions, err
}

// GetPrescriptionByID retrieves a prescription with the appointment chain
// loaded for ownership checks.
func (r *PrescriptionRepository) GetPrescriptionByID(id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.
		Preload("Appointment.Patient").
		Preload("Appointment.Doctor.User").
		First(&prescription, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("prescription")
		}
		return nil, err
	}
	return &prescription, nil
}

// CreatePrescription creates a new prescription
func (r *PrescriptionRepository) CreatePrescription(prescription *models.Prescription) error {
	return r.db.Create(prescription).Error
}

// UpdatePrescription persists changes to an existing prescription
func (r *PrescriptionRepository) UpdatePrescription(prescription *models.Prescription) error {
	return r.db.Save(prescription).Error
}

// DeletePrescription removes a prescription row
func (r *PrescriptionRepository) DeletePrescription(id uint) error {
	res := r.db.Delete(&models.Prescription{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("prescription")
	}
	return nil
}
