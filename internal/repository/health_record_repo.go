package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
)

type HealthRecordRepository struct {
	db *gorm.DB
}

func NewHealthRecordRepo(db *gorm.DB) *HealthRecordRepository {
	return &HealthRecordRepository{db: db}
}

// ListHealthRecords retrieves health records visible under the given scope
func (r *HealthRecordRepository) ListHealthRecords(scope authz.Scope) ([]models.HealthRecord, error) {
	var records []models.HealthRecord
	err := r.db.
		Scopes(scope).
		Preload("Patient").
		Preload("Appointment.Doctor.User").
		Order("health_records.created_at DESC").
		Find(&records).Error
	return records, err
}

// GetHealthRecordByID retrieves a health record with the appointment chain
// loaded for ownership checks.
func (r *HealthRecordRepository) GetHealthRecordByID(id uint) (*models.HealthRecord, error) {
	var record models.HealthRecord
	err := r.db.
		Preload("Patient").
		Preload("Appointment.Doctor.User").
		First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("health record")
		}
		return nil, err
	}
	return &record, nil
}

// CreateHealthRecord creates a new health record
func (r *HealthRecordRepository) CreateHealthRecord(record *models.HealthRecord) error {
	return r.db.Create(record).Error
}

// UpdateHealthRecord persists changes to an existing health record
func (r *HealthRecordRepository) UpdateHealthRecord(record *models.HealthRecord) error {
	return r.db.Save(record).Error
}

// DeleteHealthRecord removes a health record row
func (r *HealthRecordRepository) DeleteHealthRecord(id uint) error {
	res := r.db.Delete(&models.HealthRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("health record")
	}
	return nil
}
