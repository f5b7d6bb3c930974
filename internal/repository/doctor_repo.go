package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetAllDoctors retrieves all doctors with their user and hospital loaded
func (r *DoctorRepository) GetAllDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.
		Preload("User").
		Preload("Hospital").
		Order("doctors.id ASC").
		Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor by ID
func (r *DoctorRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.
		Preload("User").
		Preload("Hospital").
		First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("doctor")
		}
		return nil, err
	}
	return &doctor, nil
}

// GetDoctorByUserID retrieves the doctor profile owned by a user account
func (r *DoctorRepository) GetDoctorByUserID(userID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.
		Preload("User").
		Preload("Hospital").
		Where("user_id = ?", userID).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("doctor profile")
		}
		return nil, err
	}
	return &doctor, nil
}

// CreateDoctorWithUser provisions the user account and the doctor profile in
// one transaction so a profile failure never leaves an orphaned account.
func (r *DoctorRepository) CreateDoctorWithUser(user *models.User, doctor *models.Doctor) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		doctor.UserID = user.ID
		return tx.Create(doctor).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("user already registered or already has a doctor profile")
	}
	return err
}

// UpdateDoctor persists changes to an existing doctor profile
func (r *DoctorRepository) UpdateDoctor(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// DeleteDoctor removes a doctor profile
func (r *DoctorRepository) DeleteDoctor(id uint) error {
	res := r.db.Delete(&models.Doctor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("doctor")
	}
	return nil
}
