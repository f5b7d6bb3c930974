package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepo(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// ListLeaves retrieves leave requests visible under the given scope
func (r *LeaveRepository) ListLeaves(scope authz.Scope) ([]models.Leave, error) {
	var leaves []models.Leave
	err := r.db.
		Scopes(scope).
		Preload("Doctor.User").
		Preload("Admin").
		Order("leaves.start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

// GetLeaveByID retrieves a leave request with its doctor's user loaded
func (r *LeaveRepository) GetLeaveByID(id uint) (*models.Leave, error) {
	var leave models.Leave
	err := r.db.
		Preload("Doctor.User").
		Preload("Admin").
		First(&leave, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("leave request")
		}
		return nil, err
	}
	return &leave, nil
}

// CreateLeave creates a new leave request
func (r *LeaveRepository) CreateLeave(leave *models.Leave) error {
	return r.db.Create(leave).Error
}

// TransitionStatus moves a pending leave to the given status and records the
// approving admin. The status guard in the WHERE clause makes concurrent
// approvals race-safe: only one update can win; the caller sees zero rows
// affected when it lost.
func (r *LeaveRepository) TransitionStatus(id uint, status string, adminID uint) (int64, error) {
	res := r.db.Model(&models.Leave{}).
		Where("id = ? AND status = ?", id, models.LeaveStatusPending).
		Updates(map[string]interface{}{
			"status":   status,
			"admin_id": adminID,
		})
	return res.RowsAffected, res.Error
}

// DeleteLeave removes a leave request row
func (r *LeaveRepository) DeleteLeave(id uint) error {
	res := r.db.Delete(&models.Leave{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("leave request")
	}
	return nil
}
