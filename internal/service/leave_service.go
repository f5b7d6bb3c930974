package service

import (
	"fmt"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/notification"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
)

type LeaveService struct {
	leaveStore  LeaveStore
	doctorStore DoctorStore
	audit       AuditStore
	notifier    Notifier
	log         *logger.Logger
}

func NewLeaveService(
	leaveStore LeaveStore,
	doctorStore DoctorStore,
	audit AuditStore,
	notifier Notifier,
	log *logger.Logger,
) *LeaveService {
	return &LeaveService{
		leaveStore:  leaveStore,
		doctorStore: doctorStore,
		audit:       audit,
		notifier:    notifier,
		log:         log,
	}
}

// ListLeaves returns leave requests scoped to the principal: doctors see
// their own, admins see all. Patients have no access.
func (s *LeaveService) ListLeaves(p authz.Principal) ([]models.Leave, error) {
	scope, err := authz.ListScope(p, authz.EntityLeave)
	if err != nil {
		return nil, err
	}
	leaves, err := s.leaveStore.ListLeaves(scope)
	if err != nil {
		return nil, wrap("failed to fetch leaves", err)
	}
	return leaves, nil
}

// CreateLeave files a leave request for the calling doctor. New requests
// always start pending with no reviewing admin.
func (s *LeaveService) CreateLeave(p authz.Principal, startDate, endDate, reason string) (*models.Leave, error) {
	if err := authz.Authorize(p, authz.EntityLeave, authz.ActionCreate, nil); err != nil {
		return nil, err
	}

	doctor, err := s.doctorStore.GetDoctorByUserID(p.UserID)
	if err != nil {
		return nil, wrap("failed to resolve doctor profile", err)
	}

	leave := &models.Leave{
		DoctorID:  doctor.ID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		Status:    models.LeaveStatusPending,
		AdminID:   nil,
	}
	if err := s.leaveStore.CreateLeave(leave); err != nil {
		return nil, wrap("failed to create leave request", err)
	}
	return leave, nil
}

// GetLeaveByID retrieves one leave request, visible to its doctor and admins
func (s *LeaveService) GetLeaveByID(p authz.Principal, id uint) (*models.Leave, error) {
	leave, err := s.leaveStore.GetLeaveByID(id)
	if err != nil {
		return nil, wrap("failed to fetch leave request", err)
	}
	if err := authz.Authorize(p, authz.EntityLeave, authz.ActionRead, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// TransitionLeave approves or rejects a pending leave request. The update is
// guarded on the pending status, so when two admins race exactly one
// transition lands and the other gets a conflict.
func (s *LeaveService) TransitionLeave(p authz.Principal, id uint, status string) (*models.Leave, error) {
	if err := authz.Authorize(p, authz.EntityLeave, authz.ActionUpdate, nil); err != nil {
		return nil, err
	}
	if status != models.LeaveStatusApproved && status != models.LeaveStatusRejected {
		return nil, apperr.ValidationField("status", "must be approved or rejected")
	}

	// Verify the request exists first so a missing id reads as not found
	// rather than a conflict.
	if _, err := s.leaveStore.GetLeaveByID(id); err != nil {
		return nil, wrap("failed to fetch leave request", err)
	}

	rows, err := s.leaveStore.TransitionStatus(id, status, p.UserID)
	if err != nil {
		return nil, wrap("failed to update leave request", err)
	}
	if rows == 0 {
		return nil, apperr.Conflict("leave request has already been reviewed")
	}

	leave, err := s.leaveStore.GetLeaveByID(id)
	if err != nil {
		return nil, wrap("failed to fetch leave request", err)
	}

	userIDPtr := &p.UserID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditLeaveTransition, fmt.Sprintf("Leave %d %s", leave.ID, status))

	event := notification.EventLeaveApproved
	if status == models.LeaveStatusRejected {
		event = notification.EventLeaveRejected
	}
	s.notifier.Emit(notification.Intent{
		Event:     event,
		Recipient: leave.Doctor.User.Email,
		Fields: map[string]string{
			"start_date": leave.StartDate,
			"end_date":   leave.EndDate,
		},
	})

	return leave, nil
}

// DeleteLeave removes a leave request; admin only
func (s *LeaveService) DeleteLeave(p authz.Principal, id uint) error {
	leave, err := s.leaveStore.GetLeaveByID(id)
	if err != nil {
		return wrap("failed to fetch leave request", err)
	}
	if err := authz.Authorize(p, authz.EntityLeave, authz.ActionDelete, leave); err != nil {
		return err
	}
	if err := s.leaveStore.DeleteLeave(id); err != nil {
		return wrap("failed to delete leave request", err)
	}
	return nil
}
