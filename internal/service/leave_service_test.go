package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/notification"
)

func setupLeaveService() (*LeaveService, *MockLeaveStore, *MockDoctorStore, *recordingNotifier) {
	leaves := &MockLeaveStore{}
	doctors := &MockDoctorStore{}
	notifier := &recordingNotifier{}
	svc := NewLeaveService(leaves, doctors, noopAudit{}, notifier, testLogger())
	return svc, leaves, doctors, notifier
}

func TestCreateLeave_ForcesPendingAndNilAdmin(t *testing.T) {
	svc, leaves, doctors, _ := setupLeaveService()
	doctor := authz.Principal{UserID: 10, Role: authz.RoleDoctor}

	doctors.On("GetDoctorByUserID", uint(10)).Return(&models.Doctor{ID: 5, UserID: 10}, nil)
	leaves.On("CreateLeave", mock.AnythingOfType("*models.Leave")).Return(nil)

	leave, err := svc.CreateLeave(doctor, "2025-06-01", "2025-06-03", "family event")

	assert.NoError(t, err)
	assert.Equal(t, uint(5), leave.DoctorID)
	assert.Equal(t, models.LeaveStatusPending, leave.Status)
	assert.Nil(t, leave.AdminID)
}

func TestCreateLeave_OnlyDoctors(t *testing.T) {
	svc, _, _, _ := setupLeaveService()

	for _, role := range []authz.Role{authz.RolePatient, authz.RoleAdmin} {
		_, err := svc.CreateLeave(authz.Principal{UserID: 1, Role: role}, "2025-06-01", "2025-06-03", "")
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err), "role %s", role)
	}
}

func TestTransitionLeave_ApprovedEmitsToDoctor(t *testing.T) {
	svc, leaves, _, notifier := setupLeaveService()
	admin := authz.Principal{UserID: 99, Role: authz.RoleAdmin}

	pending := &models.Leave{
		ID:        1,
		DoctorID:  5,
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
		Status:    models.LeaveStatusPending,
		Doctor: models.Doctor{
			ID:     5,
			UserID: 10,
			User:   models.User{ID: 10, Email: "doc@example.com"},
		},
	}
	adminID := uint(99)
	approved := &models.Leave{
		ID:        1,
		DoctorID:  5,
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
		Status:    models.LeaveStatusApproved,
		AdminID:   &adminID,
		Doctor:    pending.Doctor,
	}

	leaves.On("GetLeaveByID", uint(1)).Return(pending, nil).Once()
	leaves.On("TransitionStatus", uint(1), models.LeaveStatusApproved, uint(99)).Return(int64(1), nil)
	leaves.On("GetLeaveByID", uint(1)).Return(approved, nil).Once()

	leave, err := svc.TransitionLeave(admin, 1, models.LeaveStatusApproved)

	assert.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, leave.Status)

	sent := notifier.emitted()
	assert.Len(t, sent, 1)
	assert.Equal(t, notification.EventLeaveApproved, sent[0].Event)
	assert.Equal(t, "doc@example.com", sent[0].Recipient)
	assert.Equal(t, "2025-06-01", sent[0].Fields["start_date"])
	assert.Equal(t, "2025-06-03", sent[0].Fields["end_date"])
}

func TestTransitionLeave_RejectedEmitsRejection(t *testing.T) {
	svc, leaves, _, notifier := setupLeaveService()
	admin := authz.Principal{UserID: 99, Role: authz.RoleAdmin}

	leave := &models.Leave{
		ID:        2,
		StartDate: "2025-07-01",
		EndDate:   "2025-07-02",
		Status:    models.LeaveStatusPending,
		Doctor:    models.Doctor{ID: 5, UserID: 10, User: models.User{Email: "doc@example.com"}},
	}

	leaves.On("GetLeaveByID", uint(2)).Return(leave, nil)
	leaves.On("TransitionStatus", uint(2), models.LeaveStatusRejected, uint(99)).Return(int64(1), nil)

	_, err := svc.TransitionLeave(admin, 2, models.LeaveStatusRejected)

	assert.NoError(t, err)
	sent := notifier.emitted()
	assert.Len(t, sent, 1)
	assert.Equal(t, notification.EventLeaveRejected, sent[0].Event)
}

func TestTransitionLeave_SecondAdminGetsConflict(t *testing.T) {
	svc, leaves, _, notifier := setupLeaveService()
	admin := authz.Principal{UserID: 99, Role: authz.RoleAdmin}

	alreadyApproved := &models.Leave{
		ID:     1,
		Status: models.LeaveStatusApproved,
		Doctor: models.Doctor{ID: 5, UserID: 10},
	}

	leaves.On("GetLeaveByID", uint(1)).Return(alreadyApproved, nil)
	// The guarded UPDATE matches zero rows once the request left pending
	leaves.On("TransitionStatus", uint(1), models.LeaveStatusRejected, uint(99)).Return(int64(0), nil)

	_, err := svc.TransitionLeave(admin, 1, models.LeaveStatusRejected)

	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Empty(t, notifier.emitted())
}

func TestTransitionLeave_DoctorForbidden(t *testing.T) {
	svc, leaves, _, _ := setupLeaveService()
	doctor := authz.Principal{UserID: 10, Role: authz.RoleDoctor}

	_, err := svc.TransitionLeave(doctor, 1, models.LeaveStatusApproved)

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	leaves.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionLeave_InvalidStatus(t *testing.T) {
	svc, _, _, _ := setupLeaveService()
	admin := authz.Principal{UserID: 99, Role: authz.RoleAdmin}

	_, err := svc.TransitionLeave(admin, 1, "cancelled")

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestTransitionLeave_NotFound(t *testing.T) {
	svc, leaves, _, _ := setupLeaveService()
	admin := authz.Principal{UserID: 99, Role: authz.RoleAdmin}

	leaves.On("GetLeaveByID", uint(404)).Return(nil, apperr.NotFound("leave"))

	_, err := svc.TransitionLeave(admin, 404, models.LeaveStatusApproved)

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetLeave_ForeignDoctorForbidden(t *testing.T) {
	svc, leaves, _, _ := setupLeaveService()
	otherDoctor := authz.Principal{UserID: 11, Role: authz.RoleDoctor}

	leaves.On("GetLeaveByID", uint(1)).Return(&models.Leave{
		ID:     1,
		Doctor: models.Doctor{ID: 5, UserID: 10},
	}, nil)

	_, err := svc.GetLeaveByID(otherDoctor, 1)

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestListLeaves_PatientForbidden(t *testing.T) {
	svc, _, _, _ := setupLeaveService()

	_, err := svc.ListLeaves(authz.Principal{UserID: 20, Role: authz.RolePatient})

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestDeleteLeave_AdminOnly(t *testing.T) {
	svc, leaves, _, _ := setupLeaveService()

	leaves.On("GetLeaveByID", uint(1)).Return(&models.Leave{
		ID:     1,
		Doctor: models.Doctor{ID: 5, UserID: 10},
	}, nil)

	err := svc.DeleteLeave(authz.Principal{UserID: 10, Role: authz.RoleDoctor}, 1)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	leaves.On("DeleteLeave", uint(1)).Return(nil)
	assert.NoError(t, svc.DeleteLeave(authz.Principal{UserID: 99, Role: authz.RoleAdmin}, 1))
}
