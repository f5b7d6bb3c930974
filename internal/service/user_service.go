package service

import (
	"fmt"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
)

type UserService struct {
	userStore   UserStore
	doctorStore DoctorStore
	audit       AuditStore
	log         *logger.Logger
}

func NewUserService(userStore UserStore, doctorStore DoctorStore, audit AuditStore, log *logger.Logger) *UserService {
	return &UserService{
		userStore:   userStore,
		doctorStore: doctorStore,
		audit:       audit,
		log:         log,
	}
}

// ProfileInput carries the profile fields a principal may change about
// themselves. Role is bound separately so attempts to change it can be
// rejected explicitly rather than silently ignored.
type ProfileInput struct {
	Username     *string
	Email        *string
	Phone        *string
	Address      *string
	ProfilePhoto *string
	Role         *string
}

// GetAllUsers lists every account (admin only)
func (s *UserService) GetAllUsers(p authz.Principal) ([]models.User, error) {
	if p.Role != authz.RoleAdmin {
		return nil, apperr.Forbidden("admin access required")
	}
	users, err := s.userStore.GetAllUsers()
	if err != nil {
		return nil, wrap("failed to fetch users", err)
	}
	return users, nil
}

// GetAuditLogs returns the most recent audit entries, newest first (admin only)
func (s *UserService) GetAuditLogs(p authz.Principal, limit int) ([]models.AuditLog, error) {
	if p.Role != authz.RoleAdmin {
		return nil, apperr.Forbidden("admin access required")
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	logs, err := s.audit.ListRecent(limit)
	if err != nil {
		return nil, wrap("failed to fetch audit logs", err)
	}
	return logs, nil
}

// GetUser returns one account, visible to the account owner and admins
func (s *UserService) GetUser(p authz.Principal, id uint) (*models.User, error) {
	user, err := s.userStore.FindUserByID(id)
	if err != nil {
		return nil, wrap("failed to fetch user", err)
	}
	if p.UserID != user.ID && p.Role != authz.RoleAdmin {
		return nil, apperr.Forbidden("you may only view your own account")
	}
	return user, nil
}

// UpdateProfile updates a user's own attributes. The role field is immutable:
// any attempt to change it fails validation instead of being silently dropped.
func (s *UserService) UpdateProfile(p authz.Principal, id uint, in ProfileInput) (*models.User, error) {
	user, err := s.userStore.FindUserByID(id)
	if err != nil {
		return nil, wrap("failed to fetch user", err)
	}
	if p.UserID != user.ID && p.Role != authz.RoleAdmin {
		return nil, apperr.Forbidden("you may only update your own account")
	}

	if in.Role != nil && *in.Role != user.Role {
		return nil, apperr.ValidationField("role", "Role cannot be changed")
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.ProfilePhoto != nil {
		user.ProfilePhoto = *in.ProfilePhoto
	}

	if err := s.userStore.UpdateUser(user); err != nil {
		return nil, wrap("failed to update user", err)
	}

	userIDPtr := &p.UserID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditProfileUpdate, fmt.Sprintf("Profile updated for user %d", user.ID))

	return user, nil
}

// GetOwnProfile returns the caller's profile. Doctors get their extended
// profile with hospital and availability; other roles get the plain account.
func (s *UserService) GetOwnProfile(p authz.Principal) (interface{}, error) {
	if p.Role == authz.RoleDoctor {
		doctor, err := s.doctorStore.GetDoctorByUserID(p.UserID)
		if err != nil {
			return nil, wrap("failed to fetch doctor profile", err)
		}
		return doctor, nil
	}

	user, err := s.userStore.FindUserByID(p.UserID)
	if err != nil {
		return nil, wrap("failed to fetch user", err)
	}
	return user, nil
}

// DoctorProfileInput carries the doctor-specific fields a doctor may update
// through self-service
type DoctorProfileInput struct {
	HospitalID     *uint
	Specialization *string
	Qualifications *string
	Experience     *int
	Availability   models.Availability
}

// UpdateOwnProfile updates the caller's account and, for doctors, their
// extended profile in the same request
func (s *UserService) UpdateOwnProfile(p authz.Principal, in ProfileInput, doctorIn *DoctorProfileInput) (interface{}, error) {
	user, err := s.UpdateProfile(p, p.UserID, in)
	if err != nil {
		return nil, err
	}

	if p.Role != authz.RoleDoctor || doctorIn == nil {
		return user, nil
	}

	doctor, err := s.doctorStore.GetDoctorByUserID(p.UserID)
	if err != nil {
		return nil, wrap("failed to fetch doctor profile", err)
	}

	if doctorIn.HospitalID != nil {
		doctor.HospitalID = *doctorIn.HospitalID
	}
	if doctorIn.Specialization != nil {
		doctor.Specialization = *doctorIn.Specialization
	}
	if doctorIn.Qualifications != nil {
		doctor.Qualifications = *doctorIn.Qualifications
	}
	if doctorIn.Experience != nil {
		doctor.Experience = *doctorIn.Experience
	}
	if doctorIn.Availability != nil {
		doctor.Availability = doctorIn.Availability
	}

	if err := s.doctorStore.UpdateDoctor(doctor); err != nil {
		return nil, wrap("failed to update doctor profile", err)
	}

	return doctor, nil
}
