package service

import (
	"fmt"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type DoctorService struct {
	doctorStore   DoctorStore
	hospitalStore HospitalStore
	audit         AuditStore
	log           *logger.Logger
}

func NewDoctorService(doctorStore DoctorStore, hospitalStore HospitalStore, audit AuditStore, log *logger.Logger) *DoctorService {
	return &DoctorService{
		doctorStore:   doctorStore,
		hospitalStore: hospitalStore,
		audit:         audit,
		log:           log,
	}
}

// CreateDoctorInput provisions a user account and doctor profile together
type CreateDoctorInput struct {
	User           RegisterInput
	HospitalID     uint
	Specialization string
	Qualifications string
	Experience     int
	Availability   models.Availability
}

// DoctorUpdateInput carries the mutable doctor profile fields
type DoctorUpdateInput struct {
	HospitalID     *uint
	Specialization *string
	Qualifications *string
	Experience     *int
	Availability   models.Availability
}

// GetAllDoctors lists doctors; visible to every authenticated role
func (s *DoctorService) GetAllDoctors(p authz.Principal) ([]models.Doctor, error) {
	if _, err := authz.ListScope(p, authz.EntityDoctor); err != nil {
		return nil, err
	}
	doctors, err := s.doctorStore.GetAllDoctors()
	if err != nil {
		return nil, wrap("failed to fetch doctors", err)
	}
	return doctors, nil
}

// GetDoctorByID retrieves one doctor profile
func (s *DoctorService) GetDoctorByID(p authz.Principal, id uint) (*models.Doctor, error) {
	if err := authz.Authorize(p, authz.EntityDoctor, authz.ActionRead, nil); err != nil {
		return nil, err
	}
	doctor, err := s.doctorStore.GetDoctorByID(id)
	if err != nil {
		return nil, wrap("failed to fetch doctor", err)
	}
	return doctor, nil
}

// CreateDoctor provisions the doctor's user account and profile atomically
// (admin only). The account role is forced to doctor regardless of payload.
func (s *DoctorService) CreateDoctor(p authz.Principal, in CreateDoctorInput) (*models.Doctor, error) {
	if err := authz.Authorize(p, authz.EntityDoctor, authz.ActionCreate, nil); err != nil {
		return nil, err
	}

	if _, err := s.hospitalStore.GetHospitalByID(in.HospitalID); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.ValidationField("hospital_id", "hospital not found")
		}
		return nil, wrap("failed to resolve hospital", err)
	}

	hash, err := utils.HashPassword(in.User.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &models.User{
		Username:     in.User.Username,
		Email:        in.User.Email,
		PasswordHash: hash,
		Role:         string(authz.RoleDoctor),
		Phone:        in.User.Phone,
		Address:      in.User.Address,
		ProfilePhoto: in.User.ProfilePhoto,
	}
	availability := in.Availability
	if availability == nil {
		availability = models.Availability{}
	}
	doctor := &models.Doctor{
		HospitalID:     in.HospitalID,
		Specialization: in.Specialization,
		Qualifications: in.Qualifications,
		Experience:     in.Experience,
		Availability:   availability,
	}

	if err := s.doctorStore.CreateDoctorWithUser(user, doctor); err != nil {
		return nil, wrap("failed to create doctor", err)
	}
	doctor.User = *user

	userIDPtr := &p.UserID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditDoctorCreate, fmt.Sprintf("Created doctor %s (user %d)", user.Username, user.ID))

	return doctor, nil
}

// UpdateDoctor mutates a doctor profile. Admins may update any profile;
// a doctor may update only their own.
func (s *DoctorService) UpdateDoctor(p authz.Principal, id uint, in DoctorUpdateInput) (*models.Doctor, error) {
	doctor, err := s.doctorStore.GetDoctorByID(id)
	if err != nil {
		return nil, wrap("failed to fetch doctor", err)
	}
	if err := authz.Authorize(p, authz.EntityDoctor, authz.ActionUpdate, doctor); err != nil {
		return nil, err
	}

	if in.HospitalID != nil {
		if _, err := s.hospitalStore.GetHospitalByID(*in.HospitalID); err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				return nil, apperr.ValidationField("hospital_id", "hospital not found")
			}
			return nil, wrap("failed to resolve hospital", err)
		}
		doctor.HospitalID = *in.HospitalID
	}
	if in.Specialization != nil {
		doctor.Specialization = *in.Specialization
	}
	if in.Qualifications != nil {
		doctor.Qualifications = *in.Qualifications
	}
	if in.Experience != nil {
		doctor.Experience = *in.Experience
	}
	if in.Availability != nil {
		doctor.Availability = in.Availability
	}

	if err := s.doctorStore.UpdateDoctor(doctor); err != nil {
		return nil, wrap("failed to update doctor", err)
	}

	userIDPtr := &p.UserID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditDoctorUpdate, fmt.Sprintf("Updated doctor %d", doctor.ID))

	return doctor, nil
}

// DeleteDoctor removes a doctor profile (admin only)
func (s *DoctorService) DeleteDoctor(p authz.Principal, id uint) error {
	doctor, err := s.doctorStore.GetDoctorByID(id)
	if err != nil {
		return wrap("failed to fetch doctor", err)
	}
	if err := authz.Authorize(p, authz.EntityDoctor, authz.ActionDelete, doctor); err != nil {
		return err
	}

	if err := s.doctorStore.DeleteDoctor(id); err != nil {
		return wrap("failed to delete doctor", err)
	}

	userIDPtr := &p.UserID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditDoctorDelete, fmt.Sprintf("Deleted doctor %d", id))

	return nil
}
