package service

import (
	"fmt"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/geo"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
)

type HospitalService struct {
	hospitalStore HospitalStore
	audit         AuditStore
	proximity     geo.Filter
	log           *logger.Logger
}

func NewHospitalService(hospitalStore HospitalStore, audit AuditStore, proximity geo.Filter, log *logger.Logger) *HospitalService {
	return &HospitalService{
		hospitalStore: hospitalStore,
		audit:         audit,
		proximity:     proximity,
		log:           log,
	}
}

// HospitalInput carries the mutable hospital fields
type HospitalInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Contact   string
}

// GetAllHospitals lists hospitals, optionally narrowed to those within the
// proximity radius of a reference point. A nil coordinate means no filtering.
func (s *HospitalService) GetAllHospitals(p authz.Principal, lat, lon *float64) ([]models.Hospital, error) {
	if _, err := authz.ListScope(p, authz.EntityHospital); err != nil {
		return nil, err
	}

	hospitals, err := s.hospitalStore.GetAllHospitals()
	if err != nil {
		return nil, wrap("failed to fetch hospitals", err)
	}

	if lat == nil || lon == nil {
		return hospitals, nil
	}

	nearby := []models.Hospital{}
	for _, h := range hospitals {
		if s.proximity.Within(*lat, *lon, h.Latitude, h.Longitude) {
			nearby = append(nearby, h)
		}
	}
	return nearby, nil
}

// GetHospitalByID retrieves a hospital; any authenticated role may read
func (s *HospitalService) GetHospitalByID(p authz.Principal, id uint) (*models.Hospital, error) {
	if err := authz.Authorize(p, authz.EntityHospital, authz.ActionRead, nil); err != nil {
		return nil, err
	}
	hospital, err := s.hospitalStore.GetHospitalByID(id)
	if err != nil {
		return nil, wrap("failed to fetch hospital", err)
	}
	return hospital, nil
}

// CreateHospital creates a new hospital (admin only)
func (s *HospitalService) CreateHospital(p authz.Principal, in HospitalInput) (*models.Hospital, error) {
	if err := authz.Authorize(p, authz.EntityHospital, authz.ActionCreate, nil); err != nil {
		return nil, err
	}

	hospital := &models.Hospital{
		Name:      in.Name,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Contact:   in.Contact,
	}
	if err := s.hospitalStore.CreateHospital(hospital); err != nil {
		return nil, wrap("failed to create hospital", err)
	}

	userIDPtr := &p.UserID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditHospitalCreate, fmt.Sprintf("Created hospital: %s", hospital.Name))

	return hospital, nil
}

// UpdateHospital updates an existing hospital (admin only)
func (s *HospitalService) UpdateHospital(p authz.Principal, id uint, in HospitalInput) (*models.Hospital, error) {
	hospital, err := s.hospitalStore.GetHospitalByID(id)
	if err != nil {
		return nil, wrap("failed to fetch hospital", err)
	}
	if err := authz.Authorize(p, authz.EntityHospital, authz.ActionUpdate, nil); err != nil {
		return nil, err
	}

	hospital.Name = in.Name
	hospital.Address = in.Address
	hospital.Latitude = in.Latitude
	hospital.Longitude = in.Longitude
	hospital.Contact = in.Contact

	if err := s.hospitalStore.UpdateHospital(hospital); err != nil {
		return nil, wrap("failed to update hospital", err)
	}

	userIDPtr := &p.UserID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditHospitalUpdate, fmt.Sprintf("Updated hospital: %s (ID: %d)", hospital.Name, hospital.ID))

	return hospital, nil
}

// DeleteHospital removes a hospital (admin only)
func (s *HospitalService) DeleteHospital(p authz.Principal, id uint) error {
	hospital, err := s.hospitalStore.GetHospitalByID(id)
	if err != nil {
		return wrap("failed to fetch hospital", err)
	}
	if err := authz.Authorize(p, authz.EntityHospital, authz.ActionDelete, nil); err != nil {
		return err
	}

	if err := s.hospitalStore.DeleteHospital(id); err != nil {
		return wrap("failed to delete hospital", err)
	}

	userIDPtr := &p.UserID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditHospitalDelete, fmt.Sprintf("Deleted hospital: %s (ID: %d)", hospital.Name, id))

	return nil
}
