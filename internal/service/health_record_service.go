package service

import (
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
)

type HealthRecordService struct {
	recordStore      HealthRecordStore
	appointmentStore AppointmentStore
	log              *logger.Logger
}

func NewHealthRecordService(
	recordStore HealthRecordStore,
	appointmentStore AppointmentStore,
	log *logger.Logger,
) *HealthRecordService {
	return &HealthRecordService{
		recordStore:      recordStore,
		appointmentStore: appointmentStore,
		log:              log,
	}
}

// HealthRecordInput carries the mutable record fields
type HealthRecordInput struct {
	Diagnosis *string
	Treatment *string
}

// ListHealthRecords returns records scoped to the principal: patients see
// their own, doctors see records on their appointments, admins see all.
func (s *HealthRecordService) ListHealthRecords(p authz.Principal) ([]models.HealthRecord, error) {
	scope, err := authz.ListScope(p, authz.EntityHealthRecord)
	if err != nil {
		return nil, err
	}
	records, err := s.recordStore.ListHealthRecords(scope)
	if err != nil {
		return nil, wrap("failed to fetch health records", err)
	}
	return records, nil
}

// CreateHealthRecord files a record against an appointment. The doctor must
// own the appointment, and the patient reference must match the
// appointment's patient.
func (s *HealthRecordService) CreateHealthRecord(p authz.Principal, patientID, appointmentID uint, diagnosis, treatment string) (*models.HealthRecord, error) {
	if err := authz.Authorize(p, authz.EntityHealthRecord, authz.ActionCreate, nil); err != nil {
		return nil, err
	}

	appointment, err := s.appointmentStore.GetAppointmentByID(appointmentID)
	if err != nil {
		return nil, wrap("failed to resolve appointment", err)
	}
	if appointment.Doctor.UserID != p.UserID {
		return nil, apperr.Forbidden("you are not the doctor for this appointment")
	}
	if patientID != appointment.PatientID {
		return nil, apperr.ValidationField("patient_id", "does not match the appointment's patient")
	}

	record := &models.HealthRecord{
		PatientID:     patientID,
		AppointmentID: appointment.ID,
		Diagnosis:     diagnosis,
		Treatment:     treatment,
	}
	if err := s.recordStore.CreateHealthRecord(record); err != nil {
		return nil, wrap("failed to create health record", err)
	}
	return record, nil
}

// GetHealthRecordByID retrieves one record, visible to its patient, the
// appointment's doctor, and admins
func (s *HealthRecordService) GetHealthRecordByID(p authz.Principal, id uint) (*models.HealthRecord, error) {
	record, err := s.recordStore.GetHealthRecordByID(id)
	if err != nil {
		return nil, wrap("failed to fetch health record", err)
	}
	if err := authz.Authorize(p, authz.EntityHealthRecord, authz.ActionRead, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateHealthRecord mutates diagnosis/treatment; owning doctor or admin only
func (s *HealthRecordService) UpdateHealthRecord(p authz.Principal, id uint, in HealthRecordInput) (*models.HealthRecord, error) {
	record, err := s.recordStore.GetHealthRecordByID(id)
	if err != nil {
		return nil, wrap("failed to fetch health record", err)
	}
	if err := authz.Authorize(p, authz.EntityHealthRecord, authz.ActionUpdate, record); err != nil {
		return nil, err
	}

	if in.Diagnosis != nil {
		record.Diagnosis = *in.Diagnosis
	}
	if in.Treatment != nil {
		record.Treatment = *in.Treatment
	}

	if err := s.recordStore.UpdateHealthRecord(record); err != nil {
		return nil, wrap("failed to update health record", err)
	}
	return record, nil
}

// DeleteHealthRecord removes a record, restricted like update
func (s *HealthRecordService) DeleteHealthRecord(p authz.Principal, id uint) error {
	record, err := s.recordStore.GetHealthRecordByID(id)
	if err != nil {
		return wrap("failed to fetch health record", err)
	}
	if err := authz.Authorize(p, authz.EntityHealthRecord, authz.ActionDelete, record); err != nil {
		return err
	}
	if err := s.recordStore.DeleteHealthRecord(id); err != nil {
		return wrap("failed to delete health record", err)
	}
	return nil
}
