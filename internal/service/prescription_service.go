package service

import (
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/notification"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
)

type PrescriptionService struct {
	prescriptionStore PrescriptionStore
	appointmentStore  AppointmentStore
	notifier          Notifier
	log               *logger.Logger
}

func NewPrescriptionService(
	prescriptionStore PrescriptionStore,
	appointmentStore AppointmentStore,
	notifier Notifier,
	log *logger.Logger,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptionStore: prescriptionStore,
		appointmentStore:  appointmentStore,
		notifier:          notifier,
		log:               log,
	}
}

// PrescriptionInput carries the fields a doctor may write on a prescription.
// The creation timestamp is engine-set and immutable.
type PrescriptionInput struct {
	Medication   *string
	Dosage       *string
	Instructions *string
}

// ListPrescriptions returns prescriptions scoped through the underlying
// appointment: its patient, its doctor, or everything for admins.
func (s *PrescriptionService) ListPrescriptions(p authz.Principal) ([]models.Prescription, error) {
	scope, err := authz.ListScope(p, authz.EntityPrescription)
	if err != nil {
		return nil, err
	}
	prescriptions, err := s.prescriptionStore.ListPrescriptions(scope)
	if err != nil {
		return nil, wrap("failed to fetch prescriptions", err)
	}
	return prescriptions, nil
}

// CreatePrescription issues a prescription against an appointment. Only the
// doctor who owns the appointment may issue one.
func (s *PrescriptionService) CreatePrescription(p authz.Principal, appointmentID uint, medication, dosage, instructions string) (*models.Prescription, error) {
	if err := authz.Authorize(p, authz.EntityPrescription, authz.ActionCreate, nil); err != nil {
		return nil, err
	}

	appointment, err := s.appointmentStore.GetAppointmentByID(appointmentID)
	if err != nil {
		return nil, wrap("failed to resolve appointment", err)
	}
	if appointment.Doctor.UserID != p.UserID {
		return nil, apperr.Forbidden("you are not the doctor for this appointment")
	}

	prescription := &models.Prescription{
		AppointmentID: appointment.ID,
		Medication:    medication,
		Dosage:        dosage,
		Instructions:  instructions,
	}
	if err := s.prescriptionStore.CreatePrescription(prescription); err != nil {
		return nil, wrap("failed to create prescription", err)
	}

	s.notifier.Emit(notification.Intent{
		Event:     notification.EventPrescriptionCreated,
		Recipient: appointment.Patient.Email,
		Fields:    map[string]string{"date": appointment.Date},
	})

	return prescription, nil
}

// GetPrescriptionByID retrieves one prescription, visible to the appointment's
// patient and doctor, and to admins
func (s *PrescriptionService) GetPrescriptionByID(p authz.Principal, id uint) (*models.Prescription, error) {
	prescription, err := s.prescriptionStore.GetPrescriptionByID(id)
	if err != nil {
		return nil, wrap("failed to fetch prescription", err)
	}
	if err := authz.Authorize(p, authz.EntityPrescription, authz.ActionRead, prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

// UpdatePrescription mutates prescription text fields; only the owning doctor
// (or an admin) may update, and created_at is never touched
func (s *PrescriptionService) UpdatePrescription(p authz.Principal, id uint, in PrescriptionInput) (*models.Prescription, error) {
	prescription, err := s.prescriptionStore.GetPrescriptionByID(id)
	if err != nil {
		return nil, wrap("failed to fetch prescription", err)
	}
	if err := authz.Authorize(p, authz.EntityPrescription, authz.ActionUpdate, prescription); err != nil {
		return nil, err
	}

	if in.Medication != nil {
		prescription.Medication = *in.Medication
	}
	if in.Dosage != nil {
		prescription.Dosage = *in.Dosage
	}
	if in.Instructions != nil {
		prescription.Instructions = *in.Instructions
	}

	if err := s.prescriptionStore.UpdatePrescription(prescription); err != nil {
		return nil, wrap("failed to update prescription", err)
	}
	return prescription, nil
}

// DeletePrescription removes a prescription, restricted like update
func (s *PrescriptionService) DeletePrescription(p authz.Principal, id uint) error {
	prescription, err := s.prescriptionStore.GetPrescriptionByID(id)
	if err != nil {
		return wrap("failed to fetch prescription", err)
	}
	if err := authz.Authorize(p, authz.EntityPrescription, authz.ActionDelete, prescription); err != nil {
		return err
	}
	if err := s.prescriptionStore.DeletePrescription(id); err != nil {
		return wrap("failed to delete prescription", err)
	}
	return nil
}
