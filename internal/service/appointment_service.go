package service

import (
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/notification"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
)

type AppointmentService struct {
	appointmentStore AppointmentStore
	doctorStore      DoctorStore
	userStore        UserStore
	notifier         Notifier
	log              *logger.Logger
}

func NewAppointmentService(
	appointmentStore AppointmentStore,
	doctorStore DoctorStore,
	userStore UserStore,
	notifier Notifier,
	log *logger.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointmentStore: appointmentStore,
		doctorStore:      doctorStore,
		userStore:        userStore,
		notifier:         notifier,
		log:              log,
	}
}

// AppointmentUpdateInput carries the mutable appointment fields
type AppointmentUpdateInput struct {
	Date   *string
	Time   *string
	Status *string
}

// ListAppointments returns the appointments visible to the principal:
// patients see their own, doctors see their schedule, admins see all.
func (s *AppointmentService) ListAppointments(p authz.Principal) ([]models.Appointment, error) {
	scope, err := authz.ListScope(p, authz.EntityAppointment)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointmentStore.ListAppointments(scope)
	if err != nil {
		return nil, wrap("failed to fetch appointments", err)
	}
	return appointments, nil
}

// CreateAppointment books an appointment for the calling patient. The
// hospital is always snapshotted from the doctor's current hospital; any
// caller-supplied hospital value is ignored.
func (s *AppointmentService) CreateAppointment(p authz.Principal, doctorID uint, date, timeSlot string) (*models.Appointment, error) {
	if err := authz.Authorize(p, authz.EntityAppointment, authz.ActionCreate, nil); err != nil {
		return nil, err
	}

	doctor, err := s.doctorStore.GetDoctorByID(doctorID)
	if err != nil {
		return nil, wrap("failed to resolve doctor", err)
	}

	appointment := &models.Appointment{
		PatientID:  p.UserID,
		DoctorID:   doctor.ID,
		HospitalID: doctor.HospitalID,
		Date:       date,
		Time:       timeSlot,
		Status:     models.AppointmentStatusBooked,
	}
	if err := s.appointmentStore.CreateAppointment(appointment); err != nil {
		return nil, wrap("failed to create appointment", err)
	}

	if patient, err := s.userStore.FindUserByID(p.UserID); err == nil {
		s.notifier.Emit(notification.Intent{
			Event:     notification.EventAppointmentCreated,
			Recipient: patient.Email,
			Fields: map[string]string{
				"doctor": doctor.User.Username,
				"date":   appointment.Date,
				"time":   appointment.Time,
			},
		})
	} else {
		s.log.WithEntity("appointment", appointment.ID).WithError(err).
			Warn("could not resolve patient for confirmation email")
	}

	return appointment, nil
}

// GetAppointmentByID retrieves one appointment, restricted to its patient,
// its doctor, and admins
func (s *AppointmentService) GetAppointmentByID(p authz.Principal, id uint) (*models.Appointment, error) {
	appointment, err := s.appointmentStore.GetAppointmentByID(id)
	if err != nil {
		return nil, wrap("failed to fetch appointment", err)
	}
	if err := authz.Authorize(p, authz.EntityAppointment, authz.ActionRead, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// UpdateAppointment mutates date, time, or status. The hospital snapshot is
// never touched, even when the doctor has since changed hospital.
func (s *AppointmentService) UpdateAppointment(p authz.Principal, id uint, in AppointmentUpdateInput) (*models.Appointment, error) {
	appointment, err := s.appointmentStore.GetAppointmentByID(id)
	if err != nil {
		return nil, wrap("failed to fetch appointment", err)
	}
	if err := authz.Authorize(p, authz.EntityAppointment, authz.ActionUpdate, appointment); err != nil {
		return nil, err
	}

	if in.Date != nil {
		appointment.Date = *in.Date
	}
	if in.Time != nil {
		appointment.Time = *in.Time
	}
	if in.Status != nil {
		appointment.Status = *in.Status
	}

	if err := s.appointmentStore.UpdateAppointment(appointment); err != nil {
		return nil, wrap("failed to update appointment", err)
	}
	return appointment, nil
}

// DeleteAppointment cancels an appointment, restricted like update
func (s *AppointmentService) DeleteAppointment(p authz.Principal, id uint) error {
	appointment, err := s.appointmentStore.GetAppointmentByID(id)
	if err != nil {
		return wrap("failed to fetch appointment", err)
	}
	if err := authz.Authorize(p, authz.EntityAppointment, authz.ActionDelete, appointment); err != nil {
		return err
	}
	if err := s.appointmentStore.DeleteAppointment(id); err != nil {
		return wrap("failed to delete appointment", err)
	}
	return nil
}
