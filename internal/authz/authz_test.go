package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
)

func TestAllowed_RoleGate(t *testing.T) {
	cases := []struct {
		name   string
		role   Role
		entity Entity
		action Action
		want   bool
	}{
		{"patient lists hospitals", RolePatient, EntityHospital, ActionList, true},
		{"patient creates hospital", RolePatient, EntityHospital, ActionCreate, false},
		{"doctor creates hospital", RoleDoctor, EntityHospital, ActionCreate, false},
		{"admin creates hospital", RoleAdmin, EntityHospital, ActionCreate, true},
		{"admin deletes hospital", RoleAdmin, EntityHospital, ActionDelete, true},

		{"patient reads doctors", RolePatient, EntityDoctor, ActionRead, true},
		{"patient creates doctor", RolePatient, EntityDoctor, ActionCreate, false},
		{"doctor creates doctor", RoleDoctor, EntityDoctor, ActionCreate, false},
		{"admin creates doctor", RoleAdmin, EntityDoctor, ActionCreate, true},
		{"doctor updates doctor", RoleDoctor, EntityDoctor, ActionUpdate, true},
		{"patient updates doctor", RolePatient, EntityDoctor, ActionUpdate, false},
		{"doctor deletes doctor", RoleDoctor, EntityDoctor, ActionDelete, false},

		{"patient books appointment", RolePatient, EntityAppointment, ActionCreate, true},
		{"doctor books appointment", RoleDoctor, EntityAppointment, ActionCreate, false},
		{"admin books appointment", RoleAdmin, EntityAppointment, ActionCreate, false},
		{"doctor updates appointment", RoleDoctor, EntityAppointment, ActionUpdate, true},
		{"patient deletes appointment", RolePatient, EntityAppointment, ActionDelete, true},

		{"doctor creates prescription", RoleDoctor, EntityPrescription, ActionCreate, true},
		{"patient creates prescription", RolePatient, EntityPrescription, ActionCreate, false},
		{"admin creates prescription", RoleAdmin, EntityPrescription, ActionCreate, false},
		{"patient updates prescription", RolePatient, EntityPrescription, ActionUpdate, false},
		{"admin deletes prescription", RoleAdmin, EntityPrescription, ActionDelete, true},

		{"doctor creates health record", RoleDoctor, EntityHealthRecord, ActionCreate, true},
		{"patient creates health record", RolePatient, EntityHealthRecord, ActionCreate, false},
		{"patient reads health record", RolePatient, EntityHealthRecord, ActionRead, true},
		{"patient updates health record", RolePatient, EntityHealthRecord, ActionUpdate, false},

		{"doctor creates leave", RoleDoctor, EntityLeave, ActionCreate, true},
		{"patient creates leave", RolePatient, EntityLeave, ActionCreate, false},
		{"admin creates leave", RoleAdmin, EntityLeave, ActionCreate, false},
		{"patient lists leaves", RolePatient, EntityLeave, ActionList, false},
		{"doctor lists leaves", RoleDoctor, EntityLeave, ActionList, true},
		{"doctor approves leave", RoleDoctor, EntityLeave, ActionUpdate, false},
		{"admin approves leave", RoleAdmin, EntityLeave, ActionUpdate, true},
		{"admin deletes leave", RoleAdmin, EntityLeave, ActionDelete, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Principal{UserID: 1, Role: tc.role}
			assert.Equal(t, tc.want, Allowed(p, tc.entity, tc.action))
		})
	}
}

func TestAuthorize_UnknownRole(t *testing.T) {
	err := Authorize(Principal{UserID: 1, Role: "superuser"}, EntityHospital, ActionRead, nil)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestAuthorize_RoleGateForbidden(t *testing.T) {
	p := Principal{UserID: 1, Role: RolePatient}
	err := Authorize(p, EntityHospital, ActionCreate, nil)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestAuthorize_DoctorOwnership(t *testing.T) {
	own := &models.Doctor{ID: 5, UserID: 10}
	other := &models.Doctor{ID: 6, UserID: 99}
	p := Principal{UserID: 10, Role: RoleDoctor}

	assert.NoError(t, Authorize(p, EntityDoctor, ActionUpdate, own))

	err := Authorize(p, EntityDoctor, ActionUpdate, other)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestAuthorize_AppointmentOwnership(t *testing.T) {
	appointment := &models.Appointment{
		ID:        1,
		PatientID: 20,
		Doctor:    models.Doctor{ID: 5, UserID: 10},
	}

	patient := Principal{UserID: 20, Role: RolePatient}
	otherPatient := Principal{UserID: 21, Role: RolePatient}
	doctor := Principal{UserID: 10, Role: RoleDoctor}
	otherDoctor := Principal{UserID: 11, Role: RoleDoctor}

	assert.NoError(t, Authorize(patient, EntityAppointment, ActionRead, appointment))
	assert.NoError(t, Authorize(doctor, EntityAppointment, ActionRead, appointment))

	err := Authorize(otherPatient, EntityAppointment, ActionRead, appointment)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	err = Authorize(otherDoctor, EntityAppointment, ActionUpdate, appointment)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestAuthorize_AdminBypassesOwnership(t *testing.T) {
	appointment := &models.Appointment{
		ID:        1,
		PatientID: 20,
		Doctor:    models.Doctor{ID: 5, UserID: 10},
	}
	admin := Principal{UserID: 999, Role: RoleAdmin}

	assert.NoError(t, Authorize(admin, EntityAppointment, ActionRead, appointment))
	assert.NoError(t, Authorize(admin, EntityAppointment, ActionDelete, appointment))
}

func TestAuthorize_PrescriptionOwnership(t *testing.T) {
	prescription := &models.Prescription{
		ID: 1,
		Appointment: models.Appointment{
			PatientID: 20,
			Doctor:    models.Doctor{ID: 5, UserID: 10},
		},
	}

	assert.NoError(t, Authorize(Principal{UserID: 20, Role: RolePatient}, EntityPrescription, ActionRead, prescription))
	assert.NoError(t, Authorize(Principal{UserID: 10, Role: RoleDoctor}, EntityPrescription, ActionUpdate, prescription))

	err := Authorize(Principal{UserID: 11, Role: RoleDoctor}, EntityPrescription, ActionUpdate, prescription)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestAuthorize_LeaveOwnership(t *testing.T) {
	leave := &models.Leave{
		ID:     1,
		Doctor: models.Doctor{ID: 5, UserID: 10},
	}

	assert.NoError(t, Authorize(Principal{UserID: 10, Role: RoleDoctor}, EntityLeave, ActionRead, leave))

	err := Authorize(Principal{UserID: 11, Role: RoleDoctor}, EntityLeave, ActionRead, leave)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestListScope_PatientLeavesForbidden(t *testing.T) {
	_, err := ListScope(Principal{UserID: 1, Role: RolePatient}, EntityLeave)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestListScope_KnownRoles(t *testing.T) {
	for _, e := range []Entity{EntityHospital, EntityDoctor, EntityAppointment, EntityPrescription, EntityHealthRecord} {
		for _, r := range []Role{RolePatient, RoleDoctor, RoleAdmin} {
			scope, err := ListScope(Principal{UserID: 1, Role: r}, e)
			assert.NoError(t, err, "entity %s role %s", e, r)
			assert.NotNil(t, scope, "entity %s role %s", e, r)
		}
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RolePatient.Valid())
	assert.True(t, RoleDoctor.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}
