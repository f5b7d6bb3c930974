package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
)

func setupDoctorService() (*DoctorService, *MockDoctorStore, *MockHospitalStore) {
	doctors := &MockDoctorStore{}
	hospitals := &MockHospitalStore{}
	svc := NewDoctorService(doctors, hospitals, noopAudit{}, testLogger())
	return svc, doctors, hospitals
}

func TestCreateDoctor_ForcesDoctorRole(t *testing.T) {
	svc, doctors, hospitals := setupDoctorService()
	admin := authz.Principal{UserID: 99, Role: authz.RoleAdmin}

	hospitals.On("GetHospitalByID", uint(3)).Return(&models.Hospital{ID: 3}, nil)
	doctors.On("CreateDoctorWithUser",
		mock.AnythingOfType("*models.User"),
		mock.AnythingOfType("*models.Doctor"),
	).Return(nil)

	doctor, err := svc.CreateDoctor(admin, CreateDoctorInput{
		User: RegisterInput{
			Username: "drsmith",
			Email:    "drsmith@example.com",
			Password: "correct-horse",
			Role:     "admin", // ignored: doctor accounts always get role doctor
		},
		HospitalID:     3,
		Specialization: "cardiology",
	})

	assert.NoError(t, err)
	assert.Equal(t, "doctor", doctor.User.Role)
	assert.Equal(t, uint(3), doctor.HospitalID)
	assert.NotNil(t, doctor.Availability)
}

func TestCreateDoctor_UnknownHospital(t *testing.T) {
	svc, doctors, hospitals := setupDoctorService()
	admin := authz.Principal{UserID: 99, Role: authz.RoleAdmin}

	hospitals.On("GetHospitalByID", uint(404)).Return(nil, apperr.NotFound("hospital"))

	_, err := svc.CreateDoctor(admin, CreateDoctorInput{
		User:       RegisterInput{Username: "drsmith", Password: "pw"},
		HospitalID: 404,
	})

	var appErr *apperr.Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "hospital_id")
	doctors.AssertNotCalled(t, "CreateDoctorWithUser", mock.Anything, mock.Anything)
}

func TestCreateDoctor_NonAdminForbidden(t *testing.T) {
	svc, _, _ := setupDoctorService()

	for _, role := range []authz.Role{authz.RolePatient, authz.RoleDoctor} {
		_, err := svc.CreateDoctor(authz.Principal{UserID: 1, Role: role}, CreateDoctorInput{HospitalID: 3})
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err), "role %s", role)
	}
}

func TestUpdateDoctor_OwnProfile(t *testing.T) {
	svc, doctors, _ := setupDoctorService()
	doctor := authz.Principal{UserID: 10, Role: authz.RoleDoctor}

	doctors.On("GetDoctorByID", uint(5)).Return(&models.Doctor{ID: 5, UserID: 10, Specialization: "cardiology"}, nil)
	doctors.On("UpdateDoctor", mock.AnythingOfType("*models.Doctor")).Return(nil)

	spec := "neurology"
	updated, err := svc.UpdateDoctor(doctor, 5, DoctorUpdateInput{Specialization: &spec})

	assert.NoError(t, err)
	assert.Equal(t, "neurology", updated.Specialization)
}

func TestUpdateDoctor_ForeignProfileForbidden(t *testing.T) {
	svc, doctors, _ := setupDoctorService()
	otherDoctor := authz.Principal{UserID: 11, Role: authz.RoleDoctor}

	doctors.On("GetDoctorByID", uint(5)).Return(&models.Doctor{ID: 5, UserID: 10}, nil)

	spec := "neurology"
	_, err := svc.UpdateDoctor(otherDoctor, 5, DoctorUpdateInput{Specialization: &spec})

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	doctors.AssertNotCalled(t, "UpdateDoctor", mock.Anything)
}

func TestUpdateDoctor_UnknownHospitalRejected(t *testing.T) {
	svc, doctors, hospitals := setupDoctorService()
	admin := authz.Principal{UserID: 99, Role: authz.RoleAdmin}

	doctors.On("GetDoctorByID", uint(5)).Return(&models.Doctor{ID: 5, UserID: 10, HospitalID: 3}, nil)
	hospitals.On("GetHospitalByID", uint(404)).Return(nil, apperr.NotFound("hospital"))

	badHospital := uint(404)
	_, err := svc.UpdateDoctor(admin, 5, DoctorUpdateInput{HospitalID: &badHospital})

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDeleteDoctor_AdminOnly(t *testing.T) {
	svc, doctors, _ := setupDoctorService()

	doctors.On("GetDoctorByID", uint(5)).Return(&models.Doctor{ID: 5, UserID: 10}, nil)

	err := svc.DeleteDoctor(authz.Principal{UserID: 10, Role: authz.RoleDoctor}, 5)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	doctors.On("DeleteDoctor", uint(5)).Return(nil)
	assert.NoError(t, svc.DeleteDoctor(authz.Principal{UserID: 99, Role: authz.RoleAdmin}, 5))
}
