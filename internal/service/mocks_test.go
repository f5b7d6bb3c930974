package service

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/notification"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New("error")
}

// MockUserStore is a mock implementation of UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetAllUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) CreateRefreshToken(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockUserStore) FindRefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	args := m.Called(hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockUserStore) RevokeRefreshToken(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserStore) RevokeRefreshTokenByHash(hash string) error {
	args := m.Called(hash)
	return args.Error(0)
}

// MockHospitalStore is a mock implementation of HospitalStore
type MockHospitalStore struct {
	mock.Mock
}

func (m *MockHospitalStore) GetAllHospitals() ([]models.Hospital, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) GetHospitalByID(id uint) (*models.Hospital, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) CreateHospital(hospital *models.Hospital) error {
	args := m.Called(hospital)
	return args.Error(0)
}

func (m *MockHospitalStore) UpdateHospital(hospital *models.Hospital) error {
	args := m.Called(hospital)
	return args.Error(0)
}

func (m *MockHospitalStore) DeleteHospital(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockDoctorStore is a mock implementation of DoctorStore
type MockDoctorStore struct {
	mock.Mock
}

func (m *MockDoctorStore) GetAllDoctors() ([]models.Doctor, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorStore) GetDoctorByID(id uint) (*models.Doctor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorStore) GetDoctorByUserID(userID uint) (*models.Doctor, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorStore) CreateDoctorWithUser(user *models.User, doctor *models.Doctor) error {
	args := m.Called(user, doctor)
	return args.Error(0)
}

func (m *MockDoctorStore) UpdateDoctor(doctor *models.Doctor) error {
	args := m.Called(doctor)
	return args.Error(0)
}

func (m *MockDoctorStore) DeleteDoctor(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAppointmentStore is a mock implementation of AppointmentStore
type MockAppointmentStore struct {
	mock.Mock
}

func (m *MockAppointmentStore) ListAppointments(scope authz.Scope) ([]models.Appointment, error) {
	args := m.Called(scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) GetAppointmentByID(id uint) (*models.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) CreateAppointment(appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) UpdateAppointment(appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) DeleteAppointment(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPrescriptionStore is a mock implementation of PrescriptionStore
type MockPrescriptionStore struct {
	mock.Mock
}

func (m *MockPrescriptionStore) ListPrescriptions(scope authz.Scope) ([]models.Prescription, error) {
	args := m.Called(scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *MockPrescriptionStore) GetPrescriptionByID(id uint) (*models.Prescription, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prescription), args.Error(1)
}

func (m *MockPrescriptionStore) CreatePrescription(prescription *models.Prescription) error {
	args := m.Called(prescription)
	return args.Error(0)
}

func (m *MockPrescriptionStore) UpdatePrescription(prescription *models.Prescription) error {
	args := m.Called(prescription)
	return args.Error(0)
}

func (m *MockPrescriptionStore) DeletePrescription(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockHealthRecordStore is a mock implementation of HealthRecordStore
type MockHealthRecordStore struct {
	mock.Mock
}

func (m *MockHealthRecordStore) ListHealthRecords(scope authz.Scope) ([]models.HealthRecord, error) {
	args := m.Called(scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordStore) GetHealthRecordByID(id uint) (*models.HealthRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordStore) CreateHealthRecord(record *models.HealthRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockHealthRecordStore) UpdateHealthRecord(record *models.HealthRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockHealthRecordStore) DeleteHealthRecord(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockLeaveStore is a mock implementation of LeaveStore
type MockLeaveStore struct {
	mock.Mock
}

func (m *MockLeaveStore) ListLeaves(scope authz.Scope) ([]models.Leave, error) {
	args := m.Called(scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Leave), args.Error(1)
}

func (m *MockLeaveStore) GetLeaveByID(id uint) (*models.Leave, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Leave), args.Error(1)
}

func (m *MockLeaveStore) CreateLeave(leave *models.Leave) error {
	args := m.Called(leave)
	return args.Error(0)
}

func (m *MockLeaveStore) TransitionStatus(id uint, status string, adminID uint) (int64, error) {
	args := m.Called(id, status, adminID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaveStore) DeleteLeave(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAuditStore records audit calls without a database
type MockAuditStore struct {
	mock.Mock
}

func (m *MockAuditStore) CreateAuditLog(userID *uint, action string, details string) error {
	args := m.Called(userID, action, details)
	return args.Error(0)
}

func (m *MockAuditStore) ListRecent(limit int) ([]models.AuditLog, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuditLog), args.Error(1)
}

// noopAudit accepts every audit write; for tests that do not assert on audits
type noopAudit struct{}

func (noopAudit) CreateAuditLog(*uint, string, string) error { return nil }

func (noopAudit) ListRecent(int) ([]models.AuditLog, error) { return nil, nil }

// recordingNotifier captures emitted intents for assertions
type recordingNotifier struct {
	mu      sync.Mutex
	intents []notification.Intent
}

func (n *recordingNotifier) Emit(intent notification.Intent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.intents = append(n.intents, intent)
}

func (n *recordingNotifier) emitted() []notification.Intent {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notification.Intent, len(n.intents))
	copy(out, n.intents)
	return out
}
