package testutil

import (
	"github.com/stretchr/testify/mock"

	"marketbot/internal/domain"
)

// MockUserRepository is a mock of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(userID int64, profile domain.Profile) error {
	args := m.Called(userID, profile)
	return args.Error(0)
}

func (m *MockUserRepository) UpsertCredential(userID int64, credential string, profile domain.Profile) error {
	args := m.Called(userID, credential, profile)
	return args.Error(0)
}

func (m *MockUserRepository) Credential(userID int64) (string, bool, error) {
	args := m.Called(userID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) ClearCredential(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) IsBlocked(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetBlocked(userID int64, blocked bool) error {
	args := m.Called(userID, blocked)
	return args.Error(0)
}

func (m *MockUserRepository) TouchActivity(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsers(limit int, filter domain.UserFilter) ([]domain.User, error) {
	args := m.Called(limit, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) RecipientIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserRepository) Stats() (domain.UserStats, error) {
	args := m.Called()
	return args.Get(0).(domain.UserStats), args.Error(1)
}

func (m *MockUserRepository) ActivityStats() (domain.ActivityStats, error) {
	args := m.Called()
	return args.Get(0).(domain.ActivityStats), args.Error(1)
}

// MockAdminRepository is a mock of repository.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) AdminIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockAdminRepository) Grant(admin domain.Administrator) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) Revoke(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockAdminRepository) ListAdmins() ([]domain.Administrator, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Administrator), args.Error(1)
}

// MockAuditRepository is a mock of repository.AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveBroadcast(adminID int64, text string, result domain.BroadcastResult) error {
	args := m.Called(adminID, text, result)
	return args.Error(0)
}

func (m *MockAuditRepository) LogAction(userID int64, actionType, actionData string) error {
	args := m.Called(userID, actionType, actionData)
	return args.Error(0)
}

// MockSender is a mock of service.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}
