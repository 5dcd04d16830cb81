package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"marketbot/internal/domain"
	"marketbot/internal/testutil"
)

func TestAdminService_LoadAndIsAdmin(t *testing.T) {
	admins := new(testutil.MockAdminRepository)
	admins.On("AdminIDs").Return([]int64{100, 200}, nil)

	svc := NewAdminService(admins, testutil.NewTestLogger())
	assert.NoError(t, svc.Load())

	assert.True(t, svc.IsAdmin(100))
	assert.True(t, svc.IsAdmin(200))
	assert.False(t, svc.IsAdmin(300))
}

func TestAdminService_GrantUpdatesSetAfterStorage(t *testing.T) {
	admins := new(testutil.MockAdminRepository)
	admins.On("Grant", mock.MatchedBy(func(a domain.Administrator) bool {
		return a.UserID == 300 && a.Permissions == domain.PermissionsAll
	})).Return(nil)

	svc := NewAdminService(admins, testutil.NewTestLogger())
	assert.NoError(t, svc.Grant(domain.Administrator{UserID: 300}))
	assert.True(t, svc.IsAdmin(300))
}

func TestAdminService_GrantStorageFailureLeavesSetUntouched(t *testing.T) {
	admins := new(testutil.MockAdminRepository)
	admins.On("Grant", mock.Anything).Return(errors.New("db down"))

	svc := NewAdminService(admins, testutil.NewTestLogger())
	assert.Error(t, svc.Grant(domain.Administrator{UserID: 300}))
	assert.False(t, svc.IsAdmin(300))
}

func TestAdminService_RevokeTakesEffectImmediately(t *testing.T) {
	admins := new(testutil.MockAdminRepository)
	admins.On("AdminIDs").Return([]int64{100}, nil)
	admins.On("Revoke", int64(100)).Return(nil)

	svc := NewAdminService(admins, testutil.NewTestLogger())
	assert.NoError(t, svc.Load())
	assert.True(t, svc.IsAdmin(100))

	assert.NoError(t, svc.Revoke(100))
	assert.False(t, svc.IsAdmin(100))
}

func TestAdminService_Bootstrap(t *testing.T) {
	t.Run("grants missing default admin", func(t *testing.T) {
		admins := new(testutil.MockAdminRepository)
		admins.On("Grant", mock.MatchedBy(func(a domain.Administrator) bool {
			return a.UserID == 999
		})).Return(nil)

		svc := NewAdminService(admins, testutil.NewTestLogger())
		svc.Bootstrap(999)
		assert.True(t, svc.IsAdmin(999))
	})

	t.Run("zero id is a no-op", func(t *testing.T) {
		admins := new(testutil.MockAdminRepository)
		svc := NewAdminService(admins, testutil.NewTestLogger())
		svc.Bootstrap(0)
		admins.AssertNotCalled(t, "Grant", mock.Anything)
	})

	t.Run("storage failure is not fatal", func(t *testing.T) {
		admins := new(testutil.MockAdminRepository)
		admins.On("Grant", mock.Anything).Return(errors.New("db down"))

		svc := NewAdminService(admins, testutil.NewTestLogger())
		svc.Bootstrap(999)
		assert.False(t, svc.IsAdmin(999))
	})
}
