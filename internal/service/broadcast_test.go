package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketbot/internal/domain"
	"marketbot/internal/testutil"
)

func TestBroadcastService_SendToAll(t *testing.T) {
	users := new(testutil.MockUserRepository)
	audit := new(testutil.MockAuditRepository)
	sender := new(testutil.MockSender)

	users.On("RecipientIDs").Return([]int64{1, 2, 3}, nil)
	sender.On("Send", int64(1), "salom").Return(nil)
	sender.On("Send", int64(2), "salom").Return(errors.New("blocked the bot"))
	sender.On("Send", int64(3), "salom").Return(nil)
	audit.On("SaveBroadcast", int64(100), "salom",
		domain.BroadcastResult{Success: 2, Failed: 1, Total: 3}).Return(nil)

	svc := NewBroadcastService(users, audit, sender, testutil.NewTestLogger())
	result, err := svc.SendToAll(100, "salom")

	assert.NoError(t, err)
	assert.Equal(t, domain.BroadcastResult{Success: 2, Failed: 1, Total: 3}, result)
	sender.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestBroadcastService_RecipientLookupFailure(t *testing.T) {
	users := new(testutil.MockUserRepository)
	users.On("RecipientIDs").Return(nil, errors.New("db down"))

	svc := NewBroadcastService(users, new(testutil.MockAuditRepository),
		new(testutil.MockSender), testutil.NewTestLogger())
	_, err := svc.SendToAll(100, "salom")

	assert.Error(t, err)
}

func TestBroadcastService_HistoryFailureDoesNotLoseResult(t *testing.T) {
	users := new(testutil.MockUserRepository)
	audit := new(testutil.MockAuditRepository)
	sender := new(testutil.MockSender)

	users.On("RecipientIDs").Return([]int64{1}, nil)
	sender.On("Send", int64(1), "salom").Return(nil)
	audit.On("SaveBroadcast", int64(100), "salom",
		domain.BroadcastResult{Success: 1, Total: 1}).Return(errors.New("db down"))

	svc := NewBroadcastService(users, audit, sender, testutil.NewTestLogger())
	result, err := svc.SendToAll(100, "salom")

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Success)
}
