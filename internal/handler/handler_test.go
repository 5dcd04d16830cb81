package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"marketbot/internal/domain"
	"marketbot/internal/service"
	"marketbot/internal/testutil"
)

type fixture struct {
	handler *Handler
	users   *testutil.MockUserRepository
	admins  *testutil.MockAdminRepository
	audit   *testutil.MockAuditRepository
	sender  *testutil.MockSender
	api     *testutil.FakeAPI
}

// newFixture builds a handler over mock storage and a canned gateway.
// adminIDs seeds the in-memory administrator set.
func newFixture(t *testing.T, adminIDs ...int64) *fixture {
	t.Helper()

	users := new(testutil.MockUserRepository)
	adminRepo := new(testutil.MockAdminRepository)
	audit := new(testutil.MockAuditRepository)
	sender := new(testutil.MockSender)
	api := testutil.NewFakeAPI()
	factory, _ := api.Factory()
	logger := testutil.NewTestLogger()

	adminRepo.On("AdminIDs").Return(adminIDs, nil).Once()

	userSvc := service.NewUserService(users, audit, factory, logger)
	adminSvc := service.NewAdminService(adminRepo, logger)
	if err := adminSvc.Load(); err != nil {
		t.Fatalf("load admins: %v", err)
	}
	broadcastSvc := service.NewBroadcastService(users, audit, sender, logger)

	h := New(nil, userSvc, adminSvc, broadcastSvc, factory, sender, Options{
		ContactHandle: "Tolov_admini_btu",
		SupportGroup:  "https://t.me/unb_uz",
	}, logger)

	return &fixture{handler: h, users: users, admins: adminRepo, audit: audit, sender: sender, api: api}
}

// allowGuard wires the entry checks every non-blocked update passes
func (f *fixture) allowGuard(userID int64) {
	f.users.On("IsBlocked", userID).Return(false, nil)
	f.users.On("EnsureUser", userID, mock.Anything).Return(nil)
	f.users.On("TouchActivity", userID).Return(nil)
}

func TestCredentialFlow(t *testing.T) {
	f := newFixture(t)
	f.allowGuard(42)

	// Pressing "API kiritish" arms the flow
	cb := testutil.NewFakeCallback(42, "\fadd_api")
	assert.NoError(t, f.handler.HandleCallback(cb))
	assert.Equal(t, domain.StateAwaitingCredential, f.handler.state(42).State)
	assert.Contains(t, cb.LastSent(), "API kalitingizni yuboring")

	// A valid credential is probed and persisted
	f.users.On("UpsertCredential", int64(42), "abcdefghij", mock.Anything).Return(nil).Once()
	f.audit.On("LogAction", int64(42), "register_credential", "").Return(nil).Once()

	msg := testutil.NewFakeContext(42, "abcdefghij")
	assert.NoError(t, f.handler.HandleText(msg))

	assert.Equal(t, domain.StateIdle, f.handler.state(42).State)
	assert.Equal(t, 1, f.api.Calls["Probe"])
	assert.Contains(t, msg.LastSent(), "muvaffaqiyatli saqlandi")
	f.users.AssertExpectations(t)
}

func TestCredentialFlow_TooShortClearsState(t *testing.T) {
	f := newFixture(t)
	f.allowGuard(42)
	f.handler.setState(42, domain.StateData{State: domain.StateAwaitingCredential})

	msg := testutil.NewFakeContext(42, "short")
	assert.NoError(t, f.handler.HandleText(msg))

	assert.Equal(t, domain.StateIdle, f.handler.state(42).State)
	assert.Equal(t, 0, f.api.Calls["Probe"])
	assert.Contains(t, msg.LastSent(), "noto'g'ri yoki ishlamayapti")
}

func TestCredentialFlow_RejectedByMarketplace(t *testing.T) {
	f := newFixture(t)
	f.allowGuard(42)
	f.api.ProbeOK = false
	f.handler.setState(42, domain.StateData{State: domain.StateAwaitingCredential})

	msg := testutil.NewFakeContext(42, "abcdefghij")
	assert.NoError(t, f.handler.HandleText(msg))

	assert.Equal(t, domain.StateIdle, f.handler.state(42).State)
	assert.Equal(t, 1, f.api.Calls["Probe"])
	f.users.AssertNotCalled(t, "UpsertCredential", mock.Anything, mock.Anything, mock.Anything)
}

func TestBlockedUserIsStoppedWithStateIntact(t *testing.T) {
	f := newFixture(t)
	f.users.On("IsBlocked", int64(42)).Return(true, nil)
	f.handler.setState(42, domain.StateData{State: domain.StateAwaitingSearchTerm, ShopID: 7})

	msg := testutil.NewFakeContext(42, "anything")
	assert.NoError(t, f.handler.HandleText(msg))

	assert.Contains(t, msg.LastSent(), "bloklangansiz")
	assert.Equal(t, domain.StateAwaitingSearchTerm, f.handler.state(42).State)
	assert.Equal(t, int64(7), f.handler.state(42).ShopID)
	f.users.AssertNotCalled(t, "EnsureUser", mock.Anything, mock.Anything)
}

func TestStateSlotLastWriterWins(t *testing.T) {
	f := newFixture(t)
	f.allowGuard(42)
	f.handler.setState(42, domain.StateData{State: domain.StateAwaitingSearchTerm, ShopID: 7})

	// Starting the credential flow replaces the search flow
	cb := testutil.NewFakeCallback(42, "\fchange_api")
	assert.NoError(t, f.handler.HandleCallback(cb))

	data := f.handler.state(42)
	assert.Equal(t, domain.StateAwaitingCredential, data.State)
	assert.Zero(t, data.ShopID)
}

func TestBlockFlow(t *testing.T) {
	f := newFixture(t, 100)
	f.allowGuard(100)
	f.handler.setState(100, domain.StateData{State: domain.StateAwaitingBlockTarget})

	f.users.On("SetBlocked", int64(123456789), true).Return(nil).Once()
	f.sender.On("Send", int64(123456789), mock.MatchedBy(func(text string) bool {
		return len(text) > 0
	})).Return(nil).Once()

	msg := testutil.NewFakeContext(100, "123456789")
	assert.NoError(t, f.handler.HandleText(msg))

	assert.Equal(t, domain.StateIdle, f.handler.state(100).State)
	assert.Contains(t, msg.LastSent(), "bloklandi")
	f.users.AssertExpectations(t)
	f.sender.AssertExpectations(t)
}

func TestBlockFlow_NotifyFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, 100)
	f.allowGuard(100)
	f.handler.setState(100, domain.StateData{State: domain.StateAwaitingBlockTarget})

	f.users.On("SetBlocked", int64(5), true).Return(nil).Once()
	f.sender.On("Send", int64(5), mock.Anything).Return(errors.New("bot was blocked")).Once()

	msg := testutil.NewFakeContext(100, "5")
	assert.NoError(t, f.handler.HandleText(msg))
	assert.Contains(t, msg.LastSent(), "bloklandi")
}

func TestUnblockFlow(t *testing.T) {
	f := newFixture(t, 100)
	f.allowGuard(100)
	f.handler.setState(100, domain.StateData{State: domain.StateAwaitingUnblockTarget})

	f.users.On("SetBlocked", int64(5), false).Return(nil).Once()

	msg := testutil.NewFakeContext(100, "5")
	assert.NoError(t, f.handler.HandleText(msg))
	assert.Contains(t, msg.LastSent(), "blokdan chiqarildi")
}

func TestBlockFlow_RevokedAdminIsIgnored(t *testing.T) {
	// State was armed while 100 was an admin; rights are re-checked at
	// consumption, so a plain user's digits do nothing.
	f := newFixture(t)
	f.allowGuard(100)
	f.handler.setState(100, domain.StateData{State: domain.StateAwaitingBlockTarget})

	msg := testutil.NewFakeContext(100, "123456789")
	assert.NoError(t, f.handler.HandleText(msg))

	assert.Equal(t, domain.StateIdle, f.handler.state(100).State)
	assert.Empty(t, msg.Sent)
	f.users.AssertNotCalled(t, "SetBlocked", mock.Anything, mock.Anything)
}

func TestBlockFlow_NonNumericTarget(t *testing.T) {
	f := newFixture(t, 100)
	f.allowGuard(100)
	f.handler.setState(100, domain.StateData{State: domain.StateAwaitingBlockTarget})

	msg := testutil.NewFakeContext(100, "not-a-number")
	assert.NoError(t, f.handler.HandleText(msg))

	assert.Equal(t, domain.StateIdle, f.handler.state(100).State)
	assert.Contains(t, msg.LastSent(), "raqam bo'lishi kerak")
}

func TestPriceUpdateFlow(t *testing.T) {
	f := newFixture(t)
	f.allowGuard(42)
	f.users.On("Credential", int64(42)).Return("abcdefghij", true, nil)
	f.handler.setState(42, domain.StateData{State: domain.StateAwaitingPriceUpdate, ShopID: 77})

	t.Run("bad format keeps the flow", func(t *testing.T) {
		msg := testutil.NewFakeContext(42, "junk")
		assert.NoError(t, f.handler.HandleText(msg))

		assert.Equal(t, domain.StateAwaitingPriceUpdate, f.handler.state(42).State)
		assert.Equal(t, int64(77), f.handler.state(42).ShopID)
		assert.Contains(t, msg.LastSent(), "Noto'g'ri format")
	})

	t.Run("valid input updates and clears", func(t *testing.T) {
		msg := testutil.NewFakeContext(42, "123456:150000")
		assert.NoError(t, f.handler.HandleText(msg))

		assert.Equal(t, domain.StateIdle, f.handler.state(42).State)
		assert.Equal(t, 1, f.api.Calls["UpdateProductPrice"])
		assert.Contains(t, msg.LastSent(), "yangilandi")
	})
}

func TestSearchFlow(t *testing.T) {
	f := newFixture(t)
	f.allowGuard(42)
	f.users.On("Credential", int64(42)).Return("abcdefghij", true, nil)
	f.api.ProductPage = &domain.ProductPage{
		Products: []domain.Product{{ProductID: 1, Title: "Telefon g'ilofi", Price: 45000}},
		Total:    1,
	}
	f.handler.setState(42, domain.StateData{State: domain.StateAwaitingSearchTerm, ShopID: 77})

	msg := testutil.NewFakeContext(42, "telefon")
	assert.NoError(t, f.handler.HandleText(msg))

	assert.Equal(t, domain.StateIdle, f.handler.state(42).State)
	assert.Equal(t, 1, f.api.Calls["SearchProducts"])
	assert.Contains(t, msg.LastSent(), "Telefon g'ilofi")
}

func TestIdleTextIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.allowGuard(42)

	msg := testutil.NewFakeContext(42, "random chatter")
	assert.NoError(t, f.handler.HandleText(msg))
	assert.Empty(t, msg.Sent)
}

func TestParsePriceInput(t *testing.T) {
	tests := []struct {
		input   string
		wantSku int64
		wantPr  int64
		wantOK  bool
	}{
		{"123456:150000", 123456, 150000, true},
		{" 123456 : 150000 ", 123456, 150000, true},
		{"123456", 0, 0, false},
		{"abc:150000", 0, 0, false},
		{"123456:-5", 0, 0, false},
		{"0:150000", 0, 0, false},
		{"123456:0", 0, 0, false},
	}

	for _, tt := range tests {
		sku, price, ok := parsePriceInput(tt.input)
		assert.Equal(t, tt.wantOK, ok, tt.input)
		if tt.wantOK {
			assert.Equal(t, tt.wantSku, sku)
			assert.Equal(t, tt.wantPr, price)
		}
	}
}
