// Package handler wires Telegram updates to the marketplace services.
package handler

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"marketbot/internal/domain"
	"marketbot/internal/gateway"
	"marketbot/internal/service"
)

// Options carries operator-facing settings
type Options struct {
	// ContactHandle is the Telegram username blocked users are pointed to
	ContactHandle string

	// SupportGroup is the public support chat URL
	SupportGroup string
}

// BotSender delivers messages to arbitrary users through the bot
type BotSender struct {
	bot *tele.Bot
}

// NewBotSender wraps a bot as a service.Sender
func NewBotSender(bot *tele.Bot) *BotSender {
	return &BotSender{bot: bot}
}

func (s *BotSender) Send(userID int64, text string) error {
	_, err := s.bot.Send(&tele.User{ID: userID}, text)
	return err
}

// Handler processes bot updates
type Handler struct {
	bot       *tele.Bot
	users     *service.UserService
	admins    *service.AdminService
	broadcast *service.BroadcastService
	gateway   gateway.Factory
	sender    service.Sender
	opts      Options
	logger    *zap.Logger

	// states holds the single active flow per user
	stateMux sync.RWMutex
	states   map[int64]*domain.StateData

	// userLocks serializes text-event handling per user
	lockMux   sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// New creates a new handler
func New(bot *tele.Bot, users *service.UserService, admins *service.AdminService,
	broadcast *service.BroadcastService, factory gateway.Factory,
	sender service.Sender, opts Options, logger *zap.Logger) *Handler {
	return &Handler{
		bot:       bot,
		users:     users,
		admins:    admins,
		broadcast: broadcast,
		gateway:   factory,
		sender:    sender,
		opts:      opts,
		logger:    logger,
		states:    make(map[int64]*domain.StateData),
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers sets up all bot command and event handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.HandleStart)
	h.bot.Handle("/help", h.HandleHelp)
	h.bot.Handle("/api", h.HandleAPICommand)
	h.bot.Handle("/menu", h.HandleMenu)
	h.bot.Handle("/status", h.HandleStatus)
	h.bot.Handle("/cancel", h.HandleCancel)
	h.bot.Handle("/admin", h.HandleAdminPanel)
	h.bot.Handle("/grant", h.HandleGrant)
	h.bot.Handle("/revoke", h.HandleRevoke)
	h.bot.Handle("/broadcast", h.HandleBroadcast)

	h.bot.Handle(&btnFBSOrders, h.HandleFBSOrdersButton)
	h.bot.Handle(&btnFBSStatistics, h.HandleFBSStatisticsButton)
	h.bot.Handle(&btnFinance, h.HandleFinanceButton)
	h.bot.Handle(&btnInvoices, h.HandleInvoicesButton)
	h.bot.Handle(&btnProducts, h.HandleProductsButton)
	h.bot.Handle(&btnShops, h.HandleShopsButton)
	h.bot.Handle(&btnSettings, h.HandleSettingsButton)
	h.bot.Handle(&btnHelp, h.HandleHelpButton)
	h.bot.Handle(&btnSupport, h.HandleSupportButton)
	h.bot.Handle(&btnAdminPanel, h.HandleAdminPanel)

	h.bot.Handle(tele.OnText, h.HandleText)
	h.bot.Handle(tele.OnCallback, h.HandleCallback)
}

// state returns the current flow for the user, StateIdle when none
func (h *Handler) state(userID int64) domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()
	if data, ok := h.states[userID]; ok {
		return *data
	}
	return domain.StateData{State: domain.StateIdle}
}

// setState replaces the user's flow slot
func (h *Handler) setState(userID int64, data domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = &data
}

// clearState drops the user's flow slot
func (h *Handler) clearState(userID int64) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	delete(h.states, userID)
}

// userLock returns the per-user mutex, creating it on first use
func (h *Handler) userLock(userID int64) *sync.Mutex {
	h.lockMux.Lock()
	defer h.lockMux.Unlock()
	if lock, ok := h.userLocks[userID]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	h.userLocks[userID] = lock
	return lock
}

// guard runs the shared entry checks: blocked users are stopped with
// the contact notice, everyone else gets their row ensured and
// activity bumped. Returns false when handling must stop.
func (h *Handler) guard(c tele.Context) bool {
	sender := c.Sender()
	if sender == nil {
		return false
	}

	blocked, err := h.users.IsBlocked(sender.ID)
	if err != nil {
		h.logger.Error("check blocked", zap.Int64("user_id", sender.ID), zap.Error(err))
		_ = c.Send(msgError)
		return false
	}
	if blocked {
		_ = c.Send(msgBlocked, contactAdminKeyboard(h.opts.ContactHandle))
		return false
	}

	if err := h.users.EnsureUser(sender.ID, profileOf(sender)); err != nil {
		h.logger.Warn("ensure user", zap.Int64("user_id", sender.ID), zap.Error(err))
	}
	h.users.TouchActivity(sender.ID)
	return true
}

// api resolves the sender's marketplace client. Reports false and
// prompts for a credential when none is stored.
func (h *Handler) api(c tele.Context) (gateway.API, bool) {
	credential, ok, err := h.users.Credential(c.Sender().ID)
	if err != nil {
		h.logger.Error("load credential", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
		_ = c.Send(msgError)
		return nil, false
	}
	if !ok {
		_ = c.Send(msgNoAPI, apiManagementKeyboard())
		return nil, false
	}
	return h.gateway(credential), true
}

// editOrSend edits the callback message, falling back to a fresh send
// when Telegram refuses the edit.
func (h *Handler) editOrSend(c tele.Context, text string, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}
	if err := c.Edit(text, opts...); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		return c.Send(text, opts...)
	}
	return nil
}

func profileOf(sender *tele.User) domain.Profile {
	return domain.Profile{
		Username:  sender.Username,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
	}
}

func (h *Handler) isAdmin(userID int64) bool {
	return h.admins.IsAdmin(userID)
}
