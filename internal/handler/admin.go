package handler

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"marketbot/internal/domain"
	"marketbot/internal/format"
)

const (
	adminUserListLimit = 20
	apiUserListLimit   = 50
)

// handleAdminCallback dispatches admin panel presses. Admin rights are
// checked here, not at dispatch, so a revoked admin's stale keyboard
// stops working immediately.
func (h *Handler) handleAdminCallback(c tele.Context, unique string) error {
	if !h.isAdmin(c.Sender().ID) {
		return c.Send(msgNotAdmin)
	}

	switch unique {
	case cbAdminStats:
		return h.showAdminStats(c)
	case cbAdminUsers:
		return h.showAdminUsers(c)
	case cbAdminAPIUsers:
		return h.showAdminAPIUsers(c)
	case cbAdminActivity:
		return h.showAdminActivity(c)
	case cbAdminBlock:
		h.setState(c.Sender().ID, domain.StateData{State: domain.StateAwaitingBlockTarget})
		return h.editOrSend(c, msgBlockPrompt)
	case cbAdminUnblock:
		h.setState(c.Sender().ID, domain.StateData{State: domain.StateAwaitingUnblockTarget})
		return h.editOrSend(c, msgUnblockPrompt)
	case cbAdminList:
		return h.showAdminList(c)
	default:
		return nil
	}
}

func (h *Handler) showAdminStats(c tele.Context) error {
	stats, err := h.users.Stats()
	if err != nil {
		h.logger.Error("load user stats", zap.Error(err))
		return h.editOrSend(c, msgError)
	}
	return h.editOrSend(c, format.Stats(stats), backToMainKeyboard())
}

func (h *Handler) showAdminUsers(c tele.Context) error {
	users, err := h.users.ListUsers(adminUserListLimit, domain.FilterAll)
	if err != nil {
		h.logger.Error("list users", zap.Error(err))
		return h.editOrSend(c, msgError)
	}

	items := make([]string, 0, len(users))
	for _, user := range users {
		items = append(items, format.UserRow(user))
	}
	return h.editOrSend(c, format.List("Foydalanuvchilar", items), backToMainKeyboard())
}

// showAdminAPIUsers lists users who registered a credential
func (h *Handler) showAdminAPIUsers(c tele.Context) error {
	users, err := h.users.ListUsers(apiUserListLimit, domain.FilterWithCredential)
	if err != nil {
		h.logger.Error("list credential users", zap.Error(err))
		return h.editOrSend(c, msgError)
	}

	items := make([]string, 0, len(users))
	for _, user := range users {
		items = append(items, format.UserRow(user))
	}
	return h.editOrSend(c, format.List("API kalitlar", items), backToMainKeyboard())
}

func (h *Handler) showAdminActivity(c tele.Context) error {
	activity, err := h.users.ActivityStats()
	if err != nil {
		h.logger.Error("load activity stats", zap.Error(err))
		return h.editOrSend(c, msgError)
	}
	return h.editOrSend(c, format.Activity(activity), backToMainKeyboard())
}

func (h *Handler) showAdminList(c tele.Context) error {
	admins, err := h.admins.List()
	if err != nil {
		h.logger.Error("list admins", zap.Error(err))
		return h.editOrSend(c, msgError)
	}

	var b strings.Builder
	b.WriteString("👮 <b>Adminlar</b>\n\n")
	for _, admin := range admins {
		fmt.Fprintf(&b, "🆔 <code>%d</code>", admin.UserID)
		if admin.Username != "" {
			fmt.Fprintf(&b, " (@%s)", format.EscapeHTML(admin.Username))
		}
		b.WriteString("\n")
	}
	if len(admins) == 0 {
		b.WriteString(msgNoData)
	}
	return h.editOrSend(c, b.String(), backToMainKeyboard())
}
