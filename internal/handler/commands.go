package handler

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"marketbot/internal/domain"
)

// HandleStart greets the user and shows the main menu
func (h *Handler) HandleStart(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	h.clearState(c.Sender().ID)

	_, hasCredential, err := h.users.Credential(c.Sender().ID)
	if err != nil {
		h.logger.Error("load credential", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
		return c.Send(msgError)
	}

	if !hasCredential {
		return c.Send(msgWelcome, apiManagementKeyboard())
	}
	return c.Send(msgMainMenu, mainMenuKeyboard(h.isAdmin(c.Sender().ID)))
}

// HandleHelp shows the command reference
func (h *Handler) HandleHelp(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	return c.Send(msgHelp)
}

// HandleAPICommand opens the credential management menu
func (h *Handler) HandleAPICommand(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	return c.Send(msgWelcome, apiManagementKeyboard())
}

// HandleMenu shows the main menu
func (h *Handler) HandleMenu(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	return c.Send(msgMainMenu, mainMenuKeyboard(h.isAdmin(c.Sender().ID)))
}

// HandleStatus probes the stored credential against the marketplace
func (h *Handler) HandleStatus(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}

	api, ok := h.api(c)
	if !ok {
		return nil
	}
	if api.Probe() {
		return c.Send(msgAPIConnected)
	}
	return c.Send(msgAPIDisconnected)
}

// HandleCancel drops any active flow
func (h *Handler) HandleCancel(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	h.clearState(c.Sender().ID)
	return c.Send(msgCancelled)
}

// HandleGrant adds an administrator: /grant <id>
func (h *Handler) HandleGrant(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if !h.isAdmin(c.Sender().ID) {
		return c.Send(msgNotAdmin)
	}

	args := c.Args()
	if len(args) != 1 {
		return c.Send(msgGrantUsage)
	}
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send(msgUserIDInvalid)
	}

	err = h.admins.Grant(domain.Administrator{
		UserID:      targetID,
		Permissions: domain.PermissionsAll,
	})
	if err != nil {
		h.logger.Error("grant admin", zap.Int64("target_id", targetID), zap.Error(err))
		return c.Send(msgError)
	}
	return c.Send(fmt.Sprintf("✅ <code>%d</code> admin qilindi.", targetID))
}

// HandleRevoke removes an administrator: /revoke <id>
func (h *Handler) HandleRevoke(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if !h.isAdmin(c.Sender().ID) {
		return c.Send(msgNotAdmin)
	}

	args := c.Args()
	if len(args) != 1 {
		return c.Send(msgRevokeUsage)
	}
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send(msgUserIDInvalid)
	}

	if err := h.admins.Revoke(targetID); err != nil {
		h.logger.Error("revoke admin", zap.Int64("target_id", targetID), zap.Error(err))
		return c.Send(msgError)
	}
	return c.Send(fmt.Sprintf("✅ <code>%d</code> adminlikdan olindi.", targetID))
}

// HandleBroadcast fans a message out to all users: /broadcast <text>
func (h *Handler) HandleBroadcast(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if !h.isAdmin(c.Sender().ID) {
		return c.Send(msgNotAdmin)
	}

	text := strings.TrimSpace(strings.TrimPrefix(c.Text(), "/broadcast"))
	if text == "" {
		return c.Send(msgBroadcastUsage)
	}

	result, err := h.broadcast.SendToAll(c.Sender().ID, text)
	if err != nil {
		h.logger.Error("broadcast", zap.Int64("admin_id", c.Sender().ID), zap.Error(err))
		return c.Send(msgError)
	}
	return c.Send(fmt.Sprintf(
		"📢 <b>Xabar yuborildi</b>\n\n✅ Muvaffaqiyatli: %d\n❌ Xatolik: %d\n👥 Jami: %d",
		result.Success, result.Failed, result.Total))
}
