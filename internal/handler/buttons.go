package handler

import (
	tele "gopkg.in/telebot.v3"
)

// Reply-keyboard section handlers. Each opens the matching inline menu.

func (h *Handler) HandleFBSOrdersButton(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if _, ok := h.api(c); !ok {
		return nil
	}
	return c.Send("📦 <b>FBS Buyurtmalar</b>\n\nKerakli amalni tanlang:", fbsMenuKeyboard())
}

func (h *Handler) HandleFBSStatisticsButton(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if _, ok := h.api(c); !ok {
		return nil
	}
	return c.Send("📊 <b>FBS Statistika</b>\n\nKerakli bo'limni tanlang:", fbsStatisticsKeyboard())
}

func (h *Handler) HandleFinanceButton(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if _, ok := h.api(c); !ok {
		return nil
	}
	return c.Send("💰 <b>Moliyaviy hisobot</b>\n\nKerakli bo'limni tanlang:", financeMenuKeyboard())
}

func (h *Handler) HandleInvoicesButton(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if _, ok := h.api(c); !ok {
		return nil
	}
	return c.Send("💳 <b>Hisob-fakturalar</b>\n\nKerakli bo'limni tanlang:", invoiceMenuKeyboard())
}

func (h *Handler) HandleProductsButton(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if _, ok := h.api(c); !ok {
		return nil
	}
	return c.Send("🛍 <b>Mahsulotlar</b>\n\nKerakli amalni tanlang:", productMenuKeyboard())
}

func (h *Handler) HandleShopsButton(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if _, ok := h.api(c); !ok {
		return nil
	}
	return c.Send("🏪 <b>Do'konlarim</b>", shopMenuKeyboard())
}

func (h *Handler) HandleSettingsButton(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	return c.Send("⚙️ <b>Sozlamalar</b>", settingsKeyboard())
}

func (h *Handler) HandleHelpButton(c tele.Context) error {
	return h.HandleHelp(c)
}

func (h *Handler) HandleSupportButton(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	return c.Send("👥 <b>Qo'llab quvvatlash guruhi</b>\n\n" + h.opts.SupportGroup)
}

// HandleAdminPanel opens the admin panel for administrators
func (h *Handler) HandleAdminPanel(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	if !h.isAdmin(c.Sender().ID) {
		return c.Send(msgNotAdmin)
	}
	return c.Send("🔐 <b>Admin Panel</b>\n\nKerakli amalni tanlang:", adminPanelKeyboard())
}
