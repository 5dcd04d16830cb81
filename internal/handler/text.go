package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"marketbot/internal/domain"
	"marketbot/internal/format"
	"marketbot/internal/gateway"
	"marketbot/internal/service"
)

// HandleText consumes free text according to the sender's active flow.
// The per-user lock keeps the read-then-act on the state slot atomic
// when updates arrive concurrently.
func (h *Handler) HandleText(c tele.Context) error {
	if strings.HasPrefix(c.Text(), "/") {
		return nil
	}
	if !h.guard(c) {
		return nil
	}

	userID := c.Sender().ID
	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	data := h.state(userID)
	switch data.State {
	case domain.StateAwaitingCredential:
		return h.consumeCredential(c)
	case domain.StateAwaitingSearchTerm:
		return h.consumeSearchTerm(c, data.ShopID)
	case domain.StateAwaitingPriceUpdate:
		return h.consumePriceUpdate(c, data.ShopID)
	case domain.StateAwaitingBlockTarget:
		return h.consumeBlockTarget(c, true)
	case domain.StateAwaitingUnblockTarget:
		return h.consumeBlockTarget(c, false)
	default:
		return nil
	}
}

// consumeCredential validates and stores a submitted credential. The
// flow is single shot: any failure clears it, the user starts over
// from the menu.
func (h *Handler) consumeCredential(c tele.Context) error {
	userID := c.Sender().ID
	h.clearState(userID)

	_ = c.Send(msgAPITesting)

	err := h.users.RegisterCredential(userID, c.Text(), profileOf(c.Sender()))
	switch {
	case err == nil:
		return c.Send(msgAPISaved, mainMenuKeyboard(h.isAdmin(userID)))
	case errors.Is(err, service.ErrCredentialFormat), errors.Is(err, service.ErrCredentialRejected):
		return c.Send(msgAPIInvalid)
	default:
		h.logger.Error("register credential", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgError)
	}
}

// consumeSearchTerm runs a catalog search scoped to the shop captured
// when the flow started.
func (h *Handler) consumeSearchTerm(c tele.Context, shopID int64) error {
	userID := c.Sender().ID
	h.clearState(userID)

	api, ok := h.api(c)
	if !ok {
		return nil
	}

	page := api.SearchProducts(gateway.ProductQuery{
		ShopID:      shopID,
		SearchQuery: strings.TrimSpace(c.Text()),
		Size:        10,
	})
	if page == nil {
		return c.Send(msgError)
	}
	if len(page.Products) == 0 {
		return c.Send(msgNoData)
	}

	items := make([]string, 0, len(page.Products))
	for _, product := range page.Products {
		items = append(items, format.Product(product))
	}
	text := format.List(fmt.Sprintf("Qidiruv natijalari (%d ta)", page.Total), items)
	return c.Send(text, backToMainKeyboard())
}

// consumePriceUpdate parses "SKU:PRICE" and pushes the new price. Bad
// input re-prompts without dropping the flow, the shop scope must not
// be lost to a typo.
func (h *Handler) consumePriceUpdate(c tele.Context, shopID int64) error {
	userID := c.Sender().ID

	skuID, price, ok := parsePriceInput(c.Text())
	if !ok {
		return c.Send(msgPriceFormat)
	}
	h.clearState(userID)

	api, apiOK := h.api(c)
	if !apiOK {
		return nil
	}

	updated := api.UpdateProductPrice(shopID, domain.PriceUpdate{
		SkuID:     skuID,
		FullPrice: price,
		SellPrice: price,
	})
	if !updated {
		return c.Send(msgPriceRejected)
	}
	return c.Send(msgPriceUpdated, backToMainKeyboard())
}

// parsePriceInput splits "SKU:PRICE" into its parts. Both must be
// positive integers.
func parsePriceInput(text string) (skuID, price int64, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(text), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	skuID, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil || skuID <= 0 {
		return 0, 0, false
	}
	price, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil || price <= 0 {
		return 0, 0, false
	}
	return skuID, price, true
}

// consumeBlockTarget handles the block and unblock flows. Admin rights
// are re-verified at consumption, a revoke between prompt and answer
// must win.
func (h *Handler) consumeBlockTarget(c tele.Context, block bool) error {
	userID := c.Sender().ID
	h.clearState(userID)

	if !h.isAdmin(userID) {
		return nil
	}

	targetID, err := strconv.ParseInt(strings.TrimSpace(c.Text()), 10, 64)
	if err != nil {
		return c.Send(msgUserIDInvalid)
	}

	if block {
		if err := h.users.Block(targetID); err != nil {
			h.logger.Error("block user", zap.Int64("target_id", targetID), zap.Error(err))
			return c.Send(msgError)
		}
		// Best effort, the target may have stopped the bot
		notice := msgBlocked + "\n\nhttps://t.me/" + h.opts.ContactHandle
		if err := h.sender.Send(targetID, notice); err != nil {
			h.logger.Warn("notify blocked user", zap.Int64("target_id", targetID), zap.Error(err))
		}
		return c.Send(fmt.Sprintf("🚫 <code>%d</code> bloklandi.", targetID))
	}

	if err := h.users.Unblock(targetID); err != nil {
		h.logger.Error("unblock user", zap.Int64("target_id", targetID), zap.Error(err))
		return c.Send(msgError)
	}
	return c.Send(fmt.Sprintf("✅ <code>%d</code> blokdan chiqarildi.", targetID))
}
