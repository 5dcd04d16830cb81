package handler

import (
	"fmt"
	"sort"
	"strings"

	tele "gopkg.in/telebot.v3"

	"marketbot/internal/domain"
	"marketbot/internal/format"
	"marketbot/internal/gateway"
)

// FBS statistics callbacks. Each aggregates live marketplace data,
// nothing is cached.

func (h *Handler) showShopStatistics(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	shops := api.Shops()
	if shops == nil {
		return h.editOrSend(c, msgError)
	}
	if len(shops) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	var b strings.Builder
	b.WriteString("📈 <b>Do'kon bo'yicha statistika</b>\n\n")
	for _, shop := range shops {
		count, ok := api.OrdersCount(gateway.OrderQuery{ShopID: shop.ID, Status: "CREATED"})
		if !ok {
			fmt.Fprintf(&b, "🏪 %s: ma'lumot yo'q\n", format.EscapeHTML(shop.Name))
			continue
		}
		fmt.Fprintf(&b, "🏪 %s: %d ta yangi buyurtma\n", format.EscapeHTML(shop.Name), count)
	}
	return h.editOrSend(c, b.String(), backToMainKeyboard())
}

func (h *Handler) showStatusStatistics(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	statuses := []string{"CREATED", "PACKING", "DELIVERING", "DELIVERED", "COMPLETED", "CANCELED"}

	var b strings.Builder
	b.WriteString("🔄 <b>Status bo'yicha statistika</b>\n\n")
	any := false
	for _, status := range statuses {
		count, ok := api.OrdersCount(gateway.OrderQuery{Status: status})
		if !ok {
			continue
		}
		any = true
		fmt.Fprintf(&b, "%s: %d ta\n", format.OrderStatus(status), count)
	}
	if !any {
		return h.editOrSend(c, msgError)
	}
	return h.editOrSend(c, b.String(), backToMainKeyboard())
}

func (h *Handler) showStockStatistics(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	stocks := api.SkuStocks()
	if stocks == nil {
		return h.editOrSend(c, msgError)
	}

	var available, reserved int
	for _, stock := range stocks {
		available += stock.Available
		reserved += stock.Reserved
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"📦 <b>Qoldiq statistikasi</b>\n\n🏷 SKU soni: %d ta\n📊 Mavjud: %d dona\n🔒 Band: %d dona\n",
		len(stocks), available, reserved)

	top := make([]domain.SkuStock, len(stocks))
	copy(top, stocks)
	sort.Slice(top, func(i, j int) bool { return top[i].Available > top[j].Available })
	if len(top) > 5 {
		top = top[:5]
	}
	if len(top) > 0 {
		b.WriteString("\n📊 Top 5 SKU lar:\n")
		for i, stock := range top {
			fmt.Fprintf(&b, "%d. %s: %d dona\n", i+1, format.EscapeHTML(stock.Sku), stock.Available)
		}
	}
	return h.editOrSend(c, b.String(), backToMainKeyboard())
}

func (h *Handler) showFinanceStatistics(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	payment := api.SellerPaymentInfo()
	commission := api.CommissionInfo()
	if payment == nil && commission == nil {
		return h.editOrSend(c, msgError)
	}

	var b strings.Builder
	b.WriteString("💰 <b>Moliyaviy statistika</b>\n\n")
	if payment != nil {
		fmt.Fprintf(&b, "💳 Balans: %s\n", format.Currency(payment.Balance))
		fmt.Fprintf(&b, "⏳ Kutilayotgan: %s\n", format.Currency(payment.Pending))
	}
	if commission != nil {
		fmt.Fprintf(&b, "💸 Jami komissiya: %s\n", format.Currency(commission.Total))
		fmt.Fprintf(&b, "📊 Stavka: %.1f%%\n", commission.Rate)
	}
	return h.editOrSend(c, b.String(), backToMainKeyboard())
}
