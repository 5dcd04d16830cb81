package handler

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"marketbot/internal/domain"
	"marketbot/internal/format"
	"marketbot/internal/gateway"
)

const listPageSize = 10

// HandleCallback dispatches inline keyboard presses
func (h *Handler) HandleCallback(c tele.Context) error {
	if !h.guard(c) {
		return nil
	}
	defer func() { _ = c.Respond(&tele.CallbackResponse{}) }()

	unique, payload := splitCallbackData(c.Callback().Data)

	if strings.HasPrefix(unique, "admin_") {
		return h.handleAdminCallback(c, unique)
	}

	switch unique {
	case cbMainMenu:
		return h.editOrSend(c, msgMainMenu)
	case cbAddAPI, cbChangeAPI:
		h.setState(c.Sender().ID, domain.StateData{State: domain.StateAwaitingCredential})
		return h.editOrSend(c, msgAPIPrompt)
	case cbDeleteAPI:
		return h.editOrSend(c, msgDeleteConfirm, deleteConfirmKeyboard())
	case cbConfirmDeleteAPI:
		return h.deleteCredential(c)
	case cbCheckAPI:
		return h.checkCredential(c)
	case cbFBSOrders:
		return h.showOrders(c)
	case cbFBSOrdersCount:
		return h.showOrdersCount(c)
	case cbFBSStocks:
		return h.showStocks(c)
	case cbFBSReturnReasons:
		return h.showReturnReasons(c)
	case cbFBSOrderDetails:
		return h.showOrderDetails(c)
	case cbFBSShopStats:
		return h.showShopStatistics(c)
	case cbFBSStatusStats:
		return h.showStatusStatistics(c)
	case cbFBSStockStats:
		return h.showStockStatistics(c)
	case cbFBSFinanceStats:
		return h.showFinanceStatistics(c)
	case cbFinanceExpenses:
		return h.showExpenses(c)
	case cbFinanceOrders:
		return h.showFinanceOrders(c)
	case cbFinancePaymentInfo:
		return h.showPaymentInfo(c)
	case cbFinanceCommission:
		return h.showCommission(c)
	case cbInvoices:
		return h.showInvoices(c)
	case cbInvoiceReturns:
		return h.showInvoiceReturns(c)
	case cbShopInvoices:
		return h.showShopInvoices(c)
	case cbShopReturns:
		return h.showShopReturns(c)
	case cbProductSearch:
		return h.startProductSearch(c)
	case cbProductPrice:
		return h.startPriceUpdate(c)
	case cbShopsList:
		return h.showShops(c)
	case cbOrderConfirm:
		return h.confirmOrder(c, payload)
	case cbOrderCancel:
		return h.cancelOrder(c, payload)
	default:
		return nil
	}
}

// splitCallbackData strips the telebot framing and separates the
// unique from its payload.
func splitCallbackData(data string) (unique, payload string) {
	data = strings.TrimPrefix(data, "\f")
	if idx := strings.Index(data, "|"); idx >= 0 {
		return data[:idx], data[idx+1:]
	}
	return data, ""
}

func (h *Handler) deleteCredential(c tele.Context) error {
	if err := h.users.ClearCredential(c.Sender().ID); err != nil {
		return h.editOrSend(c, msgError)
	}
	return h.editOrSend(c, msgAPIDeleted)
}

func (h *Handler) checkCredential(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}
	if api.Probe() {
		return h.editOrSend(c, msgAPIConnected)
	}
	return h.editOrSend(c, msgAPIDisconnected)
}

func (h *Handler) showOrders(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	page := api.OrdersV2(gateway.OrderQuery{Status: "CREATED", Size: listPageSize})
	if page == nil {
		return h.editOrSend(c, msgError)
	}
	if len(page.Orders) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	items := make([]string, 0, len(page.Orders))
	for _, order := range page.Orders {
		items = append(items, format.Order(order))
	}
	text := format.List(fmt.Sprintf("Yangi buyurtmalar (%d ta)", page.Total), items)
	return h.editOrSend(c, text, backToMainKeyboard())
}

func (h *Handler) showOrdersCount(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	count, ok := api.OrdersCount(gateway.OrderQuery{Status: "CREATED"})
	if !ok {
		return h.editOrSend(c, msgError)
	}
	return h.editOrSend(c,
		fmt.Sprintf("📈 <b>Yangi buyurtmalar soni:</b> %d ta", count),
		backToMainKeyboard())
}

func (h *Handler) showStocks(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	stocks := api.SkuStocks()
	if stocks == nil {
		return h.editOrSend(c, msgError)
	}
	if len(stocks) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	items := make([]string, 0, len(stocks))
	for _, stock := range stocks {
		items = append(items, format.SkuStock(stock))
	}
	return h.editOrSend(c, format.List("FBS Qoldiqlar", items), backToMainKeyboard())
}

func (h *Handler) showReturnReasons(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	reasons := api.ReturnReasons()
	if reasons == nil {
		return h.editOrSend(c, msgError)
	}

	items := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		items = append(items, fmt.Sprintf("<code>%d</code> %s", reason.ID, format.EscapeHTML(reason.Name)))
	}
	return h.editOrSend(c, format.List("Qaytarish sabablari", items), backToMainKeyboard())
}

// showOrderDetails renders the newest orders with per-order actions
func (h *Handler) showOrderDetails(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	page := api.OrdersV2(gateway.OrderQuery{Status: "CREATED", Size: 1})
	if page == nil {
		return h.editOrSend(c, msgError)
	}
	if len(page.Orders) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	order := page.Orders[0]
	if detail := api.Order(order.ID); detail != nil {
		order = *detail
	}
	return h.editOrSend(c, format.Order(order),
		orderActionKeyboard(strconv.FormatInt(order.ID, 10)))
}

func (h *Handler) confirmOrder(c tele.Context, payload string) error {
	orderID, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return h.editOrSend(c, msgError)
	}

	api, ok := h.api(c)
	if !ok {
		return nil
	}
	if !api.ConfirmOrder(orderID) {
		return h.editOrSend(c, msgError)
	}
	return h.editOrSend(c,
		fmt.Sprintf("✅ Buyurtma #%d tasdiqlandi.", orderID), backToMainKeyboard())
}

// cancelOrder cancels with the first available return reason
func (h *Handler) cancelOrder(c tele.Context, payload string) error {
	orderID, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return h.editOrSend(c, msgError)
	}

	api, ok := h.api(c)
	if !ok {
		return nil
	}

	reasons := api.ReturnReasons()
	if len(reasons) == 0 {
		return h.editOrSend(c, msgError)
	}
	if !api.CancelOrder(orderID, reasons[0].ID) {
		return h.editOrSend(c, msgError)
	}
	return h.editOrSend(c,
		fmt.Sprintf("❌ Buyurtma #%d bekor qilindi.", orderID), backToMainKeyboard())
}

func (h *Handler) showExpenses(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	payments := api.FinanceExpenses(gateway.FinanceQuery{Size: listPageSize})
	if payments == nil {
		return h.editOrSend(c, msgError)
	}
	if len(payments) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	items := make([]string, 0, len(payments))
	for _, payment := range payments {
		items = append(items, format.Payment(payment))
	}
	return h.editOrSend(c, format.List("Moliyaviy xarajatlar", items), backToMainKeyboard())
}

func (h *Handler) showFinanceOrders(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	orders := api.FinanceOrders(gateway.FinanceQuery{Size: listPageSize})
	if orders == nil {
		return h.editOrSend(c, msgError)
	}
	if len(orders) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	items := make([]string, 0, len(orders))
	for _, order := range orders {
		items = append(items, format.FinanceOrder(order))
	}
	return h.editOrSend(c, format.List("Moliyaviy buyurtmalar", items), backToMainKeyboard())
}

func (h *Handler) showPaymentInfo(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	info := api.SellerPaymentInfo()
	if info == nil {
		return h.editOrSend(c, msgError)
	}
	return h.editOrSend(c, format.PaymentInfo(*info), backToMainKeyboard())
}

func (h *Handler) showCommission(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	info := api.CommissionInfo()
	if info == nil {
		return h.editOrSend(c, msgError)
	}
	return h.editOrSend(c, format.CommissionInfo(*info), backToMainKeyboard())
}

func (h *Handler) showInvoices(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	invoices := api.Invoices(0, listPageSize)
	if invoices == nil {
		return h.editOrSend(c, msgError)
	}
	if len(invoices) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	items := make([]string, 0, len(invoices))
	for _, invoice := range invoices {
		items = append(items, format.Invoice(invoice))
	}
	return h.editOrSend(c, format.List("Hisob-fakturalar", items), backToMainKeyboard())
}

func (h *Handler) showInvoiceReturns(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	returns := api.InvoiceReturns(0, 0, listPageSize)
	if returns == nil {
		return h.editOrSend(c, msgError)
	}
	if len(returns) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	items := make([]string, 0, len(returns))
	for _, ret := range returns {
		items = append(items, format.InvoiceReturn(ret))
	}
	return h.editOrSend(c, format.List("Qaytarishlar", items), backToMainKeyboard())
}

// firstShop resolves the seller's first shop, the scope for shop-bound
// lookups started from the inline menus.
func (h *Handler) firstShop(c tele.Context, api gateway.API) (domain.Shop, bool) {
	shops := api.Shops()
	if len(shops) == 0 {
		_ = h.editOrSend(c, msgNoData)
		return domain.Shop{}, false
	}
	return shops[0], true
}

func (h *Handler) showShopInvoices(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}
	shop, ok := h.firstShop(c, api)
	if !ok {
		return nil
	}

	invoices := api.ShopInvoices(shop.ID, 0, listPageSize)
	if invoices == nil {
		return h.editOrSend(c, msgError)
	}
	if len(invoices) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	items := make([]string, 0, len(invoices))
	for _, invoice := range invoices {
		items = append(items, format.Invoice(invoice))
	}
	title := fmt.Sprintf("%s fakturalari", shop.Name)
	return h.editOrSend(c, format.List(title, items), backToMainKeyboard())
}

func (h *Handler) showShopReturns(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}
	shop, ok := h.firstShop(c, api)
	if !ok {
		return nil
	}

	returns := api.ShopReturns(shop.ID, 0, listPageSize)
	if returns == nil {
		return h.editOrSend(c, msgError)
	}
	if len(returns) == 0 {
		return h.editOrSend(c, msgNoData, backToMainKeyboard())
	}

	items := make([]string, 0, len(returns))
	for _, ret := range returns {
		items = append(items, format.InvoiceReturn(ret))
	}
	title := fmt.Sprintf("%s qaytarishlari", shop.Name)
	return h.editOrSend(c, format.List(title, items), backToMainKeyboard())
}

// startProductSearch opens the search flow scoped to the first shop
func (h *Handler) startProductSearch(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}
	shop, ok := h.firstShop(c, api)
	if !ok {
		return nil
	}

	h.setState(c.Sender().ID, domain.StateData{
		State:  domain.StateAwaitingSearchTerm,
		ShopID: shop.ID,
	})
	return h.editOrSend(c, msgSearchPrompt)
}

// startPriceUpdate opens the price flow scoped to the first shop
func (h *Handler) startPriceUpdate(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}
	shop, ok := h.firstShop(c, api)
	if !ok {
		return nil
	}

	h.setState(c.Sender().ID, domain.StateData{
		State:  domain.StateAwaitingPriceUpdate,
		ShopID: shop.ID,
	})
	return h.editOrSend(c, msgPricePrompt)
}

func (h *Handler) showShops(c tele.Context) error {
	api, ok := h.api(c)
	if !ok {
		return nil
	}

	shops := api.Shops()
	if shops == nil {
		return h.editOrSend(c, msgError)
	}

	items := make([]string, 0, len(shops))
	for _, shop := range shops {
		items = append(items, format.Shop(shop))
	}
	return h.editOrSend(c, format.List("Do'konlarim", items), backToMainKeyboard())
}
