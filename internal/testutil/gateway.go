package testutil

import (
	"marketbot/internal/domain"
	"marketbot/internal/gateway"
)

// FakeAPI is a canned gateway.API implementation. Fields hold the
// responses; Calls counts invocations per method name.
type FakeAPI struct {
	ProbeOK bool

	ShopList     []domain.Shop
	OrderPage    *domain.OrderPage
	OrderCount   int
	OrderByID    *domain.Order
	Reasons      []domain.ReturnReason
	Stocks       []domain.SkuStock
	ProductPage  *domain.ProductPage
	Payments     []domain.Payment
	FinanceItems []domain.FinanceOrderItem
	PaymentData  *domain.PaymentInfo
	Commission   *domain.CommissionInfo
	InvoiceList  []domain.Invoice
	ReturnList   []domain.InvoiceReturn

	ActionOK bool

	Calls map[string]int
}

// NewFakeAPI returns a FakeAPI that accepts all actions
func NewFakeAPI() *FakeAPI {
	return &FakeAPI{ProbeOK: true, ActionOK: true, Calls: make(map[string]int)}
}

// Factory returns a gateway.Factory handing out this fake, recording
// the credential each build was given.
func (f *FakeAPI) Factory() (gateway.Factory, *[]string) {
	credentials := &[]string{}
	return func(credential string) gateway.API {
		*credentials = append(*credentials, credential)
		return f
	}, credentials
}

func (f *FakeAPI) count(method string) {
	if f.Calls == nil {
		f.Calls = make(map[string]int)
	}
	f.Calls[method]++
}

func (f *FakeAPI) Probe() bool {
	f.count("Probe")
	return f.ProbeOK
}

func (f *FakeAPI) Shops() []domain.Shop {
	f.count("Shops")
	return f.ShopList
}

func (f *FakeAPI) OrdersV2(q gateway.OrderQuery) *domain.OrderPage {
	f.count("OrdersV2")
	return f.OrderPage
}

func (f *FakeAPI) OrdersCount(q gateway.OrderQuery) (int, bool) {
	f.count("OrdersCount")
	return f.OrderCount, f.ActionOK
}

func (f *FakeAPI) Order(orderID int64) *domain.Order {
	f.count("Order")
	return f.OrderByID
}

func (f *FakeAPI) ConfirmOrder(orderID int64) bool {
	f.count("ConfirmOrder")
	return f.ActionOK
}

func (f *FakeAPI) CancelOrder(orderID, reasonID int64) bool {
	f.count("CancelOrder")
	return f.ActionOK
}

func (f *FakeAPI) ReturnReasons() []domain.ReturnReason {
	f.count("ReturnReasons")
	return f.Reasons
}

func (f *FakeAPI) SkuStocks() []domain.SkuStock {
	f.count("SkuStocks")
	return f.Stocks
}

func (f *FakeAPI) UpdateSkuStocks(updates []domain.StockUpdate) bool {
	f.count("UpdateSkuStocks")
	return f.ActionOK
}

func (f *FakeAPI) SearchProducts(q gateway.ProductQuery) *domain.ProductPage {
	f.count("SearchProducts")
	return f.ProductPage
}

func (f *FakeAPI) UpdateProductPrice(shopID int64, update domain.PriceUpdate) bool {
	f.count("UpdateProductPrice")
	return f.ActionOK
}

func (f *FakeAPI) FinanceExpenses(q gateway.FinanceQuery) []domain.Payment {
	f.count("FinanceExpenses")
	return f.Payments
}

func (f *FakeAPI) FinanceOrders(q gateway.FinanceQuery) []domain.FinanceOrderItem {
	f.count("FinanceOrders")
	return f.FinanceItems
}

func (f *FakeAPI) SellerPaymentInfo() *domain.PaymentInfo {
	f.count("SellerPaymentInfo")
	return f.PaymentData
}

func (f *FakeAPI) CommissionInfo() *domain.CommissionInfo {
	f.count("CommissionInfo")
	return f.Commission
}

func (f *FakeAPI) Invoices(page, size int) []domain.Invoice {
	f.count("Invoices")
	return f.InvoiceList
}

func (f *FakeAPI) InvoiceReturns(returnID int64, page, size int) []domain.InvoiceReturn {
	f.count("InvoiceReturns")
	return f.ReturnList
}

func (f *FakeAPI) ShopInvoices(shopID int64, page, size int) []domain.Invoice {
	f.count("ShopInvoices")
	return f.InvoiceList
}

func (f *FakeAPI) ShopReturns(shopID int64, page, size int) []domain.InvoiceReturn {
	f.count("ShopReturns")
	return f.ReturnList
}
