package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketbot/internal/domain"
)

const requestTimeout = 10 * time.Second

// API is the seller-side surface of the marketplace. Listing methods
// return nil on any failure; action methods report success with a bool.
// Failures are logged with a request id, callers only branch on the
// result.
type API interface {
	Probe() bool

	Shops() []domain.Shop

	OrdersV2(q OrderQuery) *domain.OrderPage
	OrdersCount(q OrderQuery) (int, bool)
	Order(orderID int64) *domain.Order
	ConfirmOrder(orderID int64) bool
	CancelOrder(orderID, reasonID int64) bool
	ReturnReasons() []domain.ReturnReason

	SkuStocks() []domain.SkuStock
	UpdateSkuStocks(updates []domain.StockUpdate) bool

	SearchProducts(q ProductQuery) *domain.ProductPage
	UpdateProductPrice(shopID int64, update domain.PriceUpdate) bool

	FinanceExpenses(q FinanceQuery) []domain.Payment
	FinanceOrders(q FinanceQuery) []domain.FinanceOrderItem
	SellerPaymentInfo() *domain.PaymentInfo
	CommissionInfo() *domain.CommissionInfo

	Invoices(page, size int) []domain.Invoice
	InvoiceReturns(returnID int64, page, size int) []domain.InvoiceReturn
	ShopInvoices(shopID int64, page, size int) []domain.Invoice
	ShopReturns(shopID int64, page, size int) []domain.InvoiceReturn
}

// Factory builds an API client bound to one user's credential
type Factory func(credential string) API

// NewFactory returns a Factory sharing one base URL and logger
func NewFactory(baseURL string, logger *zap.Logger) Factory {
	return func(credential string) API {
		return NewClient(baseURL, credential, logger)
	}
}

// Client talks to the marketplace seller API over HTTP
type Client struct {
	baseURL    string
	credential string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client authenticated with the given credential
func NewClient(baseURL, credential string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		credential: credential,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// do performs one request and decodes a 200 response into out (when
// out is non-nil). Every failure is logged with a correlation id.
func (c *Client) do(method, path string, query url.Values, body, out any) bool {
	requestID := uuid.NewString()

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			c.logger.Warn("marshal request body",
				zap.String("request_id", requestID),
				zap.String("path", path),
				zap.Error(err))
			return false
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, endpoint, reqBody)
	if err != nil {
		c.logger.Warn("build request",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.Error(err))
		return false
	}
	req.Header.Set("Authorization", c.credential)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("marketplace request failed",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("marketplace request rejected",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return false
	}

	if out == nil {
		return true
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("decode marketplace response",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.Error(err))
		return false
	}
	return true
}

func (c *Client) get(path string, query url.Values, out any) bool {
	return c.do(http.MethodGet, path, query, nil, out)
}

func (c *Client) post(path string, body, out any) bool {
	return c.do(http.MethodPost, path, nil, body, out)
}

// Probe checks that the credential is accepted by the marketplace
func (c *Client) Probe() bool {
	return c.get("/v2/fbs/sku/stocks", nil, nil)
}

func (c *Client) Shops() []domain.Shop {
	var shops []domain.Shop
	if !c.get("/v1/shops", nil, &shops) {
		return nil
	}
	return shops
}

func (q OrderQuery) values() url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		params.Set("size", strconv.Itoa(q.Size))
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.ShopID != 0 {
		params.Set("shopIds", strconv.FormatInt(q.ShopID, 10))
	}
	if q.DateFrom != 0 {
		params.Set("dateFrom", strconv.FormatInt(q.DateFrom, 10))
	}
	if q.DateTo != 0 {
		params.Set("dateTo", strconv.FormatInt(q.DateTo, 10))
	}
	return params
}

func (c *Client) OrdersV2(q OrderQuery) *domain.OrderPage {
	var env payloadEnvelope[ordersPayload]
	if !c.get("/v2/fbs/orders", q.values(), &env) {
		return nil
	}
	return &domain.OrderPage{
		Orders: env.Payload.Orders,
		Total:  env.Payload.TotalElements,
	}
}

func (c *Client) OrdersCount(q OrderQuery) (int, bool) {
	params := q.values()
	params.Del("page")
	params.Del("size")

	var env payloadEnvelope[int]
	if !c.get("/v2/fbs/orders/count", params, &env) {
		return 0, false
	}
	return env.Payload, true
}

func (c *Client) Order(orderID int64) *domain.Order {
	var order domain.Order
	if !c.get(fmt.Sprintf("/v1/fbs/order/%d", orderID), nil, &order) {
		return nil
	}
	return &order
}

func (c *Client) ConfirmOrder(orderID int64) bool {
	return c.post(fmt.Sprintf("/v1/fbs/order/%d/confirm", orderID), nil, nil)
}

func (c *Client) CancelOrder(orderID, reasonID int64) bool {
	return c.post(fmt.Sprintf("/v1/fbs/order/%d/cancel", orderID), cancelRequest{ReasonID: reasonID}, nil)
}

func (c *Client) ReturnReasons() []domain.ReturnReason {
	var reasons []domain.ReturnReason
	if !c.get("/v1/fbs/order/return-reasons", nil, &reasons) {
		return nil
	}
	return reasons
}

func (c *Client) SkuStocks() []domain.SkuStock {
	var env dataEnvelope[[]domain.SkuStock]
	if !c.get("/v2/fbs/sku/stocks", nil, &env) {
		return nil
	}
	return env.Data
}

func (c *Client) UpdateSkuStocks(updates []domain.StockUpdate) bool {
	return c.post("/v2/fbs/sku/stocks", updates, nil)
}

func (c *Client) SearchProducts(q ProductQuery) *domain.ProductPage {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "DEFAULT"
	}
	order := q.Order
	if order == "" {
		order = "ASC"
	}
	filter := q.Filter
	if filter == "" {
		filter = "ALL"
	}
	params.Set("sortBy", sortBy)
	params.Set("order", order)
	params.Set("filter", filter)
	if q.SearchQuery != "" {
		params.Set("searchQuery", q.SearchQuery)
	}

	var resp productsResponse
	if !c.get(fmt.Sprintf("/v1/product/shop/%d", q.ShopID), params, &resp) {
		return nil
	}
	return &domain.ProductPage{
		Products: resp.ProductList,
		Total:    resp.TotalProductsAmount,
	}
}

func (c *Client) UpdateProductPrice(shopID int64, update domain.PriceUpdate) bool {
	body := priceDataRequest{SkuList: []domain.PriceUpdate{update}}
	return c.post(fmt.Sprintf("/v1/product/%d/sendPriceData", shopID), body, nil)
}

func (q FinanceQuery) values() url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	if q.ShopID != 0 {
		params.Set("shopIds", strconv.FormatInt(q.ShopID, 10))
	}
	if q.DateFrom != 0 {
		params.Set("dateFrom", strconv.FormatInt(q.DateFrom, 10))
	}
	if q.DateTo != 0 {
		params.Set("dateTo", strconv.FormatInt(q.DateTo, 10))
	}
	return params
}

func (c *Client) FinanceExpenses(q FinanceQuery) []domain.Payment {
	params := q.values()
	for _, source := range q.Sources {
		params.Add("sources", source)
	}

	var env payloadEnvelope[expensesPayload]
	if !c.get("/v1/finance/expenses", params, &env) {
		return nil
	}
	return env.Payload.Payments
}

func (c *Client) FinanceOrders(q FinanceQuery) []domain.FinanceOrderItem {
	params := q.values()
	params.Set("group", strconv.FormatBool(q.Group))
	for _, status := range q.Statuses {
		params.Add("statuses", status)
	}

	var env payloadEnvelope[financeOrdersPayload]
	if !c.get("/v1/finance/orders", params, &env) {
		return nil
	}
	return env.Payload.OrderItems
}

func (c *Client) SellerPaymentInfo() *domain.PaymentInfo {
	var env dataEnvelope[domain.PaymentInfo]
	if !c.get("/v1/finance/seller-payment-info", nil, &env) {
		return nil
	}
	return &env.Data
}

func (c *Client) CommissionInfo() *domain.CommissionInfo {
	var env dataEnvelope[domain.CommissionInfo]
	if !c.get("/v1/finance/commission-info", nil, &env) {
		return nil
	}
	return &env.Data
}

// clampPageSize keeps the size inside the marketplace limit
func clampPageSize(size int) int {
	const maxSize = 50
	if size <= 0 || size > maxSize {
		return maxSize
	}
	return size
}

func (c *Client) Invoices(page, size int) []domain.Invoice {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(clampPageSize(size)))

	var invoices []domain.Invoice
	if !c.get("/v1/invoice", params, &invoices) {
		return nil
	}
	return invoices
}

func (c *Client) InvoiceReturns(returnID int64, page, size int) []domain.InvoiceReturn {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(clampPageSize(size)))
	if returnID != 0 {
		params.Set("returnId", strconv.FormatInt(returnID, 10))
	}

	var returns []domain.InvoiceReturn
	if !c.get("/v1/return", params, &returns) {
		return nil
	}
	return returns
}

func (c *Client) ShopInvoices(shopID int64, page, size int) []domain.Invoice {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var env payloadEnvelope[[]domain.Invoice]
	if !c.get(fmt.Sprintf("/v1/shop/%d/invoice", shopID), params, &env) {
		return nil
	}
	return env.Payload
}

func (c *Client) ShopReturns(shopID int64, page, size int) []domain.InvoiceReturn {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var env payloadEnvelope[[]domain.InvoiceReturn]
	if !c.get(fmt.Sprintf("/v1/shop/%d/return", shopID), params, &env) {
		return nil
	}
	return env.Payload
}
