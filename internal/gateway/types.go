package gateway

import "marketbot/internal/domain"

// OrderQuery narrows the orders listing. Zero fields are omitted from
// the request. DateFrom and DateTo are epoch milliseconds.
type OrderQuery struct {
	ShopID   int64
	Status   string
	DateFrom int64
	DateTo   int64
	Page     int
	Size     int
}

// ProductQuery narrows a catalog search within one shop
type ProductQuery struct {
	ShopID      int64
	SearchQuery string
	Filter      string
	SortBy      string
	Order       string
	Page        int
	Size        int
}

// FinanceQuery narrows finance listings. DateFrom and DateTo are epoch
// milliseconds. Sources applies to expenses only; Group and Statuses
// apply to finance orders only.
type FinanceQuery struct {
	ShopID   int64
	DateFrom int64
	DateTo   int64
	Page     int
	Size     int
	Sources  []string
	Group    bool
	Statuses []string
}

// Remote response envelopes. The marketplace wraps list payloads in
// either a "data" or a "payload" member depending on the endpoint.

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type payloadEnvelope[T any] struct {
	Payload T `json:"payload"`
}

type ordersPayload struct {
	Orders        []domain.Order `json:"orders"`
	TotalElements int            `json:"totalElements"`
}

type productsResponse struct {
	ProductList         []domain.Product `json:"productList"`
	TotalProductsAmount int              `json:"totalProductsAmount"`
}

type expensesPayload struct {
	Payments []domain.Payment `json:"payments"`
}

type financeOrdersPayload struct {
	OrderItems []domain.FinanceOrderItem `json:"orderItems"`
}

type priceDataRequest struct {
	SkuList []domain.PriceUpdate `json:"skuList"`
}

type cancelRequest struct {
	ReasonID int64 `json:"reasonId,omitempty"`
}
