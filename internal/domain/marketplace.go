package domain

// Shop is one seller shop on the marketplace
type Shop struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// OrderItem is one SKU line inside an order
type OrderItem struct {
	SkuTitle string `json:"skuTitle"`
	Amount   int    `json:"amount"`
}

// Order is one FBS order. DateCreated is epoch milliseconds, as the
// marketplace reports it.
type Order struct {
	ID          int64       `json:"id"`
	Status      string      `json:"status"`
	Price       int64       `json:"price"`
	DateCreated int64       `json:"dateCreated"`
	ShopID      int64       `json:"shopId"`
	Scheme      string      `json:"scheme"`
	Items       []OrderItem `json:"orderItems"`
}

// OrderPage is one page of orders with the full result count
type OrderPage struct {
	Orders []Order
	Total  int
}

// ReturnReason is one cancellation reason offered by the marketplace
type ReturnReason struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SkuStock is the FBS stock level for one SKU
type SkuStock struct {
	Sku       string `json:"sku"`
	Available int    `json:"availableAmount"`
	Reserved  int    `json:"reservedAmount"`
}

// StockUpdate sets a new available amount for one SKU
type StockUpdate struct {
	Sku    string `json:"sku"`
	Amount int    `json:"availableAmount"`
}

// ProductSku is one SKU variant of a catalog product
type ProductSku struct {
	SkuID           int64  `json:"skuId"`
	SkuTitle        string `json:"skuTitle"`
	QuantityMissing int    `json:"quantityMissing"`
}

// Product is one catalog entry of a shop
type Product struct {
	ProductID      int64        `json:"productId"`
	Title          string       `json:"title"`
	SkuTitle       string       `json:"skuTitle"`
	Price          int64        `json:"price"`
	QuantityActive int          `json:"quantityActive"`
	QuantityFbs    int          `json:"quantityFbs"`
	Skus           []ProductSku `json:"skus"`
}

// ProductPage is one page of catalog products with the full count
type ProductPage struct {
	Products []Product
	Total    int
}

// PriceUpdate carries new prices for one SKU
type PriceUpdate struct {
	SkuID     int64  `json:"skuId"`
	SkuTitle  string `json:"skuTitle"`
	FullPrice int64  `json:"fullPrice"`
	SellPrice int64  `json:"sellPrice"`
}

// Payment is one expense entry from the finance ledger
type Payment struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PaymentPrice int64  `json:"paymentPrice"`
	Status       string `json:"status"`
	DateCreated  int64  `json:"dateCreated"`
	Source       string `json:"source"`
}

// FinanceOrderItem is one sold item with its commission breakdown
type FinanceOrderItem struct {
	OrderID      int64  `json:"orderId"`
	SkuTitle     string `json:"skuTitle"`
	Amount       int    `json:"amount"`
	SellerPrice  int64  `json:"sellerPrice"`
	Commission   int64  `json:"commission"`
	SellerProfit int64  `json:"sellerProfit"`
	Date         int64  `json:"date"`
}

// Invoice is one supply invoice
type Invoice struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	FullPrice     int64  `json:"fullPrice"`
	DateCreated   int64  `json:"dateCreated"`
	ShopTitle     string `json:"shopTitle"`
}

// InvoiceReturn is one return shipment
type InvoiceReturn struct {
	ID             int64  `json:"id"`
	ExternalNumber string `json:"externalNumber"`
	Status         string `json:"status"`
	Type           string `json:"type"`
	DateCreated    int64  `json:"dateCreated"`
}

// PaymentInfo is the seller balance summary
type PaymentInfo struct {
	Balance       int64  `json:"balance"`
	Pending       int64  `json:"pendingAmount"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

// CommissionInfo is the seller commission summary
type CommissionInfo struct {
	Total   int64   `json:"totalCommission"`
	Monthly int64   `json:"monthlyCommission"`
	Rate    float64 `json:"commissionRate"`
}
