package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketbot/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-credential", zap.NewNop())
}

func TestClient_Probe(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"accepted", http.StatusOK, true},
		{"rejected", http.StatusUnauthorized, false},
		{"server error", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/fbs/sku/stocks", r.URL.Path)
				assert.Equal(t, "test-credential", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			})

			assert.Equal(t, tt.want, client.Probe())
		})
	}
}

func TestClient_OrdersV2(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/fbs/orders", r.URL.Path)
		assert.Equal(t, "CREATED", r.URL.Query().Get("status"))
		assert.Equal(t, "77", r.URL.Query().Get("shopIds"))
		assert.Equal(t, "0", r.URL.Query().Get("page"))

		json.NewEncoder(w).Encode(map[string]any{
			"payload": map[string]any{
				"orders": []map[string]any{
					{"id": 501, "status": "CREATED", "price": 150000, "dateCreated": 1700000000000},
				},
				"totalElements": 1,
			},
		})
	})

	page := client.OrdersV2(OrderQuery{ShopID: 77, Status: "CREATED", Size: 20})
	require.NotNil(t, page)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, int64(501), page.Orders[0].ID)
	assert.Equal(t, int64(150000), page.Orders[0].Price)
}

func TestClient_OrdersCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/fbs/orders/count", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("size"))
		json.NewEncoder(w).Encode(map[string]int{"payload": 12})
	})

	count, ok := client.OrdersCount(OrderQuery{Status: "CREATED"})
	assert.True(t, ok)
	assert.Equal(t, 12, count)
}

func TestClient_CancelOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/fbs/order/501/cancel", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"reasonId": 3}`, string(body))
	})

	assert.True(t, client.CancelOrder(501, 3))
}

func TestClient_CancelOrder_ZeroReasonIsOmitted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(body))
	})

	assert.True(t, client.CancelOrder(501, 0))
}

func TestClient_Order(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/fbs/order/501", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"id":          501,
			"status":      "PACKING",
			"price":       150000,
			"dateCreated": 1700000000000,
		})
	})

	order := client.Order(501)
	require.NotNil(t, order)
	assert.Equal(t, int64(501), order.ID)
	assert.Equal(t, "PACKING", order.Status)
}

func TestClient_SkuStocks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"sku": "ABC-1", "availableAmount": 14, "reservedAmount": 2},
			},
		})
	})

	stocks := client.SkuStocks()
	require.Len(t, stocks, 1)
	assert.Equal(t, "ABC-1", stocks[0].Sku)
	assert.Equal(t, 14, stocks[0].Available)
	assert.Equal(t, 2, stocks[0].Reserved)
}

func TestClient_UpdateSkuStocks_PostsBareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/fbs/sku/stocks", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"sku":"ABC-1","availableAmount":30}]`, string(body))
	})

	ok := client.UpdateSkuStocks([]domain.StockUpdate{{Sku: "ABC-1", Amount: 30}})
	assert.True(t, ok)
}

func TestClient_UpdateProductPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/77/sendPriceData", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"skuList":[{"skuId":900,"skuTitle":"Blue / M","fullPrice":200000,"sellPrice":180000}]}`,
			string(body))
	})

	ok := client.UpdateProductPrice(77, domain.PriceUpdate{
		SkuID:     900,
		SkuTitle:  "Blue / M",
		FullPrice: 200000,
		SellPrice: 180000,
	})
	assert.True(t, ok)
}

func TestClient_SearchProducts_Defaults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/shop/77", r.URL.Path)
		assert.Equal(t, "DEFAULT", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "ASC", r.URL.Query().Get("order"))
		assert.Equal(t, "ALL", r.URL.Query().Get("filter"))
		assert.Equal(t, "telefon", r.URL.Query().Get("searchQuery"))

		json.NewEncoder(w).Encode(map[string]any{
			"productList": []map[string]any{
				{"productId": 10, "title": "Telefon g'ilofi", "price": 45000},
			},
			"totalProductsAmount": 1,
		})
	})

	page := client.SearchProducts(ProductQuery{ShopID: 77, SearchQuery: "telefon", Size: 20})
	require.NotNil(t, page)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "Telefon g'ilofi", page.Products[0].Title)
}

func TestClient_Invoices_ClampsPageSize(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/invoice", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("size"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "invoiceNumber": "INV-1", "fullPrice": 100000},
		})
	})

	invoices := client.Invoices(0, 999)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-1", invoices[0].InvoiceNumber)
}

func TestClient_FinanceExpenses_SourceParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/finance/expenses", r.URL.Path)
		assert.Equal(t, []string{"WITHDRAW", "LOGISTIC"}, r.URL.Query()["sources"])

		json.NewEncoder(w).Encode(map[string]any{
			"payload": map[string]any{
				"payments": []map[string]any{
					{"id": 9, "source": "WITHDRAW", "paymentPrice": 90000},
				},
			},
		})
	})

	payments := client.FinanceExpenses(FinanceQuery{
		Size:    20,
		Sources: []string{"WITHDRAW", "LOGISTIC"},
	})
	require.Len(t, payments, 1)
	assert.Equal(t, int64(90000), payments[0].PaymentPrice)
	assert.Equal(t, "WITHDRAW", payments[0].Source)
}

func TestClient_FinanceOrders_GroupAndStatusParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/finance/orders", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("group"))
		assert.Equal(t, []string{"DELIVERED", "COMPLETED"}, r.URL.Query()["statuses"])

		json.NewEncoder(w).Encode(map[string]any{
			"payload": map[string]any{
				"orderItems": []map[string]any{
					{"orderId": 501, "sellerPrice": 120000},
				},
			},
		})
	})

	orders := client.FinanceOrders(FinanceQuery{
		Size:     20,
		Group:    true,
		Statuses: []string{"DELIVERED", "COMPLETED"},
	})
	require.Len(t, orders, 1)
	assert.Equal(t, int64(501), orders[0].OrderID)
}

func TestClient_SellerPaymentInfo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"balance":       5400000,
				"pendingAmount": 120000,
				"bankName":      "Kapitalbank",
				"accountNumber": "2020 xxxx",
			},
		})
	})

	info := client.SellerPaymentInfo()
	require.NotNil(t, info)
	assert.Equal(t, int64(5400000), info.Balance)
	assert.Equal(t, "Kapitalbank", info.BankName)
}

func TestClient_ListMethodsReturnNilOnFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	assert.Nil(t, client.Shops())
	assert.Nil(t, client.OrdersV2(OrderQuery{}))
	assert.Nil(t, client.SkuStocks())
	assert.Nil(t, client.FinanceExpenses(FinanceQuery{Size: 20}))
	assert.Nil(t, client.CommissionInfo())

	_, ok := client.OrdersCount(OrderQuery{})
	assert.False(t, ok)
	assert.False(t, client.ConfirmOrder(1))
}

func TestClient_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json")
	})

	assert.Nil(t, client.Shops())
}
