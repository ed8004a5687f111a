package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/db"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/service"
)

type memoryOrderStore struct {
	orders []model.Order
}

func (m *memoryOrderStore) Insert(_ context.Context, order *model.Order) error {
	order.ID = int64(len(m.orders) + 1)
	order.CreatedAt = time.Now()
	m.orders = append(m.orders, *order)
	return nil
}

func (m *memoryOrderStore) FindByReference(_ context.Context, reference string) (*model.Order, error) {
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].Reference == reference {
			return &m.orders[i], nil
		}
	}
	return nil, errors.New("order not found")
}

func (m *memoryOrderStore) Summary(_ context.Context) (*db.ResultSet, error) {
	return &db.ResultSet{
		Columns: []string{"status", "order_count", "total_revenue"},
		Rows:    []map[string]any{{"status": "pending", "order_count": int64(len(m.orders)), "total_revenue": "45.00"}},
	}, nil
}

func newOrderRouter() (*gin.Engine, *memoryOrderStore) {
	gin.SetMode(gin.TestMode)
	store := &memoryOrderStore{}
	r := gin.New()
	api := r.Group("/api")
	NewOrderHandler(service.NewOrderService(store), store).RegisterRoutes(api)
	return r, store
}

func orderForm() url.Values {
	form := url.Values{}
	form.Set("customerName", "Michael Chen")
	form.Set("customerEmail", "michael.chen@example.com")
	form.Set("customerPhone", "+94771234567")
	form.Set("eventType", "Birthday")
	form.Set("cakeSize", "1 kg")
	form.Set("cakeFlavor", "Chocolate")
	form.Set("deliveryDate", time.Now().AddDate(0, 0, 7).Format("2006-01-02"))
	form.Set("totalAmount", "45.00")
	form.Set("specialMessage", "Happy birthday Mia!")
	return form
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderForm(t *testing.T) {
	router, store := newOrderRouter()

	w := postForm(t, router, "/api/orders", orderForm())

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Regexp(t, `^ORD\d{5}$`, data["order_id"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "45.00", data["total_amount"])
	require.Len(t, store.orders, 1)
}

func TestPlaceOrderZeroAmountRejected(t *testing.T) {
	router, store := newOrderRouter()

	form := orderForm()
	form.Set("totalAmount", "0")
	w := postForm(t, router, "/api/orders", form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "greater than zero")
	assert.Empty(t, store.orders)
}

func TestPlaceOrderAggregatedErrorText(t *testing.T) {
	router, _ := newOrderRouter()

	w := postForm(t, router, "/api/orders", url.Values{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeEnvelope(t, w)
	message := body["message"].(string)
	assert.Contains(t, message, "Name is required.")
	assert.Contains(t, message, "Valid email is required.")
	assert.Contains(t, message, "Delivery date is required.")
}

func TestOrderByReference(t *testing.T) {
	router, store := newOrderRouter()
	w := postForm(t, router, "/api/orders", orderForm())
	require.Equal(t, http.StatusOK, w.Code)
	reference := store.orders[0].Reference

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+reference, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, reference, data["order_id"])
	assert.Equal(t, "pending", data["status"])

	req = httptest.NewRequest(http.MethodGet, "/api/orders/ORD99999", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderSummary(t *testing.T) {
	router, store := newOrderRouter()
	postForm(t, router, "/api/orders", orderForm())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]any)
	rows := data["rows"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "pending", row["status"])
	require.Len(t, store.orders, 1)
}
