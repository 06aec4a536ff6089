package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce_record_service/pkg/httpx"
	"ecommerce_record_service/pkg/infra/cache"
	"ecommerce_record_service/pkg/infra/database/dbtest"
	"ecommerce_record_service/pkg/infra/queue"
	customers "ecommerce_record_service/service/customers/model/postgres"
	"ecommerce_record_service/service/orders/model/postgres"
	"ecommerce_record_service/service/orders/repository"
	"ecommerce_record_service/service/orders/usecase"
	products "ecommerce_record_service/service/products/model/postgres"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t,
		&customers.Customer{},
		&products.Product{},
		&postgres.Order{},
		&postgres.OrderItem{},
	)
	require.NoError(t, db.Create(&customers.Customer{Name: "Ann", Email: "a@x.com", Phone: "1"}).Error)
	require.NoError(t, db.Create(&products.Product{Name: "Pen", Price: decimal.RequireFromString("9.99")}).Error)

	uc := usecase.NewOrderUseCase(repository.NewOrderRepository(db), cache.NoopCache{}, queue.NoopPublisher{})
	engine := gin.New()
	RegisterRoutes(engine, NewOrdersHandler(uc, httpx.NewValidator()))
	return engine
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderAndTrack(t *testing.T) {
	engine := newTestEngine(t)

	w := do(engine, http.MethodPost, "/orders", `{"customer_id":1,"order_date":"2024-01-15","items":[{"product_id":1,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"order_date":"2024-01-15","customer_id":1,"items":[{"id":1,"order_id":1,"product_id":1,"quantity":2}]}`, w.Body.String())

	byID := do(engine, http.MethodGet, "/orders/1", "")
	require.Equal(t, http.StatusOK, byID.Code)
	tracked := do(engine, http.MethodGet, "/orders/track/1", "")
	require.Equal(t, http.StatusOK, tracked.Code)
	assert.JSONEq(t, byID.Body.String(), tracked.Body.String())

	assert.Equal(t, http.StatusNotFound, do(engine, http.MethodGet, "/orders/track/99", "").Code)
}

func TestPlaceOrder_Validation(t *testing.T) {
	engine := newTestEngine(t)

	w := do(engine, http.MethodPost, "/orders", `{"order_date":"15/01/2024","items":[{"product_id":1,"quantity":0}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "is required", body.Fields["customer_id"])
	assert.Equal(t, "must be a date in YYYY-MM-DD format", body.Fields["order_date"])
	assert.Equal(t, "must be at least 1", body.Fields["items[0].quantity"])

	w = do(engine, http.MethodGet, "/orders", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPlaceOrder_UnknownCustomer(t *testing.T) {
	engine := newTestEngine(t)

	w := do(engine, http.MethodPost, "/orders", `{"customer_id":42}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOrderItemsAndDelete(t *testing.T) {
	engine := newTestEngine(t)
	require.Equal(t, http.StatusCreated, do(engine, http.MethodPost, "/orders", `{"customer_id":1}`).Code)

	w := do(engine, http.MethodGet, "/orders/1/items", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, do(engine, http.MethodPost, "/orders/1/items", `{"items":[]}`).Code)

	w = do(engine, http.MethodPost, "/orders/1/items", `{"items":[{"product_id":1,"quantity":5}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `[{"id":1,"order_id":1,"product_id":1,"quantity":5}]`, w.Body.String())

	w = do(engine, http.MethodGet, "/orders/1/items", "")
	assert.JSONEq(t, `[{"id":1,"order_id":1,"product_id":1,"quantity":5}]`, w.Body.String())

	w = do(engine, http.MethodPut, "/orders/1", `{"customer_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(engine, http.MethodPut, "/orders/1", `{"customer_id":1,"order_date":"2023-02-01"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"order_date":"2023-02-01","customer_id":1,"items":[{"id":1,"order_id":1,"product_id":1,"quantity":5}]}`, w.Body.String())
	assert.JSONEq(t, w.Body.String(), do(engine, http.MethodGet, "/orders/1", "").Body.String())

	w = do(engine, http.MethodDelete, "/orders/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, do(engine, http.MethodGet, "/orders/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(engine, http.MethodGet, "/orders/1/items", "").Code)
	assert.Equal(t, http.StatusNotFound, do(engine, http.MethodDelete, "/orders/1", "").Code)
}
