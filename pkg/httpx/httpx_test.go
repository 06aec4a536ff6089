package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce_record_service/pkg/apperr"
)

type sampleItem struct {
	Quantity *int `json:"quantity" validate:"required,min=1"`
}

type sampleDTO struct {
	Name  string           `json:"name" validate:"required,max=5"`
	Email string           `json:"email" validate:"required,email"`
	Price *decimal.Decimal `json:"price" validate:"required,gte=0,max_scale=2,max_int_digits=10"`
	Date  string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Items []sampleItem     `json:"items" validate:"omitempty,dive"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		wantOK bool
		want   uint
	}{
		{"1", true, 1},
		{"42", true, 42},
		{"0", false, 0},
		{"-3", false, 0},
		{"abc", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, w := newContext(http.MethodGet, "/", "")
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			id, ok := ParseID(c, "id")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, id)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestValidator_FieldErrors(t *testing.T) {
	val := NewValidator()
	zero := 0
	neg := decimal.NewFromInt(-1)

	err := val.Struct(&sampleDTO{
		Name:  "too long name",
		Email: "nope",
		Price: &neg,
		Date:  "18/10/2026",
		Items: []sampleItem{{Quantity: &zero}, {}},
	})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at most 5 characters", verr.Fields["name"])
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "must be greater than or equal to 0", verr.Fields["price"])
	assert.Equal(t, "must be a date in YYYY-MM-DD format", verr.Fields["date"])
	assert.Equal(t, "must be at least 1", verr.Fields["items[0].quantity"])
	assert.Equal(t, "is required", verr.Fields["items[1].quantity"])
}

func TestValidator_ZeroPriceIsPresent(t *testing.T) {
	val := NewValidator()
	zero := decimal.Zero

	assert.NoError(t, val.Struct(&sampleDTO{Name: "pen", Email: "a@x.com", Price: &zero}))

	err := val.Struct(&sampleDTO{Name: "pen", Email: "a@x.com"})
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["price"])
}

func TestValidator_PriceMustFitColumn(t *testing.T) {
	val := NewValidator()

	for _, ok := range []string{"9.99", "9.90", "9.990", "9999999999.99", "0"} {
		d := decimal.RequireFromString(ok)
		assert.NoError(t, val.Struct(&sampleDTO{Name: "pen", Email: "a@x.com", Price: &d}), ok)
	}

	cases := map[string]string{
		"9.999":             "must have at most 2 decimal places",
		"0.001":             "must have at most 2 decimal places",
		"10000000000":       "must have at most 10 digits before the decimal point",
		"123456789012345.5": "must have at most 10 digits before the decimal point",
	}
	for raw, want := range cases {
		d := decimal.RequireFromString(raw)
		err := val.Struct(&sampleDTO{Name: "pen", Email: "a@x.com", Price: &d})
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr, raw)
		assert.Equal(t, want, verr.Fields["price"], raw)
	}
}

func TestBindJSON(t *testing.T) {
	val := NewValidator()

	c, w := newContext(http.MethodPost, "/", `{"name":`)
	var dto sampleDTO
	assert.False(t, BindJSON(c, val, &dto))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, w)["error"])

	c, w = newContext(http.MethodPost, "/", `{"name":"pen"}`)
	assert.False(t, BindJSON(c, val, &dto))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := decodeBody(t, w)["fields"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "price")

	c, _ = newContext(http.MethodPost, "/", `{"name":"pen","email":"a@x.com","price":1.5}`)
	dto = sampleDTO{}
	assert.True(t, BindJSON(c, val, &dto))
	assert.Equal(t, "1.5", dto.Price.String())
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not found", apperr.NotFound("customer"), http.StatusNotFound, "Customer not found"},
		{"conflict", apperr.Conflict("in use"), http.StatusConflict, "conflict: in use"},
		{"storage", apperr.Storage("create", errors.New("duplicate key")), http.StatusInternalServerError, "duplicate key"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodGet, "/", "")
			RespondError(c, tt.err)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMsg, decodeBody(t, w)["error"])
		})
	}
}
