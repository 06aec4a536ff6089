package response

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductResponseDTO_PriceIsNumber(t *testing.T) {
	dto := ProductResponseDTO{ID: 1, Name: "Pen", Price: Price{Decimal: decimal.RequireFromString("9.99")}}

	data, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Pen","price":9.99}`, string(data))
	assert.False(t, decimal.MarshalJSONWithoutQuotes, "package-wide decimal setting must stay untouched")

	var back ProductResponseDTO
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Price.Equal(decimal.RequireFromString("9.99")))

	zero, err := json.Marshal(ProductResponseDTO{ID: 2, Name: "Free"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"Free","price":0}`, string(zero))
}
