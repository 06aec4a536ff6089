package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce_record_service/pkg/apperr"
	"ecommerce_record_service/pkg/infra/cache"
	"ecommerce_record_service/pkg/infra/database/dbtest"
	customers "ecommerce_record_service/service/customers/model/postgres"
	orders "ecommerce_record_service/service/orders/model/postgres"
	"ecommerce_record_service/service/products/model/postgres"
	"ecommerce_record_service/service/products/model/request"
	"ecommerce_record_service/service/products/repository"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProductUseCase_CachedGetSurvivesUntilUpdate(t *testing.T) {
	db := dbtest.Open(t, &customers.Customer{}, &postgres.Product{}, &orders.Order{}, &orders.OrderItem{})

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	uc := NewProductUseCase(repository.NewProductRepository(db), cache.NewRecordCache(client, time.Minute))
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, request.ProductDTO{Name: "Pen", Price: price("9.99")})
	require.NoError(t, err)

	got, err := uc.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, mr.Exists(cache.Key(productEntity, created.ID)))

	// served from the cache even though the row changed underneath
	require.NoError(t, db.Model(&postgres.Product{}).Where("id = ?", created.ID).Update("name", "Renamed").Error)
	got, err = uc.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pen", got.Name)

	_, err = uc.UpdateProduct(ctx, created.ID, request.ProductDTO{Name: "Red pen", Price: price("0")})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.Key(productEntity, created.ID)))

	got, err = uc.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Red pen", got.Name)
	assert.True(t, got.Price.IsZero())

	require.NoError(t, uc.DeleteProduct(ctx, created.ID))
	_, err = uc.GetProductByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
