package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"ecommerce_record_service/bundlefx/customerfx"
	"ecommerce_record_service/bundlefx/infrafx"
	"ecommerce_record_service/bundlefx/orderfx"
	"ecommerce_record_service/bundlefx/productfx"
	"ecommerce_record_service/pkg/infra/database/dbtest"
	products "ecommerce_record_service/service/products/model/postgres"
)

func TestWriteStats(t *testing.T) {
	db := dbtest.Open(t, infrafx.Models...)
	require.NoError(t, db.Create(&products.Product{Name: "Pen", Price: decimal.NewFromInt(1)}).Error)
	require.NoError(t, db.Create(&products.Product{Name: "Ink", Price: decimal.NewFromInt(2)}).Error)

	var out bytes.Buffer
	require.NoError(t, writeStats(context.Background(), &out, db))

	text := out.String()
	for _, table := range []string{"customers", "customer_accounts", "products", "orders", "order_items"} {
		assert.Contains(t, text, table)
	}
	assert.Contains(t, text, "2")
}

func TestServeGraphIsComplete(t *testing.T) {
	err := fx.ValidateApp(
		fx.Provide(
			NewGinEngine,
			providePort(0),
		),
		infrafx.Module,
		customerfx.Module,
		productfx.Module,
		orderfx.Module,
		fx.Invoke(StartHTTPServer),
	)
	assert.NoError(t, err)
}

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["stats"])
}
