package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_products_price,price >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
