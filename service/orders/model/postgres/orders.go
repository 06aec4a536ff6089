package postgres

import (
	"time"

	"gorm.io/datatypes"

	customers "ecommerce_record_service/service/customers/model/postgres"
	products "ecommerce_record_service/service/products/model/postgres"
)

type Order struct {
	ID         uint               `gorm:"primaryKey"`
	OrderDate  datatypes.Date     `gorm:"not null"`
	CustomerID uint               `gorm:"not null;index"`
	Customer   customers.Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderItem struct {
	ID        uint             `gorm:"primaryKey"`
	OrderID   uint             `gorm:"not null;index"`
	Order     Order            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID uint             `gorm:"not null;index"`
	Product   products.Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity  int              `gorm:"not null;check:chk_order_items_quantity,quantity >= 1"`
	CreatedAt time.Time
}

const DateLayout = "2006-01-02"

// NewDate truncates t to its calendar day, pinned to UTC midnight so the
// stored value never drifts across zones.
func NewDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDate reads a YYYY-MM-DD string.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return NewDate(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
