package request

import "github.com/shopspring/decimal"

// ProductDTO is the create and full-replace body. Price is a pointer so that
// an explicit 0 is distinguishable from a missing field. The scale and digit
// limits match the numeric(12,2) column.
type ProductDTO struct {
	Name  string           `json:"name" validate:"required,max=100"`
	Price *decimal.Decimal `json:"price" validate:"required,gte=0,max_scale=2,max_int_digits=10"`
}
