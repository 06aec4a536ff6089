package response

import "github.com/shopspring/decimal"

// Price renders as a bare JSON number, matching what clients send in.
type Price struct {
	decimal.Decimal
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

type ProductResponseDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
}
