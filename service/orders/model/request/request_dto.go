package request

type OrderItemDTO struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  *int `json:"quantity" validate:"required,min=1"`
}

// CreateOrderDTO places an order. OrderDate defaults to today; Items, when
// present, are stored in the same transaction as the order.
type CreateOrderDTO struct {
	CustomerID uint           `json:"customer_id" validate:"required"`
	OrderDate  string         `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	Items      []OrderItemDTO `json:"items" validate:"omitempty,dive"`
}

type UpdateOrderDTO struct {
	CustomerID uint   `json:"customer_id" validate:"required"`
	OrderDate  string `json:"order_date" validate:"required,datetime=2006-01-02"`
}

type AddItemsDTO struct {
	Items []OrderItemDTO `json:"items" validate:"required,min=1,dive"`
}
