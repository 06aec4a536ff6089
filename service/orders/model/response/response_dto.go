package response

type OrderResponseDTO struct {
	ID         uint                   `json:"id"`
	OrderDate  string                 `json:"order_date"`
	CustomerID uint                   `json:"customer_id"`
	Items      []OrderItemResponseDTO `json:"items,omitempty"`
}

type OrderItemResponseDTO struct {
	ID        uint `json:"id"`
	OrderID   uint `json:"order_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}
