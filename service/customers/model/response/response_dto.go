package response

type CustomerResponseDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AccountResponseDTO deliberately has no password field.
type AccountResponseDTO struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	CustomerID uint   `json:"customer_id"`
}
