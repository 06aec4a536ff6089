package request

// CustomerDTO is used for both create and full-replace update, so every field
// is required.
type CustomerDTO struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"required,max=15"`
}

type CreateAccountDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"` // bcrypt ignores bytes past 72
}
