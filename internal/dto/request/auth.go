package request

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    *string `json:"phone" validate:"omitempty,min=5,max=30"`
}

type LoginRequest struct {
	// Username accepts either username or email
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
