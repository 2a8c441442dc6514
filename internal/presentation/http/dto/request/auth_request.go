package request

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents a customer registration request
type SignupRequest struct {
	FirstName       string  `json:"first_name" binding:"required,min=1,max=120"`
	LastName        string  `json:"last_name" binding:"max=120"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required,min=5,max=50"`
	Address         *string `json:"address"`
	Username        string  `json:"username" binding:"omitempty,min=3,max=64,alphanum"`
	Password        string  `json:"password" binding:"required,min=8"`
	PasswordConfirm string  `json:"password_confirm" binding:"required,eqfield=Password"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest represents a customer profile update
type UpdateProfileRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,min=5,max=50"`
	Address *string `json:"address"`
}
