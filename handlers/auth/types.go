package auth

// Error messages returned by the auth endpoints.
const (
	ErrInvalidRequest     = "Invalid request data"
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserNotFound       = "User not found"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

// LoginRequest is the payload for obtaining a token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
