package users

// Error messages returned by the user endpoints.
const (
	ErrInvalidRequest = "Invalid request data"
)

// UpdateUserRequest is a partial update; omitted fields keep their value.
type UpdateUserRequest struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	PhoneNumber *string `json:"phone_number"`
}
