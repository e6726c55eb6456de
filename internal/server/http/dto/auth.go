package dto

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the authenticated user record.
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
