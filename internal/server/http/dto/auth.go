package dto

import "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"

// SignupRequest describes the signup payload.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public projection of a user row.
type UserResponse struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	LoyaltyCode *string `json:"loyaltyCode"`
	Points      int64   `json:"points"`
}

// SignupResponse is returned on successful registration.
type SignupResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ErrorResponse wraps every failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewUserResponse projects the model onto the wire shape.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Role:        string(u.Role),
		LoyaltyCode: u.LoyaltyCode,
		Points:      u.Points,
	}
}
