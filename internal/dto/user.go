package dto

import "github.com/khasanoff/uaa_backend/internal/core/domain"

// RegisterRequest is the payload for POST /api/user/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Provider string `json:"provider" binding:"omitempty,oneof=email google"`
}

// LoginRequest is the payload for POST /api/user/login and /admin-login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the payload for PUT /api/user.
// Pointers distinguish omitted fields from zero values.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Phone *string `json:"phone" binding:"omitempty,min=1"`
}

// UpdatePasswordRequest is the payload for PUT /api/user/password.
type UpdatePasswordRequest struct {
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ForgotPasswordRequest is the payload for POST /api/user/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest is the payload for PUT /api/user/reset-password.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
	Token    string `json:"token" binding:"required"`
}

// AuthResponse is returned by register, login and the profile update flows.
type AuthResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Token string `json:"token"`
}

// ToAuthResponse builds an AuthResponse for a user and a freshly issued token.
func ToAuthResponse(user *domain.User, token string) AuthResponse {
	return AuthResponse{
		Email: user.Email,
		Name:  user.Name,
		Phone: user.Phone,
		Token: token,
	}
}

// CurrentUserResponse is returned by GET /api/user/me.
type CurrentUserResponse struct {
	ID    string          `json:"_id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Phone string          `json:"phone"`
	Role  domain.UserRole `json:"role"`
}

// ToCurrentUserResponse converts a domain user to the /me response shape.
func ToCurrentUserResponse(user *domain.User) CurrentUserResponse {
	return CurrentUserResponse{
		ID:    user.UserID,
		Email: user.Email,
		Name:  user.Name,
		Phone: user.Phone,
		Role:  user.Role,
	}
}

// ForgotPasswordResponse carries the reset URL back to the caller. Email
// delivery is out of scope; the URL is returned and logged instead.
type ForgotPasswordResponse struct {
	ResetURL string `json:"resetUrl"`
}

// ResetPasswordResponse confirms which user's password was reset.
type ResetPasswordResponse struct {
	ID string `json:"_id"`
}
