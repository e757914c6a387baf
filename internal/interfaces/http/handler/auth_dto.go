package handler

import "time"

// LoginRequest is the request body for user login
type LoginRequest struct {
	TenantID string `json:"tenant_id" binding:"required,uuid"`
	Username string `json:"username" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=1"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	TokenType             string    `json:"token_type"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
}

// LoginResponse is the response body for a successful login
type LoginResponse struct {
	TokenResponse
	User UserResponse `json:"user"`
}

// UserResponse carries safe-to-expose user fields
type UserResponse struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// RefreshRequest is the request body for refreshing a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RegisterRequest is the request body for creating a user account
type RegisterRequest struct {
	TenantID string `json:"tenant_id" binding:"required,uuid"`
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// ChangePasswordRequest is the request body for a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
