package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/identity"
)

// =====================
// Auth Request DTOs
// =====================

// SignUpRequest represents the request body for account registration.
// OrganizationName is required unless the user is accepting an invitation.
type SignUpRequest struct {
	Email            string `json:"email" binding:"required,email,max=255"`
	Password         string `json:"password" binding:"required,min=8,max=72"`
	FirstName        string `json:"first_name" binding:"required,max=100"`
	LastName         string `json:"last_name" binding:"required,max=100"`
	OrganizationName string `json:"organization_name" binding:"required_without=InviteToken,max=200"`
	InviteToken      string `json:"invite_token" binding:"omitempty,max=128"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

// RefreshTokenRequest represents the request body for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest optionally names the refresh token to revoke with the session
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest represents the editable profile fields
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=30"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url,max=500"`
}

// ChangePasswordRequest represents the request body for password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// =====================
// Auth Response DTOs
// =====================

// TokenResponse represents the token data in auth responses
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// AuthUserResponse represents user data in auth responses
type AuthUserResponse struct {
	ID               uuid.UUID  `json:"id"`
	OrgID            uuid.UUID  `json:"org_id"`
	OrganizationName string     `json:"organization_name"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	FullName         string     `json:"full_name"`
	Phone            string     `json:"phone,omitempty"`
	AvatarURL        string     `json:"avatar_url,omitempty"`
	Role             string     `json:"role"`
	Permissions      []string   `json:"permissions"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
}

// AuthResponse is returned by sign-up, login and refresh
type AuthResponse struct {
	Token TokenResponse    `json:"token"`
	User  AuthUserResponse `json:"user"`
}

func toAuthUserResponse(u *identity.UserInfo) AuthUserResponse {
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return AuthUserResponse{
		ID:               u.ID,
		OrgID:            u.OrgID,
		OrganizationName: u.OrganizationName,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		FullName:         u.FullName,
		Phone:            u.Phone,
		AvatarURL:        u.AvatarURL,
		Role:             u.Role,
		Permissions:      perms,
		LastLoginAt:      u.LastLoginAt,
	}
}

func toAuthResponse(r *identity.AuthResult) AuthResponse {
	return AuthResponse{
		Token: TokenResponse{
			AccessToken:           r.AccessToken,
			RefreshToken:          r.RefreshToken,
			AccessTokenExpiresAt:  r.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: r.RefreshTokenExpiresAt,
			TokenType:             r.TokenType,
		},
		User: toAuthUserResponse(&r.User),
	}
}
