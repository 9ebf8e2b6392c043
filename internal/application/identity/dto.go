package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/infrastructure/auth"
)

// SignUpInput contains the input for account registration.
// With an InviteToken the user joins the inviting organization and
// OrganizationName is ignored.
type SignUpInput struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	OrganizationName string
	InviteToken      string
	IP               string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client IP for login tracking
}

// AuthResult is returned by sign-up, login and refresh
type AuthResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo describes the signed-in user and their membership
type UserInfo struct {
	ID               uuid.UUID
	OrgID            uuid.UUID
	OrganizationName string
	Email            string
	FirstName        string
	LastName         string
	FullName         string
	Phone            string
	AvatarURL        string
	Role             string
	Permissions      []string
	LastLoginAt      *time.Time
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput contains the input for user logout. AccessClaims are the
// verified claims of the request's bearer token.
type LogoutInput struct {
	AccessClaims *auth.Claims
	RefreshToken string // optional, revoked as well when present
}

// UpdateProfileInput contains editable profile fields
type UpdateProfileInput struct {
	OrgID     uuid.UUID
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	AvatarURL string
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	OrgID       uuid.UUID
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// MemberListFilter filters team members
type MemberListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=invited active removed"`
	Role     string `form:"role" binding:"omitempty,oneof=owner manager maintenance viewer"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// InviteMemberRequest is the request body for inviting a team member
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
	Name  string `json:"name" binding:"max=200"`
	Role  string `json:"role" binding:"required,oneof=owner manager maintenance viewer"`
}

// ChangeRoleRequest is the request body for changing a member's role
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=owner manager maintenance viewer"`
}

// MemberResponse represents a team member in API responses
type MemberResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Status          string     `json:"status"`
	Permissions     []string   `json:"permissions"`
	InvitedAt       *time.Time `json:"invited_at,omitempty"`
	InviteExpiresAt *time.Time `json:"invite_expires_at,omitempty"`
	JoinedAt        *time.Time `json:"joined_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// InviteResponse carries the one-time invite token. It is never stored or
// returned again.
type InviteResponse struct {
	Member      MemberResponse `json:"member"`
	InviteToken string         `json:"invite_token"`
}

// ToMemberResponse converts a domain team member to a response DTO
func ToMemberResponse(m *identity.TeamMember) MemberResponse {
	return MemberResponse{
		ID:              m.ID,
		UserID:          m.UserID,
		Email:           m.Email,
		Name:            m.Name,
		Role:            string(m.Role),
		Status:          string(m.Status),
		Permissions:     m.Role.Permissions(),
		InvitedAt:       m.InvitedAt,
		InviteExpiresAt: m.InviteExpiresAt,
		JoinedAt:        m.JoinedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToMemberResponses converts a slice of domain team members
func ToMemberResponses(members []identity.TeamMember) []MemberResponse {
	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = ToMemberResponse(&members[i])
	}
	return out
}

// UpdateSettingsRequest is the request body for updating user settings.
// Omitted fields are left unchanged.
type UpdateSettingsRequest struct {
	Currency           *string `json:"currency" binding:"omitempty,currency"`
	Locale             *string `json:"locale" binding:"omitempty,max=35"`
	Timezone           *string `json:"timezone" binding:"omitempty,max=64"`
	DateFormat         *string `json:"date_format" binding:"omitempty,oneof=MM/DD/YYYY DD/MM/YYYY YYYY-MM-DD"`
	Theme              *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	EmailNotifications *bool   `json:"email_notifications"`
	SMSNotifications   *bool   `json:"sms_notifications"`
}

// UpdateDashboardWidgetsRequest is the ordered list of enabled widgets
type UpdateDashboardWidgetsRequest struct {
	Widgets []string `json:"widgets" binding:"required,max=20,dive,widget"`
}

// SettingsResponse represents user settings in API responses
type SettingsResponse struct {
	Currency           string    `json:"currency"`
	CurrencySymbol     string    `json:"currency_symbol"`
	Locale             string    `json:"locale"`
	Timezone           string    `json:"timezone"`
	DateFormat         string    `json:"date_format"`
	Theme              string    `json:"theme"`
	DashboardWidgets   []string  `json:"dashboard_widgets"`
	EmailNotifications bool      `json:"email_notifications"`
	SMSNotifications   bool      `json:"sms_notifications"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToSettingsResponse converts domain settings to a response DTO
func ToSettingsResponse(s *identity.UserSettings) SettingsResponse {
	widgets := make([]string, len(s.DashboardWidgets))
	for i, w := range s.DashboardWidgets {
		widgets[i] = string(w)
	}
	return SettingsResponse{
		Currency:           string(s.Currency),
		CurrencySymbol:     s.Currency.Symbol(),
		Locale:             s.Locale,
		Timezone:           s.Timezone,
		DateFormat:         s.DateFormat,
		Theme:              string(s.Theme),
		DashboardWidgets:   widgets,
		EmailNotifications: s.EmailNotifications,
		SMSNotifications:   s.SMSNotifications,
		UpdatedAt:          s.UpdatedAt,
	}
}
