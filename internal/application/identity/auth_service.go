package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Maximum failed login attempts before lock
	LockDuration     time.Duration // How long to lock account after max attempts
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService handles registration, authentication and the user's own profile
type AuthService struct {
	orgRepo      identity.OrganizationRepository
	userRepo     identity.UserRepository
	memberRepo   identity.TeamMemberRepository
	settingsRepo identity.SettingsRepository
	txManager    shared.TxManager
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	publisher    *appevent.Publisher
	config       AuthServiceConfig
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	orgRepo identity.OrganizationRepository,
	userRepo identity.UserRepository,
	memberRepo identity.TeamMemberRepository,
	settingsRepo identity.SettingsRepository,
	txManager shared.TxManager,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	publisher *appevent.Publisher,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	if config.MaxLoginAttempts <= 0 {
		config.MaxLoginAttempts = DefaultAuthServiceConfig().MaxLoginAttempts
	}
	if config.LockDuration <= 0 {
		config.LockDuration = DefaultAuthServiceConfig().LockDuration
	}
	return &AuthService{
		orgRepo:      orgRepo,
		userRepo:     userRepo,
		memberRepo:   memberRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		jwtService:   jwtService,
		blacklist:    blacklist,
		publisher:    publisher,
		config:       config,
		logger:       logger,
	}
}

// SignUp registers a user. Without an invite token a new organization is
// created with the user as its owner.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	email := identity.NormalizeEmail(input.Email)
	s.logger.Info("Sign-up attempt", zap.String("email", email), zap.Bool("invited", input.InviteToken != ""))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "An account with this email already exists")
	}

	if input.InviteToken != "" {
		return s.signUpWithInvite(ctx, email, input)
	}

	org, err := identity.NewOrganization(input.OrganizationName)
	if err != nil {
		return nil, err
	}
	user, err := identity.NewUser(org.ID, email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}
	org.SetOwner(user.ID)
	member := identity.NewOwnerMember(org.ID, user)
	settings := identity.NewDefaultSettings(org.ID, user.ID, org.DefaultCurrency)
	user.RecordLoginSuccess(input.IP)

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.orgRepo.Save(ctx, org); err != nil {
			return err
		}
		if err := s.userRepo.Save(ctx, user); err != nil {
			return err
		}
		if err := s.memberRepo.Save(ctx, member); err != nil {
			return err
		}
		return s.settingsRepo.Save(ctx, settings)
	})
	if err != nil {
		s.logger.Error("Failed to create organization", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, org, user, member)

	s.logger.Info("Organization created",
		zap.String("org_id", org.ID.String()),
		zap.String("user_id", user.ID.String()))

	return s.issueTokens(user, org, member)
}

func (s *AuthService) signUpWithInvite(ctx context.Context, email string, input SignUpInput) (*AuthResult, error) {
	pending, err := s.memberRepo.FindPendingByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var member *identity.TeamMember
	for i := range pending {
		if pending[i].MatchesInvite(input.InviteToken, now) {
			member = &pending[i]
			break
		}
	}
	if member == nil {
		s.logger.Warn("Sign-up with invalid invite token", zap.String("email", email))
		return nil, shared.NewDomainError("INVALID_INVITE", "Invitation is invalid or has expired")
	}

	org, err := s.orgRepo.FindByID(ctx, member.OrgID)
	if err != nil {
		return nil, err
	}
	if !org.IsActive() {
		return nil, shared.NewDomainError("ORGANIZATION_SUSPENDED", "Organization is suspended")
	}

	user, err := identity.NewUser(org.ID, email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}
	if err := member.Accept(user); err != nil {
		return nil, err
	}
	settings := identity.NewDefaultSettings(org.ID, user.ID, org.DefaultCurrency)
	user.RecordLoginSuccess(input.IP)

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Save(ctx, user); err != nil {
			return err
		}
		if err := s.memberRepo.Save(ctx, member); err != nil {
			return err
		}
		return s.settingsRepo.Save(ctx, settings)
	})
	if err != nil {
		s.logger.Error("Failed to accept invitation", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, user, member)

	s.logger.Info("Invitation accepted",
		zap.String("org_id", org.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(member.Role)))

	return s.issueTokens(user, org, member)
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := identity.NormalizeEmail(input.Email)
	s.logger.Info("Login attempt", zap.String("email", email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("User not found during login", zap.String("email", email))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !user.CanLogin() {
		if user.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("email", email))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later")
		}
		s.logger.Warn("Login attempt for deactivated account", zap.String("email", email))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !user.VerifyPassword(input.Password) {
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("Failed to update user after login failure", zap.Error(err))
		}

		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("email", email),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}

		s.logger.Warn("Invalid password attempt",
			zap.String("email", email),
			zap.Int("failed_attempts", user.FailedAttempts))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	org, member, err := s.loadMembership(ctx, user)
	if err != nil {
		return nil, err
	}

	result, err := s.issueTokens(user, org, member)
	if err != nil {
		return nil, err
	}

	user.RecordLoginSuccess(input.IP)
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Don't fail the login - just log the error
		s.logger.Error("Failed to update user after successful login", zap.Error(err))
	}
	result.User.LastLoginAt = user.LastLoginAt

	s.logger.Info("User logged in successfully",
		zap.String("email", email),
		zap.String("user_id", user.ID.String()))

	return result, nil
}

// RefreshToken rotates a refresh token. Role and permissions are reloaded
// from the current membership so changes apply without a new login.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*AuthResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	if err := s.checkRevoked(ctx, claims); err != nil {
		return nil, err
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TOKEN_INVALID", "User no longer exists")
		}
		return nil, err
	}
	if !user.CanLogin() {
		s.logger.Warn("Token refresh for inactive user", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	org, member, err := s.loadMembership(ctx, user)
	if err != nil {
		return nil, err
	}

	pair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, user.Email, string(member.Role), member.Role.Permissions())
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	// The presented refresh token is single use
	if ttl := claims.GetRemainingTTL(); ttl > 0 && claims.ID != "" {
		if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
			s.logger.Error("Failed to revoke rotated refresh token", zap.Error(err))
		}
	}

	s.logger.Info("Token refreshed successfully", zap.String("user_id", userID.String()))

	return &AuthResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User:                  toUserInfo(user, org, member),
	}, nil
}

// Logout revokes the access token and, when given, the refresh token
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.AccessClaims == nil {
		return shared.ErrUnauthorized
	}

	if ttl := input.AccessClaims.GetRemainingTTL(); ttl > 0 && input.AccessClaims.ID != "" {
		if err := s.blacklist.AddToBlacklist(ctx, input.AccessClaims.ID, ttl); err != nil {
			s.logger.Error("Failed to revoke access token", zap.Error(err))
			return err
		}
	}

	if input.RefreshToken != "" {
		refresh, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
		switch {
		case err != nil:
			// An already invalid refresh token needs no revocation
			s.logger.Debug("Ignoring invalid refresh token on logout", zap.Error(err))
		case refresh.UserID != input.AccessClaims.UserID:
			return shared.NewDomainError("TOKEN_INVALID", "Refresh token belongs to another user")
		default:
			if ttl := refresh.GetRemainingTTL(); ttl > 0 {
				if err := s.blacklist.AddToBlacklist(ctx, refresh.ID, ttl); err != nil {
					s.logger.Error("Failed to revoke refresh token", zap.Error(err))
					return err
				}
			}
		}
	}

	s.logger.Info("User logged out",
		zap.String("user_id", input.AccessClaims.UserID),
		zap.String("org_id", input.AccessClaims.OrgID))
	return nil
}

// GetProfile returns the current user with their role and permissions
func (s *AuthService) GetProfile(ctx context.Context, orgID, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByIDForOrg(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	org, member, err := s.loadMembership(ctx, user)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(user, org, member)
	return &info, nil
}

// UpdateProfile changes the user's name, phone and avatar
func (s *AuthService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByIDForOrg(ctx, input.OrgID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(input.FirstName, input.LastName, input.Phone, input.AvatarURL); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, err
	}

	org, member, err := s.loadMembership(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Profile updated", zap.String("user_id", user.ID.String()))

	info := toUserInfo(user, org, member)
	return &info, nil
}

// ChangePassword changes a user's password and revokes every token issued
// before the change
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByIDForOrg(ctx, input.OrgID, input.UserID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return err
	}

	if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), s.jwtService.GetRefreshTokenExpiration()); err != nil {
		s.logger.Error("Failed to revoke tokens after password change", zap.Error(err))
	}

	s.publisher.Publish(ctx, user)

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))

	return nil
}

// ValidateAccessToken verifies a bearer token and checks it against the
// blacklist. It backs the JWT middleware.
func (s *AuthService) ValidateAccessToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}
	if err := s.checkRevoked(ctx, claims); err != nil {
		if errors.Is(err, errTokenRevoked) {
			return nil, auth.ErrTokenBlacklisted
		}
		return nil, fmt.Errorf("check token revocation: %w", err)
	}
	return claims, nil
}

var errTokenRevoked = shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")

func (s *AuthService) checkRevoked(ctx context.Context, claims *auth.Claims) error {
	if claims.ID != "" {
		revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Error("Token blacklist lookup failed", zap.Error(err))
			return err
		}
		if revoked {
			return errTokenRevoked
		}
	}
	revoked, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		s.logger.Error("User revocation lookup failed", zap.Error(err))
		return err
	}
	if revoked {
		return errTokenRevoked
	}
	return nil
}

// loadMembership returns the user's organization and active membership.
// Removed members and suspended organizations cannot sign in.
func (s *AuthService) loadMembership(ctx context.Context, user *identity.User) (*identity.Organization, *identity.TeamMember, error) {
	org, err := s.orgRepo.FindByID(ctx, user.OrgID)
	if err != nil {
		return nil, nil, err
	}
	if !org.IsActive() {
		return nil, nil, shared.NewDomainError("ORGANIZATION_SUSPENDED", "Organization is suspended")
	}

	member, err := s.memberRepo.FindByUser(ctx, user.OrgID, user.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "User is no longer a member of this organization")
		}
		return nil, nil, err
	}
	if member.Status != identity.MemberStatusActive {
		return nil, nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "User is no longer a member of this organization")
	}
	return org, member, nil
}

func (s *AuthService) issueTokens(user *identity.User, org *identity.Organization, member *identity.TeamMember) (*AuthResult, error) {
	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		OrgID:       org.ID,
		UserID:      user.ID,
		Email:       user.Email,
		Role:        string(member.Role),
		Permissions: member.Role.Permissions(),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &AuthResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User:                  toUserInfo(user, org, member),
	}, nil
}

func toUserInfo(user *identity.User, org *identity.Organization, member *identity.TeamMember) UserInfo {
	return UserInfo{
		ID:               user.ID,
		OrgID:            org.ID,
		OrganizationName: org.Name,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		FullName:         user.FullName(),
		Phone:            user.Phone,
		AvatarURL:        user.AvatarURL,
		Role:             string(member.Role),
		Permissions:      member.Role.Permissions(),
		LastLoginAt:      user.LastLoginAt,
	}
}

// mapTokenError maps JWT errors to domain errors
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidTokenType), errors.Is(err, auth.ErrInvalidClaims):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	default:
		return shared.NewDomainError("TOKEN_INVALID", "Failed to validate refresh token")
	}
}
