package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
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

// inviteTokenBytes is the entropy of an invite token before encoding
const inviteTokenBytes = 32

// TeamService manages the members of an organization
type TeamService struct {
	memberRepo identity.TeamMemberRepository
	userRepo   identity.UserRepository
	txManager  shared.TxManager
	blacklist  auth.TokenBlacklist
	revokeTTL  time.Duration // how long a removed user's tokens stay revoked
	publisher  *appevent.Publisher
	logger     *zap.Logger
}

// NewTeamService creates a new team service
func NewTeamService(
	memberRepo identity.TeamMemberRepository,
	userRepo identity.UserRepository,
	txManager shared.TxManager,
	blacklist auth.TokenBlacklist,
	revokeTTL time.Duration,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		blacklist:  blacklist,
		revokeTTL:  revokeTTL,
		publisher:  publisher,
		logger:     logger,
	}
}

// List returns the organization's team members
func (s *TeamService) List(ctx context.Context, orgID uuid.UUID, filter MemberListFilter) ([]MemberResponse, int64, error) {
	f := shared.DefaultFilter()
	f.OrderBy = "created_at"
	f.OrderDir = "asc"
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}
	f.Search = filter.Search
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.Role != "" {
		f.Filters["role"] = filter.Role
	}

	members, err := s.memberRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.memberRepo.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	return ToMemberResponses(members), total, nil
}

// GetByID returns a single team member
func (s *TeamService) GetByID(ctx context.Context, orgID, memberID uuid.UUID) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByIDForOrg(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}
	resp := ToMemberResponse(member)
	return &resp, nil
}

// Invite creates a pending invitation and returns its one-time token
func (s *TeamService) Invite(ctx context.Context, orgID, invitedBy uuid.UUID, req InviteMemberRequest) (*InviteResponse, error) {
	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	email := identity.NormalizeEmail(req.Email)
	existing, err := s.memberRepo.FindCurrentByEmail(ctx, orgID, email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "This email already belongs to an active or invited member")
	}

	token, err := newInviteToken()
	if err != nil {
		s.logger.Error("Failed to generate invite token", zap.Error(err))
		return nil, err
	}

	member, err := identity.NewInvitedMember(orgID, invitedBy, email, req.Name, role, token)
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.Save(ctx, member); err != nil {
		s.logger.Error("Failed to save invitation", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, member)

	s.logger.Info("Member invited",
		zap.String("org_id", orgID.String()),
		zap.String("member_id", member.ID.String()),
		zap.String("role", string(role)))

	return &InviteResponse{Member: ToMemberResponse(member), InviteToken: token}, nil
}

// ResendInvite rotates the token of a pending invitation
func (s *TeamService) ResendInvite(ctx context.Context, orgID, memberID uuid.UUID) (*InviteResponse, error) {
	member, err := s.memberRepo.FindByIDForOrg(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}

	token, err := newInviteToken()
	if err != nil {
		return nil, err
	}
	if err := member.RotateInvite(token); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info("Invitation resent", zap.String("member_id", member.ID.String()))

	return &InviteResponse{Member: ToMemberResponse(member), InviteToken: token}, nil
}

// ChangeRole assigns a new role. Members cannot change their own role and
// the last active owner cannot be demoted.
func (s *TeamService) ChangeRole(ctx context.Context, orgID, actorID, memberID uuid.UUID, req ChangeRoleRequest) (*MemberResponse, error) {
	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindByIDForOrg(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}
	if member.IsUser(actorID) {
		return nil, shared.NewDomainError("CANNOT_CHANGE_OWN_ROLE", "You cannot change your own role")
	}
	if member.Role == role {
		resp := ToMemberResponse(member)
		return &resp, nil
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if member.IsActiveOwner() {
			if err := s.ensureAnotherOwner(ctx, orgID); err != nil {
				return err
			}
		}
		if err := member.ChangeRole(role); err != nil {
			return err
		}
		return s.memberRepo.Save(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	// New permissions are only picked up by re-issued tokens
	if member.UserID != nil {
		s.revokeUserTokens(ctx, *member.UserID)
	}
	s.publisher.Publish(ctx, member)

	s.logger.Info("Member role changed",
		zap.String("member_id", member.ID.String()),
		zap.String("role", string(role)))

	resp := ToMemberResponse(member)
	return &resp, nil
}

// Remove takes a member out of the organization. An accepted member's user
// account is deactivated and their tokens revoked.
func (s *TeamService) Remove(ctx context.Context, orgID, actorID, memberID uuid.UUID) error {
	member, err := s.memberRepo.FindByIDForOrg(ctx, orgID, memberID)
	if err != nil {
		return err
	}
	if member.IsUser(actorID) {
		return shared.NewDomainError("CANNOT_REMOVE_SELF", "You cannot remove yourself from the team")
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if member.IsActiveOwner() {
			if err := s.ensureAnotherOwner(ctx, orgID); err != nil {
				return err
			}
		}
		if err := member.Remove(); err != nil {
			return err
		}
		if err := s.memberRepo.Save(ctx, member); err != nil {
			return err
		}
		if member.UserID == nil {
			return nil
		}
		user, err := s.userRepo.FindByIDForOrg(ctx, orgID, *member.UserID)
		if err != nil {
			return fmt.Errorf("load removed user: %w", err)
		}
		if user.IsDeactivated() {
			return nil
		}
		if err := user.Deactivate(); err != nil {
			return err
		}
		return s.userRepo.Save(ctx, user)
	})
	if err != nil {
		return err
	}

	if member.UserID != nil {
		s.revokeUserTokens(ctx, *member.UserID)
	}
	s.publisher.Publish(ctx, member)

	s.logger.Info("Member removed",
		zap.String("org_id", orgID.String()),
		zap.String("member_id", member.ID.String()))
	return nil
}

func (s *TeamService) ensureAnotherOwner(ctx context.Context, orgID uuid.UUID) error {
	owners, err := s.memberRepo.CountActiveOwners(ctx, orgID)
	if err != nil {
		return err
	}
	if owners <= 1 {
		return shared.NewDomainError("LAST_OWNER", "The organization must keep at least one owner")
	}
	return nil
}

func (s *TeamService) revokeUserTokens(ctx context.Context, userID uuid.UUID) {
	if s.blacklist == nil {
		return
	}
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.revokeTTL); err != nil {
		s.logger.Error("Failed to revoke user tokens", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func newInviteToken() (string, error) {
	b := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
