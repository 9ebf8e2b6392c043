package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// MemberStatus represents the membership state
type MemberStatus string

const (
	MemberStatusInvited MemberStatus = "invited"
	MemberStatusActive  MemberStatus = "active"
	MemberStatusRemoved MemberStatus = "removed"
)

// InviteTTL is how long an invite token stays valid
const InviteTTL = 7 * 24 * time.Hour

// TeamMember links a person to an organization with a role.
// Invited members have no UserID until they accept.
type TeamMember struct {
	shared.OrgAggregateRoot
	UserID          *uuid.UUID
	Email           string
	Name            string
	Role            Role
	Status          MemberStatus
	InviteTokenHash string
	InvitedBy       *uuid.UUID
	InvitedAt       *time.Time
	InviteExpiresAt *time.Time
	JoinedAt        *time.Time
	RemovedAt       *time.Time
}

// NewOwnerMember creates the active owner membership for a new organization
func NewOwnerMember(orgID uuid.UUID, user *User) *TeamMember {
	now := time.Now()
	m := &TeamMember{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, user.ID),
		UserID:           &user.ID,
		Email:            user.Email,
		Name:             user.FullName(),
		Role:             RoleOwner,
		Status:           MemberStatusActive,
		JoinedAt:         &now,
	}
	m.AddDomainEvent(NewMemberJoinedEvent(m))
	return m
}

// NewInvitedMember creates a pending invitation. The caller keeps the raw
// token returned here; only its hash is stored.
func NewInvitedMember(orgID, invitedBy uuid.UUID, email, name string, role Role, token string) (*TeamMember, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if token == "" {
		return nil, shared.NewDomainError("INVALID_INVITE_TOKEN", "Invite token cannot be empty")
	}

	now := time.Now()
	expires := now.Add(InviteTTL)
	m := &TeamMember{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, invitedBy),
		Email:            email,
		Name:             strings.TrimSpace(name),
		Role:             role,
		Status:           MemberStatusInvited,
		InviteTokenHash:  HashInviteToken(token),
		InvitedBy:        &invitedBy,
		InvitedAt:        &now,
		InviteExpiresAt:  &expires,
	}
	m.AddDomainEvent(NewMemberInvitedEvent(m))
	return m, nil
}

// HashInviteToken returns the hex SHA-256 of an invite token
func HashInviteToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// MatchesInvite checks the token and expiry of a pending invitation
func (m *TeamMember) MatchesInvite(token string, now time.Time) bool {
	if m.Status != MemberStatusInvited || m.InviteTokenHash == "" {
		return false
	}
	if m.InviteExpiresAt != nil && now.After(*m.InviteExpiresAt) {
		return false
	}
	return m.InviteTokenHash == HashInviteToken(token)
}

// Accept turns an invitation into an active membership for the user
func (m *TeamMember) Accept(user *User) error {
	if m.Status != MemberStatusInvited {
		return shared.NewDomainError("INVITE_NOT_PENDING", "Invitation is no longer pending")
	}
	if NormalizeEmail(user.Email) != m.Email {
		return shared.NewDomainError("INVITE_EMAIL_MISMATCH", "Invitation was sent to a different email")
	}

	now := time.Now()
	m.UserID = &user.ID
	if m.Name == "" {
		m.Name = user.FullName()
	}
	m.Status = MemberStatusActive
	m.InviteTokenHash = ""
	m.InviteExpiresAt = nil
	m.JoinedAt = &now
	m.UpdatedAt = now
	m.IncrementVersion()

	m.AddDomainEvent(NewMemberJoinedEvent(m))
	return nil
}

// RotateInvite replaces the token of a pending invitation and extends its expiry
func (m *TeamMember) RotateInvite(token string) error {
	if m.Status != MemberStatusInvited {
		return shared.NewDomainError("INVITE_NOT_PENDING", "Only pending invitations can be resent")
	}
	if token == "" {
		return shared.NewDomainError("INVALID_INVITE_TOKEN", "Invite token cannot be empty")
	}
	now := time.Now()
	expires := now.Add(InviteTTL)
	m.InviteTokenHash = HashInviteToken(token)
	m.InvitedAt = &now
	m.InviteExpiresAt = &expires
	m.UpdatedAt = now
	m.IncrementVersion()
	return nil
}

// ChangeRole assigns a new role
func (m *TeamMember) ChangeRole(role Role) error {
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}
	if m.Status == MemberStatusRemoved {
		return shared.NewDomainError("MEMBER_REMOVED", "Cannot change the role of a removed member")
	}
	if m.Role == role {
		return nil
	}
	old := m.Role
	m.Role = role
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMemberRoleChangedEvent(m, old))
	return nil
}

// Remove takes the member out of the organization
func (m *TeamMember) Remove() error {
	if m.Status == MemberStatusRemoved {
		return shared.NewDomainError("MEMBER_REMOVED", "Member is already removed")
	}
	now := time.Now()
	m.Status = MemberStatusRemoved
	m.InviteTokenHash = ""
	m.RemovedAt = &now
	m.UpdatedAt = now
	m.IncrementVersion()

	m.AddDomainEvent(NewMemberRemovedEvent(m))
	return nil
}

// IsActiveOwner reports whether this member is an active owner
func (m *TeamMember) IsActiveOwner() bool {
	return m.Status == MemberStatusActive && m.Role == RoleOwner
}

// IsUser reports whether the membership belongs to userID
func (m *TeamMember) IsUser(userID uuid.UUID) bool {
	return m.UserID != nil && *m.UserID == userID
}
