package identity

import (
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeOrganization = "Organization"
	AggregateTypeUser         = "User"
	AggregateTypeTeamMember   = "TeamMember"
	AggregateTypeUserSettings = "UserSettings"
)

// Event type constants
const (
	EventTypeOrganizationCreated = "OrganizationCreated"
	EventTypeUserCreated         = "UserCreated"
	EventTypeUserPasswordChanged = "UserPasswordChanged"
	EventTypeMemberInvited       = "MemberInvited"
	EventTypeMemberJoined        = "MemberJoined"
	EventTypeMemberRoleChanged   = "MemberRoleChanged"
	EventTypeMemberRemoved       = "MemberRemoved"
	EventTypeSettingsChanged     = "SettingsChanged"
)

// OrganizationCreatedEvent is published when a new organization signs up
type OrganizationCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewOrganizationCreatedEvent creates a new OrganizationCreatedEvent
func NewOrganizationCreatedEvent(org *Organization) *OrganizationCreatedEvent {
	return &OrganizationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrganizationCreated, AggregateTypeOrganization, org.ID, org.ID),
		Name:            org.Name,
		Slug:            org.Slug,
	}
}

// UserCreatedEvent is published when a user account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(u *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, u.ID, u.OrgID),
		UserID:          u.ID,
		Email:           u.Email,
	}
}

// UserPasswordChangedEvent is published when a password changes
type UserPasswordChangedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewUserPasswordChangedEvent creates a new UserPasswordChangedEvent
func NewUserPasswordChangedEvent(u *User) *UserPasswordChangedEvent {
	return &UserPasswordChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserPasswordChanged, AggregateTypeUser, u.ID, u.OrgID),
		UserID:          u.ID,
	}
}

// MemberInvitedEvent is published when someone is invited to the team
type MemberInvitedEvent struct {
	shared.BaseDomainEvent
	MemberID uuid.UUID `json:"member_id"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
}

// NewMemberInvitedEvent creates a new MemberInvitedEvent
func NewMemberInvitedEvent(m *TeamMember) *MemberInvitedEvent {
	return &MemberInvitedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberInvited, AggregateTypeTeamMember, m.ID, m.OrgID),
		MemberID:        m.ID,
		Email:           m.Email,
		Role:            m.Role,
	}
}

// MemberJoinedEvent is published when a membership becomes active
type MemberJoinedEvent struct {
	shared.BaseDomainEvent
	MemberID uuid.UUID  `json:"member_id"`
	UserID   *uuid.UUID `json:"user_id"`
	Role     Role       `json:"role"`
}

// NewMemberJoinedEvent creates a new MemberJoinedEvent
func NewMemberJoinedEvent(m *TeamMember) *MemberJoinedEvent {
	return &MemberJoinedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberJoined, AggregateTypeTeamMember, m.ID, m.OrgID),
		MemberID:        m.ID,
		UserID:          m.UserID,
		Role:            m.Role,
	}
}

// MemberRoleChangedEvent is published when a member's role changes
type MemberRoleChangedEvent struct {
	shared.BaseDomainEvent
	MemberID uuid.UUID `json:"member_id"`
	OldRole  Role      `json:"old_role"`
	NewRole  Role      `json:"new_role"`
}

// NewMemberRoleChangedEvent creates a new MemberRoleChangedEvent
func NewMemberRoleChangedEvent(m *TeamMember, old Role) *MemberRoleChangedEvent {
	return &MemberRoleChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberRoleChanged, AggregateTypeTeamMember, m.ID, m.OrgID),
		MemberID:        m.ID,
		OldRole:         old,
		NewRole:         m.Role,
	}
}

// MemberRemovedEvent is published when a member leaves the organization
type MemberRemovedEvent struct {
	shared.BaseDomainEvent
	MemberID uuid.UUID  `json:"member_id"`
	UserID   *uuid.UUID `json:"user_id,omitempty"`
}

// NewMemberRemovedEvent creates a new MemberRemovedEvent
func NewMemberRemovedEvent(m *TeamMember) *MemberRemovedEvent {
	return &MemberRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberRemoved, AggregateTypeTeamMember, m.ID, m.OrgID),
		MemberID:        m.ID,
		UserID:          m.UserID,
	}
}

// SettingsChangedEvent is published when a user's preferences or dashboard
// widgets change
type SettingsChangedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewSettingsChangedEvent creates a new SettingsChangedEvent
func NewSettingsChangedEvent(s *UserSettings) *SettingsChangedEvent {
	return &SettingsChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSettingsChanged, AggregateTypeUserSettings, s.ID, s.OrgID),
		UserID:          s.UserID,
	}
}
