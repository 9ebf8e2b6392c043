package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// OrganizationRepository defines persistence for organizations
type OrganizationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindBySlug(ctx context.Context, slug string) (*Organization, error)
	// FindActiveIDs returns the ids of every active organization
	FindActiveIDs(ctx context.Context) ([]uuid.UUID, error)
	Save(ctx context.Context, org *Organization) error
}

// UserRepository defines persistence for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*User, error)
	// FindByEmail looks up a user across all organizations; emails are globally unique
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) error
}

// TeamMemberRepository defines persistence for team memberships
type TeamMemberRepository interface {
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*TeamMember, error)
	FindByUser(ctx context.Context, orgID, userID uuid.UUID) (*TeamMember, error)
	// FindPendingByEmail returns the pending invitations addressed to email
	FindPendingByEmail(ctx context.Context, email string) ([]TeamMember, error)
	// FindCurrentByEmail returns the invited or active member for email in the org
	FindCurrentByEmail(ctx context.Context, orgID uuid.UUID, email string) (*TeamMember, error)
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]TeamMember, error)
	CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)
	CountActiveOwners(ctx context.Context, orgID uuid.UUID) (int64, error)
	Save(ctx context.Context, member *TeamMember) error
}

// SettingsRepository defines persistence for user settings
type SettingsRepository interface {
	FindByUser(ctx context.Context, orgID, userID uuid.UUID) (*UserSettings, error)
	Save(ctx context.Context, settings *UserSettings) error
}
