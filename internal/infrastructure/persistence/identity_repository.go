package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrganizationRepository implements identity.OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new organization repository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Organization, error) {
	var m models.OrganizationModel
	if err := conn(ctx, r.db).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindBySlug finds an organization by its slug
func (r *GormOrganizationRepository) FindBySlug(ctx context.Context, slug string) (*identity.Organization, error) {
	var m models.OrganizationModel
	if err := conn(ctx, r.db).First(&m, "slug = ?", strings.ToLower(slug)).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindActiveIDs returns the ids of all active organizations
func (r *GormOrganizationRepository) FindActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := conn(ctx, r.db).Model(&models.OrganizationModel{}).
		Where("status = ?", identity.OrganizationStatusActive).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// Save creates or updates an organization
func (r *GormOrganizationRepository) Save(ctx context.Context, org *identity.Organization) error {
	m := models.OrganizationModelFromDomain(org)
	return saveVersioned(conn(ctx, r.db), m, org.ID, org.Version)
}

// GormUserRepository implements identity.UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var m models.UserModel
	if err := conn(ctx, r.db).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindByIDForOrg finds a user by ID within an organization
func (r *GormUserRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*identity.User, error) {
	var m models.UserModel
	if err := conn(ctx, r.db).First(&m, "org_id = ? AND id = ?", orgID, id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindByEmail finds a user by normalized email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var m models.UserModel
	if err := conn(ctx, r.db).First(&m, "email = ?", identity.NormalizeEmail(email)).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// ExistsByEmail reports whether any user has the email
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", identity.NormalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	m := models.UserModelFromDomain(user)
	return saveVersioned(conn(ctx, r.db), m, user.ID, user.Version)
}

// GormTeamMemberRepository implements identity.TeamMemberRepository
type GormTeamMemberRepository struct {
	db *gorm.DB
}

// NewGormTeamMemberRepository creates a new team member repository
func NewGormTeamMemberRepository(db *gorm.DB) *GormTeamMemberRepository {
	return &GormTeamMemberRepository{db: db}
}

// FindByIDForOrg finds a membership by ID within an organization
func (r *GormTeamMemberRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*identity.TeamMember, error) {
	var m models.TeamMemberModel
	if err := conn(ctx, r.db).First(&m, "org_id = ? AND id = ?", orgID, id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindByUser finds the non-removed membership of a user in an organization
func (r *GormTeamMemberRepository) FindByUser(ctx context.Context, orgID, userID uuid.UUID) (*identity.TeamMember, error) {
	var m models.TeamMemberModel
	err := conn(ctx, r.db).
		Where("org_id = ? AND user_id = ? AND status <> ?", orgID, userID, identity.MemberStatusRemoved).
		First(&m).Error
	if err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindPendingByEmail returns invitations for email across organizations
func (r *GormTeamMemberRepository) FindPendingByEmail(ctx context.Context, email string) ([]identity.TeamMember, error) {
	var rows []models.TeamMemberModel
	err := conn(ctx, r.db).
		Where("email = ? AND status = ?", identity.NormalizeEmail(email), identity.MemberStatusInvited).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toTeamMembers(rows), nil
}

// FindCurrentByEmail returns the invited or active membership for email
func (r *GormTeamMemberRepository) FindCurrentByEmail(ctx context.Context, orgID uuid.UUID, email string) (*identity.TeamMember, error) {
	var m models.TeamMemberModel
	err := conn(ctx, r.db).
		Where("org_id = ? AND email = ? AND status IN ?", orgID, identity.NormalizeEmail(email),
			[]identity.MemberStatus{identity.MemberStatusInvited, identity.MemberStatusActive}).
		First(&m).Error
	if err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindAllForOrg lists memberships. Supported filters: status, role.
// Removed members are hidden unless status asks for them.
func (r *GormTeamMemberRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]identity.TeamMember, error) {
	var rows []models.TeamMemberModel
	query := r.filtered(conn(ctx, r.db).Model(&models.TeamMemberModel{}), orgID, filter)
	if err := paginate(query, filter, teamMemberSort, "created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toTeamMembers(rows), nil
}

// CountForOrg counts memberships matching the filter
func (r *GormTeamMemberRepository) CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(conn(ctx, r.db).Model(&models.TeamMemberModel{}), orgID, filter).Count(&count).Error
	return count, err
}

// CountActiveOwners counts the active owners of an organization. The owner
// rows stay locked until the surrounding transaction ends, so concurrent
// demotions of the last two owners serialize on them.
func (r *GormTeamMemberRepository) CountActiveOwners(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var ids []uuid.UUID
	err := conn(ctx, r.db).Model(&models.TeamMemberModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("org_id = ? AND role = ? AND status = ?", orgID, identity.RoleOwner, identity.MemberStatusActive).
		Pluck("id", &ids).Error
	return int64(len(ids)), err
}

// Save creates or updates a membership
func (r *GormTeamMemberRepository) Save(ctx context.Context, member *identity.TeamMember) error {
	m := models.TeamMemberModelFromDomain(member)
	return saveVersioned(conn(ctx, r.db), m, member.ID, member.Version)
}

func (r *GormTeamMemberRepository) filtered(query *gorm.DB, orgID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("org_id = ?", orgID)
	if _, ok := filter.Filters["status"]; !ok {
		query = query.Where("status <> ?", identity.MemberStatusRemoved)
	}
	query = applyEquals(query, filter, filterColumns{"status": "status", "role": "role"})
	return searchAny(query, filter.Search, "name", "email")
}

func toTeamMembers(rows []models.TeamMemberModel) []identity.TeamMember {
	out := make([]identity.TeamMember, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// GormSettingsRepository implements identity.SettingsRepository
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new settings repository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// FindByUser finds the settings of a user in an organization
func (r *GormSettingsRepository) FindByUser(ctx context.Context, orgID, userID uuid.UUID) (*identity.UserSettings, error) {
	var m models.UserSettingsModel
	if err := conn(ctx, r.db).First(&m, "org_id = ? AND user_id = ?", orgID, userID).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// Save creates or updates user settings
func (r *GormSettingsRepository) Save(ctx context.Context, settings *identity.UserSettings) error {
	m := models.UserSettingsModelFromDomain(settings)
	return saveVersioned(conn(ctx, r.db), m, settings.ID, settings.Version)
}

var (
	_ identity.OrganizationRepository = (*GormOrganizationRepository)(nil)
	_ identity.UserRepository         = (*GormUserRepository)(nil)
	_ identity.TeamMemberRepository   = (*GormTeamMemberRepository)(nil)
	_ identity.SettingsRepository     = (*GormSettingsRepository)(nil)
)
