package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTenantRepository implements leasing.TenantRepository
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new tenant repository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByIDForOrg finds a tenant by ID within an organization
func (r *GormTenantRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*leasing.Tenant, error) {
	var m models.TenantModel
	if err := conn(ctx, r.db).First(&m, "org_id = ? AND id = ?", orgID, id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindAllForOrg lists tenants with search, filtering and pagination
func (r *GormTenantRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]leasing.Tenant, error) {
	var rows []models.TenantModel
	query := r.filtered(conn(ctx, r.db).Model(&models.TenantModel{}), orgID, filter)
	if err := paginate(query, filter, tenantSort, "created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]leasing.Tenant, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// CountForOrg counts tenants matching the filter
func (r *GormTenantRepository) CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(conn(ctx, r.db).Model(&models.TenantModel{}), orgID, filter).Count(&count).Error
	return count, err
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, t *leasing.Tenant) error {
	return saveVersioned(conn(ctx, r.db), models.TenantModelFromDomain(t), t.ID, t.Version)
}

// DeleteForOrg deletes a tenant within an organization
func (r *GormTenantRepository) DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error {
	return deleteForOrg(conn(ctx, r.db), &models.TenantModel{}, orgID, id)
}

func (r *GormTenantRepository) filtered(query *gorm.DB, orgID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("org_id = ?", orgID)
	query = applyEquals(query, filter, filterColumns{"status": "status"})
	return searchAny(query, filter.Search, "first_name", "last_name", "email", "phone")
}

// GormLeaseRepository implements leasing.LeaseRepository
type GormLeaseRepository struct {
	db *gorm.DB
}

// NewGormLeaseRepository creates a new lease repository
func NewGormLeaseRepository(db *gorm.DB) *GormLeaseRepository {
	return &GormLeaseRepository{db: db}
}

// FindByIDForOrg finds a lease by ID within an organization
func (r *GormLeaseRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*leasing.Lease, error) {
	var m models.LeaseModel
	if err := conn(ctx, r.db).First(&m, "org_id = ? AND id = ?", orgID, id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindAllForOrg lists leases with filtering and pagination
func (r *GormLeaseRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]leasing.Lease, error) {
	var rows []models.LeaseModel
	query := r.filtered(conn(ctx, r.db).Model(&models.LeaseModel{}), orgID, filter)
	if err := paginate(query, filter, leaseSort, "start_date").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toLeases(rows), nil
}

// CountForOrg counts leases matching the filter
func (r *GormLeaseRepository) CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(conn(ctx, r.db).Model(&models.LeaseModel{}), orgID, filter).Count(&count).Error
	return count, err
}

// FindActiveByUnit returns the active leases on a unit
func (r *GormLeaseRepository) FindActiveByUnit(ctx context.Context, orgID, unitID uuid.UUID) ([]leasing.Lease, error) {
	var rows []models.LeaseModel
	err := conn(ctx, r.db).
		Where("org_id = ? AND unit_id = ? AND status = ?", orgID, unitID, leasing.LeaseStatusActive).
		Order("start_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toLeases(rows), nil
}

// CountActiveByTenant counts a tenant's active leases
func (r *GormLeaseRepository) CountActiveByTenant(ctx context.Context, orgID, tenantID uuid.UUID, excludeLeaseID *uuid.UUID) (int64, error) {
	query := conn(ctx, r.db).Model(&models.LeaseModel{}).
		Where("org_id = ? AND tenant_id = ? AND status = ?", orgID, tenantID, leasing.LeaseStatusActive)
	if excludeLeaseID != nil {
		query = query.Where("id <> ?", *excludeLeaseID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// FindExpired returns active leases that ended before asOf
func (r *GormLeaseRepository) FindExpired(ctx context.Context, orgID uuid.UUID, asOf time.Time) ([]leasing.Lease, error) {
	var rows []models.LeaseModel
	err := conn(ctx, r.db).
		Where("org_id = ? AND status = ? AND end_date < ?", orgID, leasing.LeaseStatusActive, asOf.UTC()).
		Order("end_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toLeases(rows), nil
}

// Save creates or updates a lease
func (r *GormLeaseRepository) Save(ctx context.Context, l *leasing.Lease) error {
	return saveVersioned(conn(ctx, r.db), models.LeaseModelFromDomain(l), l.ID, l.Version)
}

// DeleteForOrg deletes a lease within an organization
func (r *GormLeaseRepository) DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error {
	return deleteForOrg(conn(ctx, r.db), &models.LeaseModel{}, orgID, id)
}

func (r *GormLeaseRepository) filtered(query *gorm.DB, orgID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("org_id = ?", orgID)
	query = applyEquals(query, filter, filterColumns{
		"status":      "status",
		"property_id": "property_id",
		"unit_id":     "unit_id",
		"tenant_id":   "tenant_id",
	})
	if before, ok := timeValue(filter.Filters["expiring_before"]); ok {
		query = query.Where("status = ? AND end_date <= ?", leasing.LeaseStatusActive, before.UTC())
	}
	return query
}

func toLeases(rows []models.LeaseModel) []leasing.Lease {
	out := make([]leasing.Lease, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

var (
	_ leasing.TenantRepository = (*GormTenantRepository)(nil)
	_ leasing.LeaseRepository  = (*GormLeaseRepository)(nil)
)
