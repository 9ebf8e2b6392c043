package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyRepository implements property.PropertyRepository
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new property repository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByIDForOrg finds a property by ID within an organization
func (r *GormPropertyRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*property.Property, error) {
	var m models.PropertyModel
	if err := conn(ctx, r.db).First(&m, "org_id = ? AND id = ?", orgID, id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindAllForOrg lists properties with filtering and pagination
func (r *GormPropertyRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]property.Property, error) {
	var rows []models.PropertyModel
	query := r.filtered(conn(ctx, r.db).Model(&models.PropertyModel{}), orgID, filter)
	if err := paginate(query, filter, propertySort, "created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]property.Property, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// CountForOrg counts properties matching the filter
func (r *GormPropertyRepository) CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(conn(ctx, r.db).Model(&models.PropertyModel{}), orgID, filter).Count(&count).Error
	return count, err
}

// Save creates or updates a property
func (r *GormPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	return saveVersioned(conn(ctx, r.db), models.PropertyModelFromDomain(p), p.ID, p.Version)
}

// DeleteForOrg deletes a property within an organization
func (r *GormPropertyRepository) DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error {
	return deleteForOrg(conn(ctx, r.db), &models.PropertyModel{}, orgID, id)
}

func (r *GormPropertyRepository) filtered(query *gorm.DB, orgID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("org_id = ?", orgID)
	query = applyEquals(query, filter, filterColumns{"status": "status", "type": "type"})
	if city, ok := filter.Filters["city"].(string); ok && city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}
	return searchAny(query, filter.Search, "name", "street", "city")
}

// GormUnitRepository implements property.UnitRepository
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new unit repository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByIDForOrg finds a unit by ID within an organization
func (r *GormUnitRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*property.Unit, error) {
	var m models.UnitModel
	if err := conn(ctx, r.db).First(&m, "org_id = ? AND id = ?", orgID, id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindAllForOrg lists units with filtering and pagination
func (r *GormUnitRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]property.Unit, error) {
	var rows []models.UnitModel
	query := r.filtered(conn(ctx, r.db).Model(&models.UnitModel{}), orgID, filter)
	if err := paginate(query, filter, unitSort, "unit_number").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]property.Unit, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// CountForOrg counts units matching the filter
func (r *GormUnitRepository) CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(conn(ctx, r.db).Model(&models.UnitModel{}), orgID, filter).Count(&count).Error
	return count, err
}

// CountByProperty counts the units of a property
func (r *GormUnitRepository) CountByProperty(ctx context.Context, orgID, propertyID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.UnitModel{}).
		Where("org_id = ? AND property_id = ?", orgID, propertyID).
		Count(&count).Error
	return count, err
}

// CountByStatus groups the organization's units by status
func (r *GormUnitRepository) CountByStatus(ctx context.Context, orgID uuid.UUID) (property.UnitStatusCounts, error) {
	var rows []struct {
		Status property.UnitStatus
		Count  int64
	}
	err := conn(ctx, r.db).Model(&models.UnitModel{}).
		Select("status, COUNT(*) AS count").
		Where("org_id = ?", orgID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(property.UnitStatusCounts, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ExistsByNumber checks whether a unit number is already used in the property
func (r *GormUnitRepository) ExistsByNumber(ctx context.Context, orgID, propertyID uuid.UUID, unitNumber string, excludeID *uuid.UUID) (bool, error) {
	query := conn(ctx, r.db).Model(&models.UnitModel{}).
		Where("org_id = ? AND property_id = ? AND LOWER(unit_number) = LOWER(?)", orgID, propertyID, unitNumber)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, u *property.Unit) error {
	return saveVersioned(conn(ctx, r.db), models.UnitModelFromDomain(u), u.ID, u.Version)
}

// DeleteForOrg deletes a unit within an organization
func (r *GormUnitRepository) DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error {
	return deleteForOrg(conn(ctx, r.db), &models.UnitModel{}, orgID, id)
}

func (r *GormUnitRepository) filtered(query *gorm.DB, orgID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("org_id = ?", orgID)
	query = applyEquals(query, filter, filterColumns{"status": "status", "property_id": "property_id"})
	return searchAny(query, filter.Search, "unit_number", "notes")
}

var (
	_ property.PropertyRepository = (*GormPropertyRepository)(nil)
	_ property.UnitRepository     = (*GormUnitRepository)(nil)
)
