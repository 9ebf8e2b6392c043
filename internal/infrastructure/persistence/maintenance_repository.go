package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMaintenanceRepository implements maintenance.RequestRepository
type GormMaintenanceRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceRepository creates a new maintenance request repository
func NewGormMaintenanceRepository(db *gorm.DB) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{db: db}
}

// FindByIDForOrg finds a request by ID within an organization
func (r *GormMaintenanceRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*maintenance.Request, error) {
	var m models.MaintenanceRequestModel
	if err := conn(ctx, r.db).First(&m, "org_id = ? AND id = ?", orgID, id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindAllForOrg lists requests with search, filtering and pagination
func (r *GormMaintenanceRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]maintenance.Request, error) {
	var rows []models.MaintenanceRequestModel
	query := r.filtered(conn(ctx, r.db).Model(&models.MaintenanceRequestModel{}), orgID, filter)
	if err := paginate(query, filter, maintenanceSort, "created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]maintenance.Request, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// CountForOrg counts requests matching the filter
func (r *GormMaintenanceRepository) CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(conn(ctx, r.db).Model(&models.MaintenanceRequestModel{}), orgID, filter).Count(&count).Error
	return count, err
}

// CountOpenByPriority groups unfinished requests by priority
func (r *GormMaintenanceRepository) CountOpenByPriority(ctx context.Context, orgID uuid.UUID) (maintenance.PriorityCounts, error) {
	var rows []struct {
		Priority maintenance.Priority
		Count    int64
	}
	err := conn(ctx, r.db).Model(&models.MaintenanceRequestModel{}).
		Select("priority, COUNT(*) AS count").
		Where("org_id = ? AND status NOT IN ?", orgID,
			[]maintenance.Status{maintenance.StatusCompleted, maintenance.StatusCancelled}).
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(maintenance.PriorityCounts, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}

// Save creates or updates a request
func (r *GormMaintenanceRepository) Save(ctx context.Context, req *maintenance.Request) error {
	return saveVersioned(conn(ctx, r.db), models.MaintenanceRequestModelFromDomain(req), req.ID, req.Version)
}

// DeleteForOrg deletes a request within an organization
func (r *GormMaintenanceRepository) DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error {
	return deleteForOrg(conn(ctx, r.db), &models.MaintenanceRequestModel{}, orgID, id)
}

func (r *GormMaintenanceRepository) filtered(query *gorm.DB, orgID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("org_id = ?", orgID)
	query = applyEquals(query, filter, filterColumns{
		"status":      "status",
		"priority":    "priority",
		"category":    "category",
		"property_id": "property_id",
		"unit_id":     "unit_id",
		"assigned_to": "assigned_to",
	})
	return searchAny(query, filter.Search, "title", "description")
}

var _ maintenance.RequestRepository = (*GormMaintenanceRepository)(nil)
