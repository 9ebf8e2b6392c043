package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/inspection"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInspectionRepository implements inspection.InspectionRepository.
// Items live in their own table and are replaced wholesale on save.
type GormInspectionRepository struct {
	db *gorm.DB
}

// NewGormInspectionRepository creates a new inspection repository
func NewGormInspectionRepository(db *gorm.DB) *GormInspectionRepository {
	return &GormInspectionRepository{db: db}
}

// FindByIDForOrg finds an inspection with its items
func (r *GormInspectionRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*inspection.Inspection, error) {
	db := conn(ctx, r.db)
	var m models.InspectionModel
	if err := db.First(&m, "org_id = ? AND id = ?", orgID, id).Error; err != nil {
		return nil, notFound(err)
	}
	var items []models.InspectionItemModel
	if err := db.Where("inspection_id = ?", id).Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return m.ToDomain(items), nil
}

// FindAllForOrg lists inspections without their items
func (r *GormInspectionRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]inspection.Inspection, error) {
	var rows []models.InspectionModel
	query := r.filtered(conn(ctx, r.db).Model(&models.InspectionModel{}), orgID, filter)
	if err := paginate(query, filter, inspectionSort, "scheduled_date").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]inspection.Inspection, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain(nil)
	}
	return out, nil
}

// CountForOrg counts inspections matching the filter
func (r *GormInspectionRepository) CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(conn(ctx, r.db).Model(&models.InspectionModel{}), orgID, filter).Count(&count).Error
	return count, err
}

// Save writes the inspection and replaces its items in one transaction
func (r *GormInspectionRepository) Save(ctx context.Context, in *inspection.Inspection) error {
	m, items := models.InspectionModelFromDomain(in)
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := saveVersioned(tx, m, in.ID, in.Version); err != nil {
			return err
		}
		if err := tx.Where("inspection_id = ?", in.ID).Delete(&models.InspectionItemModel{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return constraintError(tx.Create(&items).Error)
	})
}

// DeleteForOrg deletes an inspection and its items
func (r *GormInspectionRepository) DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("org_id = ? AND inspection_id = ?", orgID, id).Delete(&models.InspectionItemModel{}).Error; err != nil {
			return err
		}
		return deleteForOrg(tx, &models.InspectionModel{}, orgID, id)
	})
}

func (r *GormInspectionRepository) filtered(query *gorm.DB, orgID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("org_id = ?", orgID)
	query = applyEquals(query, filter, filterColumns{
		"status":      "status",
		"type":        "type",
		"property_id": "property_id",
		"unit_id":     "unit_id",
	})
	return applyDateRange(query, filter, "scheduled_date")
}

var _ inspection.InspectionRepository = (*GormInspectionRepository)(nil)
