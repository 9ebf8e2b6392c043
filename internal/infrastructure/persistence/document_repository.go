package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/document"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDocumentRepository implements document.DocumentRepository
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new document repository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByIDForOrg finds a document that has not been deleted
func (r *GormDocumentRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*document.Document, error) {
	var m models.DocumentModel
	err := conn(ctx, r.db).
		Where("org_id = ? AND id = ? AND status <> ?", orgID, id, document.StatusDeleted).
		First(&m).Error
	if err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindAllForOrg lists active documents with filtering and pagination
func (r *GormDocumentRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]document.Document, error) {
	var rows []models.DocumentModel
	query := r.filtered(conn(ctx, r.db).Model(&models.DocumentModel{}), orgID, filter)
	if err := paginate(query, filter, documentSort, "created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDocuments(rows), nil
}

// CountForOrg counts active documents matching the filter
func (r *GormDocumentRepository) CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(conn(ctx, r.db).Model(&models.DocumentModel{}), orgID, filter).Count(&count).Error
	return count, err
}

// FindStalePending returns pending uploads older than cutoff
func (r *GormDocumentRepository) FindStalePending(ctx context.Context, orgID uuid.UUID, cutoff time.Time, limit int) ([]document.Document, error) {
	var rows []models.DocumentModel
	query := conn(ctx, r.db).
		Where("org_id = ? AND status = ? AND created_at < ?", orgID, document.StatusPending, cutoff.UTC()).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDocuments(rows), nil
}

// Save creates or updates a document
func (r *GormDocumentRepository) Save(ctx context.Context, d *document.Document) error {
	return saveVersioned(conn(ctx, r.db), models.DocumentModelFromDomain(d), d.ID, d.Version)
}

// HardDelete removes the document row
func (r *GormDocumentRepository) HardDelete(ctx context.Context, orgID, id uuid.UUID) error {
	return deleteForOrg(conn(ctx, r.db), &models.DocumentModel{}, orgID, id)
}

func (r *GormDocumentRepository) filtered(query *gorm.DB, orgID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("org_id = ? AND status = ?", orgID, document.StatusActive)
	query = applyEquals(query, filter, filterColumns{
		"entity_type": "entity_type",
		"entity_id":   "entity_id",
		"category":    "category",
	})
	return searchAny(query, filter.Search, "name", "file_name")
}

func toDocuments(rows []models.DocumentModel) []document.Document {
	out := make([]document.Document, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

var _ document.DocumentRepository = (*GormDocumentRepository)(nil)
