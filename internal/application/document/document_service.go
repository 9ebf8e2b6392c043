package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/document"
	"github.com/propertyhub/backend/internal/domain/inspection"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const purgeBatchSize = 100

// EntityRepositories resolves the records documents can be attached to.
// A nil repository skips the existence check for its entity type.
type EntityRepositories struct {
	Properties  property.PropertyRepository
	Units       property.UnitRepository
	Tenants     leasing.TenantRepository
	Leases      leasing.LeaseRepository
	Maintenance maintenance.RequestRepository
	Inspections inspection.InspectionRepository
}

func (r EntityRepositories) exists(ctx context.Context, orgID uuid.UUID, entityType document.EntityType, id uuid.UUID) error {
	var err error
	switch entityType {
	case document.EntityTypeProperty:
		if r.Properties != nil {
			_, err = r.Properties.FindByIDForOrg(ctx, orgID, id)
		}
	case document.EntityTypeUnit:
		if r.Units != nil {
			_, err = r.Units.FindByIDForOrg(ctx, orgID, id)
		}
	case document.EntityTypeTenant:
		if r.Tenants != nil {
			_, err = r.Tenants.FindByIDForOrg(ctx, orgID, id)
		}
	case document.EntityTypeLease:
		if r.Leases != nil {
			_, err = r.Leases.FindByIDForOrg(ctx, orgID, id)
		}
	case document.EntityTypeMaintenance:
		if r.Maintenance != nil {
			_, err = r.Maintenance.FindByIDForOrg(ctx, orgID, id)
		}
	case document.EntityTypeInspection:
		if r.Inspections != nil {
			_, err = r.Inspections.FindByIDForOrg(ctx, orgID, id)
		}
	}
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewDomainError("INVALID_ENTITY", "Attached "+string(entityType)+" does not exist")
	}
	return err
}

// URLExpiry controls how long presigned URLs stay valid
type URLExpiry struct {
	Upload   time.Duration
	Download time.Duration
}

// DocumentService manages document metadata and presigned storage access
type DocumentService struct {
	docRepo   document.DocumentRepository
	storage   document.ObjectStorage
	entities  EntityRepositories
	expiry    URLExpiry
	publisher *appevent.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	docRepo document.DocumentRepository,
	storage document.ObjectStorage,
	entities EntityRepositories,
	expiry URLExpiry,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *DocumentService {
	if expiry.Upload <= 0 {
		expiry.Upload = 15 * time.Minute
	}
	if expiry.Download <= 0 {
		expiry.Download = 5 * time.Minute
	}
	return &DocumentService{
		docRepo:   docRepo,
		storage:   storage,
		entities:  entities,
		expiry:    expiry,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// InitiateUpload records a pending document and returns a presigned PUT URL
func (s *DocumentService) InitiateUpload(ctx context.Context, orgID, userID uuid.UUID, req InitiateUploadRequest) (*UploadResponse, error) {
	doc, err := document.NewPendingDocument(orgID, userID, req.params())
	if err != nil {
		return nil, err
	}
	if doc.EntityID != nil {
		if err := s.entities.exists(ctx, orgID, doc.EntityType, *doc.EntityID); err != nil {
			return nil, err
		}
	}

	url, err := s.storage.PresignPut(ctx, doc.StorageKey, doc.ContentType, doc.FileSize, s.expiry.Upload)
	if err != nil {
		s.logger.Error("Failed to presign upload", zap.String("key", doc.StorageKey), zap.Error(err))
		return nil, fmt.Errorf("presign upload: %w", err)
	}
	if err := s.docRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save pending document", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Upload initiated",
		zap.String("document_id", doc.ID.String()),
		zap.String("entity_type", string(doc.EntityType)),
		zap.Int64("size", doc.FileSize))

	return &UploadResponse{
		Document:  ToDocumentResponse(doc),
		UploadURL: url,
		Method:    "PUT",
		Headers:   map[string]string{"Content-Type": doc.ContentType},
		ExpiresAt: s.now().Add(s.expiry.Upload),
	}, nil
}

// ConfirmUpload activates a pending document once its object is in storage
func (s *DocumentService) ConfirmUpload(ctx context.Context, orgID, id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.docRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if doc.Status != document.StatusPending {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code, "Only pending uploads can be confirmed")
	}

	found, size, err := s.storage.ObjectExists(ctx, doc.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("check uploaded object: %w", err)
	}
	if !found {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "The file has not been uploaded yet")
	}
	if size > document.MaxFileSize {
		s.deleteObject(ctx, doc.StorageKey)
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "File exceeds the 50 MiB limit")
	}
	if size > 0 {
		doc.FileSize = size
	}

	if err := doc.Confirm(); err != nil {
		return nil, err
	}
	if err := s.docRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to confirm document", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, doc)

	resp := ToDocumentResponse(doc)
	return &resp, nil
}

// GetByID retrieves a document that is not deleted
func (s *DocumentService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.docRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	resp := ToDocumentResponse(doc)
	return &resp, nil
}

// GetDownloadURL returns a presigned GET URL for an active document
func (s *DocumentService) GetDownloadURL(ctx context.Context, orgID, id uuid.UUID) (*DownloadResponse, error) {
	doc, err := s.docRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if !doc.IsActive() {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code, "Document upload has not been confirmed")
	}
	url, err := s.storage.PresignGet(ctx, doc.StorageKey, doc.FileName, s.expiry.Download)
	if err != nil {
		return nil, fmt.Errorf("presign download: %w", err)
	}
	return &DownloadResponse{
		URL:       url,
		FileName:  doc.FileName,
		ExpiresAt: s.now().Add(s.expiry.Download),
	}, nil
}

// List retrieves active documents with filtering and pagination
func (s *DocumentService) List(ctx context.Context, orgID uuid.UUID, filter DocumentListFilter) ([]DocumentResponse, int64, error) {
	f := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)
	if filter.EntityType != "" {
		f.Filters["entity_type"] = filter.EntityType
	}
	if filter.Category != "" {
		f.Filters["category"] = filter.Category
	}
	if filter.EntityID != "" {
		id, err := uuid.Parse(filter.EntityID)
		if err != nil {
			return nil, 0, shared.NewDomainError(shared.ErrInvalidInput.Code, "Invalid entity_id")
		}
		f.Filters["entity_id"] = id
	}

	docs, err := s.docRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.docRepo.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	return ToDocumentResponses(docs), total, nil
}

// Update renames or recategorizes a document
func (s *DocumentService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateDocumentRequest) (*DocumentResponse, error) {
	doc, err := s.docRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := doc.Rename(req.Name, document.Category(req.Category)); err != nil {
		return nil, err
	}
	if err := s.docRepo.Save(ctx, doc); err != nil {
		return nil, err
	}
	resp := ToDocumentResponse(doc)
	return &resp, nil
}

// Delete soft-deletes a document and removes its object on a best-effort basis
func (s *DocumentService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	doc, err := s.docRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return err
	}
	if err := doc.MarkDeleted(); err != nil {
		return err
	}
	if err := s.docRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to delete document", zap.Error(err))
		return err
	}

	s.deleteObject(ctx, doc.StorageKey)
	s.publisher.Publish(ctx, doc)

	s.logger.Info("Document deleted", zap.String("document_id", doc.ID.String()))
	return nil
}

// PurgeStaleUploads removes pending uploads that were never confirmed.
// It reports how many were removed.
func (s *DocumentService) PurgeStaleUploads(ctx context.Context, orgID uuid.UUID) (int, error) {
	cutoff := s.now().Add(-document.StaleUploadAge)
	purged := 0
	for {
		if err := ctx.Err(); err != nil {
			return purged, err
		}
		docs, err := s.docRepo.FindStalePending(ctx, orgID, cutoff, purgeBatchSize)
		if err != nil {
			return purged, fmt.Errorf("find stale uploads: %w", err)
		}
		for i := range docs {
			s.deleteObject(ctx, docs[i].StorageKey)
			if err := s.docRepo.HardDelete(ctx, orgID, docs[i].ID); err != nil && !errors.Is(err, shared.ErrNotFound) {
				return purged, fmt.Errorf("delete stale upload %s: %w", docs[i].ID, err)
			}
			purged++
		}
		if len(docs) < purgeBatchSize {
			break
		}
	}

	if purged > 0 {
		s.logger.Info("Stale uploads purged",
			zap.String("org_id", orgID.String()),
			zap.Int("count", purged))
	}
	return purged, nil
}

func (s *DocumentService) deleteObject(ctx context.Context, key string) {
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		s.logger.Warn("Failed to delete stored object", zap.String("key", key), zap.Error(err))
	}
}
