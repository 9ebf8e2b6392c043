package document

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// DocumentRepository defines the interface for document persistence
type DocumentRepository interface {
	// FindByIDForOrg finds a document that is not deleted
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*Document, error)

	// FindAllForOrg lists active documents. Supported filters: entity_type,
	// entity_id, category. Search matches name and file name.
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Document, error)

	CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// FindStalePending returns pending uploads created before cutoff, up to limit
	FindStalePending(ctx context.Context, orgID uuid.UUID, cutoff time.Time, limit int) ([]Document, error)

	Save(ctx context.Context, doc *Document) error

	// HardDelete removes the row entirely. Used for abandoned uploads.
	HardDelete(ctx context.Context, orgID, id uuid.UUID) error
}

// ObjectStorage abstracts the S3-compatible store holding document bytes
type ObjectStorage interface {
	// PresignPut returns a URL the client can PUT the file to
	PresignPut(ctx context.Context, key, contentType string, size int64, expires time.Duration) (string, error)

	// PresignGet returns a URL that downloads the object with the given file name
	PresignGet(ctx context.Context, key, fileName string, expires time.Duration) (string, error)

	// ObjectExists reports whether the object is present and returns its size
	ObjectExists(ctx context.Context, key string) (bool, int64, error)

	DeleteObject(ctx context.Context, key string) error
}
