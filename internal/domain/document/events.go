package document

import (
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// AggregateTypeDocument is the aggregate type for documents
const AggregateTypeDocument = "Document"

// Event type constants
const (
	EventTypeDocumentUploaded = "DocumentUploaded"
	EventTypeDocumentDeleted  = "DocumentDeleted"
)

// DocumentUploadedEvent is published when an upload is confirmed
type DocumentUploadedEvent struct {
	shared.BaseDomainEvent
	DocumentID uuid.UUID  `json:"document_id"`
	EntityType EntityType `json:"entity_type"`
	EntityID   *uuid.UUID `json:"entity_id,omitempty"`
	FileSize   int64      `json:"file_size"`
}

// NewDocumentUploadedEvent creates a new DocumentUploadedEvent
func NewDocumentUploadedEvent(d *Document) *DocumentUploadedEvent {
	return &DocumentUploadedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDocumentUploaded, AggregateTypeDocument, d.ID, d.OrgID),
		DocumentID:      d.ID,
		EntityType:      d.EntityType,
		EntityID:        d.EntityID,
		FileSize:        d.FileSize,
	}
}

// DocumentDeletedEvent is published when a document is soft-deleted
type DocumentDeletedEvent struct {
	shared.BaseDomainEvent
	DocumentID uuid.UUID `json:"document_id"`
	StorageKey string    `json:"storage_key"`
}

// NewDocumentDeletedEvent creates a new DocumentDeletedEvent
func NewDocumentDeletedEvent(d *Document) *DocumentDeletedEvent {
	return &DocumentDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDocumentDeleted, AggregateTypeDocument, d.ID, d.OrgID),
		DocumentID:      d.ID,
		StorageKey:      d.StorageKey,
	}
}
