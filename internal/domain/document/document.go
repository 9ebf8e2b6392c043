package document

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// MaxFileSize is the largest upload accepted, in bytes
const MaxFileSize int64 = 50 << 20

// StaleUploadAge is how long a pending upload may wait for confirmation
const StaleUploadAge = 24 * time.Hour

// EntityType is the kind of record a document is attached to
type EntityType string

const (
	EntityTypeProperty    EntityType = "property"
	EntityTypeUnit        EntityType = "unit"
	EntityTypeTenant      EntityType = "tenant"
	EntityTypeLease       EntityType = "lease"
	EntityTypeMaintenance EntityType = "maintenance"
	EntityTypeInspection  EntityType = "inspection"
	EntityTypeGeneral     EntityType = "general"
)

// IsValid checks if the entity type is known
func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProperty, EntityTypeUnit, EntityTypeTenant, EntityTypeLease,
		EntityTypeMaintenance, EntityTypeInspection, EntityTypeGeneral:
		return true
	}
	return false
}

// Category classifies a document's purpose
type Category string

const (
	CategoryLease     Category = "lease"
	CategoryID        Category = "identification"
	CategoryInsurance Category = "insurance"
	CategoryInvoice   Category = "invoice"
	CategoryReceipt   Category = "receipt"
	CategoryPhoto     Category = "photo"
	CategoryReport    Category = "report"
	CategoryOther     Category = "other"
)

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryLease, CategoryID, CategoryInsurance, CategoryInvoice,
		CategoryReceipt, CategoryPhoto, CategoryReport, CategoryOther:
		return true
	}
	return false
}

// Status represents the upload state of a document
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

var allowedContentTypes = toSet(
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"text/plain",
	"text/csv",
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/heic",
)

func toSet(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// IsAllowedContentType reports whether uploads of the MIME type are accepted
func IsAllowedContentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return allowedContentTypes[ct]
}

// Document is a file in object storage attached to an organization record
type Document struct {
	shared.OrgAggregateRoot
	EntityType  EntityType
	EntityID    *uuid.UUID
	Name        string
	FileName    string
	ContentType string
	FileSize    int64
	StorageKey  string
	Category    Category
	Status      Status
	UploadedAt  *time.Time
	DeletedAt   *time.Time
}

// UploadParams describes a file the client wants to upload
type UploadParams struct {
	EntityType  EntityType
	EntityID    *uuid.UUID
	Name        string
	FileName    string
	ContentType string
	FileSize    int64
	Category    Category
}

// NewPendingDocument validates an upload and assigns its storage key
func NewPendingDocument(orgID, createdBy uuid.UUID, p UploadParams) (*Document, error) {
	if p.EntityType == "" {
		p.EntityType = EntityTypeGeneral
	}
	if !p.EntityType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTITY_TYPE", "Invalid entity type")
	}
	if p.EntityID != nil && *p.EntityID == uuid.Nil {
		p.EntityID = nil
	}
	if p.EntityType != EntityTypeGeneral && p.EntityID == nil {
		return nil, shared.NewDomainError("INVALID_ENTITY", "Entity id is required for "+string(p.EntityType)+" documents")
	}

	fileName := SanitizeFileName(p.FileName)
	if fileName == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name is required")
	}
	if !IsAllowedContentType(p.ContentType) {
		return nil, shared.NewDomainError("UNSUPPORTED_CONTENT_TYPE", "File type is not allowed")
	}
	if p.FileSize <= 0 {
		return nil, shared.NewDomainError("INVALID_FILE_SIZE", "File size must be greater than zero")
	}
	if p.FileSize > MaxFileSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "File exceeds the 50 MiB limit")
	}
	if p.Category == "" {
		p.Category = CategoryOther
	}
	if !p.Category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Invalid document category")
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = fileName
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 255 characters")
	}

	d := &Document{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, createdBy),
		EntityType:       p.EntityType,
		EntityID:         p.EntityID,
		Name:             name,
		FileName:         fileName,
		ContentType:      strings.ToLower(strings.TrimSpace(p.ContentType)),
		FileSize:         p.FileSize,
		Category:         p.Category,
		Status:           StatusPending,
	}
	d.StorageKey = BuildStorageKey(orgID, d.EntityType, d.EntityID, d.ID, fileName)

	return d, nil
}

// Confirm marks a pending upload as stored
func (d *Document) Confirm() error {
	if d.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending uploads can be confirmed")
	}
	now := time.Now()
	d.Status = StatusActive
	d.UploadedAt = &now
	d.UpdatedAt = now
	d.IncrementVersion()

	d.AddDomainEvent(NewDocumentUploadedEvent(d))
	return nil
}

// Rename changes the display name and category
func (d *Document) Rename(name string, category Category) error {
	if d.Status == StatusDeleted {
		return shared.NewDomainError("INVALID_STATE", "Deleted documents cannot be edited")
	}
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Name must be 1 to 255 characters")
	}
	if category != "" {
		if !category.IsValid() {
			return shared.NewDomainError("INVALID_CATEGORY", "Invalid document category")
		}
		d.Category = category
	}
	d.Name = name
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// MarkDeleted soft-deletes the document
func (d *Document) MarkDeleted() error {
	if d.Status == StatusDeleted {
		return shared.NewDomainError("INVALID_STATE", "Document is already deleted")
	}
	now := time.Now()
	d.Status = StatusDeleted
	d.DeletedAt = &now
	d.UpdatedAt = now
	d.IncrementVersion()

	d.AddDomainEvent(NewDocumentDeletedEvent(d))
	return nil
}

// IsActive returns true if the upload has been confirmed and not deleted
func (d *Document) IsActive() bool {
	return d.Status == StatusActive
}

// IsStale reports whether a pending upload has waited longer than StaleUploadAge
func (d *Document) IsStale(now time.Time) bool {
	return d.Status == StatusPending && now.Sub(d.CreatedAt) > StaleUploadAge
}

// SanitizeFileName strips directories and control characters from a client file name
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	if len(name) > 255 {
		ext := path.Ext(name)
		if len(ext) > 16 {
			ext = ""
		}
		name = name[:255-len(ext)] + ext
	}
	return name
}
