package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/document"
)

// DocumentModel is the persistence model for document metadata.
// The bytes live in object storage under StorageKey.
type DocumentModel struct {
	OrgAggregateModel
	EntityType  document.EntityType `gorm:"type:varchar(30);not null;index:idx_documents_entity"`
	EntityID    *uuid.UUID          `gorm:"type:uuid;index:idx_documents_entity"`
	Name        string              `gorm:"type:varchar(255);not null"`
	FileName    string              `gorm:"type:varchar(255);not null"`
	ContentType string              `gorm:"type:varchar(100);not null"`
	FileSize    int64               `gorm:"not null"`
	StorageKey  string              `gorm:"type:varchar(500);not null;uniqueIndex"`
	Category    document.Category   `gorm:"type:varchar(30);not null"`
	Status      document.Status     `gorm:"type:varchar(20);not null;index"`
	UploadedAt  *time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts the model to a domain Document
func (m *DocumentModel) ToDomain() *document.Document {
	return &document.Document{
		OrgAggregateRoot: m.ToDomainOrgAggregateRoot(),
		EntityType:       m.EntityType,
		EntityID:         m.EntityID,
		Name:             m.Name,
		FileName:         m.FileName,
		ContentType:      m.ContentType,
		FileSize:         m.FileSize,
		StorageKey:       m.StorageKey,
		Category:         m.Category,
		Status:           m.Status,
		UploadedAt:       m.UploadedAt,
		DeletedAt:        m.DeletedAt,
	}
}

// DocumentModelFromDomain builds a model from a domain Document
func DocumentModelFromDomain(d *document.Document) *DocumentModel {
	m := &DocumentModel{
		EntityType:  d.EntityType,
		EntityID:    d.EntityID,
		Name:        d.Name,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		FileSize:    d.FileSize,
		StorageKey:  d.StorageKey,
		Category:    d.Category,
		Status:      d.Status,
		UploadedAt:  d.UploadedAt,
		DeletedAt:   d.DeletedAt,
	}
	m.FromDomainOrgAggregateRoot(d.OrgAggregateRoot)
	return m
}
