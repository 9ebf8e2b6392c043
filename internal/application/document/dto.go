package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/document"
)

// InitiateUploadRequest describes a file the client is about to upload
type InitiateUploadRequest struct {
	EntityType  string     `json:"entity_type" binding:"omitempty,oneof=property unit tenant lease maintenance inspection general"`
	EntityID    *uuid.UUID `json:"entity_id"`
	Name        string     `json:"name" binding:"max=255"`
	FileName    string     `json:"file_name" binding:"required,max=255"`
	ContentType string     `json:"content_type" binding:"required"`
	FileSize    int64      `json:"file_size" binding:"required,min=1"`
	Category    string     `json:"category" binding:"omitempty,oneof=lease identification insurance invoice receipt photo report other"`
}

func (r InitiateUploadRequest) params() document.UploadParams {
	return document.UploadParams{
		EntityType:  document.EntityType(r.EntityType),
		EntityID:    r.EntityID,
		Name:        r.Name,
		FileName:    r.FileName,
		ContentType: r.ContentType,
		FileSize:    r.FileSize,
		Category:    document.Category(r.Category),
	}
}

// UpdateDocumentRequest renames or recategorizes a document
type UpdateDocumentRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Category string `json:"category" binding:"omitempty,oneof=lease identification insurance invoice receipt photo report other"`
}

// DocumentListFilter represents filter options for the document list
type DocumentListFilter struct {
	Search     string `form:"search"`
	EntityType string `form:"entity_type" binding:"omitempty,oneof=property unit tenant lease maintenance inspection general"`
	EntityID   string `form:"entity_id" binding:"omitempty,uuid"`
	Category   string `form:"category"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// DocumentResponse represents a document in API responses
type DocumentResponse struct {
	ID          uuid.UUID  `json:"id"`
	EntityType  string     `json:"entity_type"`
	EntityID    *uuid.UUID `json:"entity_id,omitempty"`
	Name        string     `json:"name"`
	FileName    string     `json:"file_name"`
	ContentType string     `json:"content_type"`
	FileSize    int64      `json:"file_size"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	UploadedAt  *time.Time `json:"uploaded_at,omitempty"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToDocumentResponse converts a domain document to a response DTO
func ToDocumentResponse(d *document.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		EntityType:  string(d.EntityType),
		EntityID:    d.EntityID,
		Name:        d.Name,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		FileSize:    d.FileSize,
		Category:    string(d.Category),
		Status:      string(d.Status),
		UploadedAt:  d.UploadedAt,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDocumentResponses converts a slice of domain documents
func ToDocumentResponses(docs []document.Document) []DocumentResponse {
	out := make([]DocumentResponse, len(docs))
	for i := range docs {
		out[i] = ToDocumentResponse(&docs[i])
	}
	return out
}

// UploadResponse carries the pending document and where to PUT its bytes
type UploadResponse struct {
	Document  DocumentResponse  `json:"document"`
	UploadURL string            `json:"upload_url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// DownloadResponse is a short-lived link to the document bytes
type DownloadResponse struct {
	URL       string    `json:"url"`
	FileName  string    `json:"file_name"`
	ExpiresAt time.Time `json:"expires_at"`
}
