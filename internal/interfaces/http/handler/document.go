package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/document"
)

// DocumentUseCase is the document service used by DocumentHandler
type DocumentUseCase interface {
	InitiateUpload(ctx context.Context, orgID, userID uuid.UUID, req document.InitiateUploadRequest) (*document.UploadResponse, error)
	ConfirmUpload(ctx context.Context, orgID, id uuid.UUID) (*document.DocumentResponse, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*document.DocumentResponse, error)
	GetDownloadURL(ctx context.Context, orgID, id uuid.UUID) (*document.DownloadResponse, error)
	List(ctx context.Context, orgID uuid.UUID, filter document.DocumentListFilter) ([]document.DocumentResponse, int64, error)
	Update(ctx context.Context, orgID, id uuid.UUID, req document.UpdateDocumentRequest) (*document.DocumentResponse, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// DocumentHandler handles document endpoints. File bytes never pass through
// the API; clients upload and download with presigned URLs.
type DocumentHandler struct {
	BaseHandler
	documentService DocumentUseCase
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// InitiateUpload godoc
// @Summary      Start a document upload
// @Description  Creates a pending document and returns a presigned PUT URL
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        request body document.InitiateUploadRequest true "File description"
// @Success      201 {object} dto.Response{data=document.UploadResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      415 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /documents/upload [post]
func (h *DocumentHandler) InitiateUpload(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req document.InitiateUploadRequest
	if !h.bindJSON(c, &req) {
		return
	}

	upload, err := h.documentService.InitiateUpload(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, upload)
}

// ConfirmUpload godoc
// @Summary      Confirm a document upload
// @Description  Activates the document once its object exists in storage
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Success      200 {object} dto.Response{data=document.DocumentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /documents/{id}/confirm [post]
func (h *DocumentHandler) ConfirmUpload(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.documentService.ConfirmUpload(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// GetByID godoc
// @Summary      Get a document
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Success      200 {object} dto.Response{data=document.DocumentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// GetDownloadURL godoc
// @Summary      Get a download link
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Success      200 {object} dto.Response{data=document.DownloadResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /documents/{id}/download-url [get]
func (h *DocumentHandler) GetDownloadURL(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	link, err := h.documentService.GetDownloadURL(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, link)
}

// List godoc
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        search      query string false "Search by name"
// @Param        entity_type query string false "Attached entity type"
// @Param        entity_id   query string false "Attached entity ID" format(uuid)
// @Param        category    query string false "Category"
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]document.DocumentResponse}
// @Security     BearerAuth
// @Router       /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var filter document.DocumentListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.documentService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Rename or recategorize a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Document ID" format(uuid)
// @Param        request body document.UpdateDocumentRequest true "Fields"
// @Success      200 {object} dto.Response{data=document.DocumentResponse}
// @Security     BearerAuth
// @Router       /documents/{id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req document.UpdateDocumentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// Delete godoc
// @Summary      Delete a document
// @Tags         documents
// @Param        id path string true "Document ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
