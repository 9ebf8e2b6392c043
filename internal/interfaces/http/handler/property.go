package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/property"
)

// PropertyUseCase is the property service used by PropertyHandler
type PropertyUseCase interface {
	Create(ctx context.Context, orgID, userID uuid.UUID, req property.CreatePropertyRequest) (*property.PropertyResponse, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*property.PropertyResponse, error)
	List(ctx context.Context, orgID uuid.UUID, filter property.PropertyListFilter) ([]property.PropertyResponse, int64, error)
	Update(ctx context.Context, orgID, id uuid.UUID, req property.UpdatePropertyRequest) (*property.PropertyResponse, error)
	Activate(ctx context.Context, orgID, id uuid.UUID) (*property.PropertyResponse, error)
	Deactivate(ctx context.Context, orgID, id uuid.UUID) (*property.PropertyResponse, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// PropertyHandler handles property endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService PropertyUseCase
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create godoc
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body property.CreatePropertyRequest true "Property"
// @Success      201 {object} dto.Response{data=property.PropertyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req property.CreatePropertyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	p, err := h.propertyService.Create(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, p)
}

// GetByID godoc
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} dto.Response{data=property.PropertyResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/{id} [get]
func (h *PropertyHandler) GetByID(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.propertyService.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// List godoc
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Param        search    query string false "Search by name or address"
// @Param        type      query string false "Property type"
// @Param        status    query string false "Status" Enums(active, inactive)
// @Param        city      query string false "City"
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Param        order_by  query string false "Sort field" default(created_at)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} dto.Response{data=[]property.PropertyResponse}
// @Security     BearerAuth
// @Router       /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var filter property.PropertyListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.propertyService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Property ID" format(uuid)
// @Param        request body property.UpdatePropertyRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=property.PropertyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req property.UpdatePropertyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	p, err := h.propertyService.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// Activate godoc
// @Summary      Activate a property
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} dto.Response{data=property.PropertyResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/{id}/activate [post]
func (h *PropertyHandler) Activate(c *gin.Context) {
	h.transition(c, h.propertyService.Activate)
}

// Deactivate godoc
// @Summary      Deactivate a property
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} dto.Response{data=property.PropertyResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/{id}/deactivate [post]
func (h *PropertyHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.propertyService.Deactivate)
}

func (h *PropertyHandler) transition(c *gin.Context, fn func(context.Context, uuid.UUID, uuid.UUID) (*property.PropertyResponse, error)) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	p, err := fn(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// Delete godoc
// @Summary      Delete a property
// @Description  Only properties without units can be deleted
// @Tags         properties
// @Param        id path string true "Property ID" format(uuid)
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
