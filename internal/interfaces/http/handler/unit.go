package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/property"
)

// UnitUseCase is the unit service used by UnitHandler
type UnitUseCase interface {
	Create(ctx context.Context, orgID, userID uuid.UUID, req property.CreateUnitRequest) (*property.UnitResponse, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*property.UnitResponse, error)
	List(ctx context.Context, orgID uuid.UUID, filter property.UnitListFilter) ([]property.UnitResponse, int64, error)
	Update(ctx context.Context, orgID, id uuid.UUID, req property.UpdateUnitRequest) (*property.UnitResponse, error)
	SetStatus(ctx context.Context, orgID, id uuid.UUID, req property.SetUnitStatusRequest) (*property.UnitResponse, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// UnitHandler handles unit endpoints
type UnitHandler struct {
	BaseHandler
	unitService UnitUseCase
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService UnitUseCase) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// Create godoc
// @Summary      Create a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        request body property.CreateUnitRequest true "Unit"
// @Success      201 {object} dto.Response{data=property.UnitResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req property.CreateUnitRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.unitService.Create(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, u)
}

// GetByID godoc
// @Summary      Get a unit
// @Tags         units
// @Produce      json
// @Param        id path string true "Unit ID" format(uuid)
// @Success      200 {object} dto.Response{data=property.UnitResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /units/{id} [get]
func (h *UnitHandler) GetByID(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	u, err := h.unitService.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, u)
}

// List godoc
// @Summary      List units
// @Tags         units
// @Produce      json
// @Param        property_id query string false "Property ID" format(uuid)
// @Param        status      query string false "Status" Enums(vacant, occupied, maintenance, unavailable)
// @Param        search      query string false "Search by unit number"
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]property.UnitResponse}
// @Security     BearerAuth
// @Router       /units [get]
func (h *UnitHandler) List(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var filter property.UnitListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.unitService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Unit ID" format(uuid)
// @Param        request body property.UpdateUnitRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=property.UnitResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /units/{id} [put]
func (h *UnitHandler) Update(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req property.UpdateUnitRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.unitService.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, u)
}

// SetStatus godoc
// @Summary      Change unit availability
// @Description  Occupied is only reachable through lease activation
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Unit ID" format(uuid)
// @Param        request body property.SetUnitStatusRequest true "Status"
// @Success      200 {object} dto.Response{data=property.UnitResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /units/{id}/status [put]
func (h *UnitHandler) SetStatus(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req property.SetUnitStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.unitService.SetStatus(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, u)
}

// Delete godoc
// @Summary      Delete a unit
// @Tags         units
// @Param        id path string true "Unit ID" format(uuid)
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /units/{id} [delete]
func (h *UnitHandler) Delete(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.unitService.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
