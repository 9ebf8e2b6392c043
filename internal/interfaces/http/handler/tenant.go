package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/leasing"
)

// TenantUseCase is the tenant service used by TenantHandler
type TenantUseCase interface {
	Create(ctx context.Context, orgID, userID uuid.UUID, req leasing.CreateTenantRequest) (*leasing.TenantResponse, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*leasing.TenantResponse, error)
	List(ctx context.Context, orgID uuid.UUID, filter leasing.TenantListFilter) ([]leasing.TenantResponse, int64, error)
	Update(ctx context.Context, orgID, id uuid.UUID, req leasing.UpdateTenantRequest) (*leasing.TenantResponse, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// TenantHandler handles tenant endpoints
type TenantHandler struct {
	BaseHandler
	tenantService TenantUseCase
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService TenantUseCase) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Create godoc
// @Summary      Create a tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        request body leasing.CreateTenantRequest true "Tenant"
// @Success      201 {object} dto.Response{data=leasing.TenantResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req leasing.CreateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tenant)
}

// GetByID godoc
// @Summary      Get a tenant
// @Tags         tenants
// @Produce      json
// @Param        id path string true "Tenant ID" format(uuid)
// @Success      200 {object} dto.Response{data=leasing.TenantResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tenants/{id} [get]
func (h *TenantHandler) GetByID(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// List godoc
// @Summary      List tenants
// @Tags         tenants
// @Produce      json
// @Param        search    query string false "Search by name, email or phone"
// @Param        status    query string false "Status" Enums(prospect, active, former)
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]leasing.TenantResponse}
// @Security     BearerAuth
// @Router       /tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var filter leasing.TenantListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.tenantService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id      path string                      true "Tenant ID" format(uuid)
// @Param        request body leasing.UpdateTenantRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=leasing.TenantResponse}
// @Security     BearerAuth
// @Router       /tenants/{id} [put]
func (h *TenantHandler) Update(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req leasing.UpdateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// Delete godoc
// @Summary      Delete a tenant
// @Description  Tenants holding an active lease cannot be deleted
// @Tags         tenants
// @Param        id path string true "Tenant ID" format(uuid)
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tenants/{id} [delete]
func (h *TenantHandler) Delete(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
