package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/maintenance"
)

// MaintenanceUseCase is the maintenance request service used by MaintenanceHandler
type MaintenanceUseCase interface {
	Create(ctx context.Context, orgID, userID uuid.UUID, req maintenance.CreateRequestRequest) (*maintenance.RequestResponse, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*maintenance.RequestResponse, error)
	List(ctx context.Context, orgID uuid.UUID, filter maintenance.RequestListFilter) ([]maintenance.RequestResponse, int64, error)
	Update(ctx context.Context, orgID, id uuid.UUID, req maintenance.UpdateRequestRequest) (*maintenance.RequestResponse, error)
	Assign(ctx context.Context, orgID, id uuid.UUID, req maintenance.AssignRequest) (*maintenance.RequestResponse, error)
	Start(ctx context.Context, orgID, id uuid.UUID) (*maintenance.RequestResponse, error)
	Hold(ctx context.Context, orgID, id uuid.UUID) (*maintenance.RequestResponse, error)
	Resume(ctx context.Context, orgID, id uuid.UUID) (*maintenance.RequestResponse, error)
	Complete(ctx context.Context, orgID, id uuid.UUID, req maintenance.CompleteRequest) (*maintenance.RequestResponse, error)
	Cancel(ctx context.Context, orgID, id uuid.UUID) (*maintenance.RequestResponse, error)
	Reopen(ctx context.Context, orgID, id uuid.UUID) (*maintenance.RequestResponse, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// MaintenanceHandler handles maintenance request endpoints
type MaintenanceHandler struct {
	BaseHandler
	requestService MaintenanceUseCase
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(requestService MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{requestService: requestService}
}

// Create godoc
// @Summary      Open a maintenance request
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        request body maintenance.CreateRequestRequest true "Request"
// @Success      201 {object} dto.Response{data=maintenance.RequestResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance [post]
func (h *MaintenanceHandler) Create(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req maintenance.CreateRequestRequest
	if !h.bindJSON(c, &req) {
		return
	}

	r, err := h.requestService.Create(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, r)
}

// GetByID godoc
// @Summary      Get a maintenance request
// @Tags         maintenance
// @Produce      json
// @Param        id path string true "Request ID" format(uuid)
// @Success      200 {object} dto.Response{data=maintenance.RequestResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/{id} [get]
func (h *MaintenanceHandler) GetByID(c *gin.Context) {
	h.transition(c, h.requestService.GetByID)
}

// List godoc
// @Summary      List maintenance requests
// @Tags         maintenance
// @Produce      json
// @Param        search      query string false "Search title and description"
// @Param        status      query string false "Status" Enums(open, in_progress, on_hold, completed, cancelled)
// @Param        priority    query string false "Priority" Enums(low, medium, high, urgent)
// @Param        category    query string false "Category"
// @Param        property_id query string false "Property ID" format(uuid)
// @Param        unit_id     query string false "Unit ID" format(uuid)
// @Param        assigned_to query string false "Assignee user ID" format(uuid)
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]maintenance.RequestResponse}
// @Security     BearerAuth
// @Router       /maintenance [get]
func (h *MaintenanceHandler) List(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var filter maintenance.RequestListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.requestService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a maintenance request
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id      path string                           true "Request ID" format(uuid)
// @Param        request body maintenance.UpdateRequestRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=maintenance.RequestResponse}
// @Security     BearerAuth
// @Router       /maintenance/{id} [put]
func (h *MaintenanceHandler) Update(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req maintenance.UpdateRequestRequest
	if !h.bindJSON(c, &req) {
		return
	}

	r, err := h.requestService.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, r)
}

// Assign godoc
// @Summary      Assign a maintenance request
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Request ID" format(uuid)
// @Param        request body maintenance.AssignRequest true "Assignee"
// @Success      200 {object} dto.Response{data=maintenance.RequestResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/{id}/assign [post]
func (h *MaintenanceHandler) Assign(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req maintenance.AssignRequest
	if !h.bindJSON(c, &req) {
		return
	}

	r, err := h.requestService.Assign(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, r)
}

// Start godoc
// @Summary      Start work on a request
// @Tags         maintenance
// @Produce      json
// @Param        id path string true "Request ID" format(uuid)
// @Success      200 {object} dto.Response{data=maintenance.RequestResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/{id}/start [post]
func (h *MaintenanceHandler) Start(c *gin.Context) {
	h.transition(c, h.requestService.Start)
}

// Hold godoc
// @Summary      Put a request on hold
// @Tags         maintenance
// @Produce      json
// @Param        id path string true "Request ID" format(uuid)
// @Success      200 {object} dto.Response{data=maintenance.RequestResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/{id}/hold [post]
func (h *MaintenanceHandler) Hold(c *gin.Context) {
	h.transition(c, h.requestService.Hold)
}

// Resume godoc
// @Summary      Resume a request on hold
// @Tags         maintenance
// @Produce      json
// @Param        id path string true "Request ID" format(uuid)
// @Success      200 {object} dto.Response{data=maintenance.RequestResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/{id}/resume [post]
func (h *MaintenanceHandler) Resume(c *gin.Context) {
	h.transition(c, h.requestService.Resume)
}

// Complete godoc
// @Summary      Complete a request
// @Description  A positive actual cost records a maintenance expense
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id      path string                      true "Request ID" format(uuid)
// @Param        request body maintenance.CompleteRequest true "Completion"
// @Success      200 {object} dto.Response{data=maintenance.RequestResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/{id}/complete [post]
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req maintenance.CompleteRequest
	if c.Request.ContentLength > 0 && !h.bindJSON(c, &req) {
		return
	}

	r, err := h.requestService.Complete(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, r)
}

// Cancel godoc
// @Summary      Cancel a request
// @Tags         maintenance
// @Produce      json
// @Param        id path string true "Request ID" format(uuid)
// @Success      200 {object} dto.Response{data=maintenance.RequestResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/{id}/cancel [post]
func (h *MaintenanceHandler) Cancel(c *gin.Context) {
	h.transition(c, h.requestService.Cancel)
}

// Reopen godoc
// @Summary      Reopen a closed request
// @Tags         maintenance
// @Produce      json
// @Param        id path string true "Request ID" format(uuid)
// @Success      200 {object} dto.Response{data=maintenance.RequestResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/{id}/reopen [post]
func (h *MaintenanceHandler) Reopen(c *gin.Context) {
	h.transition(c, h.requestService.Reopen)
}

// Delete godoc
// @Summary      Delete a maintenance request
// @Tags         maintenance
// @Param        id path string true "Request ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.requestService.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// transition handles endpoints that act on a request by id without a body
func (h *MaintenanceHandler) transition(c *gin.Context, fn func(context.Context, uuid.UUID, uuid.UUID) (*maintenance.RequestResponse, error)) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	r, err := fn(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, r)
}
