package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/inspection"
)

// InspectionUseCase is the inspection service used by InspectionHandler
type InspectionUseCase interface {
	Schedule(ctx context.Context, orgID, userID uuid.UUID, req inspection.ScheduleInspectionRequest) (*inspection.InspectionResponse, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*inspection.InspectionResponse, error)
	List(ctx context.Context, orgID uuid.UUID, filter inspection.InspectionListFilter) ([]inspection.InspectionResponse, int64, error)
	Reschedule(ctx context.Context, orgID, id uuid.UUID, req inspection.RescheduleRequest) (*inspection.InspectionResponse, error)
	AssignInspector(ctx context.Context, orgID, id uuid.UUID, req inspection.AssignInspectorRequest) (*inspection.InspectionResponse, error)
	Start(ctx context.Context, orgID, id uuid.UUID) (*inspection.InspectionResponse, error)
	RecordItems(ctx context.Context, orgID, id uuid.UUID, req inspection.RecordItemsRequest) (*inspection.InspectionResponse, error)
	Complete(ctx context.Context, orgID, id uuid.UUID, req inspection.CompleteInspectionRequest) (*inspection.InspectionResponse, error)
	Cancel(ctx context.Context, orgID, id uuid.UUID) (*inspection.InspectionResponse, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// InspectionHandler handles inspection endpoints
type InspectionHandler struct {
	BaseHandler
	inspectionService InspectionUseCase
}

// NewInspectionHandler creates a new InspectionHandler
func NewInspectionHandler(inspectionService InspectionUseCase) *InspectionHandler {
	return &InspectionHandler{inspectionService: inspectionService}
}

// Schedule godoc
// @Summary      Schedule an inspection
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Param        request body inspection.ScheduleInspectionRequest true "Inspection"
// @Success      201 {object} dto.Response{data=inspection.InspectionResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inspections [post]
func (h *InspectionHandler) Schedule(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req inspection.ScheduleInspectionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	insp, err := h.inspectionService.Schedule(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, insp)
}

// GetByID godoc
// @Summary      Get an inspection
// @Tags         inspections
// @Produce      json
// @Param        id path string true "Inspection ID" format(uuid)
// @Success      200 {object} dto.Response{data=inspection.InspectionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inspections/{id} [get]
func (h *InspectionHandler) GetByID(c *gin.Context) {
	h.byID(c, h.inspectionService.GetByID)
}

// List godoc
// @Summary      List inspections
// @Tags         inspections
// @Produce      json
// @Param        status      query string false "Status" Enums(scheduled, in_progress, completed, cancelled)
// @Param        type        query string false "Type" Enums(move_in, move_out, routine, annual, safety)
// @Param        property_id query string false "Property ID" format(uuid)
// @Param        unit_id     query string false "Unit ID" format(uuid)
// @Param        date_from   query string false "From date (YYYY-MM-DD)"
// @Param        date_to     query string false "To date (YYYY-MM-DD)"
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]inspection.InspectionResponse}
// @Security     BearerAuth
// @Router       /inspections [get]
func (h *InspectionHandler) List(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var filter inspection.InspectionListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.inspectionService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Reschedule godoc
// @Summary      Reschedule an inspection
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Inspection ID" format(uuid)
// @Param        request body inspection.RescheduleRequest true "New date"
// @Success      200 {object} dto.Response{data=inspection.InspectionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inspections/{id}/reschedule [post]
func (h *InspectionHandler) Reschedule(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req inspection.RescheduleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	insp, err := h.inspectionService.Reschedule(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, insp)
}

// AssignInspector godoc
// @Summary      Assign an inspector
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Param        id      path string                            true "Inspection ID" format(uuid)
// @Param        request body inspection.AssignInspectorRequest true "Inspector"
// @Success      200 {object} dto.Response{data=inspection.InspectionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inspections/{id}/assign [post]
func (h *InspectionHandler) AssignInspector(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req inspection.AssignInspectorRequest
	if !h.bindJSON(c, &req) {
		return
	}

	insp, err := h.inspectionService.AssignInspector(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, insp)
}

// Start godoc
// @Summary      Start an inspection
// @Tags         inspections
// @Produce      json
// @Param        id path string true "Inspection ID" format(uuid)
// @Success      200 {object} dto.Response{data=inspection.InspectionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inspections/{id}/start [post]
func (h *InspectionHandler) Start(c *gin.Context) {
	h.byID(c, h.inspectionService.Start)
}

// RecordItems godoc
// @Summary      Record checklist items
// @Description  Replaces the checklist of an in-progress inspection
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Inspection ID" format(uuid)
// @Param        request body inspection.RecordItemsRequest true "Checklist"
// @Success      200 {object} dto.Response{data=inspection.InspectionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inspections/{id}/items [put]
func (h *InspectionHandler) RecordItems(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req inspection.RecordItemsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	insp, err := h.inspectionService.RecordItems(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, insp)
}

// Complete godoc
// @Summary      Complete an inspection
// @Description  Requires at least one checklist item
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Param        id      path string                               true "Inspection ID" format(uuid)
// @Param        request body inspection.CompleteInspectionRequest true "Outcome"
// @Success      200 {object} dto.Response{data=inspection.InspectionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inspections/{id}/complete [post]
func (h *InspectionHandler) Complete(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req inspection.CompleteInspectionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	insp, err := h.inspectionService.Complete(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, insp)
}

// Cancel godoc
// @Summary      Cancel an inspection
// @Tags         inspections
// @Produce      json
// @Param        id path string true "Inspection ID" format(uuid)
// @Success      200 {object} dto.Response{data=inspection.InspectionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inspections/{id}/cancel [post]
func (h *InspectionHandler) Cancel(c *gin.Context) {
	h.byID(c, h.inspectionService.Cancel)
}

// Delete godoc
// @Summary      Delete an inspection
// @Tags         inspections
// @Param        id path string true "Inspection ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inspections/{id} [delete]
func (h *InspectionHandler) Delete(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.inspectionService.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *InspectionHandler) byID(c *gin.Context, fn func(context.Context, uuid.UUID, uuid.UUID) (*inspection.InspectionResponse, error)) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	insp, err := fn(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, insp)
}
