package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/leasing"
)

// LeaseUseCase is the lease service used by LeaseHandler
type LeaseUseCase interface {
	Create(ctx context.Context, orgID, userID uuid.UUID, req leasing.CreateLeaseRequest) (*leasing.LeaseResponse, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*leasing.LeaseResponse, error)
	List(ctx context.Context, orgID uuid.UUID, filter leasing.LeaseListFilter) ([]leasing.LeaseResponse, int64, error)
	Update(ctx context.Context, orgID, id uuid.UUID, req leasing.UpdateLeaseRequest) (*leasing.LeaseResponse, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	Activate(ctx context.Context, orgID, id uuid.UUID) (*leasing.LeaseResponse, error)
	Terminate(ctx context.Context, orgID, id uuid.UUID, req leasing.TerminateLeaseRequest) (*leasing.LeaseResponse, error)
	Renew(ctx context.Context, orgID, id uuid.UUID, req leasing.RenewLeaseRequest) (*leasing.LeaseResponse, error)
	RecordRentPayment(ctx context.Context, orgID, userID, id uuid.UUID, req leasing.RecordRentPaymentRequest) (*leasing.RentPaymentResponse, error)
}

// LeaseHandler handles lease endpoints
type LeaseHandler struct {
	BaseHandler
	leaseService LeaseUseCase
}

// NewLeaseHandler creates a new LeaseHandler
func NewLeaseHandler(leaseService LeaseUseCase) *LeaseHandler {
	return &LeaseHandler{leaseService: leaseService}
}

// Create godoc
// @Summary      Create a draft lease
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        request body leasing.CreateLeaseRequest true "Lease"
// @Success      201 {object} dto.Response{data=leasing.LeaseResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leases [post]
func (h *LeaseHandler) Create(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req leasing.CreateLeaseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	lease, err := h.leaseService.Create(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, lease)
}

// GetByID godoc
// @Summary      Get a lease
// @Tags         leases
// @Produce      json
// @Param        id path string true "Lease ID" format(uuid)
// @Success      200 {object} dto.Response{data=leasing.LeaseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leases/{id} [get]
func (h *LeaseHandler) GetByID(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	lease, err := h.leaseService.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lease)
}

// List godoc
// @Summary      List leases
// @Tags         leases
// @Produce      json
// @Param        status               query string false "Status" Enums(draft, active, expired, terminated)
// @Param        property_id          query string false "Property ID" format(uuid)
// @Param        unit_id              query string false "Unit ID" format(uuid)
// @Param        tenant_id            query string false "Tenant ID" format(uuid)
// @Param        expiring_within_days query int    false "Active leases ending within this many days"
// @Param        page                 query int    false "Page number" default(1)
// @Param        page_size            query int    false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]leasing.LeaseResponse}
// @Security     BearerAuth
// @Router       /leases [get]
func (h *LeaseHandler) List(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var filter leasing.LeaseListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.leaseService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a draft lease
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Lease ID" format(uuid)
// @Param        request body leasing.UpdateLeaseRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=leasing.LeaseResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leases/{id} [put]
func (h *LeaseHandler) Update(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req leasing.UpdateLeaseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	lease, err := h.leaseService.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lease)
}

// Delete godoc
// @Summary      Delete a draft lease
// @Tags         leases
// @Param        id path string true "Lease ID" format(uuid)
// @Success      204
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leases/{id} [delete]
func (h *LeaseHandler) Delete(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.leaseService.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Activate godoc
// @Summary      Activate a lease
// @Description  Occupies the unit and marks the tenant active
// @Tags         leases
// @Produce      json
// @Param        id path string true "Lease ID" format(uuid)
// @Success      200 {object} dto.Response{data=leasing.LeaseResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leases/{id}/activate [post]
func (h *LeaseHandler) Activate(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	lease, err := h.leaseService.Activate(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lease)
}

// Terminate godoc
// @Summary      Terminate an active lease
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Lease ID" format(uuid)
// @Param        request body leasing.TerminateLeaseRequest true "Termination"
// @Success      200 {object} dto.Response{data=leasing.LeaseResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leases/{id}/terminate [post]
func (h *LeaseHandler) Terminate(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req leasing.TerminateLeaseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	lease, err := h.leaseService.Terminate(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lease)
}

// Renew godoc
// @Summary      Renew an active lease
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Lease ID" format(uuid)
// @Param        request body leasing.RenewLeaseRequest true "Renewal"
// @Success      200 {object} dto.Response{data=leasing.LeaseResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leases/{id}/renew [post]
func (h *LeaseHandler) Renew(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req leasing.RenewLeaseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	lease, err := h.leaseService.Renew(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lease)
}

// RecordPayment godoc
// @Summary      Record a rent payment
// @Description  Creates a completed rent income transaction linked to the lease
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        id      path string                           true "Lease ID" format(uuid)
// @Param        request body leasing.RecordRentPaymentRequest true "Payment"
// @Success      201 {object} dto.Response{data=leasing.RentPaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /leases/{id}/payments [post]
func (h *LeaseHandler) RecordPayment(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req leasing.RecordRentPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payment, err := h.leaseService.RecordRentPayment(c.Request.Context(), orgID, userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}
