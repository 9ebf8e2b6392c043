package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/finance"
)

// TransactionUseCase is the finance service used by TransactionHandler
type TransactionUseCase interface {
	Record(ctx context.Context, orgID, userID uuid.UUID, req finance.RecordTransactionRequest) (*finance.TransactionResponse, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*finance.TransactionResponse, error)
	List(ctx context.Context, orgID uuid.UUID, filter finance.TransactionListFilter) ([]finance.TransactionResponse, int64, error)
	Update(ctx context.Context, orgID, id uuid.UUID, req finance.UpdateTransactionRequest) (*finance.TransactionResponse, error)
	Void(ctx context.Context, orgID, id uuid.UUID, req finance.VoidTransactionRequest) (*finance.TransactionResponse, error)
	Summary(ctx context.Context, orgID uuid.UUID, req finance.SummaryRequest) (*finance.SummaryResponse, error)
	Statement(ctx context.Context, orgID, userID uuid.UUID, req finance.SummaryRequest) (*finance.StatementResult, error)
}

// TransactionHandler handles financial transaction endpoints
type TransactionHandler struct {
	BaseHandler
	transactionService TransactionUseCase
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Record godoc
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request body finance.RecordTransactionRequest true "Transaction"
// @Success      201 {object} dto.Response{data=finance.TransactionResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /transactions [post]
func (h *TransactionHandler) Record(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req finance.RecordTransactionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tx, err := h.transactionService.Record(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tx)
}

// GetByID godoc
// @Summary      Get a transaction
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      200 {object} dto.Response{data=finance.TransactionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	tx, err := h.transactionService.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tx)
}

// List godoc
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Param        search      query string false "Search description and reference"
// @Param        type        query string false "Type" Enums(income, expense)
// @Param        category    query string false "Category"
// @Param        status      query string false "Status" Enums(pending, completed, void)
// @Param        property_id query string false "Property ID" format(uuid)
// @Param        lease_id    query string false "Lease ID" format(uuid)
// @Param        date_from   query string false "From date (YYYY-MM-DD)"
// @Param        date_to     query string false "To date (YYYY-MM-DD)"
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]finance.TransactionResponse}
// @Security     BearerAuth
// @Router       /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var filter finance.TransactionListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.transactionService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a transaction
// @Description  Void transactions cannot be changed
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id      path string                           true "Transaction ID" format(uuid)
// @Param        request body finance.UpdateTransactionRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=finance.TransactionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req finance.UpdateTransactionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tx, err := h.transactionService.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tx)
}

// Void godoc
// @Summary      Void a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Transaction ID" format(uuid)
// @Param        request body finance.VoidTransactionRequest true "Reason"
// @Success      200 {object} dto.Response{data=finance.TransactionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /transactions/{id}/void [post]
func (h *TransactionHandler) Void(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req finance.VoidTransactionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tx, err := h.transactionService.Void(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tx)
}

// Summary godoc
// @Summary      Income and expense summary
// @Description  Totals of completed transactions in the range, with per-category breakdown
// @Tags         transactions
// @Produce      json
// @Param        date_from   query string false "From date (YYYY-MM-DD)"
// @Param        date_to     query string false "To date (YYYY-MM-DD)"
// @Param        property_id query string false "Property ID" format(uuid)
// @Success      200 {object} dto.Response{data=finance.SummaryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /transactions/summary [get]
func (h *TransactionHandler) Summary(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req finance.SummaryRequest
	if !h.bindQuery(c, &req) {
		return
	}

	summary, err := h.transactionService.Summary(c.Request.Context(), orgID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Statement godoc
// @Summary      Download a PDF statement
// @Tags         transactions
// @Produce      application/pdf
// @Param        date_from   query string false "From date (YYYY-MM-DD)"
// @Param        date_to     query string false "To date (YYYY-MM-DD)"
// @Param        property_id query string false "Property ID" format(uuid)
// @Success      200 {file} binary
// @Failure      501 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /transactions/statement [get]
func (h *TransactionHandler) Statement(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req finance.SummaryRequest
	if !h.bindQuery(c, &req) {
		return
	}

	statement, err := h.transactionService.Statement(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", statement.FileName))
	c.Data(http.StatusOK, "application/pdf", statement.Content)
}
