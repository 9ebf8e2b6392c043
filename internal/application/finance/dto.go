package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ============================================================================
// Transaction DTOs
// ============================================================================

// RecordTransactionRequest represents a request to record income or an expense
type RecordTransactionRequest struct {
	Type                 string          `json:"type" binding:"required,oneof=income expense"`
	Category             string          `json:"category" binding:"required"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency" binding:"omitempty,currency"`
	TransactionDate      time.Time       `json:"transaction_date" binding:"required"`
	Description          string          `json:"description" binding:"max=1000"`
	Reference            string          `json:"reference" binding:"max=100"`
	PaymentMethod        string          `json:"payment_method" binding:"omitempty,oneof=cash check bank_transfer card other"`
	Status               string          `json:"status" binding:"omitempty,oneof=pending completed"`
	PropertyID           *uuid.UUID      `json:"property_id"`
	UnitID               *uuid.UUID      `json:"unit_id"`
	LeaseID              *uuid.UUID      `json:"lease_id"`
	TenantID             *uuid.UUID      `json:"tenant_id"`
	MaintenanceRequestID *uuid.UUID      `json:"maintenance_request_id"`
}

func (r RecordTransactionRequest) entry(defaultCurrency valueobject.Currency) finance.Entry {
	currency := valueobject.Currency(r.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	return finance.Entry{
		Type:            finance.TransactionType(r.Type),
		Category:        finance.Category(r.Category),
		Amount:          r.Amount,
		Currency:        currency,
		TransactionDate: r.TransactionDate,
		Description:     r.Description,
		Reference:       r.Reference,
		PaymentMethod:   finance.PaymentMethod(r.PaymentMethod),
		Status:          finance.TransactionStatus(r.Status),
		Links: finance.Links{
			PropertyID:           r.PropertyID,
			UnitID:               r.UnitID,
			LeaseID:              r.LeaseID,
			TenantID:             r.TenantID,
			MaintenanceRequestID: r.MaintenanceRequestID,
		},
	}
}

// UpdateTransactionRequest changes a transaction. Omitted fields keep their value.
type UpdateTransactionRequest struct {
	Type            *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Category        *string          `json:"category"`
	Amount          *decimal.Decimal `json:"amount"`
	Currency        *string          `json:"currency" binding:"omitempty,currency"`
	TransactionDate *time.Time       `json:"transaction_date"`
	Description     *string          `json:"description" binding:"omitempty,max=1000"`
	Reference       *string          `json:"reference" binding:"omitempty,max=100"`
	PaymentMethod   *string          `json:"payment_method" binding:"omitempty,oneof=cash check bank_transfer card other"`
	Status          *string          `json:"status" binding:"omitempty,oneof=pending completed"`
	PropertyID      *uuid.UUID       `json:"property_id"`
	UnitID          *uuid.UUID       `json:"unit_id"`
	LeaseID         *uuid.UUID       `json:"lease_id"`
	TenantID        *uuid.UUID       `json:"tenant_id"`
}

func (r UpdateTransactionRequest) merge(t *finance.Transaction) finance.Entry {
	e := finance.Entry{
		Type:            t.Type,
		Category:        t.Category,
		Amount:          t.Amount,
		Currency:        t.Currency,
		TransactionDate: t.TransactionDate,
		Description:     t.Description,
		Reference:       t.Reference,
		PaymentMethod:   t.PaymentMethod,
		Status:          t.Status,
		Links:           t.Links,
	}
	if r.Type != nil {
		e.Type = finance.TransactionType(*r.Type)
	}
	if r.Category != nil {
		e.Category = finance.Category(*r.Category)
	}
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	if r.Currency != nil {
		e.Currency = valueobject.Currency(*r.Currency)
	}
	if r.TransactionDate != nil {
		e.TransactionDate = *r.TransactionDate
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Reference != nil {
		e.Reference = *r.Reference
	}
	if r.PaymentMethod != nil {
		e.PaymentMethod = finance.PaymentMethod(*r.PaymentMethod)
	}
	if r.Status != nil {
		e.Status = finance.TransactionStatus(*r.Status)
	}
	if r.PropertyID != nil {
		e.Links.PropertyID = r.PropertyID
	}
	if r.UnitID != nil {
		e.Links.UnitID = r.UnitID
	}
	if r.LeaseID != nil {
		e.Links.LeaseID = r.LeaseID
	}
	if r.TenantID != nil {
		e.Links.TenantID = r.TenantID
	}
	return e
}

// VoidTransactionRequest cancels a transaction
type VoidTransactionRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// TransactionListFilter represents filter options for the transaction list
type TransactionListFilter struct {
	Search     string     `form:"search"`
	Type       string     `form:"type" binding:"omitempty,oneof=income expense"`
	Category   string     `form:"category"`
	Status     string     `form:"status" binding:"omitempty,oneof=pending completed void"`
	PropertyID string     `form:"property_id" binding:"omitempty,uuid"`
	UnitID     string     `form:"unit_id" binding:"omitempty,uuid"`
	LeaseID    string     `form:"lease_id" binding:"omitempty,uuid"`
	TenantID   string     `form:"tenant_id" binding:"omitempty,uuid"`
	DateFrom   *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo     *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Type                 string          `json:"type"`
	Category             string          `json:"category"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"`
	TransactionDate      time.Time       `json:"transaction_date"`
	Description          string          `json:"description,omitempty"`
	Reference            string          `json:"reference,omitempty"`
	PaymentMethod        string          `json:"payment_method,omitempty"`
	Status               string          `json:"status"`
	PropertyID           *uuid.UUID      `json:"property_id,omitempty"`
	UnitID               *uuid.UUID      `json:"unit_id,omitempty"`
	LeaseID              *uuid.UUID      `json:"lease_id,omitempty"`
	TenantID             *uuid.UUID      `json:"tenant_id,omitempty"`
	MaintenanceRequestID *uuid.UUID      `json:"maintenance_request_id,omitempty"`
	VoidedAt             *time.Time      `json:"voided_at,omitempty"`
	VoidReason           string          `json:"void_reason,omitempty"`
	CreatedBy            *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	Version              int             `json:"version"`
}

// ToTransactionResponse converts a domain transaction to a response DTO
func ToTransactionResponse(t *finance.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                   t.ID,
		Type:                 string(t.Type),
		Category:             string(t.Category),
		Amount:               t.Amount,
		Currency:             string(t.Currency),
		TransactionDate:      t.TransactionDate,
		Description:          t.Description,
		Reference:            t.Reference,
		PaymentMethod:        string(t.PaymentMethod),
		Status:               string(t.Status),
		PropertyID:           t.PropertyID,
		UnitID:               t.UnitID,
		LeaseID:              t.LeaseID,
		TenantID:             t.TenantID,
		MaintenanceRequestID: t.MaintenanceRequestID,
		VoidedAt:             t.VoidedAt,
		VoidReason:           t.VoidReason,
		CreatedBy:            t.CreatedBy,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
		Version:              t.Version,
	}
}

// ToTransactionResponses converts a slice of domain transactions
func ToTransactionResponses(txs []finance.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i := range txs {
		out[i] = ToTransactionResponse(&txs[i])
	}
	return out
}

// ============================================================================
// Summary DTOs
// ============================================================================

// SummaryRequest selects the period and property of a summary or statement
type SummaryRequest struct {
	DateFrom   *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo     *time.Time `form:"date_to" time_format:"2006-01-02"`
	PropertyID string     `form:"property_id" binding:"omitempty,uuid"`
}

// CategoryTotalResponse is the total for one category
type CategoryTotalResponse struct {
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// SummaryResponse holds income, expense and net for a period
type SummaryResponse struct {
	DateFrom   *time.Time              `json:"date_from,omitempty"`
	DateTo     *time.Time              `json:"date_to,omitempty"`
	PropertyID *uuid.UUID              `json:"property_id,omitempty"`
	Income     decimal.Decimal         `json:"income"`
	Expense    decimal.Decimal         `json:"expense"`
	Net        decimal.Decimal         `json:"net"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// ToSummaryResponse converts a domain summary to a response DTO
func ToSummaryResponse(s finance.Summary) SummaryResponse {
	resp := SummaryResponse{
		Income:     s.Income,
		Expense:    s.Expense,
		Net:        s.Net,
		Categories: make([]CategoryTotalResponse, len(s.Categories)),
	}
	for i, c := range s.Categories {
		resp.Categories[i] = CategoryTotalResponse{
			Type:     string(c.Type),
			Category: string(c.Category),
			Currency: c.Currency,
			Total:    c.Total,
			Count:    c.Count,
		}
	}
	return resp
}

// StatementResult is a rendered statement ready to be served
type StatementResult struct {
	FileName string
	Content  []byte
}
