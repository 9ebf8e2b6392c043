package maintenance

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/shopspring/decimal"
)

// CreateRequestRequest represents a request to open a maintenance request
type CreateRequestRequest struct {
	PropertyID    uuid.UUID        `json:"property_id" binding:"required"`
	UnitID        *uuid.UUID       `json:"unit_id"`
	TenantID      *uuid.UUID       `json:"tenant_id"`
	Title         string           `json:"title" binding:"required,max=200"`
	Description   string           `json:"description" binding:"max=5000"`
	Category      string           `json:"category" binding:"omitempty,oneof=plumbing electrical hvac appliance structural pest landscaping general"`
	Priority      string           `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost"`
	ScheduledDate *time.Time       `json:"scheduled_date"`
}

func (r CreateRequestRequest) details() maintenance.Details {
	return maintenance.Details{
		UnitID:        r.UnitID,
		TenantID:      r.TenantID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      maintenance.Category(r.Category),
		Priority:      maintenance.Priority(r.Priority),
		EstimatedCost: r.EstimatedCost,
		ScheduledDate: r.ScheduledDate,
	}
}

// UpdateRequestRequest changes the descriptive fields of an open request.
// Omitted fields keep their current value.
type UpdateRequestRequest struct {
	UnitID        *uuid.UUID       `json:"unit_id"`
	TenantID      *uuid.UUID       `json:"tenant_id"`
	Title         *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=5000"`
	Category      *string          `json:"category" binding:"omitempty,oneof=plumbing electrical hvac appliance structural pest landscaping general"`
	Priority      *string          `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost"`
	ScheduledDate *time.Time       `json:"scheduled_date"`
}

func (r UpdateRequestRequest) merge(req *maintenance.Request) maintenance.Details {
	d := maintenance.Details{
		UnitID:        req.UnitID,
		TenantID:      req.TenantID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		EstimatedCost: req.EstimatedCost,
		ScheduledDate: req.ScheduledDate,
	}
	if r.UnitID != nil {
		d.UnitID = r.UnitID
	}
	if r.TenantID != nil {
		d.TenantID = r.TenantID
	}
	if r.Title != nil {
		d.Title = *r.Title
	}
	if r.Description != nil {
		d.Description = *r.Description
	}
	if r.Category != nil {
		d.Category = maintenance.Category(*r.Category)
	}
	if r.Priority != nil {
		d.Priority = maintenance.Priority(*r.Priority)
	}
	if r.EstimatedCost != nil {
		d.EstimatedCost = r.EstimatedCost
	}
	if r.ScheduledDate != nil {
		d.ScheduledDate = r.ScheduledDate
	}
	return d
}

// AssignRequest sets the team member responsible for the work
type AssignRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// CompleteRequest closes a request with its final cost
type CompleteRequest struct {
	ActualCost *decimal.Decimal `json:"actual_cost"`
	Notes      string           `json:"notes" binding:"max=5000"`
}

// RequestListFilter represents filter options for the maintenance list
type RequestListFilter struct {
	Search     string `form:"search"`
	Status     string `form:"status" binding:"omitempty,oneof=open in_progress on_hold completed cancelled"`
	Priority   string `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Category   string `form:"category"`
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
	UnitID     string `form:"unit_id" binding:"omitempty,uuid"`
	AssignedTo string `form:"assigned_to" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// RequestResponse represents a maintenance request in API responses
type RequestResponse struct {
	ID              uuid.UUID        `json:"id"`
	PropertyID      uuid.UUID        `json:"property_id"`
	UnitID          *uuid.UUID       `json:"unit_id,omitempty"`
	TenantID        *uuid.UUID       `json:"tenant_id,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Category        string           `json:"category"`
	Priority        string           `json:"priority"`
	Status          string           `json:"status"`
	AssignedTo      *uuid.UUID       `json:"assigned_to,omitempty"`
	EstimatedCost   *decimal.Decimal `json:"estimated_cost,omitempty"`
	ActualCost      *decimal.Decimal `json:"actual_cost,omitempty"`
	ScheduledDate   *time.Time       `json:"scheduled_date,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	CompletionNotes string           `json:"completion_notes,omitempty"`
	CreatedBy       *uuid.UUID       `json:"created_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Version         int              `json:"version"`
}

// ToRequestResponse converts a domain request to a response DTO
func ToRequestResponse(r *maintenance.Request) RequestResponse {
	return RequestResponse{
		ID:              r.ID,
		PropertyID:      r.PropertyID,
		UnitID:          r.UnitID,
		TenantID:        r.TenantID,
		Title:           r.Title,
		Description:     r.Description,
		Category:        string(r.Category),
		Priority:        string(r.Priority),
		Status:          string(r.Status),
		AssignedTo:      r.AssignedTo,
		EstimatedCost:   r.EstimatedCost,
		ActualCost:      r.ActualCost,
		ScheduledDate:   r.ScheduledDate,
		CompletedAt:     r.CompletedAt,
		CompletionNotes: r.CompletionNotes,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Version:         r.Version,
	}
}

// ToRequestResponses converts a slice of domain requests
func ToRequestResponses(requests []maintenance.Request) []RequestResponse {
	out := make([]RequestResponse, len(requests))
	for i := range requests {
		out[i] = ToRequestResponse(&requests[i])
	}
	return out
}
