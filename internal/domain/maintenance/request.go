package maintenance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Category classifies the kind of work a request needs
type Category string

const (
	CategoryPlumbing    Category = "plumbing"
	CategoryElectrical  Category = "electrical"
	CategoryHVAC        Category = "hvac"
	CategoryAppliance   Category = "appliance"
	CategoryStructural  Category = "structural"
	CategoryPest        Category = "pest"
	CategoryLandscaping Category = "landscaping"
	CategoryGeneral     Category = "general"
)

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryHVAC, CategoryAppliance,
		CategoryStructural, CategoryPest, CategoryLandscaping, CategoryGeneral:
		return true
	}
	return false
}

// Priority indicates how urgently a request should be handled
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid checks if the priority is known
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// AllPriorities returns priorities from lowest to highest
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Status represents the workflow state of a request
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsTerminal returns true for completed and cancelled requests
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsOpen returns true while work is still outstanding
func (s Status) IsOpen() bool {
	return !s.IsTerminal()
}

// Request is a maintenance work order on a property or unit
type Request struct {
	shared.OrgAggregateRoot
	PropertyID      uuid.UUID
	UnitID          *uuid.UUID
	TenantID        *uuid.UUID
	Title           string
	Description     string
	Category        Category
	Priority        Priority
	Status          Status
	AssignedTo      *uuid.UUID
	EstimatedCost   *decimal.Decimal
	ActualCost      *decimal.Decimal
	ScheduledDate   *time.Time
	CompletedAt     *time.Time
	CompletionNotes string
}

// Details holds the editable descriptive fields of a request
type Details struct {
	UnitID        *uuid.UUID
	TenantID      *uuid.UUID
	Title         string
	Description   string
	Category      Category
	Priority      Priority
	EstimatedCost *decimal.Decimal
	ScheduledDate *time.Time
}

// NewRequest creates an open maintenance request
func NewRequest(orgID, createdBy, propertyID uuid.UUID, d Details) (*Request, error) {
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property is required")
	}
	d, err := normalizeDetails(d)
	if err != nil {
		return nil, err
	}

	r := &Request{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, createdBy),
		PropertyID:       propertyID,
		Status:           StatusOpen,
	}
	r.applyDetails(d)

	r.AddDomainEvent(NewRequestCreatedEvent(r))
	return r, nil
}

// Update changes descriptive fields on a request that is not closed
func (r *Request) Update(d Details) error {
	if r.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Closed requests cannot be edited")
	}
	d, err := normalizeDetails(d)
	if err != nil {
		return err
	}
	r.applyDetails(d)
	r.touch()
	r.AddDomainEvent(NewRequestUpdatedEvent(r))
	return nil
}

// Assign sets the user responsible for the work
func (r *Request) Assign(userID uuid.UUID) error {
	if r.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Closed requests cannot be assigned")
	}
	if userID == uuid.Nil {
		return shared.NewDomainError("INVALID_ASSIGNEE", "Assignee is required")
	}
	r.AssignedTo = &userID
	r.touch()
	return nil
}

// Start moves an open request into progress
func (r *Request) Start() error {
	return r.transition(StatusInProgress, StatusOpen)
}

// Hold pauses work on a request
func (r *Request) Hold() error {
	return r.transition(StatusOnHold, StatusInProgress)
}

// Resume continues work on a held request
func (r *Request) Resume() error {
	return r.transition(StatusInProgress, StatusOnHold)
}

// Complete closes a request in progress with the final cost
func (r *Request) Complete(actualCost *decimal.Decimal, notes string) error {
	if actualCost != nil && actualCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Actual cost cannot be negative")
	}
	if err := r.transition(StatusCompleted, StatusInProgress); err != nil {
		return err
	}
	now := time.Now()
	r.ActualCost = actualCost
	r.CompletedAt = &now
	r.CompletionNotes = strings.TrimSpace(notes)

	r.AddDomainEvent(NewRequestCompletedEvent(r))
	return nil
}

// Cancel abandons a request that is not already closed
func (r *Request) Cancel() error {
	return r.transition(StatusCancelled, StatusOpen, StatusInProgress, StatusOnHold)
}

// Reopen brings a closed request back to open
func (r *Request) Reopen() error {
	if err := r.transition(StatusOpen, StatusCompleted, StatusCancelled); err != nil {
		return err
	}
	r.CompletedAt = nil
	return nil
}

// HasBillableCost returns true if completion recorded a positive cost
func (r *Request) HasBillableCost() bool {
	return r.ActualCost != nil && r.ActualCost.IsPositive()
}

func (r *Request) transition(to Status, from ...Status) error {
	allowed := false
	for _, s := range from {
		if r.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return shared.NewDomainError("INVALID_STATE", "Cannot move request from "+string(r.Status)+" to "+string(to))
	}
	old := r.Status
	r.Status = to
	r.touch()
	r.AddDomainEvent(NewRequestStatusChangedEvent(r, old))
	return nil
}

func (r *Request) touch() {
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

func (r *Request) applyDetails(d Details) {
	r.UnitID = d.UnitID
	r.TenantID = d.TenantID
	r.Title = d.Title
	r.Description = d.Description
	r.Category = d.Category
	r.Priority = d.Priority
	r.EstimatedCost = d.EstimatedCost
	r.ScheduledDate = d.ScheduledDate
}

func normalizeDetails(d Details) (Details, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	if d.Title == "" {
		return d, shared.NewDomainError("INVALID_TITLE", "Title is required")
	}
	if len(d.Title) > 200 {
		return d, shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	if d.Category == "" {
		d.Category = CategoryGeneral
	}
	if !d.Category.IsValid() {
		return d, shared.NewDomainError("INVALID_CATEGORY", "Invalid maintenance category")
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if !d.Priority.IsValid() {
		return d, shared.NewDomainError("INVALID_PRIORITY", "Invalid maintenance priority")
	}
	if d.EstimatedCost != nil && d.EstimatedCost.IsNegative() {
		return d, shared.NewDomainError("INVALID_COST", "Estimated cost cannot be negative")
	}
	if d.UnitID != nil && *d.UnitID == uuid.Nil {
		d.UnitID = nil
	}
	if d.TenantID != nil && *d.TenantID == uuid.Nil {
		d.TenantID = nil
	}
	return d, nil
}
