package maintenance

import (
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AggregateTypeRequest is the aggregate type for maintenance requests
const AggregateTypeRequest = "MaintenanceRequest"

// Event type constants
const (
	EventTypeRequestCreated       = "MaintenanceRequestCreated"
	EventTypeRequestUpdated       = "MaintenanceRequestUpdated"
	EventTypeRequestStatusChanged = "MaintenanceStatusChanged"
	EventTypeRequestCompleted     = "MaintenanceCompleted"
	EventTypeRequestDeleted       = "MaintenanceRequestDeleted"
)

// RequestCreatedEvent is published when a request is opened
type RequestCreatedEvent struct {
	shared.BaseDomainEvent
	RequestID  uuid.UUID `json:"request_id"`
	PropertyID uuid.UUID `json:"property_id"`
	Priority   Priority  `json:"priority"`
}

// NewRequestCreatedEvent creates a new RequestCreatedEvent
func NewRequestCreatedEvent(r *Request) *RequestCreatedEvent {
	return &RequestCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequestCreated, AggregateTypeRequest, r.ID, r.OrgID),
		RequestID:       r.ID,
		PropertyID:      r.PropertyID,
		Priority:        r.Priority,
	}
}

// RequestUpdatedEvent is published when the details of a request, such as its
// priority, change
type RequestUpdatedEvent struct {
	shared.BaseDomainEvent
	RequestID uuid.UUID `json:"request_id"`
	Priority  Priority  `json:"priority"`
}

// NewRequestUpdatedEvent creates a new RequestUpdatedEvent
func NewRequestUpdatedEvent(r *Request) *RequestUpdatedEvent {
	return &RequestUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequestUpdated, AggregateTypeRequest, r.ID, r.OrgID),
		RequestID:       r.ID,
		Priority:        r.Priority,
	}
}

// RequestDeletedEvent is published after a request is removed
type RequestDeletedEvent struct {
	shared.BaseDomainEvent
	RequestID uuid.UUID `json:"request_id"`
	Status    Status    `json:"status"`
}

// NewRequestDeletedEvent creates a new RequestDeletedEvent
func NewRequestDeletedEvent(r *Request) *RequestDeletedEvent {
	return &RequestDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequestDeleted, AggregateTypeRequest, r.ID, r.OrgID),
		RequestID:       r.ID,
		Status:          r.Status,
	}
}

// RequestStatusChangedEvent is published on every workflow transition
type RequestStatusChangedEvent struct {
	shared.BaseDomainEvent
	RequestID uuid.UUID `json:"request_id"`
	OldStatus Status    `json:"old_status"`
	NewStatus Status    `json:"new_status"`
}

// NewRequestStatusChangedEvent creates a new RequestStatusChangedEvent
func NewRequestStatusChangedEvent(r *Request, old Status) *RequestStatusChangedEvent {
	return &RequestStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequestStatusChanged, AggregateTypeRequest, r.ID, r.OrgID),
		RequestID:       r.ID,
		OldStatus:       old,
		NewStatus:       r.Status,
	}
}

// RequestCompletedEvent is published when work is finished.
// Subscribers record an expense when ActualCost is positive.
type RequestCompletedEvent struct {
	shared.BaseDomainEvent
	RequestID  uuid.UUID       `json:"request_id"`
	PropertyID uuid.UUID       `json:"property_id"`
	UnitID     *uuid.UUID      `json:"unit_id,omitempty"`
	Title      string          `json:"title"`
	ActualCost decimal.Decimal `json:"actual_cost"`
	CreatedBy  *uuid.UUID      `json:"created_by,omitempty"`
}

// NewRequestCompletedEvent creates a new RequestCompletedEvent
func NewRequestCompletedEvent(r *Request) *RequestCompletedEvent {
	cost := decimal.Zero
	if r.ActualCost != nil {
		cost = *r.ActualCost
	}
	return &RequestCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequestCompleted, AggregateTypeRequest, r.ID, r.OrgID),
		RequestID:       r.ID,
		PropertyID:      r.PropertyID,
		UnitID:          r.UnitID,
		Title:           r.Title,
		ActualCost:      cost,
		CreatedBy:       r.CreatedBy,
	}
}
