package inspection

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// AggregateTypeInspection is the aggregate type for inspections
const AggregateTypeInspection = "Inspection"

// Event type constants
const (
	EventTypeInspectionScheduled     = "InspectionScheduled"
	EventTypeInspectionUpdated       = "InspectionUpdated"
	EventTypeInspectionStatusChanged = "InspectionStatusChanged"
	EventTypeInspectionCompleted     = "InspectionCompleted"
	EventTypeInspectionDeleted       = "InspectionDeleted"
)

// InspectionScheduledEvent is published when an inspection is scheduled
type InspectionScheduledEvent struct {
	shared.BaseDomainEvent
	InspectionID  uuid.UUID `json:"inspection_id"`
	PropertyID    uuid.UUID `json:"property_id"`
	Type          Type      `json:"type"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

// NewInspectionScheduledEvent creates a new InspectionScheduledEvent
func NewInspectionScheduledEvent(i *Inspection) *InspectionScheduledEvent {
	return &InspectionScheduledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInspectionScheduled, AggregateTypeInspection, i.ID, i.OrgID),
		InspectionID:    i.ID,
		PropertyID:      i.PropertyID,
		Type:            i.Type,
		ScheduledDate:   i.ScheduledDate,
	}
}

// InspectionUpdatedEvent is published when the date or inspector changes
type InspectionUpdatedEvent struct {
	shared.BaseDomainEvent
	InspectionID  uuid.UUID `json:"inspection_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	InspectorName string    `json:"inspector_name,omitempty"`
}

// NewInspectionUpdatedEvent creates a new InspectionUpdatedEvent
func NewInspectionUpdatedEvent(i *Inspection) *InspectionUpdatedEvent {
	return &InspectionUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInspectionUpdated, AggregateTypeInspection, i.ID, i.OrgID),
		InspectionID:    i.ID,
		ScheduledDate:   i.ScheduledDate,
		InspectorName:   i.InspectorName,
	}
}

// InspectionStatusChangedEvent is published when an inspection starts or is
// cancelled
type InspectionStatusChangedEvent struct {
	shared.BaseDomainEvent
	InspectionID uuid.UUID `json:"inspection_id"`
	OldStatus    Status    `json:"old_status"`
	NewStatus    Status    `json:"new_status"`
}

// NewInspectionStatusChangedEvent creates a new InspectionStatusChangedEvent
func NewInspectionStatusChangedEvent(i *Inspection, old Status) *InspectionStatusChangedEvent {
	return &InspectionStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInspectionStatusChanged, AggregateTypeInspection, i.ID, i.OrgID),
		InspectionID:    i.ID,
		OldStatus:       old,
		NewStatus:       i.Status,
	}
}

// InspectionDeletedEvent is published after an inspection is removed
type InspectionDeletedEvent struct {
	shared.BaseDomainEvent
	InspectionID uuid.UUID `json:"inspection_id"`
}

// NewInspectionDeletedEvent creates a new InspectionDeletedEvent
func NewInspectionDeletedEvent(i *Inspection) *InspectionDeletedEvent {
	return &InspectionDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInspectionDeleted, AggregateTypeInspection, i.ID, i.OrgID),
		InspectionID:    i.ID,
	}
}

// InspectionCompletedEvent is published when an inspection is completed
type InspectionCompletedEvent struct {
	shared.BaseDomainEvent
	InspectionID     uuid.UUID `json:"inspection_id"`
	OverallCondition Condition `json:"overall_condition"`
	IssueCount       int       `json:"issue_count"`
}

// NewInspectionCompletedEvent creates a new InspectionCompletedEvent
func NewInspectionCompletedEvent(i *Inspection) *InspectionCompletedEvent {
	return &InspectionCompletedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeInspectionCompleted, AggregateTypeInspection, i.ID, i.OrgID),
		InspectionID:     i.ID,
		OverallCondition: i.OverallCondition,
		IssueCount:       i.IssueCount(),
	}
}
