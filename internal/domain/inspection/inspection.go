package inspection

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// Type is the reason an inspection is performed
type Type string

const (
	TypeMoveIn  Type = "move_in"
	TypeMoveOut Type = "move_out"
	TypeRoutine Type = "routine"
	TypeAnnual  Type = "annual"
	TypeSafety  Type = "safety"
)

// IsValid checks if the inspection type is known
func (t Type) IsValid() bool {
	switch t {
	case TypeMoveIn, TypeMoveOut, TypeRoutine, TypeAnnual, TypeSafety:
		return true
	}
	return false
}

// Status represents the lifecycle state of an inspection
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Condition grades an item or the property overall
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
	ConditionDamaged   Condition = "damaged"
)

// IsValid checks if the condition is known
func (c Condition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged:
		return true
	}
	return false
}

// Item is one checklist line of an inspection
type Item struct {
	ID        uuid.UUID
	Area      string
	Item      string
	Condition Condition
	Notes     string
	SortOrder int
}

// Inspection is a scheduled walkthrough of a property or unit
type Inspection struct {
	shared.OrgAggregateRoot
	PropertyID       uuid.UUID
	UnitID           *uuid.UUID
	LeaseID          *uuid.UUID
	Type             Type
	ScheduledDate    time.Time
	CompletedAt      *time.Time
	InspectorID      *uuid.UUID
	InspectorName    string
	Status           Status
	OverallCondition Condition
	Notes            string
	Items            []Item
}

// ScheduleParams holds the inputs for scheduling an inspection
type ScheduleParams struct {
	PropertyID    uuid.UUID
	UnitID        *uuid.UUID
	LeaseID       *uuid.UUID
	Type          Type
	ScheduledDate time.Time
	InspectorID   *uuid.UUID
	InspectorName string
	Notes         string
}

// NewInspection schedules an inspection
func NewInspection(orgID, createdBy uuid.UUID, p ScheduleParams) (*Inspection, error) {
	if p.PropertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property is required")
	}
	if !p.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid inspection type")
	}
	if p.ScheduledDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Scheduled date is required")
	}
	p.InspectorName = strings.TrimSpace(p.InspectorName)
	if len(p.InspectorName) > 200 {
		return nil, shared.NewDomainError("INVALID_INSPECTOR", "Inspector name cannot exceed 200 characters")
	}

	i := &Inspection{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, createdBy),
		PropertyID:       p.PropertyID,
		UnitID:           p.UnitID,
		LeaseID:          p.LeaseID,
		Type:             p.Type,
		ScheduledDate:    p.ScheduledDate,
		InspectorID:      p.InspectorID,
		InspectorName:    p.InspectorName,
		Notes:            strings.TrimSpace(p.Notes),
		Status:           StatusScheduled,
		Items:            make([]Item, 0),
	}

	i.AddDomainEvent(NewInspectionScheduledEvent(i))
	return i, nil
}

// Reschedule moves a scheduled inspection to a new date
func (i *Inspection) Reschedule(date time.Time) error {
	if i.Status != StatusScheduled {
		return shared.NewDomainError("INVALID_STATE", "Only scheduled inspections can be rescheduled")
	}
	if date.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Scheduled date is required")
	}
	i.ScheduledDate = date
	i.touch()
	i.AddDomainEvent(NewInspectionUpdatedEvent(i))
	return nil
}

// AssignInspector sets who performs the inspection
func (i *Inspection) AssignInspector(userID *uuid.UUID, name string) error {
	if i.Status == StatusCompleted || i.Status == StatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Closed inspections cannot be reassigned")
	}
	i.InspectorID = userID
	i.InspectorName = strings.TrimSpace(name)
	i.touch()
	i.AddDomainEvent(NewInspectionUpdatedEvent(i))
	return nil
}

// Start begins a scheduled inspection
func (i *Inspection) Start() error {
	if i.Status != StatusScheduled {
		return shared.NewDomainError("INVALID_STATE", "Only scheduled inspections can be started")
	}
	i.Status = StatusInProgress
	i.touch()
	i.AddDomainEvent(NewInspectionStatusChangedEvent(i, StatusScheduled))
	return nil
}

// RecordItems replaces the checklist of an inspection in progress
func (i *Inspection) RecordItems(items []Item) error {
	if i.Status != StatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Items can only be recorded while the inspection is in progress")
	}
	out := make([]Item, 0, len(items))
	for idx, it := range items {
		it.Area = strings.TrimSpace(it.Area)
		it.Item = strings.TrimSpace(it.Item)
		it.Notes = strings.TrimSpace(it.Notes)
		if it.Area == "" || it.Item == "" {
			return shared.NewDomainError("INVALID_ITEM", "Each item needs an area and an item name")
		}
		if !it.Condition.IsValid() {
			return shared.NewDomainError("INVALID_CONDITION", "Invalid condition for "+it.Area+"/"+it.Item)
		}
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.SortOrder = idx
		out = append(out, it)
	}
	i.Items = out
	i.touch()
	return nil
}

// Complete finishes an inspection in progress
func (i *Inspection) Complete(overall Condition, notes string) error {
	if i.Status != StatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Only inspections in progress can be completed")
	}
	if !overall.IsValid() {
		return shared.NewDomainError("INVALID_CONDITION", "Invalid overall condition")
	}
	if len(i.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "At least one checklist item is required")
	}
	now := time.Now()
	i.Status = StatusCompleted
	i.CompletedAt = &now
	i.OverallCondition = overall
	if n := strings.TrimSpace(notes); n != "" {
		i.Notes = n
	}
	i.touch()

	i.AddDomainEvent(NewInspectionCompletedEvent(i))
	return nil
}

// Cancel abandons an inspection that has not been completed
func (i *Inspection) Cancel() error {
	if i.Status == StatusCompleted || i.Status == StatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Inspection is already closed")
	}
	old := i.Status
	i.Status = StatusCancelled
	i.touch()
	i.AddDomainEvent(NewInspectionStatusChangedEvent(i, old))
	return nil
}

// IsUpcoming reports whether the inspection is scheduled within [now, now+window]
func (i *Inspection) IsUpcoming(now time.Time, window time.Duration) bool {
	return i.Status == StatusScheduled && !i.ScheduledDate.Before(now) && !i.ScheduledDate.After(now.Add(window))
}

// IssueCount returns the number of items in poor or damaged condition
func (i *Inspection) IssueCount() int {
	n := 0
	for _, it := range i.Items {
		if it.Condition == ConditionPoor || it.Condition == ConditionDamaged {
			n++
		}
	}
	return n
}

func (i *Inspection) touch() {
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}
