package property

import (
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeProperty = "Property"
	AggregateTypeUnit     = "Unit"
)

// Event type constants
const (
	EventTypePropertyCreated       = "PropertyCreated"
	EventTypePropertyUpdated       = "PropertyUpdated"
	EventTypePropertyStatusChanged = "PropertyStatusChanged"
	EventTypePropertyDeleted       = "PropertyDeleted"
	EventTypeUnitCreated           = "UnitCreated"
	EventTypeUnitStatusChanged     = "UnitStatusChanged"
	EventTypeUnitDeleted           = "UnitDeleted"
)

// PropertyCreatedEvent is published when a property is added
type PropertyCreatedEvent struct {
	shared.BaseDomainEvent
	PropertyID uuid.UUID    `json:"property_id"`
	Name       string       `json:"name"`
	Type       PropertyType `json:"type"`
}

// NewPropertyCreatedEvent creates a new PropertyCreatedEvent
func NewPropertyCreatedEvent(p *Property) *PropertyCreatedEvent {
	return &PropertyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyCreated, AggregateTypeProperty, p.ID, p.OrgID),
		PropertyID:      p.ID,
		Name:            p.Name,
		Type:            p.Type,
	}
}

// PropertyUpdatedEvent is published when property details change
type PropertyUpdatedEvent struct {
	shared.BaseDomainEvent
	PropertyID uuid.UUID `json:"property_id"`
	Name       string    `json:"name"`
}

// NewPropertyUpdatedEvent creates a new PropertyUpdatedEvent
func NewPropertyUpdatedEvent(p *Property) *PropertyUpdatedEvent {
	return &PropertyUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyUpdated, AggregateTypeProperty, p.ID, p.OrgID),
		PropertyID:      p.ID,
		Name:            p.Name,
	}
}

// PropertyStatusChangedEvent is published when a property is activated or deactivated
type PropertyStatusChangedEvent struct {
	shared.BaseDomainEvent
	PropertyID uuid.UUID      `json:"property_id"`
	OldStatus  PropertyStatus `json:"old_status"`
	NewStatus  PropertyStatus `json:"new_status"`
}

// NewPropertyStatusChangedEvent creates a new PropertyStatusChangedEvent
func NewPropertyStatusChangedEvent(p *Property, old PropertyStatus) *PropertyStatusChangedEvent {
	return &PropertyStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyStatusChanged, AggregateTypeProperty, p.ID, p.OrgID),
		PropertyID:      p.ID,
		OldStatus:       old,
		NewStatus:       p.Status,
	}
}

// PropertyDeletedEvent is published after a property is removed
type PropertyDeletedEvent struct {
	shared.BaseDomainEvent
	PropertyID uuid.UUID `json:"property_id"`
}

// NewPropertyDeletedEvent creates a new PropertyDeletedEvent
func NewPropertyDeletedEvent(p *Property) *PropertyDeletedEvent {
	return &PropertyDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyDeleted, AggregateTypeProperty, p.ID, p.OrgID),
		PropertyID:      p.ID,
	}
}

// UnitCreatedEvent is published when a unit is added to a property
type UnitCreatedEvent struct {
	shared.BaseDomainEvent
	UnitID     uuid.UUID `json:"unit_id"`
	PropertyID uuid.UUID `json:"property_id"`
	UnitNumber string    `json:"unit_number"`
}

// NewUnitCreatedEvent creates a new UnitCreatedEvent
func NewUnitCreatedEvent(u *Unit) *UnitCreatedEvent {
	return &UnitCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitCreated, AggregateTypeUnit, u.ID, u.OrgID),
		UnitID:          u.ID,
		PropertyID:      u.PropertyID,
		UnitNumber:      u.UnitNumber,
	}
}

// UnitStatusChangedEvent is published when a unit's occupancy changes
type UnitStatusChangedEvent struct {
	shared.BaseDomainEvent
	UnitID     uuid.UUID  `json:"unit_id"`
	PropertyID uuid.UUID  `json:"property_id"`
	OldStatus  UnitStatus `json:"old_status"`
	NewStatus  UnitStatus `json:"new_status"`
}

// NewUnitStatusChangedEvent creates a new UnitStatusChangedEvent
func NewUnitStatusChangedEvent(u *Unit, old UnitStatus) *UnitStatusChangedEvent {
	return &UnitStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitStatusChanged, AggregateTypeUnit, u.ID, u.OrgID),
		UnitID:          u.ID,
		PropertyID:      u.PropertyID,
		OldStatus:       old,
		NewStatus:       u.Status,
	}
}

// UnitDeletedEvent is published after a unit is removed
type UnitDeletedEvent struct {
	shared.BaseDomainEvent
	UnitID     uuid.UUID `json:"unit_id"`
	PropertyID uuid.UUID `json:"property_id"`
}

// NewUnitDeletedEvent creates a new UnitDeletedEvent
func NewUnitDeletedEvent(u *Unit) *UnitDeletedEvent {
	return &UnitDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitDeleted, AggregateTypeUnit, u.ID, u.OrgID),
		UnitID:          u.ID,
		PropertyID:      u.PropertyID,
	}
}
