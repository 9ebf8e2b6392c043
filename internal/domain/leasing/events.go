package leasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeTenant = "Tenant"
	AggregateTypeLease  = "Lease"
)

// Event type constants
const (
	EventTypeTenantCreated  = "TenantCreated"
	EventTypeLeaseCreated   = "LeaseCreated"
	EventTypeLeaseActivated = "LeaseActivated"
	EventTypeLeaseEnded     = "LeaseEnded"
	EventTypeLeaseRenewed   = "LeaseRenewed"
)

// TenantCreatedEvent is published when a renter is added
type TenantCreatedEvent struct {
	shared.BaseDomainEvent
	TenantID uuid.UUID `json:"tenant_id"`
	Name     string    `json:"name"`
}

// NewTenantCreatedEvent creates a new TenantCreatedEvent
func NewTenantCreatedEvent(t *Tenant) *TenantCreatedEvent {
	return &TenantCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantCreated, AggregateTypeTenant, t.ID, t.OrgID),
		TenantID:        t.ID,
		Name:            t.FullName(),
	}
}

// LeaseCreatedEvent is published when a draft lease is created
type LeaseCreatedEvent struct {
	shared.BaseDomainEvent
	LeaseID  uuid.UUID `json:"lease_id"`
	UnitID   uuid.UUID `json:"unit_id"`
	TenantID uuid.UUID `json:"tenant_id"`
}

// NewLeaseCreatedEvent creates a new LeaseCreatedEvent
func NewLeaseCreatedEvent(l *Lease) *LeaseCreatedEvent {
	return &LeaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseCreated, AggregateTypeLease, l.ID, l.OrgID),
		LeaseID:         l.ID,
		UnitID:          l.UnitID,
		TenantID:        l.TenantID,
	}
}

// LeaseActivatedEvent is published when a lease goes into effect
type LeaseActivatedEvent struct {
	shared.BaseDomainEvent
	LeaseID     uuid.UUID       `json:"lease_id"`
	PropertyID  uuid.UUID       `json:"property_id"`
	UnitID      uuid.UUID       `json:"unit_id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

// NewLeaseActivatedEvent creates a new LeaseActivatedEvent
func NewLeaseActivatedEvent(l *Lease) *LeaseActivatedEvent {
	return &LeaseActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseActivated, AggregateTypeLease, l.ID, l.OrgID),
		LeaseID:         l.ID,
		PropertyID:      l.PropertyID,
		UnitID:          l.UnitID,
		TenantID:        l.TenantID,
		MonthlyRent:     l.MonthlyRent,
	}
}

// LeaseEndedEvent is published when a lease is terminated or expires
type LeaseEndedEvent struct {
	shared.BaseDomainEvent
	LeaseID  uuid.UUID   `json:"lease_id"`
	UnitID   uuid.UUID   `json:"unit_id"`
	TenantID uuid.UUID   `json:"tenant_id"`
	Status   LeaseStatus `json:"status"`
}

// NewLeaseEndedEvent creates a new LeaseEndedEvent
func NewLeaseEndedEvent(l *Lease) *LeaseEndedEvent {
	return &LeaseEndedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseEnded, AggregateTypeLease, l.ID, l.OrgID),
		LeaseID:         l.ID,
		UnitID:          l.UnitID,
		TenantID:        l.TenantID,
		Status:          l.Status,
	}
}

// LeaseRenewedEvent is published when an active lease is extended
type LeaseRenewedEvent struct {
	shared.BaseDomainEvent
	LeaseID     uuid.UUID       `json:"lease_id"`
	OldEndDate  time.Time       `json:"old_end_date"`
	NewEndDate  time.Time       `json:"new_end_date"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

// NewLeaseRenewedEvent creates a new LeaseRenewedEvent
func NewLeaseRenewedEvent(l *Lease, oldEnd time.Time) *LeaseRenewedEvent {
	return &LeaseRenewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseRenewed, AggregateTypeLease, l.ID, l.OrgID),
		LeaseID:         l.ID,
		OldEndDate:      oldEnd,
		NewEndDate:      l.EndDate,
		MonthlyRent:     l.MonthlyRent,
	}
}
