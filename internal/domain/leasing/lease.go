package leasing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LeaseStatus represents the lifecycle state of a lease
type LeaseStatus string

const (
	LeaseStatusDraft      LeaseStatus = "draft"
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusExpired    LeaseStatus = "expired"
	LeaseStatusTerminated LeaseStatus = "terminated"
)

// Lease is a rental agreement between the organization and a tenant for a unit
type Lease struct {
	shared.OrgAggregateRoot
	PropertyID        uuid.UUID
	UnitID            uuid.UUID
	TenantID          uuid.UUID
	StartDate         time.Time
	EndDate           time.Time
	MonthlyRent       decimal.Decimal
	SecurityDeposit   decimal.Decimal
	RentDueDay        int
	Status            LeaseStatus
	ActivatedAt       *time.Time
	TerminatedAt      *time.Time
	TerminationReason string
	Notes             string
}

// LeaseTerms holds the negotiable terms of a lease
type LeaseTerms struct {
	StartDate       time.Time
	EndDate         time.Time
	MonthlyRent     decimal.Decimal
	SecurityDeposit decimal.Decimal
	RentDueDay      int
	Notes           string
}

// NewLease creates a draft lease
func NewLease(orgID, createdBy, propertyID, unitID, tenantID uuid.UUID, terms LeaseTerms) (*Lease, error) {
	if propertyID == uuid.Nil || unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Property and unit are required")
	}
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant is required")
	}
	terms = normalizeTerms(terms)
	if err := validateTerms(terms); err != nil {
		return nil, err
	}

	l := &Lease{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, createdBy),
		PropertyID:       propertyID,
		UnitID:           unitID,
		TenantID:         tenantID,
		Status:           LeaseStatusDraft,
	}
	l.applyTerms(terms)

	l.AddDomainEvent(NewLeaseCreatedEvent(l))

	return l, nil
}

// UpdateTerms changes the terms of a draft lease
func (l *Lease) UpdateTerms(terms LeaseTerms) error {
	if l.Status != LeaseStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft leases can be edited")
	}
	terms = normalizeTerms(terms)
	if err := validateTerms(terms); err != nil {
		return err
	}
	l.applyTerms(terms)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return nil
}

// Activate puts a draft lease into effect
func (l *Lease) Activate() error {
	if l.Status != LeaseStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft leases can be activated")
	}
	now := time.Now()
	l.Status = LeaseStatusActive
	l.ActivatedAt = &now
	l.UpdatedAt = now
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseActivatedEvent(l))
	return nil
}

// Terminate ends an active lease early
func (l *Lease) Terminate(date time.Time, reason string) error {
	if l.Status != LeaseStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active leases can be terminated")
	}
	date = DateOnly(date)
	if date.Before(l.StartDate) {
		return shared.NewDomainError("INVALID_TERMINATION_DATE", "Termination date cannot be before the lease start")
	}
	if len(reason) > 1000 {
		return shared.NewDomainError("INVALID_REASON", "Reason cannot exceed 1000 characters")
	}

	l.Status = LeaseStatusTerminated
	l.TerminatedAt = &date
	l.TerminationReason = strings.TrimSpace(reason)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseEndedEvent(l))
	return nil
}

// Expire marks an active lease whose end date has passed as expired
func (l *Lease) Expire(now time.Time) error {
	if l.Status != LeaseStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active leases can expire")
	}
	if !DateOnly(now).After(l.EndDate) {
		return shared.NewDomainError("LEASE_NOT_ENDED", "Lease end date has not passed")
	}

	l.Status = LeaseStatusExpired
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseEndedEvent(l))
	return nil
}

// Renew extends an active lease, optionally with a new rent
func (l *Lease) Renew(newEndDate time.Time, newRent *decimal.Decimal) error {
	if l.Status != LeaseStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active leases can be renewed")
	}
	newEndDate = DateOnly(newEndDate)
	if !newEndDate.After(l.EndDate) {
		return shared.NewDomainError("INVALID_END_DATE", "New end date must be after the current end date")
	}
	if newRent != nil {
		if !newRent.IsPositive() {
			return shared.NewDomainError("INVALID_RENT", "Monthly rent must be greater than zero")
		}
		l.MonthlyRent = *newRent
	}

	oldEnd := l.EndDate
	l.EndDate = newEndDate
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseRenewedEvent(l, oldEnd))
	return nil
}

// IsActive returns true if the lease is in effect
func (l *Lease) IsActive() bool {
	return l.Status == LeaseStatusActive
}

// IsDraft returns true if the lease has not been activated
func (l *Lease) IsDraft() bool {
	return l.Status == LeaseStatusDraft
}

// Overlaps reports whether the lease period intersects [start, end], inclusive
func (l *Lease) Overlaps(start, end time.Time) bool {
	return !l.StartDate.After(DateOnly(end)) && !DateOnly(start).After(l.EndDate)
}

// DaysUntilEnd returns whole days from now until the end date
func (l *Lease) DaysUntilEnd(now time.Time) int {
	return int(l.EndDate.Sub(DateOnly(now)).Hours() / 24)
}

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (l *Lease) applyTerms(t LeaseTerms) {
	l.StartDate = t.StartDate
	l.EndDate = t.EndDate
	l.MonthlyRent = t.MonthlyRent
	l.SecurityDeposit = t.SecurityDeposit
	l.RentDueDay = t.RentDueDay
	l.Notes = t.Notes
}

func normalizeTerms(t LeaseTerms) LeaseTerms {
	t.StartDate = DateOnly(t.StartDate)
	t.EndDate = DateOnly(t.EndDate)
	if t.RentDueDay == 0 {
		t.RentDueDay = 1
	}
	return t
}

func validateTerms(t LeaseTerms) error {
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return shared.NewDomainError("INVALID_DATES", "Start and end dates are required")
	}
	if !t.EndDate.After(t.StartDate) {
		return shared.NewDomainError("INVALID_DATES", "End date must be after start date")
	}
	if !t.MonthlyRent.IsPositive() {
		return shared.NewDomainError("INVALID_RENT", "Monthly rent must be greater than zero")
	}
	if t.SecurityDeposit.IsNegative() {
		return shared.NewDomainError("INVALID_DEPOSIT", "Security deposit cannot be negative")
	}
	if t.RentDueDay < 1 || t.RentDueDay > 28 {
		return shared.NewDomainError("INVALID_RENT_DUE_DAY", "Rent due day must be between 1 and 28")
	}
	return nil
}
