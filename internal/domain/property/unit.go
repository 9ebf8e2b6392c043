package property

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// UnitStatus represents the occupancy state of a unit
type UnitStatus string

const (
	UnitStatusVacant      UnitStatus = "vacant"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
	UnitStatusUnavailable UnitStatus = "unavailable"
)

// Unit is a rentable space within a property
type Unit struct {
	shared.OrgAggregateRoot
	PropertyID uuid.UUID
	UnitNumber string
	Bedrooms   int
	Bathrooms  decimal.Decimal
	SquareFeet int
	MarketRent decimal.Decimal
	Status     UnitStatus
	Notes      string
}

// UnitSpec carries the physical attributes of a unit
type UnitSpec struct {
	Bedrooms   int
	Bathrooms  decimal.Decimal
	SquareFeet int
	MarketRent decimal.Decimal
	Notes      string
}

// NewUnit creates a new vacant unit
func NewUnit(orgID, createdBy, propertyID uuid.UUID, unitNumber string, spec UnitSpec) (*Unit, error) {
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID cannot be empty")
	}
	if err := validateUnitNumber(unitNumber); err != nil {
		return nil, err
	}
	if err := validateUnitSpec(spec); err != nil {
		return nil, err
	}

	u := &Unit{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, createdBy),
		PropertyID:       propertyID,
		UnitNumber:       strings.TrimSpace(unitNumber),
		Bedrooms:         spec.Bedrooms,
		Bathrooms:        spec.Bathrooms,
		SquareFeet:       spec.SquareFeet,
		MarketRent:       spec.MarketRent,
		Notes:            spec.Notes,
		Status:           UnitStatusVacant,
	}

	u.AddDomainEvent(NewUnitCreatedEvent(u))

	return u, nil
}

// Update changes the unit number and physical attributes
func (u *Unit) Update(unitNumber string, spec UnitSpec) error {
	if err := validateUnitNumber(unitNumber); err != nil {
		return err
	}
	if err := validateUnitSpec(spec); err != nil {
		return err
	}

	u.UnitNumber = strings.TrimSpace(unitNumber)
	u.Bedrooms = spec.Bedrooms
	u.Bathrooms = spec.Bathrooms
	u.SquareFeet = spec.SquareFeet
	u.MarketRent = spec.MarketRent
	u.Notes = spec.Notes
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetStatus changes the status manually. Occupancy is only set through leases.
func (u *Unit) SetStatus(status UnitStatus) error {
	switch status {
	case UnitStatusVacant, UnitStatusMaintenance, UnitStatusUnavailable:
	case UnitStatusOccupied:
		return shared.NewDomainError("INVALID_STATUS", "Units become occupied only through an active lease")
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid unit status")
	}
	if u.Status == UnitStatusOccupied {
		return shared.NewDomainError("UNIT_OCCUPIED", "Cannot change the status of an occupied unit; end the lease first")
	}
	if u.Status == status {
		return nil
	}
	return u.changeStatus(status)
}

// MarkOccupied is called when a lease on the unit becomes active
func (u *Unit) MarkOccupied() error {
	if u.Status == UnitStatusOccupied {
		return shared.NewDomainError("UNIT_OCCUPIED", "Unit is already occupied")
	}
	return u.changeStatus(UnitStatusOccupied)
}

// MarkVacant is called when the lease on the unit ends
func (u *Unit) MarkVacant() error {
	if u.Status == UnitStatusVacant {
		return nil
	}
	return u.changeStatus(UnitStatusVacant)
}

// IsOccupied returns true if the unit is occupied
func (u *Unit) IsOccupied() bool {
	return u.Status == UnitStatusOccupied
}

// CanDelete returns true if the unit can be deleted
func (u *Unit) CanDelete() bool {
	return !u.IsOccupied()
}

func (u *Unit) changeStatus(status UnitStatus) error {
	old := u.Status
	u.Status = status
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUnitStatusChangedEvent(u, old))
	return nil
}

func validateUnitNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.NewDomainError("INVALID_UNIT_NUMBER", "Unit number cannot be empty")
	}
	if len(number) > 50 {
		return shared.NewDomainError("INVALID_UNIT_NUMBER", "Unit number cannot exceed 50 characters")
	}
	return nil
}

func validateUnitSpec(spec UnitSpec) error {
	if spec.Bedrooms < 0 || spec.Bedrooms > 50 {
		return shared.NewDomainError("INVALID_BEDROOMS", "Bedrooms must be between 0 and 50")
	}
	if spec.Bathrooms.IsNegative() {
		return shared.NewDomainError("INVALID_BATHROOMS", "Bathrooms cannot be negative")
	}
	if spec.SquareFeet < 0 {
		return shared.NewDomainError("INVALID_SQUARE_FEET", "Square feet cannot be negative")
	}
	if spec.MarketRent.IsNegative() {
		return shared.NewDomainError("INVALID_RENT", "Market rent cannot be negative")
	}
	return nil
}
