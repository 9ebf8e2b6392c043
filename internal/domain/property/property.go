package property

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
)

// PropertyType represents the kind of property
type PropertyType string

const (
	TypeSingleFamily PropertyType = "single_family"
	TypeMultiFamily  PropertyType = "multi_family"
	TypeApartment    PropertyType = "apartment"
	TypeCondo        PropertyType = "condo"
	TypeTownhouse    PropertyType = "townhouse"
	TypeCommercial   PropertyType = "commercial"
	TypeOther        PropertyType = "other"
)

// PropertyStatus represents whether the property is in the managed portfolio
type PropertyStatus string

const (
	StatusActive   PropertyStatus = "active"
	StatusInactive PropertyStatus = "inactive"
)

// Property is a building or lot managed by the organization
type Property struct {
	shared.OrgAggregateRoot
	Name        string
	Type        PropertyType
	Status      PropertyStatus
	Address     valueobject.Address
	YearBuilt   *int
	Description string
	ImageURL    string
}

// NewProperty creates a new active property
func NewProperty(orgID, createdBy uuid.UUID, name string, propertyType PropertyType, address valueobject.Address) (*Property, error) {
	if err := validatePropertyName(name); err != nil {
		return nil, err
	}
	if err := ValidatePropertyType(propertyType); err != nil {
		return nil, err
	}
	if address.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address is required")
	}

	p := &Property{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, createdBy),
		Name:             strings.TrimSpace(name),
		Type:             propertyType,
		Status:           StatusActive,
		Address:          address,
	}

	p.AddDomainEvent(NewPropertyCreatedEvent(p))

	return p, nil
}

// Update updates the property details
func (p *Property) Update(name string, propertyType PropertyType, address valueobject.Address, description string) error {
	if err := validatePropertyName(name); err != nil {
		return err
	}
	if err := ValidatePropertyType(propertyType); err != nil {
		return err
	}
	if address.IsEmpty() {
		return shared.NewDomainError("INVALID_ADDRESS", "Address is required")
	}
	if len(description) > 5000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 5000 characters")
	}

	p.Name = strings.TrimSpace(name)
	p.Type = propertyType
	p.Address = address
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPropertyUpdatedEvent(p))

	return nil
}

// SetYearBuilt sets the construction year; nil clears it
func (p *Property) SetYearBuilt(year *int) error {
	if year != nil {
		if *year < 1700 || *year > time.Now().Year()+5 {
			return shared.NewDomainError("INVALID_YEAR_BUILT", "Year built is out of range")
		}
	}
	p.YearBuilt = year
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetImageURL sets the cover image URL
func (p *Property) SetImageURL(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}
	p.ImageURL = strings.TrimSpace(url)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Activate returns the property to the active portfolio
func (p *Property) Activate() error {
	if p.Status == StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Property is already active")
	}
	p.Status = StatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPropertyStatusChangedEvent(p, StatusInactive))
	return nil
}

// Deactivate removes the property from the active portfolio
func (p *Property) Deactivate() error {
	if p.Status == StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Property is already inactive")
	}
	p.Status = StatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPropertyStatusChangedEvent(p, StatusActive))
	return nil
}

// IsActive returns true if the property is active
func (p *Property) IsActive() bool {
	return p.Status == StatusActive
}

// ValidatePropertyType checks the type against the known set
func ValidatePropertyType(t PropertyType) error {
	switch t {
	case TypeSingleFamily, TypeMultiFamily, TypeApartment, TypeCondo, TypeTownhouse, TypeCommercial, TypeOther:
		return nil
	}
	return shared.NewDomainError("INVALID_PROPERTY_TYPE", "Invalid property type")
}

func validatePropertyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Property name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Property name cannot exceed 200 characters")
	}
	return nil
}
