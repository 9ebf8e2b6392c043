package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
)

// OrganizationStatus represents the status of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Organization is the account that owns every business record.
// All org-scoped aggregates reference it through OrgID.
type Organization struct {
	shared.BaseAggregateRoot
	Name            string
	Slug            string
	Status          OrganizationStatus
	DefaultCurrency valueobject.Currency
	OwnerID         *uuid.UUID
}

// NewOrganization creates a new active organization
func NewOrganization(name string) (*Organization, error) {
	if err := validateOrganizationName(name); err != nil {
		return nil, err
	}

	org := &Organization{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Status:            OrganizationStatusActive,
		DefaultCurrency:   valueobject.DefaultCurrency,
	}
	org.Slug = MakeSlug(org.Name, org.ID)

	org.AddDomainEvent(NewOrganizationCreatedEvent(org))

	return org, nil
}

// MakeSlug builds a URL-safe slug with a short id suffix to keep it unique
func MakeSlug(name string, id uuid.UUID) string {
	base := strings.Trim(slugInvalidChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if len(base) > 40 {
		base = strings.TrimRight(base[:40], "-")
	}
	suffix := strings.ReplaceAll(id.String(), "-", "")[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// Rename changes the organization name. The slug is kept stable.
func (o *Organization) Rename(name string) error {
	if err := validateOrganizationName(name); err != nil {
		return err
	}
	o.Name = strings.TrimSpace(name)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// SetOwner records the owning user
func (o *Organization) SetOwner(userID uuid.UUID) {
	o.OwnerID = &userID
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// SetDefaultCurrency sets the currency used for new transactions
func (o *Organization) SetDefaultCurrency(code string) error {
	cur, err := valueobject.ParseCurrency(code)
	if err != nil {
		return shared.NewDomainError("INVALID_CURRENCY", err.Error())
	}
	o.DefaultCurrency = cur
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// Suspend blocks all logins for the organization
func (o *Organization) Suspend() error {
	if o.Status == OrganizationStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Organization is already suspended")
	}
	o.Status = OrganizationStatusSuspended
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// Activate re-enables a suspended organization
func (o *Organization) Activate() error {
	if o.Status == OrganizationStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Organization is already active")
	}
	o.Status = OrganizationStatusActive
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// IsActive returns true if the organization is active
func (o *Organization) IsActive() bool {
	return o.Status == OrganizationStatusActive
}

func validateOrganizationName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_ORGANIZATION_NAME", "Organization name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_ORGANIZATION_NAME", "Organization name cannot exceed 200 characters")
	}
	return nil
}
