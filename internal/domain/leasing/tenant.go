package leasing

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// TenantStatus represents where a renter is in their lifecycle
type TenantStatus string

const (
	TenantStatusProspect TenantStatus = "prospect"
	TenantStatusActive   TenantStatus = "active"
	TenantStatusFormer   TenantStatus = "former"
)

var tenantEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Tenant is a renter who can sign leases
type Tenant struct {
	shared.OrgAggregateRoot
	FirstName             string
	LastName              string
	Email                 string
	Phone                 string
	DateOfBirth           *time.Time
	EmergencyContactName  string
	EmergencyContactPhone string
	Notes                 string
	Status                TenantStatus
}

// TenantContact holds the editable contact fields of a tenant
type TenantContact struct {
	FirstName             string
	LastName              string
	Email                 string
	Phone                 string
	DateOfBirth           *time.Time
	EmergencyContactName  string
	EmergencyContactPhone string
	Notes                 string
}

// NewTenant creates a new prospect tenant
func NewTenant(orgID, createdBy uuid.UUID, contact TenantContact) (*Tenant, error) {
	contact, err := normalizeContact(contact)
	if err != nil {
		return nil, err
	}

	t := &Tenant{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, createdBy),
		Status:           TenantStatusProspect,
	}
	t.applyContact(contact)

	t.AddDomainEvent(NewTenantCreatedEvent(t))

	return t, nil
}

// Update replaces the contact fields
func (t *Tenant) Update(contact TenantContact) error {
	contact, err := normalizeContact(contact)
	if err != nil {
		return err
	}
	t.applyContact(contact)
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// MarkActive is called when one of the tenant's leases becomes active
func (t *Tenant) MarkActive() {
	if t.Status == TenantStatusActive {
		return
	}
	t.Status = TenantStatusActive
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// MarkFormer is called when the tenant's last active lease ends
func (t *Tenant) MarkFormer() {
	if t.Status == TenantStatusFormer {
		return
	}
	t.Status = TenantStatusFormer
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// FullName returns "First Last"
func (t *Tenant) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

func (t *Tenant) applyContact(c TenantContact) {
	t.FirstName = c.FirstName
	t.LastName = c.LastName
	t.Email = c.Email
	t.Phone = c.Phone
	t.DateOfBirth = c.DateOfBirth
	t.EmergencyContactName = c.EmergencyContactName
	t.EmergencyContactPhone = c.EmergencyContactPhone
	t.Notes = c.Notes
}

func normalizeContact(c TenantContact) (TenantContact, error) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)

	if c.FirstName == "" || c.LastName == "" {
		return c, shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}
	if len(c.FirstName) > 100 || len(c.LastName) > 100 {
		return c, shared.NewDomainError("INVALID_NAME", "Names cannot exceed 100 characters")
	}
	if c.Email != "" && !tenantEmailRegex.MatchString(c.Email) {
		return c, shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	if len(c.Phone) > 50 || len(c.EmergencyContactPhone) > 50 {
		return c, shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if c.DateOfBirth != nil && c.DateOfBirth.After(time.Now()) {
		return c, shared.NewDomainError("INVALID_DATE_OF_BIRTH", "Date of birth cannot be in the future")
	}
	return c, nil
}
