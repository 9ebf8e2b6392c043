package leasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Tenant DTOs
// =============================================================================

// CreateTenantRequest represents a request to create a tenant
type CreateTenantRequest struct {
	FirstName             string     `json:"first_name" binding:"required,max=100"`
	LastName              string     `json:"last_name" binding:"required,max=100"`
	Email                 string     `json:"email" binding:"omitempty,email,max=254"`
	Phone                 string     `json:"phone" binding:"max=50"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	EmergencyContactName  string     `json:"emergency_contact_name" binding:"max=200"`
	EmergencyContactPhone string     `json:"emergency_contact_phone" binding:"max=50"`
	Notes                 string     `json:"notes" binding:"max=2000"`
}

// UpdateTenantRequest represents a request to update a tenant.
// Omitted fields keep their current value.
type UpdateTenantRequest struct {
	FirstName             *string    `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName              *string    `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email                 *string    `json:"email" binding:"omitempty,max=254"`
	Phone                 *string    `json:"phone" binding:"omitempty,max=50"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	EmergencyContactName  *string    `json:"emergency_contact_name" binding:"omitempty,max=200"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone" binding:"omitempty,max=50"`
	Notes                 *string    `json:"notes" binding:"omitempty,max=2000"`
}

func (r UpdateTenantRequest) merge(t *leasing.Tenant) leasing.TenantContact {
	c := leasing.TenantContact{
		FirstName:             t.FirstName,
		LastName:              t.LastName,
		Email:                 t.Email,
		Phone:                 t.Phone,
		DateOfBirth:           t.DateOfBirth,
		EmergencyContactName:  t.EmergencyContactName,
		EmergencyContactPhone: t.EmergencyContactPhone,
		Notes:                 t.Notes,
	}
	if r.FirstName != nil {
		c.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		c.LastName = *r.LastName
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.DateOfBirth != nil {
		c.DateOfBirth = r.DateOfBirth
	}
	if r.EmergencyContactName != nil {
		c.EmergencyContactName = *r.EmergencyContactName
	}
	if r.EmergencyContactPhone != nil {
		c.EmergencyContactPhone = *r.EmergencyContactPhone
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
	return c
}

// TenantListFilter represents filter options for the tenant list
type TenantListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=prospect active former"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID                    uuid.UUID  `json:"id"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	FullName              string     `json:"full_name"`
	Email                 string     `json:"email,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	EmergencyContactName  string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `json:"emergency_contact_phone,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	Version               int        `json:"version"`
}

// ToTenantResponse converts a domain tenant to a response DTO
func ToTenantResponse(t *leasing.Tenant) TenantResponse {
	return TenantResponse{
		ID:                    t.ID,
		FirstName:             t.FirstName,
		LastName:              t.LastName,
		FullName:              t.FullName(),
		Email:                 t.Email,
		Phone:                 t.Phone,
		DateOfBirth:           t.DateOfBirth,
		EmergencyContactName:  t.EmergencyContactName,
		EmergencyContactPhone: t.EmergencyContactPhone,
		Notes:                 t.Notes,
		Status:                string(t.Status),
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
		Version:               t.Version,
	}
}

// ToTenantResponses converts a slice of domain tenants
func ToTenantResponses(tenants []leasing.Tenant) []TenantResponse {
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = ToTenantResponse(&tenants[i])
	}
	return out
}

// =============================================================================
// Lease DTOs
// =============================================================================

// CreateLeaseRequest represents a request to draft a lease. The property is
// taken from the unit.
type CreateLeaseRequest struct {
	UnitID          uuid.UUID       `json:"unit_id" binding:"required"`
	TenantID        uuid.UUID       `json:"tenant_id" binding:"required"`
	StartDate       time.Time       `json:"start_date" binding:"required"`
	EndDate         time.Time       `json:"end_date" binding:"required"`
	MonthlyRent     decimal.Decimal `json:"monthly_rent"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	RentDueDay      int             `json:"rent_due_day" binding:"omitempty,min=1,max=28"`
	Notes           string          `json:"notes" binding:"max=2000"`
}

func (r CreateLeaseRequest) terms() leasing.LeaseTerms {
	return leasing.LeaseTerms{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		MonthlyRent:     r.MonthlyRent,
		SecurityDeposit: r.SecurityDeposit,
		RentDueDay:      r.RentDueDay,
		Notes:           r.Notes,
	}
}

// UpdateLeaseRequest changes the terms of a draft lease
type UpdateLeaseRequest struct {
	StartDate       *time.Time       `json:"start_date"`
	EndDate         *time.Time       `json:"end_date"`
	MonthlyRent     *decimal.Decimal `json:"monthly_rent"`
	SecurityDeposit *decimal.Decimal `json:"security_deposit"`
	RentDueDay      *int             `json:"rent_due_day" binding:"omitempty,min=1,max=28"`
	Notes           *string          `json:"notes" binding:"omitempty,max=2000"`
}

func (r UpdateLeaseRequest) merge(l *leasing.Lease) leasing.LeaseTerms {
	t := leasing.LeaseTerms{
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		MonthlyRent:     l.MonthlyRent,
		SecurityDeposit: l.SecurityDeposit,
		RentDueDay:      l.RentDueDay,
		Notes:           l.Notes,
	}
	if r.StartDate != nil {
		t.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		t.EndDate = *r.EndDate
	}
	if r.MonthlyRent != nil {
		t.MonthlyRent = *r.MonthlyRent
	}
	if r.SecurityDeposit != nil {
		t.SecurityDeposit = *r.SecurityDeposit
	}
	if r.RentDueDay != nil {
		t.RentDueDay = *r.RentDueDay
	}
	if r.Notes != nil {
		t.Notes = *r.Notes
	}
	return t
}

// TerminateLeaseRequest ends an active lease early
type TerminateLeaseRequest struct {
	Date   time.Time `json:"date" binding:"required"`
	Reason string    `json:"reason" binding:"max=1000"`
}

// RenewLeaseRequest extends an active lease
type RenewLeaseRequest struct {
	NewEndDate     time.Time        `json:"new_end_date" binding:"required"`
	NewMonthlyRent *decimal.Decimal `json:"new_monthly_rent"`
}

// RecordRentPaymentRequest records rent received for a lease.
// A zero amount records the monthly rent.
type RecordRentPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"omitempty,oneof=cash check bank_transfer card other"`
	Reference     string          `json:"reference" binding:"max=100"`
	Description   string          `json:"description" binding:"max=500"`
}

// LeaseListFilter represents filter options for the lease list
type LeaseListFilter struct {
	Status             string `form:"status" binding:"omitempty,oneof=draft active expired terminated"`
	PropertyID         string `form:"property_id" binding:"omitempty,uuid"`
	UnitID             string `form:"unit_id" binding:"omitempty,uuid"`
	TenantID           string `form:"tenant_id" binding:"omitempty,uuid"`
	ExpiringWithinDays int    `form:"expiring_within_days" binding:"omitempty,min=1,max=365"`
	Page               int    `form:"page" binding:"omitempty,min=1"`
	PageSize           int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy            string `form:"order_by"`
	OrderDir           string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// LeaseResponse represents a lease in API responses
type LeaseResponse struct {
	ID                uuid.UUID       `json:"id"`
	PropertyID        uuid.UUID       `json:"property_id"`
	UnitID            uuid.UUID       `json:"unit_id"`
	TenantID          uuid.UUID       `json:"tenant_id"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	MonthlyRent       decimal.Decimal `json:"monthly_rent"`
	SecurityDeposit   decimal.Decimal `json:"security_deposit"`
	RentDueDay        int             `json:"rent_due_day"`
	Status            string          `json:"status"`
	DaysUntilEnd      *int            `json:"days_until_end,omitempty"`
	ActivatedAt       *time.Time      `json:"activated_at,omitempty"`
	TerminatedAt      *time.Time      `json:"terminated_at,omitempty"`
	TerminationReason string          `json:"termination_reason,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	CreatedBy         *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// ToLeaseResponse converts a domain lease to a response DTO
func ToLeaseResponse(l *leasing.Lease) LeaseResponse {
	resp := LeaseResponse{
		ID:                l.ID,
		PropertyID:        l.PropertyID,
		UnitID:            l.UnitID,
		TenantID:          l.TenantID,
		StartDate:         l.StartDate,
		EndDate:           l.EndDate,
		MonthlyRent:       l.MonthlyRent,
		SecurityDeposit:   l.SecurityDeposit,
		RentDueDay:        l.RentDueDay,
		Status:            string(l.Status),
		ActivatedAt:       l.ActivatedAt,
		TerminatedAt:      l.TerminatedAt,
		TerminationReason: l.TerminationReason,
		Notes:             l.Notes,
		CreatedBy:         l.CreatedBy,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
		Version:           l.Version,
	}
	if l.IsActive() {
		days := l.DaysUntilEnd(time.Now())
		resp.DaysUntilEnd = &days
	}
	return resp
}

// ToLeaseResponses converts a slice of domain leases
func ToLeaseResponses(leases []leasing.Lease) []LeaseResponse {
	out := make([]LeaseResponse, len(leases))
	for i := range leases {
		out[i] = ToLeaseResponse(&leases[i])
	}
	return out
}

// RentPaymentResponse describes the income transaction created for a rent payment
type RentPaymentResponse struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	LeaseID       uuid.UUID       `json:"lease_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        string          `json:"status"`
}
