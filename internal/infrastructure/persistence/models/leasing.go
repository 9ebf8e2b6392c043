package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/shopspring/decimal"
)

// TenantModel is the persistence model for tenants
type TenantModel struct {
	OrgAggregateModel
	FirstName             string               `gorm:"type:varchar(100);not null"`
	LastName              string               `gorm:"type:varchar(100);not null"`
	Email                 string               `gorm:"type:varchar(255)"`
	Phone                 string               `gorm:"type:varchar(50)"`
	DateOfBirth           *time.Time           `gorm:"type:date"`
	EmergencyContactName  string               `gorm:"type:varchar(200)"`
	EmergencyContactPhone string               `gorm:"type:varchar(50)"`
	Notes                 string               `gorm:"type:text"`
	Status                leasing.TenantStatus `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the model to a domain Tenant
func (m *TenantModel) ToDomain() *leasing.Tenant {
	return &leasing.Tenant{
		OrgAggregateRoot:      m.ToDomainOrgAggregateRoot(),
		FirstName:             m.FirstName,
		LastName:              m.LastName,
		Email:                 m.Email,
		Phone:                 m.Phone,
		DateOfBirth:           m.DateOfBirth,
		EmergencyContactName:  m.EmergencyContactName,
		EmergencyContactPhone: m.EmergencyContactPhone,
		Notes:                 m.Notes,
		Status:                m.Status,
	}
}

// TenantModelFromDomain builds a model from a domain Tenant
func TenantModelFromDomain(t *leasing.Tenant) *TenantModel {
	m := &TenantModel{
		FirstName:             t.FirstName,
		LastName:              t.LastName,
		Email:                 t.Email,
		Phone:                 t.Phone,
		DateOfBirth:           t.DateOfBirth,
		EmergencyContactName:  t.EmergencyContactName,
		EmergencyContactPhone: t.EmergencyContactPhone,
		Notes:                 t.Notes,
		Status:                t.Status,
	}
	m.FromDomainOrgAggregateRoot(t.OrgAggregateRoot)
	return m
}

// LeaseModel is the persistence model for leases
type LeaseModel struct {
	OrgAggregateModel
	PropertyID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	UnitID            uuid.UUID           `gorm:"type:uuid;not null;index"`
	TenantID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	StartDate         time.Time           `gorm:"type:date;not null"`
	EndDate           time.Time           `gorm:"type:date;not null;index"`
	MonthlyRent       decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	SecurityDeposit   decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0"`
	RentDueDay        int                 `gorm:"not null;default:1"`
	Status            leasing.LeaseStatus `gorm:"type:varchar(20);not null;index"`
	ActivatedAt       *time.Time
	TerminatedAt      *time.Time
	TerminationReason string `gorm:"type:text"`
	Notes             string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LeaseModel) TableName() string {
	return "leases"
}

// ToDomain converts the model to a domain Lease
func (m *LeaseModel) ToDomain() *leasing.Lease {
	return &leasing.Lease{
		OrgAggregateRoot:  m.ToDomainOrgAggregateRoot(),
		PropertyID:        m.PropertyID,
		UnitID:            m.UnitID,
		TenantID:          m.TenantID,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		MonthlyRent:       m.MonthlyRent,
		SecurityDeposit:   m.SecurityDeposit,
		RentDueDay:        m.RentDueDay,
		Status:            m.Status,
		ActivatedAt:       m.ActivatedAt,
		TerminatedAt:      m.TerminatedAt,
		TerminationReason: m.TerminationReason,
		Notes:             m.Notes,
	}
}

// LeaseModelFromDomain builds a model from a domain Lease
func LeaseModelFromDomain(l *leasing.Lease) *LeaseModel {
	m := &LeaseModel{
		PropertyID:        l.PropertyID,
		UnitID:            l.UnitID,
		TenantID:          l.TenantID,
		StartDate:         l.StartDate,
		EndDate:           l.EndDate,
		MonthlyRent:       l.MonthlyRent,
		SecurityDeposit:   l.SecurityDeposit,
		RentDueDay:        l.RentDueDay,
		Status:            l.Status,
		ActivatedAt:       l.ActivatedAt,
		TerminatedAt:      l.TerminatedAt,
		TerminationReason: l.TerminationReason,
		Notes:             l.Notes,
	}
	m.FromDomainOrgAggregateRoot(l.OrgAggregateRoot)
	return m
}
