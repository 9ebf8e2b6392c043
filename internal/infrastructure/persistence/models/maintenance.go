package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/shopspring/decimal"
)

// MaintenanceRequestModel is the persistence model for maintenance requests
type MaintenanceRequestModel struct {
	OrgAggregateModel
	PropertyID      uuid.UUID            `gorm:"type:uuid;not null;index"`
	UnitID          *uuid.UUID           `gorm:"type:uuid;index"`
	TenantID        *uuid.UUID           `gorm:"type:uuid"`
	Title           string               `gorm:"type:varchar(200);not null"`
	Description     string               `gorm:"type:text"`
	Category        maintenance.Category `gorm:"type:varchar(30);not null"`
	Priority        maintenance.Priority `gorm:"type:varchar(20);not null;index"`
	Status          maintenance.Status   `gorm:"type:varchar(20);not null;index"`
	AssignedTo      *uuid.UUID           `gorm:"type:uuid;index"`
	EstimatedCost   *decimal.Decimal     `gorm:"type:numeric(14,2)"`
	ActualCost      *decimal.Decimal     `gorm:"type:numeric(14,2)"`
	ScheduledDate   *time.Time           `gorm:"type:date"`
	CompletedAt     *time.Time
	CompletionNotes string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (MaintenanceRequestModel) TableName() string {
	return "maintenance_requests"
}

// ToDomain converts the model to a domain Request
func (m *MaintenanceRequestModel) ToDomain() *maintenance.Request {
	return &maintenance.Request{
		OrgAggregateRoot: m.ToDomainOrgAggregateRoot(),
		PropertyID:       m.PropertyID,
		UnitID:           m.UnitID,
		TenantID:         m.TenantID,
		Title:            m.Title,
		Description:      m.Description,
		Category:         m.Category,
		Priority:         m.Priority,
		Status:           m.Status,
		AssignedTo:       m.AssignedTo,
		EstimatedCost:    m.EstimatedCost,
		ActualCost:       m.ActualCost,
		ScheduledDate:    m.ScheduledDate,
		CompletedAt:      m.CompletedAt,
		CompletionNotes:  m.CompletionNotes,
	}
}

// MaintenanceRequestModelFromDomain builds a model from a domain Request
func MaintenanceRequestModelFromDomain(r *maintenance.Request) *MaintenanceRequestModel {
	m := &MaintenanceRequestModel{
		PropertyID:      r.PropertyID,
		UnitID:          r.UnitID,
		TenantID:        r.TenantID,
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Priority:        r.Priority,
		Status:          r.Status,
		AssignedTo:      r.AssignedTo,
		EstimatedCost:   r.EstimatedCost,
		ActualCost:      r.ActualCost,
		ScheduledDate:   r.ScheduledDate,
		CompletedAt:     r.CompletedAt,
		CompletionNotes: r.CompletionNotes,
	}
	m.FromDomainOrgAggregateRoot(r.OrgAggregateRoot)
	return m
}
