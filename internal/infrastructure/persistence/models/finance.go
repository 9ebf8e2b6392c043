package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// TransactionModel is the persistence model for ledger transactions
type TransactionModel struct {
	OrgAggregateModel
	PropertyID           *uuid.UUID                `gorm:"type:uuid;index"`
	UnitID               *uuid.UUID                `gorm:"type:uuid;index"`
	LeaseID              *uuid.UUID                `gorm:"type:uuid;index"`
	TenantID             *uuid.UUID                `gorm:"type:uuid;index"`
	MaintenanceRequestID *uuid.UUID                `gorm:"type:uuid;index"`
	Type                 finance.TransactionType   `gorm:"type:varchar(10);not null"`
	Category             finance.Category          `gorm:"type:varchar(30);not null"`
	Amount               decimal.Decimal           `gorm:"type:numeric(14,2);not null"`
	Currency             valueobject.Currency      `gorm:"type:char(3);not null"`
	TransactionDate      time.Time                 `gorm:"type:date;not null;index"`
	Description          string                    `gorm:"type:text"`
	Reference            string                    `gorm:"type:varchar(100)"`
	PaymentMethod        finance.PaymentMethod     `gorm:"type:varchar(20)"`
	Status               finance.TransactionStatus `gorm:"type:varchar(20);not null;index"`
	VoidedAt             *time.Time
	VoidReason           string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the model to a domain Transaction
func (m *TransactionModel) ToDomain() *finance.Transaction {
	return &finance.Transaction{
		OrgAggregateRoot: m.ToDomainOrgAggregateRoot(),
		Links: finance.Links{
			PropertyID:           m.PropertyID,
			UnitID:               m.UnitID,
			LeaseID:              m.LeaseID,
			TenantID:             m.TenantID,
			MaintenanceRequestID: m.MaintenanceRequestID,
		},
		Type:            m.Type,
		Category:        m.Category,
		Amount:          m.Amount,
		Currency:        m.Currency,
		TransactionDate: m.TransactionDate,
		Description:     m.Description,
		Reference:       m.Reference,
		PaymentMethod:   m.PaymentMethod,
		Status:          m.Status,
		VoidedAt:        m.VoidedAt,
		VoidReason:      m.VoidReason,
	}
}

// TransactionModelFromDomain builds a model from a domain Transaction
func TransactionModelFromDomain(t *finance.Transaction) *TransactionModel {
	m := &TransactionModel{
		PropertyID:           t.PropertyID,
		UnitID:               t.UnitID,
		LeaseID:              t.LeaseID,
		TenantID:             t.TenantID,
		MaintenanceRequestID: t.MaintenanceRequestID,
		Type:                 t.Type,
		Category:             t.Category,
		Amount:               t.Amount,
		Currency:             t.Currency,
		TransactionDate:      t.TransactionDate,
		Description:          t.Description,
		Reference:            t.Reference,
		PaymentMethod:        t.PaymentMethod,
		Status:               t.Status,
		VoidedAt:             t.VoidedAt,
		VoidReason:           t.VoidReason,
	}
	m.FromDomainOrgAggregateRoot(t.OrgAggregateRoot)
	return m
}
