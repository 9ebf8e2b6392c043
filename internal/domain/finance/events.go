package finance

import (
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AggregateTypeTransaction is the aggregate type for transactions
const AggregateTypeTransaction = "Transaction"

// Event type constants
const (
	EventTypeTransactionRecorded = "TransactionRecorded"
	EventTypeTransactionUpdated  = "TransactionUpdated"
	EventTypeTransactionVoided   = "TransactionVoided"
)

// TransactionRecordedEvent is published when a transaction is recorded
type TransactionRecordedEvent struct {
	shared.BaseDomainEvent
	TransactionID uuid.UUID       `json:"transaction_id"`
	Type          TransactionType `json:"type"`
	Category      Category        `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

// NewTransactionRecordedEvent creates a new TransactionRecordedEvent
func NewTransactionRecordedEvent(t *Transaction) *TransactionRecordedEvent {
	return &TransactionRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransactionRecorded, AggregateTypeTransaction, t.ID, t.OrgID),
		TransactionID:   t.ID,
		Type:            t.Type,
		Category:        t.Category,
		Amount:          t.Amount,
		Currency:        string(t.Currency),
	}
}

// TransactionUpdatedEvent is published when the amount, type or links of a
// transaction change
type TransactionUpdatedEvent struct {
	shared.BaseDomainEvent
	TransactionID uuid.UUID       `json:"transaction_id"`
	Type          TransactionType `json:"type"`
	Category      Category        `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
}

// NewTransactionUpdatedEvent creates a new TransactionUpdatedEvent
func NewTransactionUpdatedEvent(t *Transaction) *TransactionUpdatedEvent {
	return &TransactionUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransactionUpdated, AggregateTypeTransaction, t.ID, t.OrgID),
		TransactionID:   t.ID,
		Type:            t.Type,
		Category:        t.Category,
		Amount:          t.Amount,
	}
}

// TransactionVoidedEvent is published when a transaction is voided
type TransactionVoidedEvent struct {
	shared.BaseDomainEvent
	TransactionID uuid.UUID `json:"transaction_id"`
	Reason        string    `json:"reason"`
}

// NewTransactionVoidedEvent creates a new TransactionVoidedEvent
func NewTransactionVoidedEvent(t *Transaction) *TransactionVoidedEvent {
	return &TransactionVoidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransactionVoided, AggregateTypeTransaction, t.ID, t.OrgID),
		TransactionID:   t.ID,
		Reason:          t.VoidReason,
	}
}
