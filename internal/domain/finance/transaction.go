package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid checks if the type is known
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Category classifies a transaction
type Category string

const (
	CategoryRent        Category = "rent"
	CategoryDeposit     Category = "deposit"
	CategoryLateFee     Category = "late_fee"
	CategoryOtherIncome Category = "other_income"

	CategoryMaintenance Category = "maintenance"
	CategoryUtilities   Category = "utilities"
	CategoryInsurance   Category = "insurance"
	CategoryTax         Category = "tax"
	CategoryMortgage    Category = "mortgage"
	CategoryManagement  Category = "management"
	CategoryOther       Category = "other"
)

var categoriesByType = map[TransactionType][]Category{
	TransactionTypeIncome:  {CategoryRent, CategoryDeposit, CategoryLateFee, CategoryOtherIncome, CategoryOther},
	TransactionTypeExpense: {CategoryMaintenance, CategoryUtilities, CategoryInsurance, CategoryTax, CategoryMortgage, CategoryManagement, CategoryOther},
}

// AllowedFor reports whether the category can be used with the transaction type
func (c Category) AllowedFor(t TransactionType) bool {
	for _, allowed := range categoriesByType[t] {
		if c == allowed {
			return true
		}
	}
	return false
}

// CategoriesFor returns the categories usable with a transaction type
func CategoriesFor(t TransactionType) []Category {
	return append([]Category(nil), categoriesByType[t]...)
}

// TransactionStatus represents the state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusVoid      TransactionStatus = "void"
)

// IsValid checks if the status can be set on record or update
func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusPending || s == TransactionStatusCompleted
}

// PaymentMethod records how money changed hands
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodOther        PaymentMethod = "other"
)

// IsValid checks if the payment method is known
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodBankTransfer, PaymentMethodCard, PaymentMethodOther:
		return true
	}
	return false
}

// Links ties a transaction to the records it relates to
type Links struct {
	PropertyID           *uuid.UUID
	UnitID               *uuid.UUID
	LeaseID              *uuid.UUID
	TenantID             *uuid.UUID
	MaintenanceRequestID *uuid.UUID
}

// Transaction is a single income or expense entry
type Transaction struct {
	shared.OrgAggregateRoot
	Links
	Type            TransactionType
	Category        Category
	Amount          decimal.Decimal
	Currency        valueobject.Currency
	TransactionDate time.Time
	Description     string
	Reference       string
	PaymentMethod   PaymentMethod
	Status          TransactionStatus
	VoidedAt        *time.Time
	VoidReason      string
}

// Entry holds the editable fields of a transaction
type Entry struct {
	Type            TransactionType
	Category        Category
	Amount          decimal.Decimal
	Currency        valueobject.Currency
	TransactionDate time.Time
	Description     string
	Reference       string
	PaymentMethod   PaymentMethod
	Status          TransactionStatus
	Links           Links
}

// NewTransaction records a transaction
func NewTransaction(orgID, createdBy uuid.UUID, e Entry) (*Transaction, error) {
	e, err := normalizeEntry(e)
	if err != nil {
		return nil, err
	}

	tx := &Transaction{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(orgID, createdBy),
	}
	tx.applyEntry(e)

	tx.AddDomainEvent(NewTransactionRecordedEvent(tx))
	return tx, nil
}

// Update replaces the editable fields of a transaction that is not void
func (t *Transaction) Update(e Entry) error {
	if t.IsVoid() {
		return shared.NewDomainError("INVALID_STATE", "Void transactions cannot be edited")
	}
	e, err := normalizeEntry(e)
	if err != nil {
		return err
	}
	t.applyEntry(e)
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTransactionUpdatedEvent(t))
	return nil
}

// Void cancels a transaction. Void transactions are excluded from totals.
func (t *Transaction) Void(reason string) error {
	if t.IsVoid() {
		return shared.NewDomainError("INVALID_STATE", "Transaction is already void")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Void reason is required")
	}
	now := time.Now()
	t.Status = TransactionStatusVoid
	t.VoidedAt = &now
	t.VoidReason = reason
	t.UpdatedAt = now
	t.IncrementVersion()

	t.AddDomainEvent(NewTransactionVoidedEvent(t))
	return nil
}

// IsVoid returns true if the transaction has been voided
func (t *Transaction) IsVoid() bool {
	return t.Status == TransactionStatusVoid
}

// Money returns the amount as a Money value
func (t *Transaction) Money() (valueobject.Money, error) {
	return valueobject.NewMoney(t.Amount, t.Currency)
}

// SignedAmount returns the amount, negated for expenses
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t *Transaction) applyEntry(e Entry) {
	t.Type = e.Type
	t.Category = e.Category
	t.Amount = e.Amount
	t.Currency = e.Currency
	t.TransactionDate = e.TransactionDate
	t.Description = e.Description
	t.Reference = e.Reference
	t.PaymentMethod = e.PaymentMethod
	t.Status = e.Status
	t.Links = e.Links
}

func normalizeEntry(e Entry) (Entry, error) {
	if !e.Type.IsValid() {
		return e, shared.NewDomainError("INVALID_TYPE", "Transaction type must be income or expense")
	}
	if !e.Category.AllowedFor(e.Type) {
		return e, shared.NewDomainError("INVALID_CATEGORY", "Category "+string(e.Category)+" is not valid for "+string(e.Type))
	}
	if !e.Amount.IsPositive() {
		return e, shared.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
	}
	if e.Currency == "" {
		e.Currency = valueobject.DefaultCurrency
	}
	if !valueobject.IsSupportedCurrency(string(e.Currency)) {
		return e, shared.NewDomainError("INVALID_CURRENCY", "Unsupported currency")
	}
	if e.TransactionDate.IsZero() {
		return e, shared.NewDomainError("INVALID_DATE", "Transaction date is required")
	}
	if e.PaymentMethod != "" && !e.PaymentMethod.IsValid() {
		return e, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Invalid payment method")
	}
	if e.Status == "" {
		e.Status = TransactionStatusCompleted
	}
	if !e.Status.IsValid() {
		return e, shared.NewDomainError("INVALID_STATUS", "Status must be pending or completed")
	}
	e.Amount = e.Amount.Round(e.Currency.Scale())
	e.Description = strings.TrimSpace(e.Description)
	e.Reference = strings.TrimSpace(e.Reference)
	return e, nil
}
