package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SummaryQuery selects the transactions included in a summary
type SummaryQuery struct {
	From       time.Time
	To         time.Time
	PropertyID *uuid.UUID
}

// CategoryTotal is the sum of completed transactions for one type and category
type CategoryTotal struct {
	Type     TransactionType
	Category Category
	Currency string
	Total    decimal.Decimal
	Count    int64
}

// TransactionRepository defines the interface for transaction persistence
type TransactionRepository interface {
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*Transaction, error)

	// FindAllForOrg lists transactions. Supported filters: type, category, status,
	// property_id, unit_id, lease_id, tenant_id, date_from, date_to (time.Time).
	// Search matches description and reference.
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Transaction, error)

	CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// SumByCategory totals completed transactions in the query range, inclusive
	SumByCategory(ctx context.Context, orgID uuid.UUID, query SummaryQuery) ([]CategoryTotal, error)

	// FindLiveForMaintenance returns the non-void transaction linked to a
	// maintenance request, or shared.ErrNotFound
	FindLiveForMaintenance(ctx context.Context, orgID, requestID uuid.UUID) (*Transaction, error)

	Save(ctx context.Context, tx *Transaction) error
}
