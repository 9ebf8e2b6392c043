package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTransactionRepository implements finance.TransactionRepository
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new transaction repository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByIDForOrg finds a transaction by ID within an organization
func (r *GormTransactionRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*finance.Transaction, error) {
	var m models.TransactionModel
	if err := conn(ctx, r.db).First(&m, "org_id = ? AND id = ?", orgID, id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindAllForOrg lists transactions with search, filtering and pagination
func (r *GormTransactionRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]finance.Transaction, error) {
	var rows []models.TransactionModel
	query := r.filtered(conn(ctx, r.db).Model(&models.TransactionModel{}), orgID, filter)
	if err := paginate(query, filter, transactionSort, "transaction_date").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]finance.Transaction, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// CountForOrg counts transactions matching the filter
func (r *GormTransactionRepository) CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.filtered(conn(ctx, r.db).Model(&models.TransactionModel{}), orgID, filter).Count(&count).Error
	return count, err
}

// SumByCategory totals completed transactions by type, category and currency
func (r *GormTransactionRepository) SumByCategory(ctx context.Context, orgID uuid.UUID, q finance.SummaryQuery) ([]finance.CategoryTotal, error) {
	query := conn(ctx, r.db).Model(&models.TransactionModel{}).
		Select("type, category, currency, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("org_id = ? AND status = ?", orgID, finance.TransactionStatusCompleted)
	if !q.From.IsZero() {
		query = query.Where("transaction_date >= ?", q.From.UTC())
	}
	if !q.To.IsZero() {
		query = query.Where("transaction_date <= ?", q.To.UTC())
	}
	if q.PropertyID != nil {
		query = query.Where("property_id = ?", *q.PropertyID)
	}

	var rows []struct {
		Type     finance.TransactionType
		Category finance.Category
		Currency string
		Total    decimal.Decimal
		Count    int64
	}
	if err := query.Group("type, category, currency").Order("type, category").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]finance.CategoryTotal, len(rows))
	for i, row := range rows {
		out[i] = finance.CategoryTotal{
			Type:     row.Type,
			Category: row.Category,
			Currency: row.Currency,
			Total:    row.Total.Round(2),
			Count:    row.Count,
		}
	}
	return out, nil
}

// FindLiveForMaintenance returns the newest non-void transaction that
// references the request
func (r *GormTransactionRepository) FindLiveForMaintenance(ctx context.Context, orgID, requestID uuid.UUID) (*finance.Transaction, error) {
	var m models.TransactionModel
	err := conn(ctx, r.db).
		Where("org_id = ? AND maintenance_request_id = ? AND status <> ?", orgID, requestID, finance.TransactionStatusVoid).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// Save creates or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, t *finance.Transaction) error {
	return saveVersioned(conn(ctx, r.db), models.TransactionModelFromDomain(t), t.ID, t.Version)
}

func (r *GormTransactionRepository) filtered(query *gorm.DB, orgID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("org_id = ?", orgID)
	query = applyEquals(query, filter, filterColumns{
		"type":        "type",
		"category":    "category",
		"status":      "status",
		"property_id": "property_id",
		"unit_id":     "unit_id",
		"lease_id":    "lease_id",
		"tenant_id":   "tenant_id",
	})
	query = applyDateRange(query, filter, "transaction_date")
	return searchAny(query, filter.Search, "description", "reference")
}

var _ finance.TransactionRepository = (*GormTransactionRepository)(nil)
