package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type txFixture struct {
	orgID        uuid.UUID
	userID       uuid.UUID
	org          *identity.Organization
	transactions *MockTransactionRepository
	orgs         *MockOrganizationRepository
	settings     *MockSettingsRepository
	properties   *MockPropertyRepository
	units        *MockUnitRepository
	leases       *MockLeaseRepository
	tenants      *MockTenantRepository
	requests     *MockRequestRepository
	renderer     *MockStatementRenderer
	bus          *recordingBus
	svc          *TransactionService
}

func newTxFixture(t *testing.T, withRenderer bool) *txFixture {
	t.Helper()
	org, err := identity.NewOrganization("Harbor Rentals")
	require.NoError(t, err)
	org.DefaultCurrency = valueobject.EUR

	f := &txFixture{
		orgID:        org.ID,
		userID:       uuid.New(),
		org:          org,
		transactions: new(MockTransactionRepository),
		orgs:         new(MockOrganizationRepository),
		settings:     new(MockSettingsRepository),
		properties:   new(MockPropertyRepository),
		units:        new(MockUnitRepository),
		leases:       new(MockLeaseRepository),
		tenants:      new(MockTenantRepository),
		requests:     new(MockRequestRepository),
		renderer:     new(MockStatementRenderer),
		bus:          &recordingBus{},
	}
	f.orgs.On("FindByID", mock.Anything, org.ID).Return(org, nil).Maybe()

	var renderer finance.StatementRenderer
	if withRenderer {
		renderer = f.renderer
	}
	f.svc = NewTransactionService(f.transactions, f.orgs, f.settings, LinkRepositories{
		Properties:  f.properties,
		Units:       f.units,
		Leases:      f.leases,
		Tenants:     f.tenants,
		Maintenance: f.requests,
	}, renderer, appevent.NewPublisher(f.bus, nil), zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2026, 3, 18, 15, 0, 0, 0, time.UTC) }
	return f
}

func (f *txFixture) property(t *testing.T) *property.Property {
	t.Helper()
	addr, err := valueobject.NewAddress("1 Pier Rd", "Seattle", "WA", "98101", "US")
	require.NoError(t, err)
	p, err := property.NewProperty(f.orgID, f.userID, "Pier View", property.TypeApartment, addr)
	require.NoError(t, err)
	return p
}

func (f *txFixture) transaction(t *testing.T) *finance.Transaction {
	t.Helper()
	tx, err := finance.NewTransaction(f.orgID, f.userID, finance.Entry{
		Type:            finance.TransactionTypeExpense,
		Category:        finance.CategoryUtilities,
		Amount:          decimal.NewFromInt(120),
		Currency:        valueobject.EUR,
		TransactionDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Description:     "Water",
	})
	require.NoError(t, err)
	tx.ClearDomainEvents()
	return tx
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	de, ok := shared.AsDomainError(err)
	require.True(t, ok, "expected domain error, got %v", err)
	return de.Code
}

func ptr[T any](v T) *T { return &v }

func TestTransactionService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to organization currency", func(t *testing.T) {
		f := newTxFixture(t, false)
		p := f.property(t)
		f.properties.On("FindByIDForOrg", ctx, f.orgID, p.ID).Return(p, nil)
		f.transactions.On("Save", ctx, mock.AnythingOfType("*finance.Transaction")).Return(nil)

		resp, err := f.svc.Record(ctx, f.orgID, f.userID, RecordTransactionRequest{
			Type:            "income",
			Category:        "late_fee",
			Amount:          decimal.RequireFromString("35.456"),
			TransactionDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			PropertyID:      &p.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, "EUR", resp.Currency)
		assert.Equal(t, "35.46", resp.Amount.String())
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, []string{finance.EventTypeTransactionRecorded}, f.bus.types())
	})

	t.Run("unknown linked lease", func(t *testing.T) {
		f := newTxFixture(t, false)
		leaseID := uuid.New()
		f.leases.On("FindByIDForOrg", ctx, f.orgID, leaseID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.Record(ctx, f.orgID, f.userID, RecordTransactionRequest{
			Type:            "income",
			Category:        "rent",
			Amount:          decimal.NewFromInt(900),
			TransactionDate: time.Now(),
			LeaseID:         &leaseID,
		})

		assert.Equal(t, "INVALID_LINK", errorCode(t, err))
		f.transactions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unit outside linked property", func(t *testing.T) {
		f := newTxFixture(t, false)
		p := f.property(t)
		u, err := property.NewUnit(f.orgID, f.userID, uuid.New(), "7", property.UnitSpec{})
		require.NoError(t, err)
		f.properties.On("FindByIDForOrg", ctx, f.orgID, p.ID).Return(p, nil)
		f.units.On("FindByIDForOrg", ctx, f.orgID, u.ID).Return(u, nil)

		_, err = f.svc.Record(ctx, f.orgID, f.userID, RecordTransactionRequest{
			Type:            "expense",
			Category:        "utilities",
			Amount:          decimal.NewFromInt(40),
			TransactionDate: time.Now(),
			PropertyID:      &p.ID,
			UnitID:          &u.ID,
		})

		assert.Equal(t, "INVALID_LINK", errorCode(t, err))
	})

	tests := []struct {
		name string
		req  RecordTransactionRequest
		code string
	}{
		{"zero amount", RecordTransactionRequest{Type: "income", Category: "rent", TransactionDate: time.Now()}, "INVALID_AMOUNT"},
		{"expense category on income", RecordTransactionRequest{Type: "income", Category: "tax", Amount: decimal.NewFromInt(1), TransactionDate: time.Now()}, "INVALID_CATEGORY"},
		{"missing date", RecordTransactionRequest{Type: "expense", Category: "tax", Amount: decimal.NewFromInt(1)}, "INVALID_DATE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTxFixture(t, false)
			_, err := f.svc.Record(ctx, f.orgID, f.userID, tt.req)
			assert.Equal(t, tt.code, errorCode(t, err))
		})
	}
}

func TestTransactionService_UpdateAndVoid(t *testing.T) {
	ctx := context.Background()

	t.Run("update keeps omitted fields", func(t *testing.T) {
		f := newTxFixture(t, false)
		tx := f.transaction(t)
		f.transactions.On("FindByIDForOrg", ctx, f.orgID, tx.ID).Return(tx, nil)
		f.transactions.On("Save", ctx, tx).Return(nil)

		resp, err := f.svc.Update(ctx, f.orgID, tx.ID, UpdateTransactionRequest{Amount: ptr(decimal.NewFromInt(150))})
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(150).Equal(resp.Amount))
		assert.Equal(t, "utilities", resp.Category)
		assert.Equal(t, "Water", resp.Description)
		assert.Equal(t, 2, resp.Version)
		assert.Equal(t, []string{finance.EventTypeTransactionUpdated}, f.bus.types())
	})

	t.Run("void then update is rejected", func(t *testing.T) {
		f := newTxFixture(t, false)
		tx := f.transaction(t)
		f.transactions.On("FindByIDForOrg", ctx, f.orgID, tx.ID).Return(tx, nil)
		f.transactions.On("Save", ctx, tx).Return(nil).Once()

		resp, err := f.svc.Void(ctx, f.orgID, tx.ID, VoidTransactionRequest{Reason: "Duplicate entry"})
		require.NoError(t, err)
		assert.Equal(t, "void", resp.Status)
		assert.Equal(t, []string{finance.EventTypeTransactionVoided}, f.bus.types())

		_, err = f.svc.Update(ctx, f.orgID, tx.ID, UpdateTransactionRequest{Description: ptr("x")})
		assert.ErrorIs(t, err, shared.ErrInvalidState)

		_, err = f.svc.Void(ctx, f.orgID, tx.ID, VoidTransactionRequest{Reason: "again"})
		assert.Equal(t, "INVALID_STATE", errorCode(t, err))
		f.transactions.AssertNumberOfCalls(t, "Save", 1)
	})
}

func TestTransactionService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("date range covers the whole end day", func(t *testing.T) {
		f := newTxFixture(t, false)
		from := time.Date(2026, 2, 1, 13, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		matcher := mock.MatchedBy(func(fl shared.Filter) bool {
			gotFrom, _ := fl.Filters["date_from"].(time.Time)
			gotTo, _ := fl.Filters["date_to"].(time.Time)
			return gotFrom.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) &&
				gotTo.Equal(time.Date(2026, 2, 28, 23, 59, 59, 999999999, time.UTC)) &&
				fl.Filters["type"] == "expense" &&
				fl.OrderBy == "transaction_date"
		})
		f.transactions.On("FindAllForOrg", ctx, f.orgID, matcher).Return([]finance.Transaction{*f.transaction(t)}, nil)
		f.transactions.On("CountForOrg", ctx, f.orgID, matcher).Return(int64(1), nil)

		items, total, err := f.svc.List(ctx, f.orgID, TransactionListFilter{Type: "expense", DateFrom: &from, DateTo: &to})
		require.NoError(t, err)

		assert.Len(t, items, 1)
		assert.Equal(t, int64(1), total)
	})

	t.Run("reversed range", func(t *testing.T) {
		f := newTxFixture(t, false)
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		_, _, err := f.svc.List(ctx, f.orgID, TransactionListFilter{DateFrom: &from, DateTo: &to})

		assert.Equal(t, "INVALID_DATE_RANGE", errorCode(t, err))
	})
}

func TestTransactionService_Summary(t *testing.T) {
	ctx := context.Background()
	f := newTxFixture(t, false)
	p := f.property(t)
	f.properties.On("FindByIDForOrg", ctx, f.orgID, p.ID).Return(p, nil)
	f.transactions.On("SumByCategory", ctx, f.orgID, mock.MatchedBy(func(q finance.SummaryQuery) bool {
		return q.PropertyID != nil && *q.PropertyID == p.ID && q.From.IsZero() && q.To.IsZero()
	})).Return([]finance.CategoryTotal{
		{Type: finance.TransactionTypeExpense, Category: finance.CategoryMaintenance, Currency: "EUR", Total: decimal.NewFromInt(300), Count: 2},
		{Type: finance.TransactionTypeIncome, Category: finance.CategoryRent, Currency: "EUR", Total: decimal.NewFromInt(2400), Count: 2},
	}, nil)

	resp, err := f.svc.Summary(ctx, f.orgID, SummaryRequest{PropertyID: p.ID.String()})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(2400).Equal(resp.Income))
	assert.True(t, decimal.NewFromInt(300).Equal(resp.Expense))
	assert.True(t, decimal.NewFromInt(2100).Equal(resp.Net))
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "rent", resp.Categories[0].Category)
	assert.Equal(t, p.ID, *resp.PropertyID)
}

func TestTransactionService_Statement(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without renderer", func(t *testing.T) {
		f := newTxFixture(t, false)

		_, err := f.svc.Statement(ctx, f.orgID, f.userID, SummaryRequest{})

		assert.ErrorIs(t, err, finance.ErrStatementRendererUnavailable)
	})

	t.Run("defaults to month to date and uses user locale", func(t *testing.T) {
		f := newTxFixture(t, true)
		settings := identity.NewDefaultSettings(f.orgID, f.userID, valueobject.EUR)
		settings.Locale = "de-DE"
		f.settings.On("FindByUser", ctx, f.orgID, f.userID).Return(settings, nil)
		f.transactions.On("SumByCategory", ctx, f.orgID, mock.Anything).Return([]finance.CategoryTotal{}, nil)
		f.transactions.On("FindAllForOrg", ctx, f.orgID, mock.MatchedBy(func(fl shared.Filter) bool {
			return fl.Filters["status"] == "completed" && fl.PageSize == 0 && fl.OrderDir == "asc"
		})).Return([]finance.Transaction{*f.transaction(t)}, nil)
		f.renderer.On("RenderStatement", ctx, mock.MatchedBy(func(st *finance.Statement) bool {
			return st.OrganizationName == "Harbor Rentals" &&
				st.Locale == "de-DE" &&
				st.Currency == valueobject.EUR &&
				st.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) &&
				st.To.Equal(time.Date(2026, 3, 18, 23, 59, 59, 999999999, time.UTC)) &&
				len(st.Transactions) == 1
		})).Return([]byte("%PDF-1.4"), nil)

		result, err := f.svc.Statement(ctx, f.orgID, f.userID, SummaryRequest{})
		require.NoError(t, err)

		assert.Equal(t, "statement-20260301-20260318.pdf", result.FileName)
		assert.Equal(t, []byte("%PDF-1.4"), result.Content)
		f.renderer.AssertExpectations(t)
	})

	t.Run("render failure is wrapped", func(t *testing.T) {
		f := newTxFixture(t, true)
		f.settings.On("FindByUser", ctx, f.orgID, f.userID).Return(nil, shared.ErrNotFound)
		f.transactions.On("SumByCategory", ctx, f.orgID, mock.Anything).Return([]finance.CategoryTotal{}, nil)
		f.transactions.On("FindAllForOrg", ctx, f.orgID, mock.Anything).Return([]finance.Transaction{}, nil)
		boom := errors.New("chrome crashed")
		f.renderer.On("RenderStatement", ctx, mock.Anything).Return(nil, boom)

		_, err := f.svc.Statement(ctx, f.orgID, f.userID, SummaryRequest{})

		assert.ErrorIs(t, err, boom)
	})
}
