package finance

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func completedEvent(t *testing.T, orgID uuid.UUID, cost *decimal.Decimal) *maintenance.RequestCompletedEvent {
	t.Helper()
	unitID := uuid.New()
	r, err := maintenance.NewRequest(orgID, uuid.New(), uuid.New(), maintenance.Details{
		UnitID: &unitID,
		Title:  "Replace water heater",
	})
	require.NoError(t, err)
	require.NoError(t, r.Start())
	require.NoError(t, r.Complete(cost, ""))

	for _, e := range r.GetDomainEvents() {
		if done, ok := e.(*maintenance.RequestCompletedEvent); ok {
			return done
		}
	}
	t.Fatal("no completion event")
	return nil
}

// maintenanceExpense is the live expense an earlier completion of the request left
func maintenanceExpense(t *testing.T, event *maintenance.RequestCompletedEvent, amount string) *finance.Transaction {
	t.Helper()
	requestID := event.RequestID
	tx, err := finance.NewTransaction(event.OrgID(), uuid.New(), finance.Entry{
		Type:            finance.TransactionTypeExpense,
		Category:        finance.CategoryMaintenance,
		Amount:          decimal.RequireFromString(amount),
		Currency:        valueobject.GBP,
		TransactionDate: event.OccurredAt(),
		Description:     "Maintenance: " + event.Title,
		Links:           finance.Links{MaintenanceRequestID: &requestID},
	})
	require.NoError(t, err)
	tx.ClearDomainEvents()
	return tx
}

func TestMaintenanceCompletedHandler_EventTypes(t *testing.T) {
	h := NewMaintenanceCompletedHandler(nil, nil, nil, zap.NewNop())
	assert.Equal(t, []string{maintenance.EventTypeRequestCompleted}, h.EventTypes())
}

func TestMaintenanceCompletedHandler_Handle(t *testing.T) {
	ctx := context.Background()

	newOrg := func(t *testing.T) *identity.Organization {
		org, err := identity.NewOrganization("Maple Property Group")
		require.NoError(t, err)
		org.DefaultCurrency = valueobject.GBP
		return org
	}

	t.Run("records expense linked to the request", func(t *testing.T) {
		org := newOrg(t)
		txRepo := new(MockTransactionRepository)
		orgRepo := new(MockOrganizationRepository)
		bus := &recordingBus{}
		h := NewMaintenanceCompletedHandler(txRepo, orgRepo, appevent.NewPublisher(bus, nil), zap.NewNop())

		cost := decimal.RequireFromString("642.10")
		event := completedEvent(t, org.ID, &cost)
		txRepo.On("FindLiveForMaintenance", ctx, org.ID, event.RequestID).Return(nil, shared.ErrNotFound)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		txRepo.On("Save", ctx, mock.MatchedBy(func(tx *finance.Transaction) bool {
			return tx.Type == finance.TransactionTypeExpense &&
				tx.Category == finance.CategoryMaintenance &&
				tx.Amount.Equal(cost) &&
				tx.Currency == valueobject.GBP &&
				*tx.MaintenanceRequestID == event.RequestID &&
				*tx.PropertyID == event.PropertyID &&
				*tx.UnitID == *event.UnitID &&
				*tx.CreatedBy == *event.CreatedBy &&
				tx.Description == "Maintenance: Replace water heater"
		})).Return(nil)

		require.NoError(t, h.Handle(ctx, event))

		txRepo.AssertExpectations(t)
		assert.Equal(t, []string{finance.EventTypeTransactionRecorded}, bus.types())
	})

	t.Run("zero cost is skipped", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		h := NewMaintenanceCompletedHandler(txRepo, new(MockOrganizationRepository), nil, zap.NewNop())

		zero := decimal.Zero
		require.NoError(t, h.Handle(ctx, completedEvent(t, uuid.New(), &zero)))
		require.NoError(t, h.Handle(ctx, completedEvent(t, uuid.New(), nil)))

		txRepo.AssertNotCalled(t, "FindLiveForMaintenance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already recorded is idempotent", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		h := NewMaintenanceCompletedHandler(txRepo, new(MockOrganizationRepository), nil, zap.NewNop())

		cost := decimal.NewFromInt(90)
		event := completedEvent(t, uuid.New(), &cost)
		txRepo.On("FindLiveForMaintenance", ctx, event.OrgID(), event.RequestID).
			Return(maintenanceExpense(t, event, "90.00"), nil)

		require.NoError(t, h.Handle(ctx, event))
		txRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("re-completion at a new cost replaces the expense", func(t *testing.T) {
		org := newOrg(t)
		txRepo := new(MockTransactionRepository)
		orgRepo := new(MockOrganizationRepository)
		bus := &recordingBus{}
		h := NewMaintenanceCompletedHandler(txRepo, orgRepo, appevent.NewPublisher(bus, nil), zap.NewNop())

		cost := decimal.RequireFromString("910.00")
		event := completedEvent(t, org.ID, &cost)
		earlier := maintenanceExpense(t, event, "642.10")
		txRepo.On("FindLiveForMaintenance", ctx, org.ID, event.RequestID).Return(earlier, nil)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		txRepo.On("Save", ctx, earlier).Return(nil).Once()
		txRepo.On("Save", ctx, mock.MatchedBy(func(tx *finance.Transaction) bool {
			return tx.ID != earlier.ID && tx.Amount.Equal(cost) && !tx.IsVoid()
		})).Return(nil).Once()

		require.NoError(t, h.Handle(ctx, event))

		txRepo.AssertExpectations(t)
		assert.True(t, earlier.IsVoid())
		assert.Equal(t, []string{finance.EventTypeTransactionVoided, finance.EventTypeTransactionRecorded}, bus.types())
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		h := NewMaintenanceCompletedHandler(txRepo, new(MockOrganizationRepository), nil, zap.NewNop())

		cost := decimal.NewFromInt(90)
		event := completedEvent(t, uuid.New(), &cost)
		dbErr := errors.New("connection reset")
		txRepo.On("FindLiveForMaintenance", ctx, event.OrgID(), event.RequestID).Return(nil, dbErr)

		err := h.Handle(ctx, event)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("wrong event type", func(t *testing.T) {
		h := NewMaintenanceCompletedHandler(nil, nil, nil, zap.NewNop())
		tenant, err := leasing.NewTenant(uuid.New(), uuid.New(), leasing.TenantContact{FirstName: "A", LastName: "B"})
		require.NoError(t, err)

		err = h.Handle(ctx, tenant.GetDomainEvents()[0])
		assert.Error(t, err)
	})
}
