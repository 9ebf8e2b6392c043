package finance

import (
	"context"
	"errors"
	"fmt"

	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MaintenanceCompletedHandler handles MaintenanceCompleted events
// and records the work's actual cost as an expense
type MaintenanceCompletedHandler struct {
	transactionRepo finance.TransactionRepository
	orgRepo         identity.OrganizationRepository
	publisher       *appevent.Publisher
	logger          *zap.Logger
}

// NewMaintenanceCompletedHandler creates a new handler for maintenance completion events
func NewMaintenanceCompletedHandler(
	transactionRepo finance.TransactionRepository,
	orgRepo identity.OrganizationRepository,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *MaintenanceCompletedHandler {
	return &MaintenanceCompletedHandler{
		transactionRepo: transactionRepo,
		orgRepo:         orgRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *MaintenanceCompletedHandler) EventTypes() []string {
	return []string{maintenance.EventTypeRequestCompleted}
}

// Handle records an expense for a completed request with a positive cost
func (h *MaintenanceCompletedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	completed, ok := event.(*maintenance.RequestCompletedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", maintenance.EventTypeRequestCompleted),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			maintenance.EventTypeRequestCompleted, event.EventType())
	}

	orgID := completed.OrgID()
	if !completed.ActualCost.IsPositive() {
		h.logger.Debug("skipping expense - maintenance completed without cost",
			zap.String("request_id", completed.RequestID.String()),
		)
		return nil
	}

	// The request's expense follows its latest completion. A redelivered event
	// finds the same amount and stops; a re-completion at a new cost voids the
	// earlier expense before recording the new one.
	live, err := h.transactionRepo.FindLiveForMaintenance(ctx, orgID, completed.RequestID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
	case err != nil:
		h.logger.Error("failed to check existing maintenance expense",
			zap.String("request_id", completed.RequestID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to check existing maintenance expense: %w", err)
	case live.Amount.Equal(completed.ActualCost):
		h.logger.Info("maintenance expense already recorded, skipping",
			zap.String("request_id", completed.RequestID.String()),
		)
		return nil
	default:
		if err := live.Void("Superseded by a later completion of the request"); err != nil {
			return fmt.Errorf("failed to void superseded maintenance expense: %w", err)
		}
		if err := h.transactionRepo.Save(ctx, live); err != nil {
			return fmt.Errorf("failed to void superseded maintenance expense: %w", err)
		}
		h.publisher.Publish(ctx, live)
		h.logger.Info("superseded maintenance expense voided",
			zap.String("transaction_id", live.ID.String()),
			zap.String("request_id", completed.RequestID.String()),
		)
	}

	org, err := h.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to load organization: %w", err)
	}

	createdBy := orgID
	if completed.CreatedBy != nil {
		createdBy = *completed.CreatedBy
	}
	requestID := completed.RequestID
	propertyID := completed.PropertyID

	tx, err := finance.NewTransaction(orgID, createdBy, finance.Entry{
		Type:            finance.TransactionTypeExpense,
		Category:        finance.CategoryMaintenance,
		Amount:          completed.ActualCost,
		Currency:        org.DefaultCurrency,
		TransactionDate: completed.OccurredAt(),
		Description:     "Maintenance: " + completed.Title,
		Links: finance.Links{
			PropertyID:           &propertyID,
			UnitID:               completed.UnitID,
			MaintenanceRequestID: &requestID,
		},
	})
	if err != nil {
		h.logger.Error("failed to build maintenance expense",
			zap.String("request_id", completed.RequestID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to build maintenance expense: %w", err)
	}

	if err := h.transactionRepo.Save(ctx, tx); err != nil {
		h.logger.Error("failed to save maintenance expense",
			zap.String("request_id", completed.RequestID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save maintenance expense: %w", err)
	}

	h.publisher.Publish(ctx, tx)

	h.logger.Info("maintenance expense recorded",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("request_id", completed.RequestID.String()),
		zap.String("property_id", completed.PropertyID.String()),
		zap.String("amount", tx.Amount.String()),
		zap.String("currency", string(tx.Currency)),
	)

	return nil
}

// Ensure MaintenanceCompletedHandler implements shared.EventHandler
var _ shared.EventHandler = (*MaintenanceCompletedHandler)(nil)
