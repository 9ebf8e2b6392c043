package dashboard

import (
	"context"

	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/inspection"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CacheInvalidationHandler drops cached dashboards when data they summarize
// changes. Business writes clear the whole organization; a settings change
// clears only the user whose widgets or currency changed.
type CacheInvalidationHandler struct {
	dashboard *DashboardService
	logger    *zap.Logger
}

// NewCacheInvalidationHandler creates a new CacheInvalidationHandler
func NewCacheInvalidationHandler(dashboard *DashboardService, logger *zap.Logger) *CacheInvalidationHandler {
	return &CacheInvalidationHandler{dashboard: dashboard, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *CacheInvalidationHandler) EventTypes() []string {
	return []string{
		property.EventTypePropertyCreated,
		property.EventTypePropertyUpdated,
		property.EventTypePropertyStatusChanged,
		property.EventTypePropertyDeleted,
		property.EventTypeUnitCreated,
		property.EventTypeUnitStatusChanged,
		property.EventTypeUnitDeleted,
		leasing.EventTypeLeaseCreated,
		leasing.EventTypeLeaseActivated,
		leasing.EventTypeLeaseEnded,
		leasing.EventTypeLeaseRenewed,
		finance.EventTypeTransactionRecorded,
		finance.EventTypeTransactionUpdated,
		finance.EventTypeTransactionVoided,
		maintenance.EventTypeRequestCreated,
		maintenance.EventTypeRequestUpdated,
		maintenance.EventTypeRequestStatusChanged,
		maintenance.EventTypeRequestCompleted,
		maintenance.EventTypeRequestDeleted,
		inspection.EventTypeInspectionScheduled,
		inspection.EventTypeInspectionUpdated,
		inspection.EventTypeInspectionStatusChanged,
		inspection.EventTypeInspectionCompleted,
		inspection.EventTypeInspectionDeleted,
		identity.EventTypeSettingsChanged,
	}
}

// Handle invalidates the affected cache entries. Failures are logged and
// swallowed; entries expire on their own.
func (h *CacheInvalidationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	var err error
	if changed, ok := event.(*identity.SettingsChangedEvent); ok {
		err = h.dashboard.InvalidateUser(ctx, changed.OrgID(), changed.UserID)
	} else {
		err = h.dashboard.Invalidate(ctx, event.OrgID())
	}
	if err != nil {
		h.logger.Warn("Failed to invalidate dashboard cache",
			zap.String("org_id", event.OrgID().String()),
			zap.String("event_type", event.EventType()),
			zap.Error(err))
	}
	return nil
}

var _ shared.EventHandler = (*CacheInvalidationHandler)(nil)
