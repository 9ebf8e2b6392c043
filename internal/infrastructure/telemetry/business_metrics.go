package telemetry

import (
	"context"
	"errors"

	"github.com/propertyhub/backend/internal/domain/document"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when an instrument set is built without a meter
var ErrMeterNil = errors.New("meter cannot be nil")

// BusinessMetrics counts portfolio activity. It subscribes to the event bus
// so services do not call it directly.
type BusinessMetrics struct {
	leasesActivated      *Counter
	maintenanceOpened    *Counter
	transactionsRecorded *Counter
	documentsUploaded    *Counter
}

var _ shared.EventHandler = (*BusinessMetrics)(nil)

// NewBusinessMetrics creates the business counters on meter
func NewBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	var (
		bm  BusinessMetrics
		err error
	)
	if bm.leasesActivated, err = NewCounter(meter, "lease_activated_total", "Leases put into effect", "{lease}"); err != nil {
		return nil, err
	}
	if bm.maintenanceOpened, err = NewCounter(meter, "maintenance_opened_total", "Maintenance requests opened", "{request}"); err != nil {
		return nil, err
	}
	if bm.transactionsRecorded, err = NewCounter(meter, "transaction_recorded_total", "Transactions recorded by type", "{transaction}"); err != nil {
		return nil, err
	}
	if bm.documentsUploaded, err = NewCounter(meter, "document_uploaded_total", "Document uploads confirmed", "{document}"); err != nil {
		return nil, err
	}
	return &bm, nil
}

// EventTypes implements shared.EventHandler
func (m *BusinessMetrics) EventTypes() []string {
	return []string{
		leasing.EventTypeLeaseActivated,
		maintenance.EventTypeRequestCreated,
		finance.EventTypeTransactionRecorded,
		document.EventTypeDocumentUploaded,
	}
}

// Handle implements shared.EventHandler
func (m *BusinessMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	org := AttrOrgID.String(event.OrgID().String())

	switch e := event.(type) {
	case *leasing.LeaseActivatedEvent:
		m.leasesActivated.Inc(ctx, org)
	case *maintenance.RequestCreatedEvent:
		m.maintenanceOpened.Inc(ctx, org, AttrMaintPriority.String(string(e.Priority)))
	case *finance.TransactionRecordedEvent:
		m.transactionsRecorded.Inc(ctx, org, AttrTxType.String(string(e.Type)))
	case *document.DocumentUploadedEvent:
		m.documentsUploaded.Inc(ctx, org, AttrDocEntityType.String(string(e.EntityType)))
	}
	return nil
}
