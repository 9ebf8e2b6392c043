package event

import (
	"context"

	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Publisher forwards the pending domain events of saved aggregates to the
// event bus. A nil bus makes it a no-op so services work without wiring.
type Publisher struct {
	bus    shared.EventPublisher
	logger *zap.Logger
}

// NewPublisher creates a Publisher on top of an event bus
func NewPublisher(bus shared.EventPublisher, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{bus: bus, logger: logger}
}

// Publish sends and clears the events of every aggregate. Call it only after
// the aggregates have been persisted. Handler errors are logged, not returned,
// because the write has already committed.
func (p *Publisher) Publish(ctx context.Context, aggregates ...shared.AggregateRoot) {
	for _, agg := range aggregates {
		if agg == nil {
			continue
		}
		events := agg.GetDomainEvents()
		agg.ClearDomainEvents()
		if p == nil || p.bus == nil || len(events) == 0 {
			continue
		}
		if err := p.bus.Publish(ctx, events...); err != nil {
			p.logger.Warn("domain event handling failed",
				zap.String("aggregate_id", agg.GetID().String()),
				zap.Int("events", len(events)),
				zap.Error(err),
			)
		}
	}
}

// PublishEvents sends events that are not attached to a saved aggregate,
// such as deletions
func (p *Publisher) PublishEvents(ctx context.Context, events ...shared.DomainEvent) {
	if p == nil || p.bus == nil || len(events) == 0 {
		return
	}
	if err := p.bus.Publish(ctx, events...); err != nil {
		p.logger.Warn("domain event handling failed",
			zap.String("event_type", events[0].EventType()),
			zap.Int("events", len(events)),
			zap.Error(err),
		)
	}
}
