package shared

import (
	"context"
	"time"
)

// IdempotencyStore records processed event IDs so a handler runs at most once
// per event
type IdempotencyStore interface {
	// MarkProcessed atomically claims eventID for ttl. It returns false when
	// the event was already claimed.
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)

	// Release drops a claim so a failed event can be handled again
	Release(ctx context.Context, eventID string) error

	IsProcessed(ctx context.Context, eventID string) (bool, error)
}

// DefaultIdempotencyTTL is how long a processed event ID is remembered
const DefaultIdempotencyTTL = 24 * time.Hour
