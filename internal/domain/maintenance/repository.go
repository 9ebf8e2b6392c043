package maintenance

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// PriorityCounts maps priority to number of open requests
type PriorityCounts map[Priority]int64

// Total returns the number of requests across all priorities
func (c PriorityCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

// RequestRepository defines the interface for maintenance request persistence
type RequestRepository interface {
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*Request, error)

	// FindAllForOrg lists requests. Supported filters: status, priority,
	// category, property_id, unit_id, assigned_to. Search matches title and description.
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Request, error)

	CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// CountOpenByPriority groups requests that are not completed or cancelled by priority
	CountOpenByPriority(ctx context.Context, orgID uuid.UUID) (PriorityCounts, error)

	Save(ctx context.Context, request *Request) error

	DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error
}
