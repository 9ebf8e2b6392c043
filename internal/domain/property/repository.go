package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// PropertyRepository defines the interface for property persistence
type PropertyRepository interface {
	// FindByIDForOrg finds a property by ID within an organization
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*Property, error)

	// FindAllForOrg lists properties. Supported filters: status, type, city.
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Property, error)

	// CountForOrg counts properties matching the filter
	CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a property
	Save(ctx context.Context, property *Property) error

	// DeleteForOrg deletes a property within an organization
	DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error
}

// UnitStatusCounts maps unit status to number of units
type UnitStatusCounts map[UnitStatus]int64

// Total returns the number of units across all statuses
func (c UnitStatusCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

// UnitRepository defines the interface for unit persistence
type UnitRepository interface {
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*Unit, error)

	// FindAllForOrg lists units. Supported filters: property_id, status.
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Unit, error)

	CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByProperty counts the units that belong to a property
	CountByProperty(ctx context.Context, orgID, propertyID uuid.UUID) (int64, error)

	// CountByStatus groups the organization's units by status
	CountByStatus(ctx context.Context, orgID uuid.UUID) (UnitStatusCounts, error)

	// ExistsByNumber checks whether the unit number is taken within the property.
	// excludeID lets an update ignore the unit being edited.
	ExistsByNumber(ctx context.Context, orgID, propertyID uuid.UUID, unitNumber string, excludeID *uuid.UUID) (bool, error)

	Save(ctx context.Context, unit *Unit) error

	DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error
}
