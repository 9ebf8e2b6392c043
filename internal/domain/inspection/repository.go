package inspection

import (
	"context"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// InspectionRepository defines the interface for inspection persistence.
// Items are loaded and saved with their inspection.
type InspectionRepository interface {
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*Inspection, error)

	// FindAllForOrg lists inspections without items. Supported filters: status,
	// type, property_id, unit_id, date_from, date_to (time.Time on scheduled_date).
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Inspection, error)

	CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	Save(ctx context.Context, inspection *Inspection) error

	DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error
}
