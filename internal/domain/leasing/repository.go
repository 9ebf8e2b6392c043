package leasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
)

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*Tenant, error)

	// FindAllForOrg lists tenants. Search matches name, email and phone.
	// Supported filters: status.
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Tenant, error)

	CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	Save(ctx context.Context, tenant *Tenant) error

	DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error
}

// LeaseRepository defines the interface for lease persistence
type LeaseRepository interface {
	FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*Lease, error)

	// FindAllForOrg lists leases. Supported filters: status, property_id,
	// unit_id, tenant_id, expiring_before (time.Time, active leases only).
	FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Lease, error)

	CountForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) (int64, error)

	// FindActiveByUnit returns the active leases on a unit
	FindActiveByUnit(ctx context.Context, orgID, unitID uuid.UUID) ([]Lease, error)

	// CountActiveByTenant counts a tenant's active leases, optionally ignoring one
	CountActiveByTenant(ctx context.Context, orgID, tenantID uuid.UUID, excludeLeaseID *uuid.UUID) (int64, error)

	// FindExpired returns active leases whose end date is before asOf
	FindExpired(ctx context.Context, orgID uuid.UUID, asOf time.Time) ([]Lease, error)

	Save(ctx context.Context, lease *Lease) error

	DeleteForOrg(ctx context.Context, orgID, id uuid.UUID) error
}
