package leasing

import (
	"context"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TenantService handles tenant business operations
type TenantService struct {
	tenantRepo leasing.TenantRepository
	leaseRepo  leasing.LeaseRepository
	publisher  *appevent.Publisher
	logger     *zap.Logger
}

// NewTenantService creates a new TenantService
func NewTenantService(
	tenantRepo leasing.TenantRepository,
	leaseRepo leasing.LeaseRepository,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		leaseRepo:  leaseRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Create creates a prospect tenant
func (s *TenantService) Create(ctx context.Context, orgID, userID uuid.UUID, req CreateTenantRequest) (*TenantResponse, error) {
	tenant, err := leasing.NewTenant(orgID, userID, leasing.TenantContact{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		DateOfBirth:           req.DateOfBirth,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Notes:                 req.Notes,
	})
	if err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		s.logger.Error("Failed to save tenant", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, tenant)

	s.logger.Info("Tenant created",
		zap.String("org_id", orgID.String()),
		zap.String("tenant_id", tenant.ID.String()))

	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// GetByID retrieves a tenant
func (s *TenantService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// List retrieves tenants with search, filtering and pagination
func (s *TenantService) List(ctx context.Context, orgID uuid.UUID, filter TenantListFilter) ([]TenantResponse, int64, error) {
	f := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	tenants, err := s.tenantRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tenantRepo.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	return ToTenantResponses(tenants), total, nil
}

// Update changes a tenant's contact details
func (s *TenantService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Update(req.merge(tenant)); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		s.logger.Error("Failed to update tenant", zap.Error(err))
		return nil, err
	}

	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// Delete removes a tenant that holds no active lease
func (s *TenantService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := s.tenantRepo.FindByIDForOrg(ctx, orgID, id); err != nil {
		return err
	}

	active, err := s.leaseRepo.CountActiveByTenant(ctx, orgID, id, nil)
	if err != nil {
		return err
	}
	if active > 0 {
		return shared.NewDomainError("TENANT_HAS_ACTIVE_LEASE", "Cannot delete a tenant with an active lease")
	}

	if err := s.tenantRepo.DeleteForOrg(ctx, orgID, id); err != nil {
		s.logger.Error("Failed to delete tenant", zap.Error(err))
		return err
	}

	s.logger.Info("Tenant deleted", zap.String("tenant_id", id.String()))
	return nil
}
