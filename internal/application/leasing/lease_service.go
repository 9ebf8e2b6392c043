package leasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LeaseService handles the lease lifecycle and its effects on units and tenants
type LeaseService struct {
	leaseRepo       leasing.LeaseRepository
	tenantRepo      leasing.TenantRepository
	unitRepo        property.UnitRepository
	transactionRepo finance.TransactionRepository
	orgRepo         identity.OrganizationRepository
	txManager       shared.TxManager
	publisher       *appevent.Publisher
	logger          *zap.Logger
	now             func() time.Time
}

// NewLeaseService creates a new LeaseService
func NewLeaseService(
	leaseRepo leasing.LeaseRepository,
	tenantRepo leasing.TenantRepository,
	unitRepo property.UnitRepository,
	transactionRepo finance.TransactionRepository,
	orgRepo identity.OrganizationRepository,
	txManager shared.TxManager,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *LeaseService {
	return &LeaseService{
		leaseRepo:       leaseRepo,
		tenantRepo:      tenantRepo,
		unitRepo:        unitRepo,
		transactionRepo: transactionRepo,
		orgRepo:         orgRepo,
		txManager:       txManager,
		publisher:       publisher,
		logger:          logger,
		now:             time.Now,
	}
}

// Create drafts a lease for a unit and tenant of the organization
func (s *LeaseService) Create(ctx context.Context, orgID, userID uuid.UUID, req CreateLeaseRequest) (*LeaseResponse, error) {
	unit, err := s.unitRepo.FindByIDForOrg(ctx, orgID, req.UnitID)
	if err != nil {
		return nil, err
	}
	if _, err := s.tenantRepo.FindByIDForOrg(ctx, orgID, req.TenantID); err != nil {
		return nil, err
	}

	lease, err := leasing.NewLease(orgID, userID, unit.PropertyID, unit.ID, req.TenantID, req.terms())
	if err != nil {
		return nil, err
	}

	if err := s.leaseRepo.Save(ctx, lease); err != nil {
		s.logger.Error("Failed to save lease", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, lease)

	s.logger.Info("Lease drafted",
		zap.String("lease_id", lease.ID.String()),
		zap.String("unit_id", unit.ID.String()),
		zap.String("tenant_id", req.TenantID.String()))

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// GetByID retrieves a lease
func (s *LeaseService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// List retrieves leases with filtering and pagination. ExpiringWithinDays
// restricts the list to active leases ending within that many days.
func (s *LeaseService) List(ctx context.Context, orgID uuid.UUID, filter LeaseListFilter) ([]LeaseResponse, int64, error) {
	f := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, "")
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	for key, raw := range map[string]string{
		"property_id": filter.PropertyID,
		"unit_id":     filter.UnitID,
		"tenant_id":   filter.TenantID,
	} {
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, 0, shared.NewDomainError(shared.ErrInvalidInput.Code, "Invalid "+key)
		}
		f.Filters[key] = id
	}
	if filter.ExpiringWithinDays > 0 {
		f.Filters["expiring_before"] = leasing.DateOnly(s.now()).AddDate(0, 0, filter.ExpiringWithinDays)
	}

	leases, err := s.leaseRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.leaseRepo.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	return ToLeaseResponses(leases), total, nil
}

// Update changes the terms of a draft lease
func (s *LeaseService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateLeaseRequest) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := lease.UpdateTerms(req.merge(lease)); err != nil {
		return nil, err
	}
	if err := s.leaseRepo.Save(ctx, lease); err != nil {
		s.logger.Error("Failed to update lease", zap.Error(err))
		return nil, err
	}

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// Delete removes a draft lease. Leases that took effect are kept as history.
func (s *LeaseService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	lease, err := s.leaseRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !lease.IsDraft() {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "Only draft leases can be deleted")
	}
	if err := s.leaseRepo.DeleteForOrg(ctx, orgID, id); err != nil {
		s.logger.Error("Failed to delete lease", zap.Error(err))
		return err
	}
	s.logger.Info("Lease deleted", zap.String("lease_id", id.String()))
	return nil
}

// Activate puts a draft lease into effect. The unit must not carry another
// active lease with overlapping dates. The unit becomes occupied and the
// tenant active.
func (s *LeaseService) Activate(ctx context.Context, orgID, id uuid.UUID) (*LeaseResponse, error) {
	var (
		lease  *leasing.Lease
		unit   *property.Unit
		tenant *leasing.Tenant
	)

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if lease, err = s.leaseRepo.FindByIDForOrg(ctx, orgID, id); err != nil {
			return err
		}
		if !lease.IsDraft() {
			return shared.NewDomainError(shared.ErrInvalidState.Code, "Only draft leases can be activated")
		}

		if err := s.ensureNoOverlap(ctx, orgID, lease, lease.EndDate); err != nil {
			return err
		}

		if unit, err = s.unitRepo.FindByIDForOrg(ctx, orgID, lease.UnitID); err != nil {
			return err
		}
		if tenant, err = s.tenantRepo.FindByIDForOrg(ctx, orgID, lease.TenantID); err != nil {
			return err
		}

		if err := lease.Activate(); err != nil {
			return err
		}
		if err := s.leaseRepo.Save(ctx, lease); err != nil {
			return err
		}

		// A later lease on a unit that is already let keeps it occupied
		if !unit.IsOccupied() {
			if err := unit.MarkOccupied(); err != nil {
				return err
			}
			if err := s.unitRepo.Save(ctx, unit); err != nil {
				return err
			}
		}

		before := tenant.Version
		tenant.MarkActive()
		if tenant.Version != before {
			if err := s.tenantRepo.Save(ctx, tenant); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, lease, unit, tenant)

	s.logger.Info("Lease activated",
		zap.String("lease_id", lease.ID.String()),
		zap.String("unit_id", lease.UnitID.String()))

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// Terminate ends an active lease early. The unit becomes vacant and the
// tenant becomes former once they hold no other active lease.
func (s *LeaseService) Terminate(ctx context.Context, orgID, id uuid.UUID, req TerminateLeaseRequest) (*LeaseResponse, error) {
	var (
		lease    *leasing.Lease
		affected []shared.AggregateRoot
	)

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if lease, err = s.leaseRepo.FindByIDForOrg(ctx, orgID, id); err != nil {
			return err
		}
		if err := lease.Terminate(req.Date, req.Reason); err != nil {
			return err
		}
		affected, err = s.closeLease(ctx, lease)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, affected...)

	s.logger.Info("Lease terminated",
		zap.String("lease_id", lease.ID.String()),
		zap.String("reason", lease.TerminationReason))

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// Renew extends an active lease, optionally with a new monthly rent
func (s *LeaseService) Renew(ctx context.Context, orgID, id uuid.UUID, req RenewLeaseRequest) (*LeaseResponse, error) {
	var lease *leasing.Lease
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if lease, err = s.leaseRepo.FindByIDForOrg(ctx, orgID, id); err != nil {
			return err
		}
		if err := lease.Renew(req.NewEndDate, req.NewMonthlyRent); err != nil {
			return err
		}
		if err := s.ensureNoOverlap(ctx, orgID, lease, lease.EndDate); err != nil {
			return err
		}
		return s.leaseRepo.Save(ctx, lease)
	})
	if err != nil {
		s.logger.Error("Failed to renew lease", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, lease)

	s.logger.Info("Lease renewed",
		zap.String("lease_id", lease.ID.String()),
		zap.Time("end_date", lease.EndDate))

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// ensureNoOverlap rejects the lease when another active lease on the unit
// intersects [lease.StartDate, end].
func (s *LeaseService) ensureNoOverlap(ctx context.Context, orgID uuid.UUID, lease *leasing.Lease, end time.Time) error {
	active, err := s.leaseRepo.FindActiveByUnit(ctx, orgID, lease.UnitID)
	if err != nil {
		return err
	}
	for i := range active {
		if active[i].ID != lease.ID && active[i].Overlaps(lease.StartDate, end) {
			return shared.NewDomainError("LEASE_OVERLAP", "The unit already has an active lease for these dates")
		}
	}
	return nil
}

// ExpireLeases expires every active lease of the organization whose end date
// has passed and returns how many were expired. Each lease is expired in its
// own transaction so one failure does not hold back the rest.
func (s *LeaseService) ExpireLeases(ctx context.Context, orgID uuid.UUID) (int, error) {
	now := s.now()
	due, err := s.leaseRepo.FindExpired(ctx, orgID, leasing.DateOnly(now))
	if err != nil {
		return 0, fmt.Errorf("find expired leases: %w", err)
	}

	expired := 0
	var firstErr error
	for i := range due {
		leaseID := due[i].ID
		var affected []shared.AggregateRoot
		err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
			lease, err := s.leaseRepo.FindByIDForOrg(ctx, orgID, leaseID)
			if err != nil {
				return err
			}
			if err := lease.Expire(now); err != nil {
				return err
			}
			affected, err = s.closeLease(ctx, lease)
			return err
		})
		if err != nil {
			s.logger.Warn("Failed to expire lease",
				zap.String("lease_id", leaseID.String()),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.publisher.Publish(ctx, affected...)
		expired++
	}

	if expired > 0 {
		s.logger.Info("Leases expired",
			zap.String("org_id", orgID.String()),
			zap.Int("count", expired))
	}
	if firstErr != nil {
		return expired, fmt.Errorf("%d of %d leases failed to expire: %w", len(due)-expired, len(due), firstErr)
	}
	return expired, nil
}

// RecordRentPayment records rent received for a lease as a completed income
// transaction linked to the lease, unit, property and tenant
func (s *LeaseService) RecordRentPayment(ctx context.Context, orgID, userID, id uuid.UUID, req RecordRentPaymentRequest) (*RentPaymentResponse, error) {
	lease, err := s.leaseRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if lease.IsDraft() {
		return nil, shared.NewDomainError(shared.ErrInvalidState.Code, "Rent cannot be recorded for a draft lease")
	}
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	amount := req.Amount
	if amount.IsZero() {
		amount = lease.MonthlyRent
	}
	description := req.Description
	if description == "" {
		description = "Rent for " + req.Date.Format("January 2006")
	}

	tx, err := finance.NewTransaction(orgID, userID, finance.Entry{
		Type:            finance.TransactionTypeIncome,
		Category:        finance.CategoryRent,
		Amount:          amount,
		Currency:        org.DefaultCurrency,
		TransactionDate: req.Date,
		Description:     description,
		Reference:       req.Reference,
		PaymentMethod:   finance.PaymentMethod(req.PaymentMethod),
		Links: finance.Links{
			PropertyID: &lease.PropertyID,
			UnitID:     &lease.UnitID,
			LeaseID:    &lease.ID,
			TenantID:   &lease.TenantID,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		s.logger.Error("Failed to save rent payment", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, tx)

	s.logger.Info("Rent payment recorded",
		zap.String("lease_id", lease.ID.String()),
		zap.String("transaction_id", tx.ID.String()),
		zap.String("amount", tx.Amount.String()))

	return &RentPaymentResponse{
		TransactionID: tx.ID,
		LeaseID:       lease.ID,
		Amount:        tx.Amount,
		Currency:      string(tx.Currency),
		Date:          tx.TransactionDate,
		PaymentMethod: string(tx.PaymentMethod),
		Status:        string(tx.Status),
	}, nil
}

// closeLease saves a lease that just ended and releases its unit and tenant.
// It returns the aggregates whose events should be published.
func (s *LeaseService) closeLease(ctx context.Context, lease *leasing.Lease) ([]shared.AggregateRoot, error) {
	if err := s.leaseRepo.Save(ctx, lease); err != nil {
		return nil, err
	}
	affected := []shared.AggregateRoot{lease}
	orgID := lease.OrgID

	remaining, err := s.leaseRepo.FindActiveByUnit(ctx, orgID, lease.UnitID)
	if err != nil {
		return nil, err
	}
	if countOthers(remaining, lease.ID) == 0 {
		unit, err := s.unitRepo.FindByIDForOrg(ctx, orgID, lease.UnitID)
		if err != nil {
			return nil, err
		}
		if unit.IsOccupied() {
			if err := unit.MarkVacant(); err != nil {
				return nil, err
			}
			if err := s.unitRepo.Save(ctx, unit); err != nil {
				return nil, err
			}
			affected = append(affected, unit)
		}
	}

	others, err := s.leaseRepo.CountActiveByTenant(ctx, orgID, lease.TenantID, &lease.ID)
	if err != nil {
		return nil, err
	}
	if others == 0 {
		tenant, err := s.tenantRepo.FindByIDForOrg(ctx, orgID, lease.TenantID)
		if err != nil {
			return nil, err
		}
		before := tenant.Version
		tenant.MarkFormer()
		if tenant.Version != before {
			if err := s.tenantRepo.Save(ctx, tenant); err != nil {
				return nil, err
			}
		}
	}
	return affected, nil
}

func countOthers(leases []leasing.Lease, exclude uuid.UUID) int {
	n := 0
	for i := range leases {
		if leases[i].ID != exclude {
			n++
		}
	}
	return n
}
