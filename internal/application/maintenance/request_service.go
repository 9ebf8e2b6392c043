package maintenance

import (
	"context"
	"errors"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RequestService handles maintenance request business operations
type RequestService struct {
	requestRepo  maintenance.RequestRepository
	propertyRepo property.PropertyRepository
	unitRepo     property.UnitRepository
	tenantRepo   leasing.TenantRepository
	memberRepo   identity.TeamMemberRepository
	publisher    *appevent.Publisher
	logger       *zap.Logger
}

// NewRequestService creates a new RequestService
func NewRequestService(
	requestRepo maintenance.RequestRepository,
	propertyRepo property.PropertyRepository,
	unitRepo property.UnitRepository,
	tenantRepo leasing.TenantRepository,
	memberRepo identity.TeamMemberRepository,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo:  requestRepo,
		propertyRepo: propertyRepo,
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
		memberRepo:   memberRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Create opens a maintenance request on a property, optionally for a unit and tenant
func (s *RequestService) Create(ctx context.Context, orgID, userID uuid.UUID, req CreateRequestRequest) (*RequestResponse, error) {
	if _, err := s.propertyRepo.FindByIDForOrg(ctx, orgID, req.PropertyID); err != nil {
		return nil, err
	}
	details := req.details()
	if err := s.checkLinks(ctx, orgID, req.PropertyID, details); err != nil {
		return nil, err
	}

	request, err := maintenance.NewRequest(orgID, userID, req.PropertyID, details)
	if err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, request); err != nil {
		s.logger.Error("Failed to save maintenance request", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, request)

	s.logger.Info("Maintenance request opened",
		zap.String("request_id", request.ID.String()),
		zap.String("property_id", req.PropertyID.String()),
		zap.String("priority", string(request.Priority)))

	resp := ToRequestResponse(request)
	return &resp, nil
}

// GetByID retrieves a maintenance request
func (s *RequestService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	resp := ToRequestResponse(request)
	return &resp, nil
}

// List retrieves maintenance requests with filtering and pagination
func (s *RequestService) List(ctx context.Context, orgID uuid.UUID, filter RequestListFilter) ([]RequestResponse, int64, error) {
	f := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)
	for key, value := range map[string]string{
		"status":   filter.Status,
		"priority": filter.Priority,
		"category": filter.Category,
	} {
		if value != "" {
			f.Filters[key] = value
		}
	}
	for key, raw := range map[string]string{
		"property_id": filter.PropertyID,
		"unit_id":     filter.UnitID,
		"assigned_to": filter.AssignedTo,
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

	requests, err := s.requestRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.requestRepo.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	return ToRequestResponses(requests), total, nil
}

// Update changes the descriptive fields of a request that is not closed
func (s *RequestService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateRequestRequest) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	details := req.merge(request)
	if err := s.checkLinks(ctx, orgID, request.PropertyID, details); err != nil {
		return nil, err
	}
	if err := request.Update(details); err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, request); err != nil {
		s.logger.Error("Failed to update maintenance request", zap.Error(err))
		return nil, err
	}
	s.publisher.Publish(ctx, request)

	resp := ToRequestResponse(request)
	return &resp, nil
}

// Assign hands the request to an active team member
func (s *RequestService) Assign(ctx context.Context, orgID, id uuid.UUID, req AssignRequest) (*RequestResponse, error) {
	member, err := s.memberRepo.FindByUser(ctx, orgID, req.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_ASSIGNEE", "Assignee is not a member of this organization")
		}
		return nil, err
	}
	if member.Status != identity.MemberStatusActive {
		return nil, shared.NewDomainError("INVALID_ASSIGNEE", "Assignee is not an active member")
	}

	return s.apply(ctx, orgID, id, func(r *maintenance.Request) error {
		return r.Assign(req.UserID)
	})
}

// Start moves an open request into progress
func (s *RequestService) Start(ctx context.Context, orgID, id uuid.UUID) (*RequestResponse, error) {
	return s.apply(ctx, orgID, id, (*maintenance.Request).Start)
}

// Hold pauses work on a request
func (s *RequestService) Hold(ctx context.Context, orgID, id uuid.UUID) (*RequestResponse, error) {
	return s.apply(ctx, orgID, id, (*maintenance.Request).Hold)
}

// Resume continues work on a held request
func (s *RequestService) Resume(ctx context.Context, orgID, id uuid.UUID) (*RequestResponse, error) {
	return s.apply(ctx, orgID, id, (*maintenance.Request).Resume)
}

// Complete closes a request in progress. A positive actual cost is recorded
// as an expense by the completion handler.
func (s *RequestService) Complete(ctx context.Context, orgID, id uuid.UUID, req CompleteRequest) (*RequestResponse, error) {
	return s.apply(ctx, orgID, id, func(r *maintenance.Request) error {
		return r.Complete(req.ActualCost, req.Notes)
	})
}

// Cancel abandons a request that is not closed
func (s *RequestService) Cancel(ctx context.Context, orgID, id uuid.UUID) (*RequestResponse, error) {
	return s.apply(ctx, orgID, id, (*maintenance.Request).Cancel)
}

// Reopen brings a completed or cancelled request back to open
func (s *RequestService) Reopen(ctx context.Context, orgID, id uuid.UUID) (*RequestResponse, error) {
	return s.apply(ctx, orgID, id, (*maintenance.Request).Reopen)
}

// Delete removes a maintenance request
func (s *RequestService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	request, err := s.requestRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return err
	}
	if err := s.requestRepo.DeleteForOrg(ctx, orgID, id); err != nil {
		s.logger.Error("Failed to delete maintenance request", zap.Error(err))
		return err
	}
	s.publisher.PublishEvents(ctx, maintenance.NewRequestDeletedEvent(request))
	s.logger.Info("Maintenance request deleted", zap.String("request_id", id.String()))
	return nil
}

func (s *RequestService) apply(ctx context.Context, orgID, id uuid.UUID, change func(*maintenance.Request) error) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	previous := request.Status
	if err := change(request); err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, request); err != nil {
		s.logger.Error("Failed to save maintenance request", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, request)

	if request.Status != previous {
		s.logger.Info("Maintenance status changed",
			zap.String("request_id", request.ID.String()),
			zap.String("from", string(previous)),
			zap.String("to", string(request.Status)))
	}

	resp := ToRequestResponse(request)
	return &resp, nil
}

// checkLinks verifies that a linked unit belongs to the property and a linked
// tenant exists in the organization
func (s *RequestService) checkLinks(ctx context.Context, orgID, propertyID uuid.UUID, d maintenance.Details) error {
	if d.UnitID != nil && *d.UnitID != uuid.Nil {
		unit, err := s.unitRepo.FindByIDForOrg(ctx, orgID, *d.UnitID)
		if err != nil {
			return err
		}
		if unit.PropertyID != propertyID {
			return shared.NewDomainError("INVALID_UNIT", "Unit does not belong to the property")
		}
	}
	if d.TenantID != nil && *d.TenantID != uuid.Nil {
		if _, err := s.tenantRepo.FindByIDForOrg(ctx, orgID, *d.TenantID); err != nil {
			return err
		}
	}
	return nil
}
