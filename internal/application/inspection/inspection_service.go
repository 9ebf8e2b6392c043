package inspection

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/inspection"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InspectionService handles property inspection operations
type InspectionService struct {
	inspectionRepo inspection.InspectionRepository
	propertyRepo   property.PropertyRepository
	unitRepo       property.UnitRepository
	leaseRepo      leasing.LeaseRepository
	memberRepo     identity.TeamMemberRepository
	publisher      *appevent.Publisher
	logger         *zap.Logger
}

// NewInspectionService creates a new InspectionService
func NewInspectionService(
	inspectionRepo inspection.InspectionRepository,
	propertyRepo property.PropertyRepository,
	unitRepo property.UnitRepository,
	leaseRepo leasing.LeaseRepository,
	memberRepo identity.TeamMemberRepository,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *InspectionService {
	return &InspectionService{
		inspectionRepo: inspectionRepo,
		propertyRepo:   propertyRepo,
		unitRepo:       unitRepo,
		leaseRepo:      leaseRepo,
		memberRepo:     memberRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// Schedule books an inspection of a property, optionally for a unit and lease
func (s *InspectionService) Schedule(ctx context.Context, orgID, userID uuid.UUID, req ScheduleInspectionRequest) (*InspectionResponse, error) {
	if _, err := s.propertyRepo.FindByIDForOrg(ctx, orgID, req.PropertyID); err != nil {
		return nil, err
	}
	if err := s.checkLinks(ctx, orgID, req.PropertyID, req.UnitID, req.LeaseID); err != nil {
		return nil, err
	}
	if err := s.checkInspector(ctx, orgID, req.InspectorID); err != nil {
		return nil, err
	}

	in, err := inspection.NewInspection(orgID, userID, req.params())
	if err != nil {
		return nil, err
	}
	if err := s.inspectionRepo.Save(ctx, in); err != nil {
		s.logger.Error("Failed to save inspection", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, in)

	s.logger.Info("Inspection scheduled",
		zap.String("inspection_id", in.ID.String()),
		zap.String("property_id", in.PropertyID.String()),
		zap.String("type", string(in.Type)),
		zap.Time("scheduled_date", in.ScheduledDate))

	resp := ToInspectionResponse(in)
	return &resp, nil
}

// GetByID retrieves an inspection with its checklist
func (s *InspectionService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*InspectionResponse, error) {
	in, err := s.inspectionRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	resp := ToInspectionResponse(in)
	return &resp, nil
}

// List retrieves inspections with filtering and pagination
func (s *InspectionService) List(ctx context.Context, orgID uuid.UUID, filter InspectionListFilter) ([]InspectionResponse, int64, error) {
	f := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, "")
	if filter.OrderBy == "" {
		f.OrderBy = "scheduled_date"
	}
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.Type != "" {
		f.Filters["type"] = filter.Type
	}
	for key, raw := range map[string]string{
		"property_id": filter.PropertyID,
		"unit_id":     filter.UnitID,
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
	if filter.DateFrom != nil {
		f.Filters["date_from"] = leasing.DateOnly(*filter.DateFrom)
	}
	if filter.DateTo != nil {
		f.Filters["date_to"] = leasing.DateOnly(*filter.DateTo).Add(24*time.Hour - time.Nanosecond)
	}

	inspections, err := s.inspectionRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.inspectionRepo.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	return ToInspectionResponses(inspections), total, nil
}

// Reschedule moves a scheduled inspection to a new date
func (s *InspectionService) Reschedule(ctx context.Context, orgID, id uuid.UUID, req RescheduleRequest) (*InspectionResponse, error) {
	return s.apply(ctx, orgID, id, func(in *inspection.Inspection) error {
		return in.Reschedule(req.ScheduledDate)
	})
}

// AssignInspector sets who performs the inspection. A user id must belong to
// an active team member; a bare name is accepted for outside inspectors.
func (s *InspectionService) AssignInspector(ctx context.Context, orgID, id uuid.UUID, req AssignInspectorRequest) (*InspectionResponse, error) {
	if err := s.checkInspector(ctx, orgID, req.InspectorID); err != nil {
		return nil, err
	}
	return s.apply(ctx, orgID, id, func(in *inspection.Inspection) error {
		return in.AssignInspector(req.InspectorID, req.InspectorName)
	})
}

// Start begins a scheduled inspection
func (s *InspectionService) Start(ctx context.Context, orgID, id uuid.UUID) (*InspectionResponse, error) {
	return s.apply(ctx, orgID, id, (*inspection.Inspection).Start)
}

// RecordItems replaces the checklist of an inspection in progress
func (s *InspectionService) RecordItems(ctx context.Context, orgID, id uuid.UUID, req RecordItemsRequest) (*InspectionResponse, error) {
	return s.apply(ctx, orgID, id, func(in *inspection.Inspection) error {
		return in.RecordItems(req.items())
	})
}

// Complete finishes an inspection in progress
func (s *InspectionService) Complete(ctx context.Context, orgID, id uuid.UUID, req CompleteInspectionRequest) (*InspectionResponse, error) {
	resp, err := s.apply(ctx, orgID, id, func(in *inspection.Inspection) error {
		return in.Complete(inspection.Condition(req.OverallCondition), req.Notes)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Inspection completed",
		zap.String("inspection_id", id.String()),
		zap.String("overall_condition", resp.OverallCondition),
		zap.Int("issues", resp.IssueCount))
	return resp, nil
}

// Cancel abandons an inspection that has not been completed
func (s *InspectionService) Cancel(ctx context.Context, orgID, id uuid.UUID) (*InspectionResponse, error) {
	return s.apply(ctx, orgID, id, (*inspection.Inspection).Cancel)
}

// Delete removes an inspection and its checklist
func (s *InspectionService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	in, err := s.inspectionRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return err
	}
	if err := s.inspectionRepo.DeleteForOrg(ctx, orgID, id); err != nil {
		s.logger.Error("Failed to delete inspection", zap.Error(err))
		return err
	}
	s.publisher.PublishEvents(ctx, inspection.NewInspectionDeletedEvent(in))
	return nil
}

func (s *InspectionService) apply(ctx context.Context, orgID, id uuid.UUID, change func(*inspection.Inspection) error) (*InspectionResponse, error) {
	in, err := s.inspectionRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := change(in); err != nil {
		return nil, err
	}
	if err := s.inspectionRepo.Save(ctx, in); err != nil {
		s.logger.Error("Failed to save inspection", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, in)

	resp := ToInspectionResponse(in)
	return &resp, nil
}

func (s *InspectionService) checkLinks(ctx context.Context, orgID, propertyID uuid.UUID, unitID, leaseID *uuid.UUID) error {
	if unitID != nil {
		unit, err := s.unitRepo.FindByIDForOrg(ctx, orgID, *unitID)
		if err != nil {
			return err
		}
		if unit.PropertyID != propertyID {
			return shared.NewDomainError("INVALID_UNIT", "Unit does not belong to the property")
		}
	}
	if leaseID != nil {
		lease, err := s.leaseRepo.FindByIDForOrg(ctx, orgID, *leaseID)
		if err != nil {
			return err
		}
		if lease.PropertyID != propertyID || (unitID != nil && lease.UnitID != *unitID) {
			return shared.NewDomainError("INVALID_LEASE", "Lease does not cover the inspected property or unit")
		}
	}
	return nil
}

func (s *InspectionService) checkInspector(ctx context.Context, orgID uuid.UUID, inspectorID *uuid.UUID) error {
	if inspectorID == nil {
		return nil
	}
	member, err := s.memberRepo.FindByUser(ctx, orgID, *inspectorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_INSPECTOR", "Inspector is not a member of this organization")
		}
		return err
	}
	if member.Status != identity.MemberStatusActive {
		return shared.NewDomainError("INVALID_INSPECTOR", "Inspector is not an active member")
	}
	return nil
}
