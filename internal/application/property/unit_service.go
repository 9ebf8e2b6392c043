package property

import (
	"context"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UnitService handles unit business operations
type UnitService struct {
	unitRepo     property.UnitRepository
	propertyRepo property.PropertyRepository
	publisher    *appevent.Publisher
	logger       *zap.Logger
}

// NewUnitService creates a new UnitService
func NewUnitService(
	unitRepo property.UnitRepository,
	propertyRepo property.PropertyRepository,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *UnitService {
	return &UnitService{
		unitRepo:     unitRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Create adds a unit to a property of the organization
func (s *UnitService) Create(ctx context.Context, orgID, userID uuid.UUID, req CreateUnitRequest) (*UnitResponse, error) {
	if _, err := s.propertyRepo.FindByIDForOrg(ctx, orgID, req.PropertyID); err != nil {
		return nil, err
	}

	if err := s.ensureNumberFree(ctx, orgID, req.PropertyID, req.UnitNumber, nil); err != nil {
		return nil, err
	}

	unit, err := property.NewUnit(orgID, userID, req.PropertyID, req.UnitNumber, property.UnitSpec{
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		SquareFeet: req.SquareFeet,
		MarketRent: req.MarketRent,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, err
	}

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		s.logger.Error("Failed to save unit", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, unit)

	s.logger.Info("Unit created",
		zap.String("property_id", req.PropertyID.String()),
		zap.String("unit_id", unit.ID.String()),
		zap.String("unit_number", unit.UnitNumber))

	resp := ToUnitResponse(unit)
	return &resp, nil
}

// GetByID retrieves a unit
func (s *UnitService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	resp := ToUnitResponse(unit)
	return &resp, nil
}

// List retrieves units with filtering and pagination
func (s *UnitService) List(ctx context.Context, orgID uuid.UUID, filter UnitListFilter) ([]UnitResponse, int64, error) {
	f := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)
	if filter.PropertyID != "" {
		propertyID, err := uuid.Parse(filter.PropertyID)
		if err != nil {
			return nil, 0, shared.NewDomainError(shared.ErrInvalidInput.Code, "Invalid property_id")
		}
		f.Filters["property_id"] = propertyID
	}
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	units, err := s.unitRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.unitRepo.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	return ToUnitResponses(units), total, nil
}

// Update changes a unit's number or physical attributes
func (s *UnitService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateUnitRequest) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	number := unit.UnitNumber
	spec := property.UnitSpec{
		Bedrooms:   unit.Bedrooms,
		Bathrooms:  unit.Bathrooms,
		SquareFeet: unit.SquareFeet,
		MarketRent: unit.MarketRent,
		Notes:      unit.Notes,
	}
	if req.UnitNumber != nil {
		number = *req.UnitNumber
	}
	if req.Bedrooms != nil {
		spec.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		spec.Bathrooms = *req.Bathrooms
	}
	if req.SquareFeet != nil {
		spec.SquareFeet = *req.SquareFeet
	}
	if req.MarketRent != nil {
		spec.MarketRent = *req.MarketRent
	}
	if req.Notes != nil {
		spec.Notes = *req.Notes
	}

	if number != unit.UnitNumber {
		if err := s.ensureNumberFree(ctx, orgID, unit.PropertyID, number, &unit.ID); err != nil {
			return nil, err
		}
	}

	if err := unit.Update(number, spec); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		s.logger.Error("Failed to update unit", zap.Error(err))
		return nil, err
	}

	resp := ToUnitResponse(unit)
	return &resp, nil
}

// SetStatus sets a unit vacant, under maintenance or unavailable.
// Occupancy follows lease activation and cannot be set here.
func (s *UnitService) SetStatus(ctx context.Context, orgID, id uuid.UUID, req SetUnitStatusRequest) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	previous := unit.Status
	if err := unit.SetStatus(property.UnitStatus(req.Status)); err != nil {
		return nil, err
	}
	if unit.Status != previous {
		if err := s.unitRepo.Save(ctx, unit); err != nil {
			return nil, err
		}
		s.publisher.Publish(ctx, unit)

		s.logger.Info("Unit status changed",
			zap.String("unit_id", unit.ID.String()),
			zap.String("from", string(previous)),
			zap.String("to", string(unit.Status)))
	}

	resp := ToUnitResponse(unit)
	return &resp, nil
}

// Delete removes a unit. Occupied units cannot be deleted.
func (s *UnitService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	unit, err := s.unitRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return err
	}
	if !unit.CanDelete() {
		return shared.NewDomainError("UNIT_OCCUPIED", "Cannot delete an occupied unit")
	}

	if err := s.unitRepo.DeleteForOrg(ctx, orgID, id); err != nil {
		s.logger.Error("Failed to delete unit", zap.Error(err))
		return err
	}

	s.publisher.PublishEvents(ctx, property.NewUnitDeletedEvent(unit))

	s.logger.Info("Unit deleted", zap.String("unit_id", id.String()))
	return nil
}

func (s *UnitService) ensureNumberFree(ctx context.Context, orgID, propertyID uuid.UUID, number string, excludeID *uuid.UUID) error {
	exists, err := s.unitRepo.ExistsByNumber(ctx, orgID, propertyID, number, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError(shared.ErrAlreadyExists.Code, "Unit number already exists in this property")
	}
	return nil
}
