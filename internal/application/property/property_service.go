package property

import (
	"context"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PropertyService handles property business operations
type PropertyService struct {
	propertyRepo property.PropertyRepository
	unitRepo     property.UnitRepository
	publisher    *appevent.Publisher
	logger       *zap.Logger
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(
	propertyRepo property.PropertyRepository,
	unitRepo property.UnitRepository,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		unitRepo:     unitRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Create creates a new property
func (s *PropertyService) Create(ctx context.Context, orgID, userID uuid.UUID, req CreatePropertyRequest) (*PropertyResponse, error) {
	address, err := req.Address.toDomain()
	if err != nil {
		return nil, err
	}

	p, err := property.NewProperty(orgID, userID, req.Name, property.PropertyType(req.Type), address)
	if err != nil {
		return nil, err
	}
	if req.YearBuilt != nil {
		if err := p.SetYearBuilt(req.YearBuilt); err != nil {
			return nil, err
		}
	}
	if req.Description != "" {
		if err := p.Update(p.Name, p.Type, p.Address, req.Description); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != "" {
		if err := p.SetImageURL(req.ImageURL); err != nil {
			return nil, err
		}
	}

	if err := s.propertyRepo.Save(ctx, p); err != nil {
		s.logger.Error("Failed to save property", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, p)

	s.logger.Info("Property created",
		zap.String("org_id", orgID.String()),
		zap.String("property_id", p.ID.String()))

	resp := ToPropertyResponse(p)
	return &resp, nil
}

// GetByID retrieves a property with its unit count
func (s *PropertyService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	units, err := s.unitRepo.CountByProperty(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	resp := ToPropertyResponse(p)
	resp.UnitCount = &units
	return &resp, nil
}

// List retrieves a list of properties with filtering and pagination
func (s *PropertyService) List(ctx context.Context, orgID uuid.UUID, filter PropertyListFilter) ([]PropertyResponse, int64, error) {
	f := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)
	if filter.Type != "" {
		f.Filters["type"] = filter.Type
	}
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.City != "" {
		f.Filters["city"] = filter.City
	}

	props, err := s.propertyRepo.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.propertyRepo.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, 0, err
	}
	return ToPropertyResponses(props), total, nil
}

// Update updates a property's details
func (s *PropertyService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdatePropertyRequest) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	name, propertyType, address, description := p.Name, p.Type, p.Address, p.Description
	if req.Name != nil {
		name = *req.Name
	}
	if req.Type != nil {
		propertyType = property.PropertyType(*req.Type)
	}
	if req.Address != nil {
		if address, err = req.Address.toDomain(); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		description = *req.Description
	}

	if err := p.Update(name, propertyType, address, description); err != nil {
		return nil, err
	}
	if req.YearBuilt != nil {
		if err := p.SetYearBuilt(req.YearBuilt); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		if err := p.SetImageURL(*req.ImageURL); err != nil {
			return nil, err
		}
	}

	if err := s.propertyRepo.Save(ctx, p); err != nil {
		s.logger.Error("Failed to update property", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, p)

	resp := ToPropertyResponse(p)
	return &resp, nil
}

// Activate returns a property to the active portfolio
func (s *PropertyService) Activate(ctx context.Context, orgID, id uuid.UUID) (*PropertyResponse, error) {
	return s.changeStatus(ctx, orgID, id, (*property.Property).Activate)
}

// Deactivate removes a property from the active portfolio
func (s *PropertyService) Deactivate(ctx context.Context, orgID, id uuid.UUID) (*PropertyResponse, error) {
	return s.changeStatus(ctx, orgID, id, (*property.Property).Deactivate)
}

func (s *PropertyService) changeStatus(ctx context.Context, orgID, id uuid.UUID, transition func(*property.Property) error) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := transition(p); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, p)

	s.logger.Info("Property status changed",
		zap.String("property_id", p.ID.String()),
		zap.String("status", string(p.Status)))

	resp := ToPropertyResponse(p)
	return &resp, nil
}

// Delete removes a property. Properties that still have units cannot be deleted.
func (s *PropertyService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	p, err := s.propertyRepo.FindByIDForOrg(ctx, orgID, id)
	if err != nil {
		return err
	}

	units, err := s.unitRepo.CountByProperty(ctx, orgID, id)
	if err != nil {
		return err
	}
	if units > 0 {
		return shared.NewDomainError("PROPERTY_HAS_UNITS", "Cannot delete a property that still has units")
	}

	if err := s.propertyRepo.DeleteForOrg(ctx, orgID, id); err != nil {
		s.logger.Error("Failed to delete property", zap.Error(err))
		return err
	}
	s.publisher.PublishEvents(ctx, property.NewPropertyDeletedEvent(p))

	s.logger.Info("Property deleted", zap.String("property_id", id.String()))
	return nil
}
