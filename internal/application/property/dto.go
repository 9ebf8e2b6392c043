package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Property DTOs
// =============================================================================

// AddressDTO is the postal address of a property
type AddressDTO struct {
	Street     string `json:"street" binding:"required,max=255"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state" binding:"max=100"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	Country    string `json:"country" binding:"omitempty,len=2"`
}

// CreatePropertyRequest represents a request to create a property
type CreatePropertyRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Type        string     `json:"type" binding:"required,oneof=single_family multi_family apartment condo townhouse commercial other"`
	Address     AddressDTO `json:"address" binding:"required"`
	YearBuilt   *int       `json:"year_built" binding:"omitempty,min=1700,max=2100"`
	Description string     `json:"description" binding:"max=5000"`
	ImageURL    string     `json:"image_url" binding:"omitempty,url,max=500"`
}

// UpdatePropertyRequest represents a request to update a property.
// Omitted fields keep their current value.
type UpdatePropertyRequest struct {
	Name        *string     `json:"name" binding:"omitempty,min=1,max=200"`
	Type        *string     `json:"type" binding:"omitempty,oneof=single_family multi_family apartment condo townhouse commercial other"`
	Address     *AddressDTO `json:"address"`
	YearBuilt   *int        `json:"year_built" binding:"omitempty,min=1700,max=2100"`
	Description *string     `json:"description" binding:"omitempty,max=5000"`
	ImageURL    *string     `json:"image_url" binding:"omitempty,max=500"`
}

// PropertyListFilter represents filter options for the property list
type PropertyListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=single_family multi_family apartment condo townhouse commercial other"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	City     string `form:"city"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Address     AddressDTO `json:"address"`
	FullAddress string     `json:"full_address"`
	YearBuilt   *int       `json:"year_built,omitempty"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url,omitempty"`
	UnitCount   *int64     `json:"unit_count,omitempty"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

// ToPropertyResponse converts a domain Property to PropertyResponse
func ToPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		Status:      string(p.Status),
		Address:     toAddressDTO(p.Address),
		FullAddress: p.Address.FullAddress(),
		YearBuilt:   p.YearBuilt,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// ToPropertyResponses converts a slice of domain properties
func ToPropertyResponses(props []property.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(props))
	for i := range props {
		out[i] = ToPropertyResponse(&props[i])
	}
	return out
}

func toAddressDTO(a valueobject.Address) AddressDTO {
	return AddressDTO{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func (a AddressDTO) toDomain() (valueobject.Address, error) {
	return valueobject.NewAddress(a.Street, a.City, a.State, a.PostalCode, a.Country)
}

// =============================================================================
// Unit DTOs
// =============================================================================

// CreateUnitRequest represents a request to add a unit to a property
type CreateUnitRequest struct {
	PropertyID uuid.UUID       `json:"property_id" binding:"required"`
	UnitNumber string          `json:"unit_number" binding:"required,min=1,max=50"`
	Bedrooms   int             `json:"bedrooms" binding:"min=0,max=50"`
	Bathrooms  decimal.Decimal `json:"bathrooms"`
	SquareFeet int             `json:"square_feet" binding:"min=0"`
	MarketRent decimal.Decimal `json:"market_rent"`
	Notes      string          `json:"notes" binding:"max=2000"`
}

// UpdateUnitRequest represents a request to update a unit
type UpdateUnitRequest struct {
	UnitNumber *string          `json:"unit_number" binding:"omitempty,min=1,max=50"`
	Bedrooms   *int             `json:"bedrooms" binding:"omitempty,min=0,max=50"`
	Bathrooms  *decimal.Decimal `json:"bathrooms"`
	SquareFeet *int             `json:"square_feet" binding:"omitempty,min=0"`
	MarketRent *decimal.Decimal `json:"market_rent"`
	Notes      *string          `json:"notes" binding:"omitempty,max=2000"`
}

// SetUnitStatusRequest changes a unit's availability
type SetUnitStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=vacant maintenance unavailable"`
}

// UnitListFilter represents filter options for the unit list
type UnitListFilter struct {
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=vacant occupied maintenance unavailable"`
	Search     string `form:"search"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	ID         uuid.UUID       `json:"id"`
	PropertyID uuid.UUID       `json:"property_id"`
	UnitNumber string          `json:"unit_number"`
	Bedrooms   int             `json:"bedrooms"`
	Bathrooms  decimal.Decimal `json:"bathrooms"`
	SquareFeet int             `json:"square_feet"`
	MarketRent decimal.Decimal `json:"market_rent"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Version    int             `json:"version"`
}

// ToUnitResponse converts a domain Unit to UnitResponse
func ToUnitResponse(u *property.Unit) UnitResponse {
	return UnitResponse{
		ID:         u.ID,
		PropertyID: u.PropertyID,
		UnitNumber: u.UnitNumber,
		Bedrooms:   u.Bedrooms,
		Bathrooms:  u.Bathrooms,
		SquareFeet: u.SquareFeet,
		MarketRent: u.MarketRent,
		Status:     string(u.Status),
		Notes:      u.Notes,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		Version:    u.Version,
	}
}

// ToUnitResponses converts a slice of domain units
func ToUnitResponses(units []property.Unit) []UnitResponse {
	out := make([]UnitResponse, len(units))
	for i := range units {
		out[i] = ToUnitResponse(&units[i])
	}
	return out
}
