package models

import (
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PropertyModel is the persistence model for properties
type PropertyModel struct {
	OrgAggregateModel
	Name        string                  `gorm:"type:varchar(200);not null"`
	Type        property.PropertyType   `gorm:"type:varchar(30);not null"`
	Status      property.PropertyStatus `gorm:"type:varchar(20);not null;index"`
	Address     valueobject.Address     `gorm:"embedded"`
	YearBuilt   *int
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the model to a domain Property
func (m *PropertyModel) ToDomain() *property.Property {
	return &property.Property{
		OrgAggregateRoot: m.ToDomainOrgAggregateRoot(),
		Name:             m.Name,
		Type:             m.Type,
		Status:           m.Status,
		Address:          m.Address,
		YearBuilt:        m.YearBuilt,
		Description:      m.Description,
		ImageURL:         m.ImageURL,
	}
}

// PropertyModelFromDomain builds a model from a domain Property
func PropertyModelFromDomain(p *property.Property) *PropertyModel {
	m := &PropertyModel{
		Name:        p.Name,
		Type:        p.Type,
		Status:      p.Status,
		Address:     p.Address,
		YearBuilt:   p.YearBuilt,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
	m.FromDomainOrgAggregateRoot(p.OrgAggregateRoot)
	return m
}

// UnitModel is the persistence model for rentable units
type UnitModel struct {
	OrgAggregateModel
	PropertyID uuid.UUID           `gorm:"type:uuid;not null;index"`
	UnitNumber string              `gorm:"type:varchar(50);not null"`
	Bedrooms   int                 `gorm:"not null;default:0"`
	Bathrooms  decimal.Decimal     `gorm:"type:numeric(4,1);not null;default:0"`
	SquareFeet int                 `gorm:"not null;default:0"`
	MarketRent decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0"`
	Status     property.UnitStatus `gorm:"type:varchar(20);not null;index"`
	Notes      string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the model to a domain Unit
func (m *UnitModel) ToDomain() *property.Unit {
	return &property.Unit{
		OrgAggregateRoot: m.ToDomainOrgAggregateRoot(),
		PropertyID:       m.PropertyID,
		UnitNumber:       m.UnitNumber,
		Bedrooms:         m.Bedrooms,
		Bathrooms:        m.Bathrooms,
		SquareFeet:       m.SquareFeet,
		MarketRent:       m.MarketRent,
		Status:           m.Status,
		Notes:            m.Notes,
	}
}

// UnitModelFromDomain builds a model from a domain Unit
func UnitModelFromDomain(u *property.Unit) *UnitModel {
	m := &UnitModel{
		PropertyID: u.PropertyID,
		UnitNumber: u.UnitNumber,
		Bedrooms:   u.Bedrooms,
		Bathrooms:  u.Bathrooms,
		SquareFeet: u.SquareFeet,
		MarketRent: u.MarketRent,
		Status:     u.Status,
		Notes:      u.Notes,
	}
	m.FromDomainOrgAggregateRoot(u.OrgAggregateRoot)
	return m
}
