package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/inspection"
)

// InspectionModel is the persistence model for inspections
type InspectionModel struct {
	OrgAggregateModel
	PropertyID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	UnitID           *uuid.UUID           `gorm:"type:uuid;index"`
	LeaseID          *uuid.UUID           `gorm:"type:uuid"`
	Type             inspection.Type      `gorm:"type:varchar(20);not null"`
	ScheduledDate    time.Time            `gorm:"type:date;not null;index"`
	CompletedAt      *time.Time
	InspectorID      *uuid.UUID           `gorm:"type:uuid"`
	InspectorName    string               `gorm:"type:varchar(200)"`
	Status           inspection.Status    `gorm:"type:varchar(20);not null;index"`
	OverallCondition inspection.Condition `gorm:"type:varchar(20)"`
	Notes            string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InspectionModel) TableName() string {
	return "inspections"
}

// ToDomain converts the model and its items to a domain Inspection
func (m *InspectionModel) ToDomain(items []InspectionItemModel) *inspection.Inspection {
	in := &inspection.Inspection{
		OrgAggregateRoot: m.ToDomainOrgAggregateRoot(),
		PropertyID:       m.PropertyID,
		UnitID:           m.UnitID,
		LeaseID:          m.LeaseID,
		Type:             m.Type,
		ScheduledDate:    m.ScheduledDate,
		CompletedAt:      m.CompletedAt,
		InspectorID:      m.InspectorID,
		InspectorName:    m.InspectorName,
		Status:           m.Status,
		OverallCondition: m.OverallCondition,
		Notes:            m.Notes,
		Items:            make([]inspection.Item, 0, len(items)),
	}
	for _, it := range items {
		in.Items = append(in.Items, it.ToDomain())
	}
	return in
}

// InspectionModelFromDomain builds the inspection row and its item rows
func InspectionModelFromDomain(in *inspection.Inspection) (*InspectionModel, []InspectionItemModel) {
	m := &InspectionModel{
		PropertyID:       in.PropertyID,
		UnitID:           in.UnitID,
		LeaseID:          in.LeaseID,
		Type:             in.Type,
		ScheduledDate:    in.ScheduledDate,
		CompletedAt:      in.CompletedAt,
		InspectorID:      in.InspectorID,
		InspectorName:    in.InspectorName,
		Status:           in.Status,
		OverallCondition: in.OverallCondition,
		Notes:            in.Notes,
	}
	m.FromDomainOrgAggregateRoot(in.OrgAggregateRoot)

	items := make([]InspectionItemModel, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, InspectionItemModel{
			ID:           it.ID,
			InspectionID: in.ID,
			OrgID:        in.OrgID,
			Area:         it.Area,
			Item:         it.Item,
			Condition:    it.Condition,
			Notes:        it.Notes,
			SortOrder:    it.SortOrder,
		})
	}
	return m, items
}

// InspectionItemModel is one checklist row of an inspection
type InspectionItemModel struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey"`
	InspectionID uuid.UUID            `gorm:"type:uuid;not null;index"`
	OrgID        uuid.UUID            `gorm:"type:uuid;not null"`
	Area         string               `gorm:"type:varchar(100);not null"`
	Item         string               `gorm:"type:varchar(200);not null"`
	Condition    inspection.Condition `gorm:"type:varchar(20)"`
	Notes        string               `gorm:"type:text"`
	SortOrder    int                  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (InspectionItemModel) TableName() string {
	return "inspection_items"
}

// ToDomain converts the row to a domain Item
func (m InspectionItemModel) ToDomain() inspection.Item {
	return inspection.Item{
		ID:        m.ID,
		Area:      m.Area,
		Item:      m.Item,
		Condition: m.Condition,
		Notes:     m.Notes,
		SortOrder: m.SortOrder,
	}
}
