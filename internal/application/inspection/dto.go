package inspection

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/inspection"
)

// ScheduleInspectionRequest represents a request to schedule an inspection
type ScheduleInspectionRequest struct {
	PropertyID    uuid.UUID  `json:"property_id" binding:"required"`
	UnitID        *uuid.UUID `json:"unit_id"`
	LeaseID       *uuid.UUID `json:"lease_id"`
	Type          string     `json:"type" binding:"required,oneof=move_in move_out routine annual safety"`
	ScheduledDate time.Time  `json:"scheduled_date" binding:"required"`
	InspectorID   *uuid.UUID `json:"inspector_id"`
	InspectorName string     `json:"inspector_name" binding:"max=200"`
	Notes         string     `json:"notes" binding:"max=5000"`
}

func (r ScheduleInspectionRequest) params() inspection.ScheduleParams {
	return inspection.ScheduleParams{
		PropertyID:    r.PropertyID,
		UnitID:        r.UnitID,
		LeaseID:       r.LeaseID,
		Type:          inspection.Type(r.Type),
		ScheduledDate: r.ScheduledDate,
		InspectorID:   r.InspectorID,
		InspectorName: r.InspectorName,
		Notes:         r.Notes,
	}
}

// RescheduleRequest moves a scheduled inspection
type RescheduleRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}

// AssignInspectorRequest sets who performs the inspection
type AssignInspectorRequest struct {
	InspectorID   *uuid.UUID `json:"inspector_id"`
	InspectorName string     `json:"inspector_name" binding:"max=200"`
}

// ItemDTO is one checklist entry
type ItemDTO struct {
	ID        uuid.UUID `json:"id,omitempty"`
	Area      string    `json:"area" binding:"required,max=100"`
	Item      string    `json:"item" binding:"required,max=200"`
	Condition string    `json:"condition" binding:"required,oneof=excellent good fair poor damaged"`
	Notes     string    `json:"notes" binding:"max=2000"`
	SortOrder int       `json:"sort_order"`
}

// RecordItemsRequest replaces the checklist of an inspection in progress
type RecordItemsRequest struct {
	Items []ItemDTO `json:"items" binding:"required,dive"`
}

func (r RecordItemsRequest) items() []inspection.Item {
	out := make([]inspection.Item, len(r.Items))
	for i, it := range r.Items {
		out[i] = inspection.Item{
			ID:        it.ID,
			Area:      it.Area,
			Item:      it.Item,
			Condition: inspection.Condition(it.Condition),
			Notes:     it.Notes,
		}
	}
	return out
}

// CompleteInspectionRequest finishes an inspection
type CompleteInspectionRequest struct {
	OverallCondition string `json:"overall_condition" binding:"required,oneof=excellent good fair poor damaged"`
	Notes            string `json:"notes" binding:"max=5000"`
}

// InspectionListFilter represents filter options for the inspection list
type InspectionListFilter struct {
	Status     string     `form:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Type       string     `form:"type" binding:"omitempty,oneof=move_in move_out routine annual safety"`
	PropertyID string     `form:"property_id" binding:"omitempty,uuid"`
	UnitID     string     `form:"unit_id" binding:"omitempty,uuid"`
	DateFrom   *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo     *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// InspectionResponse represents an inspection in API responses
type InspectionResponse struct {
	ID               uuid.UUID  `json:"id"`
	PropertyID       uuid.UUID  `json:"property_id"`
	UnitID           *uuid.UUID `json:"unit_id,omitempty"`
	LeaseID          *uuid.UUID `json:"lease_id,omitempty"`
	Type             string     `json:"type"`
	Status           string     `json:"status"`
	ScheduledDate    time.Time  `json:"scheduled_date"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	InspectorID      *uuid.UUID `json:"inspector_id,omitempty"`
	InspectorName    string     `json:"inspector_name,omitempty"`
	OverallCondition string     `json:"overall_condition,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	IssueCount       int        `json:"issue_count"`
	Items            []ItemDTO  `json:"items"`
	CreatedBy        *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Version          int        `json:"version"`
}

// ToInspectionResponse converts a domain inspection to a response DTO
func ToInspectionResponse(i *inspection.Inspection) InspectionResponse {
	items := make([]ItemDTO, len(i.Items))
	for idx, it := range i.Items {
		items[idx] = ItemDTO{
			ID:        it.ID,
			Area:      it.Area,
			Item:      it.Item,
			Condition: string(it.Condition),
			Notes:     it.Notes,
			SortOrder: it.SortOrder,
		}
	}
	return InspectionResponse{
		ID:               i.ID,
		PropertyID:       i.PropertyID,
		UnitID:           i.UnitID,
		LeaseID:          i.LeaseID,
		Type:             string(i.Type),
		Status:           string(i.Status),
		ScheduledDate:    i.ScheduledDate,
		CompletedAt:      i.CompletedAt,
		InspectorID:      i.InspectorID,
		InspectorName:    i.InspectorName,
		OverallCondition: string(i.OverallCondition),
		Notes:            i.Notes,
		IssueCount:       i.IssueCount(),
		Items:            items,
		CreatedBy:        i.CreatedBy,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
		Version:          i.Version,
	}
}

// ToInspectionResponses converts a slice of domain inspections
func ToInspectionResponses(inspections []inspection.Inspection) []InspectionResponse {
	out := make([]InspectionResponse, len(inspections))
	for i := range inspections {
		out[i] = ToInspectionResponse(&inspections[i])
	}
	return out
}
