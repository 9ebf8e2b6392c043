package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===================== Summary Sections =====================

// PortfolioSection counts what the organization manages
type PortfolioSection struct {
	PropertyCount int64 `json:"property_count"`
	UnitCount     int64 `json:"unit_count"`
	ActiveLeases  int64 `json:"active_leases"`
}

// OccupancySection breaks units down by status
type OccupancySection struct {
	ByStatus      map[string]int64 `json:"by_status"`
	TotalUnits    int64            `json:"total_units"`
	OccupiedUnits int64            `json:"occupied_units"`
	OccupancyRate float64          `json:"occupancy_rate"`
}

// FinancialSection summarizes completed transactions for the current month
type FinancialSection struct {
	PeriodStart        time.Time       `json:"period_start"`
	PeriodEnd          time.Time       `json:"period_end"`
	Currency           string          `json:"currency"`
	Income             decimal.Decimal `json:"income"`
	Expense            decimal.Decimal `json:"expense"`
	Net                decimal.Decimal `json:"net"`
	IncomeFormatted    string          `json:"income_formatted"`
	ExpenseFormatted   string          `json:"expense_formatted"`
	NetFormatted       string          `json:"net_formatted"`
	ExcludedCurrencies []string        `json:"excluded_currencies,omitempty"`
}

// MaintenanceSection counts open requests by priority
type MaintenanceSection struct {
	Total      int64            `json:"total"`
	ByPriority map[string]int64 `json:"by_priority"`
}

// LeaseSummary is a lease nearing its end date
type LeaseSummary struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	UnitID     uuid.UUID `json:"unit_id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	EndDate    time.Time `json:"end_date"`
	DaysLeft   int       `json:"days_left"`
}

// ExpiringLeasesSection lists active leases ending soon
type ExpiringLeasesSection struct {
	WithinDays int            `json:"within_days"`
	Count      int            `json:"count"`
	Leases     []LeaseSummary `json:"leases"`
}

// InspectionSummary is a scheduled inspection
type InspectionSummary struct {
	ID            uuid.UUID  `json:"id"`
	PropertyID    uuid.UUID  `json:"property_id"`
	UnitID        *uuid.UUID `json:"unit_id,omitempty"`
	Type          string     `json:"type"`
	ScheduledDate time.Time  `json:"scheduled_date"`
	InspectorName string     `json:"inspector_name,omitempty"`
}

// UpcomingInspectionsSection lists inspections in the coming days
type UpcomingInspectionsSection struct {
	WithinDays  int                 `json:"within_days"`
	Inspections []InspectionSummary `json:"inspections"`
}

// TransactionSummary is a recently recorded transaction
type TransactionSummary struct {
	ID              uuid.UUID `json:"id"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Amount          string    `json:"amount"`
	AmountFormatted string    `json:"amount_formatted"`
	TransactionDate time.Time `json:"transaction_date"`
	Description     string    `json:"description"`
}

// ===================== Summary Response =====================

// SummaryResponse is the dashboard for one user. Sections for widgets the
// user has turned off are omitted.
type SummaryResponse struct {
	Widgets             []string                    `json:"widgets"`
	Portfolio           *PortfolioSection           `json:"portfolio,omitempty"`
	Occupancy           *OccupancySection           `json:"occupancy,omitempty"`
	Financial           *FinancialSection           `json:"financial_summary,omitempty"`
	OpenMaintenance     *MaintenanceSection         `json:"open_maintenance,omitempty"`
	ExpiringLeases      *ExpiringLeasesSection      `json:"expiring_leases,omitempty"`
	UpcomingInspections *UpcomingInspectionsSection `json:"upcoming_inspections,omitempty"`
	RecentTransactions  []TransactionSummary        `json:"recent_transactions,omitempty"`
	GeneratedAt         time.Time                   `json:"generated_at"`
	Cached              bool                        `json:"cached"`
}
