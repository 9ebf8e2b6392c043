package identity

import (
	"strings"
	"time"
	_ "time/tzdata" // timezone validation must not depend on the host zoneinfo

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
)

// DashboardWidget identifies a dashboard section a user can toggle
type DashboardWidget string

const (
	WidgetPortfolio           DashboardWidget = "portfolio"
	WidgetOccupancy           DashboardWidget = "occupancy"
	WidgetFinancialSummary    DashboardWidget = "financial_summary"
	WidgetOpenMaintenance     DashboardWidget = "open_maintenance"
	WidgetExpiringLeases      DashboardWidget = "expiring_leases"
	WidgetUpcomingInspections DashboardWidget = "upcoming_inspections"
	WidgetRecentTransactions  DashboardWidget = "recent_transactions"
)

// AllDashboardWidgets lists every widget in default display order
func AllDashboardWidgets() []DashboardWidget {
	return []DashboardWidget{
		WidgetPortfolio,
		WidgetOccupancy,
		WidgetFinancialSummary,
		WidgetOpenMaintenance,
		WidgetExpiringLeases,
		WidgetUpcomingInspections,
		WidgetRecentTransactions,
	}
}

// IsValidDashboardWidget reports whether id is a known widget
func IsValidDashboardWidget(id string) bool {
	for _, w := range AllDashboardWidgets() {
		if string(w) == id {
			return true
		}
	}
	return false
}

// Theme is the UI theme preference
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

var allowedDateFormats = map[string]bool{
	"MM/DD/YYYY": true,
	"DD/MM/YYYY": true,
	"YYYY-MM-DD": true,
}

// UserSettings holds a user's display and notification preferences
type UserSettings struct {
	shared.OrgAggregateRoot
	UserID             uuid.UUID
	Currency           valueobject.Currency
	Locale             string
	Timezone           string
	DateFormat         string
	Theme              Theme
	DashboardWidgets   []DashboardWidget
	EmailNotifications bool
	SMSNotifications   bool
}

// NewDefaultSettings returns the settings a user starts with
func NewDefaultSettings(orgID, userID uuid.UUID, currency valueobject.Currency) *UserSettings {
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	return &UserSettings{
		OrgAggregateRoot:   shared.NewOrgAggregateRootWithCreator(orgID, userID),
		UserID:             userID,
		Currency:           currency,
		Locale:             valueobject.DefaultLocale,
		Timezone:           "UTC",
		DateFormat:         "MM/DD/YYYY",
		Theme:              ThemeSystem,
		DashboardWidgets:   AllDashboardWidgets(),
		EmailNotifications: true,
	}
}

// SettingsUpdate carries optional changes; nil fields are left untouched
type SettingsUpdate struct {
	Currency           *string
	Locale             *string
	Timezone           *string
	DateFormat         *string
	Theme              *string
	EmailNotifications *bool
	SMSNotifications   *bool
}

// Apply validates and applies the update
func (s *UserSettings) Apply(u SettingsUpdate) error {
	if u.Currency != nil {
		cur, err := valueobject.ParseCurrency(*u.Currency)
		if err != nil {
			return shared.NewDomainError("INVALID_CURRENCY", err.Error())
		}
		s.Currency = cur
	}
	if u.Locale != nil {
		tag, err := valueobject.ParseLocale(*u.Locale)
		if err != nil {
			return shared.NewDomainError("INVALID_LOCALE", err.Error())
		}
		s.Locale = tag.String()
	}
	if u.Timezone != nil {
		tz := strings.TrimSpace(*u.Timezone)
		if _, err := time.LoadLocation(tz); err != nil || tz == "" {
			return shared.NewDomainError("INVALID_TIMEZONE", "Unknown timezone")
		}
		s.Timezone = tz
	}
	if u.DateFormat != nil {
		if !allowedDateFormats[*u.DateFormat] {
			return shared.NewDomainError("INVALID_DATE_FORMAT", "Date format must be MM/DD/YYYY, DD/MM/YYYY or YYYY-MM-DD")
		}
		s.DateFormat = *u.DateFormat
	}
	if u.Theme != nil {
		switch Theme(*u.Theme) {
		case ThemeLight, ThemeDark, ThemeSystem:
			s.Theme = Theme(*u.Theme)
		default:
			return shared.NewDomainError("INVALID_THEME", "Theme must be light, dark or system")
		}
	}
	if u.EmailNotifications != nil {
		s.EmailNotifications = *u.EmailNotifications
	}
	if u.SMSNotifications != nil {
		s.SMSNotifications = *u.SMSNotifications
	}

	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	s.AddDomainEvent(NewSettingsChangedEvent(s))
	return nil
}

// SetDashboardWidgets replaces the ordered list of enabled widgets
func (s *UserSettings) SetDashboardWidgets(ids []string) error {
	seen := make(map[string]bool, len(ids))
	widgets := make([]DashboardWidget, 0, len(ids))
	for _, id := range ids {
		if !IsValidDashboardWidget(id) {
			return shared.NewDomainError("INVALID_WIDGET", "Unknown dashboard widget: "+id)
		}
		if seen[id] {
			return shared.NewDomainError("DUPLICATE_WIDGET", "Dashboard widget listed twice: "+id)
		}
		seen[id] = true
		widgets = append(widgets, DashboardWidget(id))
	}

	s.DashboardWidgets = widgets
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	s.AddDomainEvent(NewSettingsChangedEvent(s))
	return nil
}

// WidgetEnabled reports whether the user has the widget turned on
func (s *UserSettings) WidgetEnabled(w DashboardWidget) bool {
	for _, enabled := range s.DashboardWidgets {
		if enabled == w {
			return true
		}
	}
	return false
}
