package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/finance"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/inspection"
	"github.com/propertyhub/backend/internal/domain/leasing"
	"github.com/propertyhub/backend/internal/domain/maintenance"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// DefaultCacheTTL is how long a computed summary is served from cache
	DefaultCacheTTL = 60 * time.Second

	expiringLeaseDays   = 30
	upcomingInspectDays = 14
	sectionListLimit    = 10
	recentTxLimit       = 5
)

// Cache stores serialized summaries. DeletePrefix drops every entry of an
// organization.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Repositories groups the read models the dashboard aggregates
type Repositories struct {
	Properties   property.PropertyRepository
	Units        property.UnitRepository
	Leases       leasing.LeaseRepository
	Maintenance  maintenance.RequestRepository
	Transactions finance.TransactionRepository
	Inspections  inspection.InspectionRepository
	Settings     identity.SettingsRepository
	Orgs         identity.OrganizationRepository
}

// DashboardService computes per-user dashboard summaries
type DashboardService struct {
	repos  Repositories
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService creates a new DashboardService. A nil cache disables caching.
func NewDashboardService(repos Repositories, cache Cache, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &DashboardService{
		repos:  repos,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// CacheKey is the cache entry for one user's dashboard
func CacheKey(orgID, userID uuid.UUID) string {
	return OrgCachePrefix(orgID) + userID.String()
}

// OrgCachePrefix covers the dashboards of every user in an organization
func OrgCachePrefix(orgID uuid.UUID) string {
	return orgID.String() + ":"
}

// Summary returns the dashboard for a user, from cache when fresh
func (s *DashboardService) Summary(ctx context.Context, orgID, userID uuid.UUID) (*SummaryResponse, error) {
	key := CacheKey(orgID, userID)
	if cached := s.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	settings, err := s.settings(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	resp := &SummaryResponse{
		Widgets:     make([]string, 0, len(settings.DashboardWidgets)),
		GeneratedAt: s.now().UTC(),
	}
	for _, w := range settings.DashboardWidgets {
		resp.Widgets = append(resp.Widgets, string(w))
		if err := s.fill(ctx, orgID, settings, w, resp); err != nil {
			return nil, fmt.Errorf("dashboard %s: %w", w, err)
		}
	}

	s.toCache(ctx, key, resp)
	return resp, nil
}

// Invalidate drops cached dashboards of every user in the organization
func (s *DashboardService) Invalidate(ctx context.Context, orgID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeletePrefix(ctx, OrgCachePrefix(orgID))
}

// InvalidateUser drops the cached dashboard of one user. Keys end in a
// fixed-length user id, so the key is its own prefix.
func (s *DashboardService) InvalidateUser(ctx context.Context, orgID, userID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeletePrefix(ctx, CacheKey(orgID, userID))
}

func (s *DashboardService) fill(ctx context.Context, orgID uuid.UUID, settings *identity.UserSettings, w identity.DashboardWidget, resp *SummaryResponse) error {
	var err error
	switch w {
	case identity.WidgetPortfolio:
		resp.Portfolio, err = s.portfolio(ctx, orgID)
	case identity.WidgetOccupancy:
		resp.Occupancy, err = s.occupancy(ctx, orgID)
	case identity.WidgetFinancialSummary:
		resp.Financial, err = s.financial(ctx, orgID, settings)
	case identity.WidgetOpenMaintenance:
		resp.OpenMaintenance, err = s.openMaintenance(ctx, orgID)
	case identity.WidgetExpiringLeases:
		resp.ExpiringLeases, err = s.expiringLeases(ctx, orgID)
	case identity.WidgetUpcomingInspections:
		resp.UpcomingInspections, err = s.upcomingInspections(ctx, orgID)
	case identity.WidgetRecentTransactions:
		resp.RecentTransactions, err = s.recentTransactions(ctx, orgID, settings)
	}
	return err
}

func (s *DashboardService) settings(ctx context.Context, orgID, userID uuid.UUID) (*identity.UserSettings, error) {
	settings, err := s.repos.Settings.FindByUser(ctx, orgID, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	org, err := s.repos.Orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return identity.NewDefaultSettings(orgID, userID, org.DefaultCurrency), nil
}

func (s *DashboardService) portfolio(ctx context.Context, orgID uuid.UUID) (*PortfolioSection, error) {
	properties, err := s.repos.Properties.CountForOrg(ctx, orgID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	units, err := s.repos.Units.CountForOrg(ctx, orgID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	leases, err := s.repos.Leases.CountForOrg(ctx, orgID,
		shared.DefaultFilter().With("status", string(leasing.LeaseStatusActive)))
	if err != nil {
		return nil, err
	}
	return &PortfolioSection{PropertyCount: properties, UnitCount: units, ActiveLeases: leases}, nil
}

func (s *DashboardService) occupancy(ctx context.Context, orgID uuid.UUID) (*OccupancySection, error) {
	counts, err := s.repos.Units.CountByStatus(ctx, orgID)
	if err != nil {
		return nil, err
	}
	section := &OccupancySection{
		ByStatus:      make(map[string]int64, len(counts)),
		TotalUnits:    counts.Total(),
		OccupiedUnits: counts[property.UnitStatusOccupied],
	}
	for status, n := range counts {
		section.ByStatus[string(status)] = n
	}
	if section.TotalUnits > 0 {
		rate := float64(section.OccupiedUnits) / float64(section.TotalUnits) * 100
		section.OccupancyRate = math.Round(rate*10) / 10
	}
	return section, nil
}

func (s *DashboardService) financial(ctx context.Context, orgID uuid.UUID, settings *identity.UserSettings) (*FinancialSection, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	totals, err := s.repos.Transactions.SumByCategory(ctx, orgID, finance.SummaryQuery{From: start, To: end})
	if err != nil {
		return nil, err
	}

	cur := settings.Currency
	section := &FinancialSection{
		PeriodStart: start,
		PeriodEnd:   end,
		Currency:    string(cur),
		Income:      decimal.Zero,
		Expense:     decimal.Zero,
	}
	excluded := map[string]bool{}
	for _, t := range totals {
		if t.Currency != string(cur) {
			if !excluded[t.Currency] {
				excluded[t.Currency] = true
				section.ExcludedCurrencies = append(section.ExcludedCurrencies, t.Currency)
			}
			continue
		}
		switch t.Type {
		case finance.TransactionTypeIncome:
			section.Income = section.Income.Add(t.Total)
		case finance.TransactionTypeExpense:
			section.Expense = section.Expense.Add(t.Total)
		}
	}
	section.Net = section.Income.Sub(section.Expense)
	section.IncomeFormatted = format(section.Income, cur, settings.Locale)
	section.ExpenseFormatted = format(section.Expense, cur, settings.Locale)
	section.NetFormatted = format(section.Net, cur, settings.Locale)
	return section, nil
}

func (s *DashboardService) openMaintenance(ctx context.Context, orgID uuid.UUID) (*MaintenanceSection, error) {
	counts, err := s.repos.Maintenance.CountOpenByPriority(ctx, orgID)
	if err != nil {
		return nil, err
	}
	section := &MaintenanceSection{
		Total:      counts.Total(),
		ByPriority: make(map[string]int64, len(maintenance.AllPriorities())),
	}
	for _, p := range maintenance.AllPriorities() {
		section.ByPriority[string(p)] = counts[p]
	}
	return section, nil
}

func (s *DashboardService) expiringLeases(ctx context.Context, orgID uuid.UUID) (*ExpiringLeasesSection, error) {
	today := leasing.DateOnly(s.now())
	f := shared.NewFilter(1, sectionListLimit, "end_date", "asc", "").
		With("expiring_before", today.AddDate(0, 0, expiringLeaseDays))

	leases, err := s.repos.Leases.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, err
	}
	total, err := s.repos.Leases.CountForOrg(ctx, orgID, f)
	if err != nil {
		return nil, err
	}

	section := &ExpiringLeasesSection{
		WithinDays: expiringLeaseDays,
		Count:      int(total),
		Leases:     make([]LeaseSummary, 0, len(leases)),
	}
	for _, l := range leases {
		section.Leases = append(section.Leases, LeaseSummary{
			ID:         l.ID,
			PropertyID: l.PropertyID,
			UnitID:     l.UnitID,
			TenantID:   l.TenantID,
			EndDate:    l.EndDate,
			DaysLeft:   int(leasing.DateOnly(l.EndDate).Sub(today).Hours() / 24),
		})
	}
	return section, nil
}

func (s *DashboardService) upcomingInspections(ctx context.Context, orgID uuid.UUID) (*UpcomingInspectionsSection, error) {
	today := leasing.DateOnly(s.now())
	f := shared.NewFilter(1, sectionListLimit, "scheduled_date", "asc", "").
		With("status", string(inspection.StatusScheduled)).
		With("date_from", today).
		With("date_to", today.AddDate(0, 0, upcomingInspectDays+1).Add(-time.Nanosecond))

	inspections, err := s.repos.Inspections.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, err
	}
	section := &UpcomingInspectionsSection{
		WithinDays:  upcomingInspectDays,
		Inspections: make([]InspectionSummary, 0, len(inspections)),
	}
	for _, in := range inspections {
		section.Inspections = append(section.Inspections, InspectionSummary{
			ID:            in.ID,
			PropertyID:    in.PropertyID,
			UnitID:        in.UnitID,
			Type:          string(in.Type),
			ScheduledDate: in.ScheduledDate,
			InspectorName: in.InspectorName,
		})
	}
	return section, nil
}

func (s *DashboardService) recentTransactions(ctx context.Context, orgID uuid.UUID, settings *identity.UserSettings) ([]TransactionSummary, error) {
	f := shared.NewFilter(1, recentTxLimit, "transaction_date", "desc", "").
		With("status", string(finance.TransactionStatusCompleted))

	txs, err := s.repos.Transactions.FindAllForOrg(ctx, orgID, f)
	if err != nil {
		return nil, err
	}
	out := make([]TransactionSummary, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionSummary{
			ID:              tx.ID,
			Type:            string(tx.Type),
			Category:        string(tx.Category),
			Amount:          tx.Amount.StringFixed(tx.Currency.Scale()),
			AmountFormatted: format(tx.Amount, tx.Currency, settings.Locale),
			TransactionDate: tx.TransactionDate,
			Description:     tx.Description,
		})
	}
	return out, nil
}

func format(amount decimal.Decimal, cur valueobject.Currency, locale string) string {
	tag, err := valueobject.ParseLocale(locale)
	if err != nil {
		tag, _ = valueobject.ParseLocale(valueobject.DefaultLocale)
	}
	return valueobject.FormatAmount(amount, cur, tag)
}

func (s *DashboardService) fromCache(ctx context.Context, key string) *SummaryResponse {
	if s.cache == nil {
		return nil
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Dashboard cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var resp SummaryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		s.logger.Warn("Discarding unreadable dashboard cache entry", zap.String("key", key), zap.Error(err))
		return nil
	}
	resp.Cached = true
	return &resp
}

func (s *DashboardService) toCache(ctx context.Context, key string, resp *SummaryResponse) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("Failed to encode dashboard", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.Warn("Dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
