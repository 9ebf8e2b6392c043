package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type settingsBus struct {
	events []shared.DomainEvent
}

func (b *settingsBus) Publish(_ context.Context, events ...shared.DomainEvent) error {
	b.events = append(b.events, events...)
	return nil
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()
	orgID, userID := uuid.New(), uuid.New()

	t.Run("creates defaults with the organization currency on first read", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		orgRepo := new(MockOrganizationRepository)
		org := &identity.Organization{BaseAggregateRoot: shared.NewBaseAggregateRoot(), DefaultCurrency: valueobject.EUR}

		settingsRepo.On("FindByUser", ctx, orgID, userID).Return(nil, shared.ErrNotFound)
		orgRepo.On("FindByID", ctx, orgID).Return(org, nil)
		settingsRepo.On("Save", ctx, mock.AnythingOfType("*identity.UserSettings")).Return(nil)

		svc := NewSettingsService(settingsRepo, orgRepo, nil, zap.NewNop())
		resp, err := svc.Get(ctx, orgID, userID)
		require.NoError(t, err)

		assert.Equal(t, "EUR", resp.Currency)
		assert.Equal(t, "€", resp.CurrencySymbol)
		assert.Equal(t, valueobject.DefaultLocale, resp.Locale)
		assert.Len(t, resp.DashboardWidgets, len(identity.AllDashboardWidgets()))
		settingsRepo.AssertExpectations(t)
	})

	t.Run("returns stored settings", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		stored := identity.NewDefaultSettings(orgID, userID, valueobject.GBP)
		settingsRepo.On("FindByUser", ctx, orgID, userID).Return(stored, nil)

		svc := NewSettingsService(settingsRepo, new(MockOrganizationRepository), nil, zap.NewNop())
		resp, err := svc.Get(ctx, orgID, userID)
		require.NoError(t, err)
		assert.Equal(t, "GBP", resp.Currency)
		settingsRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	orgID, userID := uuid.New(), uuid.New()

	newService := func() (*SettingsService, *MockSettingsRepository) {
		repo := new(MockSettingsRepository)
		repo.On("FindByUser", ctx, orgID, userID).Return(identity.NewDefaultSettings(orgID, userID, valueobject.USD), nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)
		return NewSettingsService(repo, new(MockOrganizationRepository), nil, zap.NewNop()), repo
	}
	str := func(s string) *string { return &s }

	t.Run("applies partial changes", func(t *testing.T) {
		svc, _ := newService()
		off := false
		resp, err := svc.Update(ctx, orgID, userID, UpdateSettingsRequest{
			Currency:           str("JPY"),
			Theme:              str("dark"),
			EmailNotifications: &off,
		})
		require.NoError(t, err)
		assert.Equal(t, "JPY", resp.Currency)
		assert.Equal(t, "dark", resp.Theme)
		assert.False(t, resp.EmailNotifications)
		assert.Equal(t, "UTC", resp.Timezone, "untouched fields keep their value")
	})

	t.Run("announces the change for the user", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("FindByUser", ctx, orgID, userID).Return(identity.NewDefaultSettings(orgID, userID, valueobject.USD), nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)
		bus := &settingsBus{}
		svc := NewSettingsService(repo, new(MockOrganizationRepository), appevent.NewPublisher(bus, nil), zap.NewNop())

		_, err := svc.Update(ctx, orgID, userID, UpdateSettingsRequest{Currency: str("EUR")})
		require.NoError(t, err)
		_, err = svc.UpdateDashboardWidgets(ctx, orgID, userID, UpdateDashboardWidgetsRequest{Widgets: []string{"occupancy"}})
		require.NoError(t, err)

		require.Len(t, bus.events, 2)
		for _, e := range bus.events {
			changed, ok := e.(*identity.SettingsChangedEvent)
			require.True(t, ok)
			assert.Equal(t, userID, changed.UserID)
			assert.Equal(t, orgID, changed.OrgID())
		}
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		svc, repo := newService()
		_, err := svc.Update(ctx, orgID, userID, UpdateSettingsRequest{Currency: str("XYZ")})
		assertDomainCode(t, err, "INVALID_CURRENCY")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		svc, _ := newService()
		_, err := svc.Update(ctx, orgID, userID, UpdateSettingsRequest{Timezone: str("Mars/Olympus")})
		assertDomainCode(t, err, "INVALID_TIMEZONE")
	})
}

func TestSettingsService_UpdateDashboardWidgets(t *testing.T) {
	ctx := context.Background()
	orgID, userID := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		widgets  []string
		wantCode string
	}{
		{"ordered subset", []string{"occupancy", "portfolio"}, ""},
		{"empty disables all", []string{}, ""},
		{"unknown widget", []string{"weather"}, "INVALID_WIDGET"},
		{"duplicate widget", []string{"occupancy", "occupancy"}, "DUPLICATE_WIDGET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSettingsRepository)
			repo.On("FindByUser", ctx, orgID, userID).Return(identity.NewDefaultSettings(orgID, userID, ""), nil)
			repo.On("Save", ctx, mock.Anything).Return(nil)
			svc := NewSettingsService(repo, new(MockOrganizationRepository), nil, zap.NewNop())

			resp, err := svc.UpdateDashboardWidgets(ctx, orgID, userID, UpdateDashboardWidgetsRequest{Widgets: tt.widgets})
			if tt.wantCode != "" {
				assertDomainCode(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.widgets, resp.DashboardWidgets)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		locale   string
		want     string
	}{
		{"us dollars", "1234.5", "USD", "en-US", "$1,234.50"},
		{"yen has no minor units", "1500", "JPY", "en-US", "¥1,500"},
		{"euro in german", "1234.5", "EUR", "de-DE", "1.234,50 €"},
		{"default locale", "10", "USD", "", "$10.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatMoney(decimal.RequireFromString(tt.amount), tt.currency, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown currency", func(t *testing.T) {
		_, err := FormatMoney(decimal.NewFromInt(1), "ABC", "en-US")
		assertDomainCode(t, err, "INVALID_CURRENCY")
	})
}
