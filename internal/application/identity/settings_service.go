package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	appevent "github.com/propertyhub/backend/internal/application/event"
	"github.com/propertyhub/backend/internal/domain/identity"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SettingsService manages per-user preferences
type SettingsService struct {
	settingsRepo identity.SettingsRepository
	orgRepo      identity.OrganizationRepository
	publisher    *appevent.Publisher
	logger       *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	settingsRepo identity.SettingsRepository,
	orgRepo identity.OrganizationRepository,
	publisher *appevent.Publisher,
	logger *zap.Logger,
) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		orgRepo:      orgRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Get returns the user's settings, creating the defaults on first read
func (s *SettingsService) Get(ctx context.Context, orgID, userID uuid.UUID) (*SettingsResponse, error) {
	settings, err := s.load(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	resp := ToSettingsResponse(settings)
	return &resp, nil
}

// Load returns the domain settings for other services, such as the dashboard
func (s *SettingsService) Load(ctx context.Context, orgID, userID uuid.UUID) (*identity.UserSettings, error) {
	return s.load(ctx, orgID, userID)
}

// Update applies the given preference changes
func (s *SettingsService) Update(ctx context.Context, orgID, userID uuid.UUID, req UpdateSettingsRequest) (*SettingsResponse, error) {
	settings, err := s.load(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	err = settings.Apply(identity.SettingsUpdate{
		Currency:           req.Currency,
		Locale:             req.Locale,
		Timezone:           req.Timezone,
		DateFormat:         req.DateFormat,
		Theme:              req.Theme,
		EmailNotifications: req.EmailNotifications,
		SMSNotifications:   req.SMSNotifications,
	})
	if err != nil {
		return nil, err
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("Failed to save settings", zap.Error(err))
		return nil, err
	}
	s.publisher.Publish(ctx, settings)

	s.logger.Info("Settings updated", zap.String("user_id", userID.String()))

	resp := ToSettingsResponse(settings)
	return &resp, nil
}

// UpdateDashboardWidgets replaces the ordered list of enabled dashboard widgets
func (s *SettingsService) UpdateDashboardWidgets(ctx context.Context, orgID, userID uuid.UUID, req UpdateDashboardWidgetsRequest) (*SettingsResponse, error) {
	settings, err := s.load(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := settings.SetDashboardWidgets(req.Widgets); err != nil {
		return nil, err
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, settings)

	s.logger.Info("Dashboard widgets updated",
		zap.String("user_id", userID.String()),
		zap.Int("widgets", len(req.Widgets)))

	resp := ToSettingsResponse(settings)
	return &resp, nil
}

// FormatMoney renders an amount with the currency's symbol and rounding and
// the locale's grouping and decimal marks
func (s *SettingsService) FormatMoney(amount decimal.Decimal, currency, locale string) (string, error) {
	return FormatMoney(amount, currency, locale)
}

// FormatMoney is the stateless form of SettingsService.FormatMoney
func FormatMoney(amount decimal.Decimal, currency, locale string) (string, error) {
	cur, err := valueobject.ParseCurrency(currency)
	if err != nil {
		return "", shared.NewDomainError("INVALID_CURRENCY", err.Error())
	}
	if locale == "" {
		locale = valueobject.DefaultLocale
	}
	tag, err := valueobject.ParseLocale(locale)
	if err != nil {
		return "", shared.NewDomainError("INVALID_LOCALE", err.Error())
	}
	return valueobject.FormatAmount(amount, cur, tag), nil
}

func (s *SettingsService) load(ctx context.Context, orgID, userID uuid.UUID) (*identity.UserSettings, error) {
	settings, err := s.settingsRepo.FindByUser(ctx, orgID, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	currency := valueobject.DefaultCurrency
	if org, err := s.orgRepo.FindByID(ctx, orgID); err == nil {
		currency = org.DefaultCurrency
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	settings = identity.NewDefaultSettings(orgID, userID, currency)
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("Failed to create default settings", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Default settings created", zap.String("user_id", userID.String()))
	return settings, nil
}
