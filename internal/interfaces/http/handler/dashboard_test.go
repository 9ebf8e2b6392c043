package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardUseCase is a mock implementation of DashboardUseCase
type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) Summary(ctx context.Context, orgID, userID uuid.UUID) (*dashboard.SummaryResponse, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.SummaryResponse), args.Error(1)
}

func TestDashboardHandler_Summary(t *testing.T) {
	t.Run("only enabled widgets", func(t *testing.T) {
		svc := new(MockDashboardUseCase)
		svc.On("Summary", mock.Anything, testOrgID, testUserID).Return(&dashboard.SummaryResponse{
			Widgets:     []string{"portfolio", "occupancy"},
			Portfolio:   &dashboard.PortfolioSection{PropertyCount: 3, UnitCount: 12, ActiveLeases: 9},
			Occupancy:   &dashboard.OccupancySection{TotalUnits: 12, OccupiedUnits: 9, OccupancyRate: 75},
			GeneratedAt: time.Now(),
		}, nil)

		r := newAuthedRouter()
		r.GET("/dashboard/summary", NewDashboardHandler(svc).Summary)
		w := doRequest(r, http.MethodGet, "/dashboard/summary", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := decodeResponse(t, w).Data.(map[string]any)
		assert.Contains(t, data, "portfolio")
		assert.Contains(t, data, "occupancy")
		assert.NotContains(t, data, "financial_summary")
		assert.NotContains(t, data, "expiring_leases")
		assert.EqualValues(t, 75, data["occupancy"].(map[string]any)["occupancy_rate"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := new(MockDashboardUseCase)
		r := gin.New()
		r.GET("/dashboard/summary", NewDashboardHandler(svc).Summary)

		w := doRequest(r, http.MethodGet, "/dashboard/summary", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("service failure", func(t *testing.T) {
		svc := new(MockDashboardUseCase)
		svc.On("Summary", mock.Anything, testOrgID, testUserID).Return(nil, errors.New("redis: connection refused"))

		r := newAuthedRouter()
		r.GET("/dashboard/summary", NewDashboardHandler(svc).Summary)
		w := doRequest(r, http.MethodGet, "/dashboard/summary", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "redis")
	})
}
