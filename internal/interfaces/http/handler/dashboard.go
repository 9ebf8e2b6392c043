package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/dashboard"
)

// DashboardUseCase builds dashboard summaries
type DashboardUseCase interface {
	Summary(ctx context.Context, orgID, userID uuid.UUID) (*dashboard.SummaryResponse, error)
}

// DashboardHandler serves the dashboard
type DashboardHandler struct {
	BaseHandler
	dashboardService DashboardUseCase
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary godoc
// @Summary      Dashboard summary
// @Description  Only sections for the user's enabled widgets are populated
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.Response{data=dashboard.SummaryResponse}
// @Security     BearerAuth
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), orgID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
