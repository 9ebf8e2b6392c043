package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/identity"
)

// SettingsUseCase is the user settings service used by SettingsHandler
type SettingsUseCase interface {
	Get(ctx context.Context, orgID, userID uuid.UUID) (*identity.SettingsResponse, error)
	Update(ctx context.Context, orgID, userID uuid.UUID, req identity.UpdateSettingsRequest) (*identity.SettingsResponse, error)
	UpdateDashboardWidgets(ctx context.Context, orgID, userID uuid.UUID, req identity.UpdateDashboardWidgetsRequest) (*identity.SettingsResponse, error)
}

// SettingsHandler handles the current user's preferences
type SettingsHandler struct {
	BaseHandler
	settingsService SettingsUseCase
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get godoc
// @Summary      Get settings
// @Description  Returns the current user's settings, creating defaults on first read
// @Tags         settings
// @Produce      json
// @Success      200 {object} dto.Response{data=identity.SettingsResponse}
// @Security     BearerAuth
// @Router       /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context(), orgID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Update godoc
// @Summary      Update settings
// @Description  Omitted fields keep their current value
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body identity.UpdateSettingsRequest true "Settings"
// @Success      200 {object} dto.Response{data=identity.SettingsResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req identity.UpdateSettingsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// UpdateDashboardWidgets godoc
// @Summary      Set dashboard widgets
// @Description  Replaces the ordered list of enabled dashboard widgets
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body identity.UpdateDashboardWidgetsRequest true "Widgets"
// @Success      200 {object} dto.Response{data=identity.SettingsResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /settings/dashboard-widgets [put]
func (h *SettingsHandler) UpdateDashboardWidgets(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req identity.UpdateDashboardWidgetsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	settings, err := h.settingsService.UpdateDashboardWidgets(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}
