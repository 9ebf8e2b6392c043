package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/identity"
)

// TeamUseCase is the team management service used by TeamHandler
type TeamUseCase interface {
	List(ctx context.Context, orgID uuid.UUID, filter identity.MemberListFilter) ([]identity.MemberResponse, int64, error)
	GetByID(ctx context.Context, orgID, memberID uuid.UUID) (*identity.MemberResponse, error)
	Invite(ctx context.Context, orgID, invitedBy uuid.UUID, req identity.InviteMemberRequest) (*identity.InviteResponse, error)
	ResendInvite(ctx context.Context, orgID, memberID uuid.UUID) (*identity.InviteResponse, error)
	ChangeRole(ctx context.Context, orgID, actorID, memberID uuid.UUID, req identity.ChangeRoleRequest) (*identity.MemberResponse, error)
	Remove(ctx context.Context, orgID, actorID, memberID uuid.UUID) error
}

// TeamHandler handles team member endpoints
type TeamHandler struct {
	BaseHandler
	teamService TeamUseCase
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService TeamUseCase) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List godoc
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Param        search    query string false "Search by name or email"
// @Param        status    query string false "Member status" Enums(invited, active, removed)
// @Param        role      query string false "Role" Enums(owner, manager, maintenance, viewer)
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]identity.MemberResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /team [get]
func (h *TeamHandler) List(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var filter identity.MemberListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	members, total, err := h.teamService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, members, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @Summary      Get a team member
// @Tags         team
// @Produce      json
// @Param        id path string true "Member ID" format(uuid)
// @Success      200 {object} dto.Response{data=identity.MemberResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /team/{id} [get]
func (h *TeamHandler) GetByID(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	member, err := h.teamService.GetByID(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, member)
}

// Invite godoc
// @Summary      Invite a team member
// @Description  Creates an invited member and returns a one-time invite token
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        request body identity.InviteMemberRequest true "Invitation"
// @Success      201 {object} dto.Response{data=identity.InviteResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /team/invite [post]
func (h *TeamHandler) Invite(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	var req identity.InviteMemberRequest
	if !h.bindJSON(c, &req) {
		return
	}

	invite, err := h.teamService.Invite(c.Request.Context(), orgID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invite)
}

// ResendInvite godoc
// @Summary      Resend an invitation
// @Description  Rotates the invite token of a pending member
// @Tags         team
// @Produce      json
// @Param        id path string true "Member ID" format(uuid)
// @Success      200 {object} dto.Response{data=identity.InviteResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /team/{id}/resend [post]
func (h *TeamHandler) ResendInvite(c *gin.Context) {
	orgID, _, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	invite, err := h.teamService.ResendInvite(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invite)
}

// ChangeRole godoc
// @Summary      Change a member's role
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Member ID" format(uuid)
// @Param        request body identity.ChangeRoleRequest true "New role"
// @Success      200 {object} dto.Response{data=identity.MemberResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /team/{id}/role [put]
func (h *TeamHandler) ChangeRole(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req identity.ChangeRoleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	member, err := h.teamService.ChangeRole(c.Request.Context(), orgID, userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, member)
}

// Remove godoc
// @Summary      Remove a team member
// @Tags         team
// @Param        id path string true "Member ID" format(uuid)
// @Success      204
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /team/{id} [delete]
func (h *TeamHandler) Remove(c *gin.Context) {
	orgID, userID, ok := h.orgAndUser(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Remove(c.Request.Context(), orgID, userID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
