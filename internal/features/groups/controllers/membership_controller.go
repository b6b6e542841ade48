package groups_controllers

import (
	"net/http"

	"jobtracker/internal/features/actors"
	groups_dto "jobtracker/internal/features/groups/dto"
	groups_services "jobtracker/internal/features/groups/services"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipController struct {
	membershipService *groups_services.MembershipService
	actorService      *actors.ActorService
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	groupRoutes := router.Group("/groups/:id")

	groupRoutes.GET("/members", c.ListMembers)
	groupRoutes.POST("/members", c.AddMember)
	groupRoutes.DELETE("/members/:userId", c.RemoveMember)
}

// ListMembers
// @Summary List group members
// @Description Members with email, full name and computed role
// @Tags group-membership
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} result.Result{data=groups_dto.GetMembersResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /groups/{id}/members [get]
func (c *MembershipController) ListMembers(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid group ID")
		return
	}

	response, err := c.membershipService.GetGroupMembers(actor, groupID)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}

// AddMember
// @Summary Add member to group
// @Description Identifier with "@" matches the exact email, otherwise a unique part of the full name
// @Tags group-membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param request body groups_dto.AddMemberRequestDTO true "Member identifier"
// @Success 200 {object} result.Result{data=groups_dto.GroupMemberResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Failure 409 {object} result.Result
// @Router /groups/{id}/members [post]
func (c *MembershipController) AddMember(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid group ID")
		return
	}

	var request groups_dto.AddMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	member, err := c.membershipService.AddMember(actor, groupID, request.Identifier)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, member)
}

// RemoveMember
// @Summary Remove member from group
// @Description The group creator cannot be removed; members may remove themselves
// @Tags group-membership
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param userId path string true "User ID"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /groups/{id}/members/{userId} [delete]
func (c *MembershipController) RemoveMember(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid group ID")
		return
	}

	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := c.membershipService.RemoveMember(actor, groupID, userID); err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, nil, "member removed successfully")
}
