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

type GroupController struct {
	groupService *groups_services.GroupService
	actorService *actors.ActorService
}

func (c *GroupController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/groups", c.GetAllGroups)
	router.POST("/groups", c.CreateGroup)
	router.GET("/groups/:id", c.GetGroup)
	router.PUT("/groups/:id", c.UpdateGroup)
	router.DELETE("/groups/:id", c.DeleteGroup)
	router.POST("/groups/:id/transfer-admin", c.TransferGroupAdmin)
}

// CreateGroup
// @Summary Create a new group
// @Description The creator becomes the group admin and first member
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body groups_dto.CreateGroupRequestDTO true "Group creation data"
// @Success 200 {object} result.Result{data=groups_dto.GroupResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 401 {object} result.Result
// @Failure 403 {object} result.Result
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	var request groups_dto.CreateGroupRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	response, err := c.groupService.CreateGroup(actor, &request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}

// GetAllGroups
// @Summary List all groups
// @Description Group directory with member counts, the caller's membership and role
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result{data=groups_dto.ListGroupsResponseDTO}
// @Failure 401 {object} result.Result
// @Router /groups [get]
func (c *GroupController) GetAllGroups(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	response, err := c.groupService.GetAllGroups(actor)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}

// GetGroup
// @Summary Get group by ID
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} result.Result{data=groups_models.Group}
// @Failure 400 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /groups/{id} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
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

	group, err := c.groupService.GetGroup(actor, groupID)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, group)
}

// UpdateGroup
// @Summary Update group name and description
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param request body groups_dto.UpdateGroupRequestDTO true "Group update data"
// @Success 200 {object} result.Result{data=groups_models.Group}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /groups/{id} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
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

	var request groups_dto.UpdateGroupRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	group, err := c.groupService.UpdateGroup(actor, groupID, &request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, group)
}

// DeleteGroup
// @Summary Delete group
// @Description Group admin or global admin. Jobs of the group are kept without a group.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
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

	if err := c.groupService.DeleteGroup(actor, groupID); err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, nil, "group deleted successfully")
}

// TransferGroupAdmin
// @Summary Transfer group admin
// @Description Makes another member the group admin
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param request body groups_dto.TransferGroupAdminRequestDTO true "New group admin"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /groups/{id}/transfer-admin [post]
func (c *GroupController) TransferGroupAdmin(ctx *gin.Context) {
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

	var request groups_dto.TransferGroupAdminRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := c.groupService.TransferGroupAdmin(actor, groupID, request.NewAdminUserID); err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, nil, "group admin transferred successfully")
}
