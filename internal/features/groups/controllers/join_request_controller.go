package groups_controllers

import (
	"net/http"

	"jobtracker/internal/features/actors"
	groups_dto "jobtracker/internal/features/groups/dto"
	groups_enums "jobtracker/internal/features/groups/enums"
	groups_services "jobtracker/internal/features/groups/services"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JoinRequestController struct {
	joinRequestService *groups_services.JoinRequestService
	actorService       *actors.ActorService
}

func (c *JoinRequestController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/join-requests/mine", c.ListMyJoinRequests)

	groupRoutes := router.Group("/groups/:id/join-requests")

	groupRoutes.POST("", c.RequestToJoin)
	groupRoutes.GET("", c.ListJoinRequests)
	groupRoutes.POST("/:requestId/respond", c.RespondToJoinRequest)
}

// RequestToJoin
// @Summary Request to join a group
// @Description Returns the open request when one already exists
// @Tags group-join-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} result.Result{data=groups_models.GroupJoinRequest}
// @Failure 400 {object} result.Result
// @Failure 404 {object} result.Result
// @Failure 409 {object} result.Result
// @Router /groups/{id}/join-requests [post]
func (c *JoinRequestController) RequestToJoin(ctx *gin.Context) {
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

	request, err := c.joinRequestService.RequestToJoin(actor, groupID)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, request)
}

// ListJoinRequests
// @Summary List join requests of a group
// @Tags group-join-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} result.Result{data=groups_dto.ListJoinRequestsResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /groups/{id}/join-requests [get]
func (c *JoinRequestController) ListJoinRequests(ctx *gin.Context) {
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

	var status *groups_enums.JoinRequestStatus
	if statusParam := ctx.Query("status"); statusParam != "" {
		parsed := groups_enums.JoinRequestStatus(statusParam)
		status = &parsed
	}

	response, err := c.joinRequestService.ListJoinRequests(actor, groupID, status)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}

// RespondToJoinRequest
// @Summary Approve or reject a join request
// @Description Group admin or global admin. A repeated approval is a no-op.
// @Tags group-join-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param requestId path string true "Join request ID"
// @Param request body groups_dto.RespondToJoinRequestDTO true "Decision"
// @Success 200 {object} result.Result{data=groups_models.GroupJoinRequest}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Failure 409 {object} result.Result
// @Router /groups/{id}/join-requests/{requestId}/respond [post]
func (c *JoinRequestController) RespondToJoinRequest(ctx *gin.Context) {
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

	requestID, err := uuid.Parse(ctx.Param("requestId"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid join request ID")
		return
	}

	var request groups_dto.RespondToJoinRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	joinRequest, err := c.joinRequestService.RespondToJoinRequest(
		actor,
		requestID,
		groupID,
		request.UserID,
		request.Accept,
	)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, joinRequest)
}

// ListMyJoinRequests
// @Summary List the caller's join requests
// @Tags group-join-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result{data=groups_dto.ListJoinRequestsResponseDTO}
// @Router /join-requests/mine [get]
func (c *JoinRequestController) ListMyJoinRequests(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	response, err := c.joinRequestService.ListMyJoinRequests(actor)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}
