package users_controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	users_dto "jobtracker/internal/features/users/dto"
	users_middleware "jobtracker/internal/features/users/middleware"
	users_services "jobtracker/internal/features/users/services"
	"jobtracker/internal/util/app_errors"
	"jobtracker/internal/util/logger"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteUserController serves the privileged hard delete. It is mounted on the
// public group and authenticates the bearer token itself so every failure maps
// to a fixed status.
type DeleteUserController struct {
	userService       *users_services.UserService
	managementService *users_services.UserManagementService
}

func (c *DeleteUserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/functions/delete-user", c.DeleteUser)
}

// DeleteUser
// @Summary Permanently delete a user (admin only)
// @Tags user-management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.DeleteUserRequestDTO true "User to delete"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Failure 401 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 500 {object} result.Result
// @Router /functions/delete-user [post]
func (c *DeleteUserController) DeleteUser(ctx *gin.Context) {
	token := users_middleware.ExtractBearerToken(ctx)
	if token == "" {
		result.Fail(ctx, http.StatusUnauthorized, "missing auth token")
		return
	}

	caller, err := c.userService.GetUserFromToken(token)
	if err != nil {
		result.Fail(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	if !caller.IsAdmin() {
		result.Fail(ctx, http.StatusForbidden, "forbidden")
		return
	}

	// an empty body is reported as a missing user_id below
	var request users_dto.DeleteUserRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	if strings.TrimSpace(request.UserID) == "" {
		result.Fail(ctx, http.StatusBadRequest, "missing user_id")
		return
	}

	userID, err := uuid.Parse(strings.TrimSpace(request.UserID))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid user_id")
		return
	}

	if userID == caller.ID {
		result.Fail(ctx, http.StatusBadRequest, "cannot delete your own user")
		return
	}

	if err := c.managementService.DeleteUser(userID, caller); err != nil {
		var appErr *app_errors.AppError
		if errors.As(err, &appErr) {
			result.Fail(ctx, http.StatusBadRequest, appErr.Error())
			return
		}

		logger.GetLogger().Error("failed to delete user", "userId", userID, "error", err)
		result.Fail(ctx, http.StatusInternalServerError, "internal error")
		return
	}

	result.OK(ctx, nil)
}
