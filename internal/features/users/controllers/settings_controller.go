package users_controllers

import (
	"net/http"

	users_enums "jobtracker/internal/features/users/enums"
	users_middleware "jobtracker/internal/features/users/middleware"
	users_models "jobtracker/internal/features/users/models"
	users_services "jobtracker/internal/features/users/services"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService *users_services.SettingsService
}

func (c *SettingsController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/settings", c.GetUsersSettings)
	router.PUT("/users/settings", users_middleware.RequireRole(users_enums.UserRoleAdmin), c.UpdateUsersSettings)
}

// GetUsersSettings
// @Summary Get users settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result{data=users_models.UsersSettings}
// @Failure 401 {object} result.Result
// @Router /users/settings [get]
func (c *SettingsController) GetUsersSettings(ctx *gin.Context) {
	settings, err := c.settingsService.GetSettings()
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, settings)
}

// UpdateUsersSettings
// @Summary Update users settings
// @Description Update registration and group creation policy (admin only)
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_models.UsersSettings true "Settings update data"
// @Success 200 {object} result.Result{data=users_models.UsersSettings}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Router /users/settings [put]
func (c *SettingsController) UpdateUsersSettings(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request users_models.UsersSettings
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	settings, err := c.settingsService.UpdateSettings(request, user)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, settings)
}
