package users_controllers

import (
	"net/http"

	users_dto "jobtracker/internal/features/users/dto"
	users_enums "jobtracker/internal/features/users/enums"
	users_middleware "jobtracker/internal/features/users/middleware"
	users_services "jobtracker/internal/features/users/services"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ManagementController struct {
	managementService *users_services.UserManagementService
}

func (c *ManagementController) RegisterRoutes(router *gin.RouterGroup) {
	adminOnly := users_middleware.RequireRole(users_enums.UserRoleAdmin)

	router.GET("/users", adminOnly, c.GetUsers)
	router.GET("/users/:id", c.GetUserProfile)
	router.PUT("/users/:id/permissions", adminOnly, c.UpdateUserPermissions)
	router.POST("/users/transfer-admin", adminOnly, c.TransferAdminRole)
	router.DELETE("/users/:id", adminOnly, c.SoftDeleteUser)
}

// GetUsers
// @Summary List users
// @Description List every user including soft-deleted ones, newest first (admin only)
// @Tags user-management
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of items per page" default(100)
// @Param offset query int false "Page offset" default(0)
// @Param beforeDate query string false "Filter users created before this date (RFC3339 format)" format(date-time)
// @Success 200 {object} result.Result{data=users_dto.ListUsersResponseDTO}
// @Failure 401 {object} result.Result
// @Failure 403 {object} result.Result
// @Router /users [get]
func (c *ManagementController) GetUsers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	request := &users_dto.ListUsersRequestDTO{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if request.Limit <= 0 || request.Limit > 1000 {
		request.Limit = 100
	}
	if request.Offset < 0 {
		request.Offset = 0
	}

	users, total, err := c.managementService.GetUsers(user, request.Limit, request.Offset, request.BeforeDate)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	userProfiles := make([]users_dto.UserProfileResponseDTO, len(users))
	for i, u := range users {
		userProfiles[i] = *users_services.ToProfileDTO(u)
	}

	result.OK(ctx, users_dto.ListUsersResponseDTO{
		Users: userProfiles,
		Total: total,
	})
}

// GetUserProfile
// @Summary Get user profile
// @Description Users can view their own profile, the admin can view any
// @Tags user-management
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} result.Result{data=users_dto.UserProfileResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /users/{id} [get]
func (c *ManagementController) GetUserProfile(ctx *gin.Context) {
	currentUser, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := c.managementService.GetUserProfile(userID, currentUser)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, users_services.ToProfileDTO(user))
}

// UpdateUserPermissions
// @Summary Replace the feature permissions of a user
// @Tags user-management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body users_dto.UpdatePermissionsRequestDTO true "Permissions"
// @Success 200 {object} result.Result{data=users_dto.UserProfileResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /users/{id}/permissions [put]
func (c *ManagementController) UpdateUserPermissions(ctx *gin.Context) {
	currentUser, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid user ID")
		return
	}

	var request users_dto.UpdatePermissionsRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	user, err := c.managementService.UpdateUserPermissions(userID, request.Permissions, currentUser)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, users_services.ToProfileDTO(user))
}

// TransferAdminRole
// @Summary Transfer the admin role
// @Description The current admin becomes a regular user and the target becomes the admin
// @Tags user-management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.TransferAdminRequestDTO true "New admin"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Failure 409 {object} result.Result
// @Router /users/transfer-admin [post]
func (c *ManagementController) TransferAdminRole(ctx *gin.Context) {
	currentUser, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request users_dto.TransferAdminRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := c.managementService.TransferAdminRole(request.NewAdminUserID, currentUser); err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, nil, "admin role transferred successfully")
}

// SoftDeleteUser
// @Summary Soft delete a user
// @Description Marks the user as deleted; the row and its history are kept
// @Tags user-management
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /users/{id} [delete]
func (c *ManagementController) SoftDeleteUser(ctx *gin.Context) {
	currentUser, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := c.managementService.SoftDeleteUser(userID, currentUser); err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, nil, "user deleted successfully")
}
