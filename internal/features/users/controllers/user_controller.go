package users_controllers

import (
	"fmt"
	"net/http"

	users_dto "jobtracker/internal/features/users/dto"
	users_middleware "jobtracker/internal/features/users/middleware"
	users_services "jobtracker/internal/features/users/services"
	"jobtracker/internal/util/logger"
	"jobtracker/internal/util/rate_limit"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type UserController struct {
	userService *users_services.UserService
	// process-wide brake against brute force
	signinLimiter *rate.Limiter
	// per-email bucket shared by every instance through Valkey
	signinEmailLimiter *rate_limit.RateLimiter
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users/signup", c.SignUp)
	router.POST("/users/signin", c.SignIn)

	// admin password setup (no auth required)
	router.GET("/users/admin/has-password", c.IsAdminHasPassword)
	router.POST("/users/admin/set-password", c.SetAdminPassword)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetCurrentUser)
	router.PUT("/users/me", c.UpdateProfile)
	router.PUT("/users/change-password", c.ChangePassword)
}

func (c *UserController) SetSignInLimiter(limiter *rate.Limiter) {
	c.signinLimiter = limiter
}

// SignUp
// @Summary Register a new user
// @Description Register a new user with email, password and full name
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignUpRequestDTO true "User signup data"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 409 {object} result.Result
// @Router /users/signup [post]
func (c *UserController) SignUp(ctx *gin.Context) {
	var request users_dto.SignUpRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := c.userService.SignUp(&request); err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, nil, "user created successfully")
}

// SignIn
// @Summary Authenticate a user
// @Description Authenticate a user with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignInRequestDTO true "User signin data"
// @Success 200 {object} result.Result{data=users_dto.SignInResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 429 {object} result.Result "Rate limit exceeded"
// @Router /users/signin [post]
func (c *UserController) SignIn(ctx *gin.Context) {
	if !c.signinLimiter.Allow() {
		result.Fail(ctx, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
		return
	}

	var request users_dto.SignInRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	limit, err := c.signinEmailLimiter.CheckRateLimit(request.Email)
	if err != nil {
		// Valkey outage must not lock everyone out
		logger.GetLogger().Warn("sign in rate limit check failed", "error", err)
	} else if !limit.Allowed {
		ctx.Header("Retry-After", fmt.Sprintf("%d", limit.RetryAfterSec))
		result.Fail(ctx, http.StatusTooManyRequests, "too many sign in attempts, please try again later")
		return
	}

	response, err := c.userService.SignIn(&request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}

// IsAdminHasPassword
// @Summary Check whether the initial admin has a password
// @Tags users
// @Produce json
// @Success 200 {object} result.Result{data=users_dto.IsAdminHasPasswordResponseDTO}
// @Router /users/admin/has-password [get]
func (c *UserController) IsAdminHasPassword(ctx *gin.Context) {
	hasPassword, err := c.userService.IsRootAdminHasPassword()
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, users_dto.IsAdminHasPasswordResponseDTO{HasPassword: hasPassword})
}

// SetAdminPassword
// @Summary Set the initial admin password once
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SetAdminPasswordRequestDTO true "Admin password"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Failure 409 {object} result.Result
// @Router /users/admin/set-password [post]
func (c *UserController) SetAdminPassword(ctx *gin.Context) {
	var request users_dto.SetAdminPasswordRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := c.userService.SetRootAdminPassword(request.Password); err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, nil, "admin password set successfully")
}

// ChangePassword
// @Summary Change user password
// @Description Change the password for the currently authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.ChangePasswordRequestDTO true "New password data"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Failure 401 {object} result.Result
// @Router /users/change-password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request users_dto.ChangePasswordRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := c.userService.ChangeUserPassword(user.ID, request.NewPassword); err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, nil, "password changed successfully")
}

// GetCurrentUser
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result{data=users_dto.UserProfileResponseDTO}
// @Failure 401 {object} result.Result
// @Router /users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result.OK(ctx, c.userService.GetCurrentUserProfile(user))
}

// UpdateProfile
// @Summary Update current user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.UpdateProfileRequestDTO true "Profile data"
// @Success 200 {object} result.Result{data=users_dto.UserProfileResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 401 {object} result.Result
// @Router /users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request users_dto.UpdateProfileRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	profile, err := c.userService.UpdateProfile(user, &request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, profile)
}
