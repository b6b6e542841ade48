package audit_logs

import (
	"net/http"

	users_middleware "jobtracker/internal/features/users/middleware"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuditLogController struct {
	auditLogService *AuditLogService
}

func (c *AuditLogController) RegisterRoutes(router *gin.RouterGroup) {
	// All audit log endpoints require authentication (handled in main.go)
	auditRoutes := router.Group("/audit-logs")

	auditRoutes.GET("", c.GetAuditLogs)
	auditRoutes.DELETE("", c.ClearAuditLogs)
	auditRoutes.GET("/users/:userId", c.GetUserAuditLogs)
}

// GetAuditLogs
// @Summary Get audit logs
// @Description Newest first. Admin or users with the audit permission.
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Param beforeDate query string false "Filter logs created before this date (RFC3339 format)" format(date-time)
// @Success 200 {object} result.Result{data=GetAuditLogsResponse}
// @Failure 401 {object} result.Result
// @Failure 403 {object} result.Result
// @Router /audit-logs [get]
func (c *AuditLogController) GetAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	request := &GetAuditLogsRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid query parameters")
		return
	}

	response, err := c.auditLogService.GetAuditLogs(user, request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}

// GetUserAuditLogs
// @Summary Get user audit logs
// @Description Entries written by one user. Users can always read their own.
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Param beforeDate query string false "Filter logs created before this date (RFC3339 format)" format(date-time)
// @Success 200 {object} result.Result{data=GetAuditLogsResponse}
// @Failure 400 {object} result.Result
// @Failure 401 {object} result.Result
// @Failure 403 {object} result.Result
// @Router /audit-logs/users/{userId} [get]
func (c *AuditLogController) GetUserAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid user ID")
		return
	}

	request := &GetAuditLogsRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid query parameters")
		return
	}

	response, err := c.auditLogService.GetUserAuditLogs(targetUserID, user, request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}

// ClearAuditLogs
// @Summary Clear all audit logs (admin only)
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result{data=ClearAuditLogsResponse}
// @Failure 401 {object} result.Result
// @Failure 403 {object} result.Result
// @Router /audit-logs [delete]
func (c *AuditLogController) ClearAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		result.Fail(ctx, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := c.auditLogService.ClearAuditLogs(user)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}
