package result

import (
	"errors"
	"net/http"

	"jobtracker/internal/util/app_errors"
	"jobtracker/internal/util/logger"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal error"

// Result is the single response envelope of the API.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, Result{Success: true, Data: data})
}

func OKWithMessage(ctx *gin.Context, data any, message string) {
	ctx.JSON(http.StatusOK, Result{Success: true, Data: data, Message: message})
}

func Fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, Result{Success: false, Error: message})
}

func FailAndAbort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, Result{Success: false, Error: message})
}

// FailFromError picks the HTTP status from the error class. Unclassified
// errors are logged and hidden behind a generic message.
func FailFromError(ctx *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.GetLogger().Error("request failed", "path", ctx.FullPath(), "error", err)
		Fail(ctx, status, internalErrorMessage)
		return
	}

	Fail(ctx, status, err.Error())
}

func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, app_errors.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, app_errors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, app_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, app_errors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, app_errors.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
