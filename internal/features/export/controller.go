package export

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"jobtracker/internal/config"
	"jobtracker/internal/features/actors"
	jobs_dto "jobtracker/internal/features/jobs/dto"
	"jobtracker/internal/util/logger"
	"jobtracker/internal/util/rate_limit"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	exportService *ExportService
	actorService  *actors.ActorService

	limiterOnce sync.Once
	limiter     *rate_limit.RateLimiter
}

func (c *ExportController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/jobs/export", c.ExportJobs)
}

// SetExportLimiter replaces the per-user limiter built from configuration.
func (c *ExportController) SetExportLimiter(limiter *rate_limit.RateLimiter) {
	c.limiterOnce.Do(func() {})
	c.limiter = limiter
}

// ExportJobs
// @Summary Export jobs to Excel
// @Description Spreadsheet of the jobs ListJobs returns for the same filters, with daily and period totals
// @Tags jobs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param startDate query string false "First day (YYYY-MM-DD)"
// @Param endDate query string false "Last day (YYYY-MM-DD)"
// @Param status query string false "pending, completed, archived or all"
// @Param groupId query string false "Group ID or all"
// @Param workerId query string false "Worker ID or all"
// @Param search query string false "Substring of description or location"
// @Success 200 {file} file
// @Failure 400 {object} result.Result
// @Failure 404 {object} result.Result
// @Failure 429 {object} result.Result
// @Router /jobs/export [get]
func (c *ExportController) ExportJobs(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	var query jobs_dto.JobQueryDTO
	if err := ctx.ShouldBindQuery(&query); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid query parameters")
		return
	}

	startDate, endDate, filter, err := query.Parse(time.Now().UTC())
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	if actor.IsAuthenticated() {
		limit, err := c.getLimiter().CheckRateLimit(actor.UserID.String())
		if err != nil {
			logger.GetLogger().Warn("export rate limit check failed", "error", err)
		} else if !limit.Allowed {
			ctx.Header("Retry-After", fmt.Sprintf("%d", limit.RetryAfterSec))
			result.Fail(ctx, http.StatusTooManyRequests, "too many exports, please try again later")
			return
		}
	}

	file, err := c.exportService.ExportJobs(actor, startDate, endDate, filter)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	logger.GetLogger().Info("jobs exported", "jobs", file.JobCount, "file", file.FileName)

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	ctx.Data(http.StatusOK, xlsxContentType, file.Content)
}

func (c *ExportController) getLimiter() *rate_limit.RateLimiter {
	c.limiterOnce.Do(func() {
		perMinute := config.GetEnv().ExportRatePerMinute
		c.limiter = rate_limit.NewRateLimiter("export", perMinute, perMinute)
	})

	return c.limiter
}
