package jobs_controllers

import (
	"net/http"
	"time"

	"jobtracker/internal/features/actors"
	jobs_dto "jobtracker/internal/features/jobs/dto"
	jobs_services "jobtracker/internal/features/jobs/services"
	users_enums "jobtracker/internal/features/users/enums"
	users_middleware "jobtracker/internal/features/users/middleware"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobController struct {
	jobService   *jobs_services.JobService
	actorService *actors.ActorService
}

func (c *JobController) RegisterRoutes(router *gin.RouterGroup) {
	adminOnly := users_middleware.RequireRole(users_enums.UserRoleAdmin)

	router.GET("/jobs", c.ListJobs)
	router.POST("/jobs", c.CreateJob)
	router.GET("/jobs/stats", c.GetJobStats)
	router.GET("/jobs/share-text", c.GetShareText)
	router.DELETE("/jobs/completed", adminOnly, c.DeleteCompletedJobs)
	router.DELETE("/jobs/pending", adminOnly, c.DeletePendingJobs)
	router.GET("/jobs/:id", c.GetJob)
	router.PUT("/jobs/:id", c.UpdateJob)
	router.DELETE("/jobs/:id", c.DeleteJob)
}

// ListJobs
// @Summary List jobs
// @Description Jobs visible to the caller in an inclusive date range, newest first. Without dates the current month is used.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "First day (YYYY-MM-DD)"
// @Param endDate query string false "Last day (YYYY-MM-DD)"
// @Param status query string false "pending, completed, archived or all"
// @Param groupId query string false "Group ID or all"
// @Param workerId query string false "Worker ID or all"
// @Param search query string false "Substring of description or location"
// @Success 200 {object} result.Result{data=jobs_dto.ListJobsResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 401 {object} result.Result
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	actor, startDate, endDate, filter, ok := c.resolveQuery(ctx)
	if !ok {
		return
	}

	jobs, err := c.jobService.ListJobs(actor, startDate, endDate, filter)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, jobs_dto.ListJobsResponseDTO{Jobs: jobs})
}

// GetJobStats
// @Summary Job totals
// @Description Hours, cost, charge and count over the same jobs ListJobs returns
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "First day (YYYY-MM-DD)"
// @Param endDate query string false "Last day (YYYY-MM-DD)"
// @Param status query string false "pending, completed, archived or all"
// @Param groupId query string false "Group ID or all"
// @Param workerId query string false "Worker ID or all"
// @Param search query string false "Substring of description or location"
// @Success 200 {object} result.Result{data=jobs_dto.JobStatsDTO}
// @Failure 400 {object} result.Result
// @Router /jobs/stats [get]
func (c *JobController) GetJobStats(ctx *gin.Context) {
	actor, startDate, endDate, filter, ok := c.resolveQuery(ctx)
	if !ok {
		return
	}

	stats, err := c.jobService.GetJobStats(actor, startDate, endDate, filter)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, stats)
}

// GetShareText
// @Summary Plain-text job summary
// @Description Summary of the listed jobs for messaging apps
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "First day (YYYY-MM-DD)"
// @Param endDate query string false "Last day (YYYY-MM-DD)"
// @Param title query string false "Header line" default(Trabajos)
// @Success 200 {object} result.Result{data=jobs_dto.ShareTextResponseDTO}
// @Failure 400 {object} result.Result
// @Router /jobs/share-text [get]
func (c *JobController) GetShareText(ctx *gin.Context) {
	actor, startDate, endDate, filter, ok := c.resolveQuery(ctx)
	if !ok {
		return
	}

	text, err := c.jobService.BuildShareText(actor, startDate, endDate, filter, ctx.Query("title"))
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, jobs_dto.ShareTextResponseDTO{Text: text})
}

// GetJob
// @Summary Get job by ID
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} result.Result{data=jobs_dto.JobDTO}
// @Failure 400 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	actor, jobID, ok := c.resolveJobID(ctx)
	if !ok {
		return
	}

	job, err := c.jobService.GetJob(actor, jobID)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, job)
}

// CreateJob
// @Summary Create a job
// @Description The caller becomes the creator. A group can only be attached by its members or the admin.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body jobs_dto.CreateJobRequestDTO true "Job data"
// @Success 200 {object} result.Result{data=jobs_models.Job}
// @Failure 400 {object} result.Result
// @Failure 401 {object} result.Result
// @Failure 403 {object} result.Result
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	var request jobs_dto.CreateJobRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	job, err := c.jobService.CreateJob(actor, &request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, job, "job created successfully")
}

// UpdateJob
// @Summary Update a job
// @Description Partial update. Send the last seen version to detect concurrent edits.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body jobs_dto.UpdateJobRequestDTO true "Fields to change"
// @Success 200 {object} result.Result{data=jobs_models.Job}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Failure 409 {object} result.Result
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	actor, jobID, ok := c.resolveJobID(ctx)
	if !ok {
		return
	}

	var request jobs_dto.UpdateJobRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	job, err := c.jobService.UpdateJob(actor, jobID, &request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, job, "job updated successfully")
}

// DeleteJob
// @Summary Delete a job
// @Description Only the creator or the admin
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} result.Result
// @Failure 403 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	actor, jobID, ok := c.resolveJobID(ctx)
	if !ok {
		return
	}

	if err := c.jobService.DeleteJob(actor, jobID); err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OKWithMessage(ctx, nil, "job deleted successfully")
}

// DeleteCompletedJobs
// @Summary Delete completed jobs in a range
// @Description Removes every completed job in the inclusive range (admin only)
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} result.Result{data=jobs_dto.BulkDeleteResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Router /jobs/completed [delete]
func (c *JobController) DeleteCompletedJobs(ctx *gin.Context) {
	c.bulkDelete(ctx, c.jobService.DeleteCompletedJobs)
}

// DeletePendingJobs
// @Summary Delete pending jobs in a range
// @Description Removes every pending job in the inclusive range (admin only)
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} result.Result{data=jobs_dto.BulkDeleteResponseDTO}
// @Failure 400 {object} result.Result
// @Failure 403 {object} result.Result
// @Router /jobs/pending [delete]
func (c *JobController) DeletePendingJobs(ctx *gin.Context) {
	c.bulkDelete(ctx, c.jobService.DeletePendingJobs)
}

func (c *JobController) bulkDelete(
	ctx *gin.Context,
	deleteFn func(*actors.ActorContext, time.Time, time.Time) (*jobs_dto.BulkDeleteResponseDTO, error),
) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	if ctx.Query("startDate") == "" || ctx.Query("endDate") == "" {
		result.Fail(ctx, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	query := jobs_dto.JobQueryDTO{StartDate: ctx.Query("startDate"), EndDate: ctx.Query("endDate")}
	startDate, endDate, _, err := query.Parse(time.Now().UTC())
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	response, err := deleteFn(actor, startDate, endDate)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}

func (c *JobController) resolveQuery(
	ctx *gin.Context,
) (*actors.ActorContext, time.Time, time.Time, jobs_dto.JobFilter, bool) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return nil, time.Time{}, time.Time{}, jobs_dto.JobFilter{}, false
	}

	var query jobs_dto.JobQueryDTO
	if err := ctx.ShouldBindQuery(&query); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid query parameters")
		return nil, time.Time{}, time.Time{}, jobs_dto.JobFilter{}, false
	}

	startDate, endDate, filter, err := query.Parse(time.Now().UTC())
	if err != nil {
		result.FailFromError(ctx, err)
		return nil, time.Time{}, time.Time{}, jobs_dto.JobFilter{}, false
	}

	return actor, startDate, endDate, filter, true
}

func (c *JobController) resolveJobID(ctx *gin.Context) (*actors.ActorContext, uuid.UUID, bool) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return nil, uuid.Nil, false
	}

	jobID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid job ID")
		return nil, uuid.Nil, false
	}

	return actor, jobID, true
}
