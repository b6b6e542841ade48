package workers

import (
	"net/http"

	"jobtracker/internal/features/actors"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkerController struct {
	workerService *WorkerService
	actorService  *actors.ActorService
}

func (c *WorkerController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/workers", c.GetWorkers)
	router.POST("/workers", c.CreateWorker)
	router.PUT("/workers/:id", c.UpdateWorker)
	router.DELETE("/workers/:id", c.DeleteWorker)
}

// GetWorkers
// @Summary List workers
// @Description Newest first, inactive workers hidden unless includeInactive is set
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring of display name, alias or phone"
// @Param includeInactive query bool false "Include deactivated workers"
// @Success 200 {object} result.Result{data=workers.GetWorkersResponse}
// @Failure 400 {object} result.Result
// @Router /workers [get]
func (c *WorkerController) GetWorkers(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	request := &GetWorkersRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid query parameters")
		return
	}

	response, err := c.workerService.GetWorkers(actor, request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}

// CreateWorker
// @Summary Create a worker
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body workers.CreateWorkerRequest true "Worker data"
// @Success 200 {object} result.Result{data=workers.Worker}
// @Failure 400 {object} result.Result
// @Failure 401 {object} result.Result
// @Router /workers [post]
func (c *WorkerController) CreateWorker(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	var request CreateWorkerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	worker, err := c.workerService.CreateWorker(actor, &request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, worker)
}

// UpdateWorker
// @Summary Update a worker
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker ID"
// @Param request body workers.UpdateWorkerRequest true "Worker data"
// @Success 200 {object} result.Result{data=workers.Worker}
// @Failure 400 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /workers/{id} [put]
func (c *WorkerController) UpdateWorker(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	workerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid worker ID")
		return
	}

	var request UpdateWorkerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	worker, err := c.workerService.UpdateWorker(actor, workerID, &request)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, worker)
}

// DeleteWorker
// @Summary Delete a worker
// @Description Workers still referenced by jobs are deactivated instead (softDeleted=true)
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker ID"
// @Success 200 {object} result.Result{data=workers.DeleteWorkerResponse}
// @Failure 400 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /workers/{id} [delete]
func (c *WorkerController) DeleteWorker(ctx *gin.Context) {
	actor, err := c.actorService.ResolveFromContext(ctx)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	workerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		result.Fail(ctx, http.StatusBadRequest, "invalid worker ID")
		return
	}

	response, err := c.workerService.DeleteWorker(actor, workerID)
	if err != nil {
		result.FailFromError(ctx, err)
		return
	}

	result.OK(ctx, response)
}
