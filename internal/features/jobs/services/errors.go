package jobs_services

import "jobtracker/internal/util/app_errors"

var (
	ErrNotAuthenticated     = app_errors.New(app_errors.ErrNotAuthenticated, "not authenticated")
	ErrJobNotFound          = app_errors.New(app_errors.ErrNotFound, "job not found")
	ErrCannotUpdateJob      = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to update job")
	ErrCannotDeleteJob      = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to delete job")
	ErrCannotChangeSharing  = app_errors.New(app_errors.ErrPermissionDenied, "only the creator can move the job or change group editing")
	ErrCannotUseGroup       = app_errors.New(app_errors.ErrPermissionDenied, "you are not a member of this group")
	ErrCannotBulkDelete     = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to bulk delete jobs")
	ErrVersionConflict      = app_errors.New(app_errors.ErrConflict, "job was modified by someone else, reload and try again")
	ErrInvalidDateRange     = app_errors.New(app_errors.ErrValidation, "start date must not be after end date")
	ErrUnknownGroupOrWorker = app_errors.New(app_errors.ErrValidation, "group or worker does not exist")
)
