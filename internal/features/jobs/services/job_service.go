package jobs_services

import (
	"fmt"
	"time"

	"jobtracker/internal/features/actors"
	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
	jobs_dto "jobtracker/internal/features/jobs/dto"
	jobs_enums "jobtracker/internal/features/jobs/enums"
	jobs_interfaces "jobtracker/internal/features/jobs/interfaces"
	jobs_models "jobtracker/internal/features/jobs/models"
	jobs_policy "jobtracker/internal/features/jobs/policy"
	jobs_repositories "jobtracker/internal/features/jobs/repositories"
	"jobtracker/internal/storage"
	"jobtracker/internal/util/dates"

	"github.com/google/uuid"
)

type JobService struct {
	jobRepository  *jobs_repositories.JobRepository
	auditLogWriter jobs_interfaces.AuditLogWriter
}

func (s *JobService) SetAuditLogWriter(writer jobs_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

// ListJobs returns the jobs visible to the actor in the inclusive range.
// Anonymous actors get an empty list.
func (s *JobService) ListJobs(
	actor *actors.ActorContext,
	startDate time.Time,
	endDate time.Time,
	filter jobs_dto.JobFilter,
) ([]jobs_dto.JobDTO, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	plan := jobs_policy.BuildListPlan(actor, startDate, endDate, filter)

	jobs, err := s.jobRepository.FindJobs(plan, storage.GetCapabilities().JobEnrichment)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs: %w", err)
	}

	return jobs, nil
}

func (s *JobService) GetJobStats(
	actor *actors.ActorContext,
	startDate time.Time,
	endDate time.Time,
	filter jobs_dto.JobFilter,
) (*jobs_dto.JobStatsDTO, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	plan := jobs_policy.BuildListPlan(actor, startDate, endDate, filter)

	stats, err := s.jobRepository.GetStats(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to get job stats: %w", err)
	}

	return stats, nil
}

func (s *JobService) BuildShareText(
	actor *actors.ActorContext,
	startDate time.Time,
	endDate time.Time,
	filter jobs_dto.JobFilter,
	title string,
) (string, error) {
	jobs, err := s.ListJobs(actor, startDate, endDate, filter)
	if err != nil {
		return "", err
	}

	return FormatShareText(title, jobs), nil
}

// GetJob hides jobs the actor cannot see behind NotFound.
func (s *JobService) GetJob(actor *actors.ActorContext, jobID uuid.UUID) (*jobs_dto.JobDTO, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrJobNotFound
	}

	job, err := s.jobRepository.FindJobDTO(jobID, storage.GetCapabilities().JobEnrichment)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrJobNotFound
		}

		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if !actor.CanViewJob(job.UserID, job.GroupID) {
		return nil, ErrJobNotFound
	}

	return job, nil
}

func (s *JobService) CreateJob(
	actor *actors.ActorContext,
	request *jobs_dto.CreateJobRequestDTO,
) (*jobs_models.Job, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	date, err := ParseJobDate(request.Date)
	if err != nil {
		return nil, err
	}

	status, err := NormalizeStatus(request.Status)
	if err != nil {
		return nil, err
	}

	if err := ValidateHours(request.HoursWorked); err != nil {
		return nil, err
	}

	if err := ValidateCost(request.CostSpent); err != nil {
		return nil, err
	}

	if err := ValidateAmount(request.AmountToCharge); err != nil {
		return nil, err
	}

	location, err := NormalizeText(request.Location, ErrLocationTooLong)
	if err != nil {
		return nil, err
	}

	description, err := NormalizeText(request.Description, ErrDescriptionTooLong)
	if err != nil {
		return nil, err
	}

	if !jobs_policy.CanAttachGroup(actor, request.GroupID) {
		return nil, ErrCannotUseGroup
	}

	job := &jobs_models.Job{
		Date:            date,
		Location:        location,
		Description:     description,
		Status:          status,
		HoursWorked:     request.HoursWorked,
		CostSpent:       request.CostSpent,
		AmountToCharge:  request.AmountToCharge,
		WorkerID:        request.WorkerID,
		GroupID:         request.GroupID,
		UserID:          actor.UserID,
		EditableByGroup: request.EditableByGroup && request.GroupID != nil,
		Version:         1,
	}

	if err := s.jobRepository.CreateJob(job); err != nil {
		if storage.IsForeignKeyViolation(err) {
			return nil, ErrUnknownGroupOrWorker
		}

		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return job, nil
}

// UpdateJob applies a patch. The creator, the admin and, for group-editable
// jobs, members of the job's group may edit; only the creator and the admin
// may move the job to another group or change group editing.
func (s *JobService) UpdateJob(
	actor *actors.ActorContext,
	jobID uuid.UUID,
	request *jobs_dto.UpdateJobRequestDTO,
) (*jobs_models.Job, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	job, err := s.getJob(jobID)
	if err != nil {
		return nil, err
	}

	access := accessOf(job)
	if !jobs_policy.CanUpdateJob(actor, access) {
		return nil, ErrCannotUpdateJob
	}

	updates, err := s.buildUpdates(actor, job, access, request)
	if err != nil {
		return nil, err
	}

	affected, err := s.jobRepository.UpdateJob(jobID, updates, request.Version)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return nil, ErrUnknownGroupOrWorker
		}

		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	if affected == 0 {
		if _, err := s.getJob(jobID); err != nil {
			return nil, err
		}

		return nil, ErrVersionConflict
	}

	return s.getJob(jobID)
}

// DeleteJob is limited to the creator and the admin; group editing never
// grants deletion.
func (s *JobService) DeleteJob(actor *actors.ActorContext, jobID uuid.UUID) error {
	if !actor.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	job, err := s.getJob(jobID)
	if err != nil {
		return err
	}

	if !jobs_policy.CanDeleteJob(actor, accessOf(job)) {
		return ErrCannotDeleteJob
	}

	affected, err := s.jobRepository.DeleteJob(jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	if affected == 0 {
		return ErrJobNotFound
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     audit_logs_entries.ActionDeleteJob,
		EntityType: audit_logs_entries.EntityJob,
		EntityID:   &job.ID,
		OldValue:   job,
		Message:    fmt.Sprintf("Job deleted: %s %s", dates.FormatISO(job.Date), job.Description),
	})

	return nil
}

func (s *JobService) DeleteCompletedJobs(
	actor *actors.ActorContext,
	startDate time.Time,
	endDate time.Time,
) (*jobs_dto.BulkDeleteResponseDTO, error) {
	return s.deleteByStatus(actor, jobs_enums.JobStatusCompleted, startDate, endDate)
}

func (s *JobService) DeletePendingJobs(
	actor *actors.ActorContext,
	startDate time.Time,
	endDate time.Time,
) (*jobs_dto.BulkDeleteResponseDTO, error) {
	return s.deleteByStatus(actor, jobs_enums.JobStatusPending, startDate, endDate)
}

// deleteByStatus is scoped only by status and range: no per-record ownership
// check, so it is reserved to the admin.
func (s *JobService) deleteByStatus(
	actor *actors.ActorContext,
	status jobs_enums.JobStatus,
	startDate time.Time,
	endDate time.Time,
) (*jobs_dto.BulkDeleteResponseDTO, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	if !actor.IsAdmin {
		return nil, ErrCannotBulkDelete
	}

	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	removed, err := s.jobRepository.DeleteByStatusInRange(status, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s jobs: %w", status, err)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     audit_logs_entries.ActionBulkDeleteJobs,
		EntityType: audit_logs_entries.EntityJob,
		NewValue: map[string]any{
			"status":    status,
			"startDate": dates.FormatISO(startDate),
			"endDate":   dates.FormatISO(endDate),
			"removed":   removed,
		},
		Message: fmt.Sprintf(
			"Deleted %d %s jobs between %s and %s",
			removed,
			status,
			dates.FormatISO(startDate),
			dates.FormatISO(endDate),
		),
	})

	return &jobs_dto.BulkDeleteResponseDTO{Removed: removed}, nil
}

func (s *JobService) buildUpdates(
	actor *actors.ActorContext,
	job *jobs_models.Job,
	access jobs_policy.JobAccess,
	request *jobs_dto.UpdateJobRequestDTO,
) (map[string]any, error) {
	updates := map[string]any{}

	if request.Date != nil {
		date, err := ParseJobDate(*request.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = dates.FormatISO(date)
	}

	if request.Location != nil {
		location, err := NormalizeText(*request.Location, ErrLocationTooLong)
		if err != nil {
			return nil, err
		}
		updates["location"] = location
	}

	if request.Description != nil {
		description, err := NormalizeText(*request.Description, ErrDescriptionTooLong)
		if err != nil {
			return nil, err
		}
		updates["description"] = description
	}

	if request.Status != nil {
		if !request.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *request.Status
	}

	if request.HoursWorked != nil {
		if err := ValidateHours(*request.HoursWorked); err != nil {
			return nil, err
		}
		updates["hours_worked"] = *request.HoursWorked
	}

	if request.CostSpent != nil {
		if err := ValidateCost(*request.CostSpent); err != nil {
			return nil, err
		}
		updates["cost_spent"] = *request.CostSpent
	}

	if request.AmountToCharge != nil {
		if err := ValidateAmount(*request.AmountToCharge); err != nil {
			return nil, err
		}
		updates["amount_to_charge"] = *request.AmountToCharge
	}

	if request.ClearWorker {
		updates["worker_id"] = nil
	} else if request.WorkerID != nil {
		updates["worker_id"] = *request.WorkerID
	}

	groupID := job.GroupID
	isSharingChanged := false

	if request.ClearGroup {
		groupID = nil
		isSharingChanged = job.GroupID != nil
	} else if request.GroupID != nil && !sameID(job.GroupID, request.GroupID) {
		groupID = request.GroupID
		isSharingChanged = true
	}

	editableByGroup := job.EditableByGroup
	if request.EditableByGroup != nil && *request.EditableByGroup != job.EditableByGroup {
		editableByGroup = *request.EditableByGroup
		isSharingChanged = true
	}

	if isSharingChanged {
		if !jobs_policy.CanChangeSharing(actor, access) {
			return nil, ErrCannotChangeSharing
		}

		if !jobs_policy.CanAttachGroup(actor, groupID) {
			return nil, ErrCannotUseGroup
		}

		updates["group_id"] = groupID
		updates["editable_by_group"] = editableByGroup && groupID != nil
	}

	return updates, nil
}

func (s *JobService) getJob(jobID uuid.UUID) (*jobs_models.Job, error) {
	job, err := s.jobRepository.GetJobByID(jobID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrJobNotFound
		}

		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return job, nil
}

func accessOf(job *jobs_models.Job) jobs_policy.JobAccess {
	return jobs_policy.JobAccess{
		UserID:          job.UserID,
		GroupID:         job.GroupID,
		EditableByGroup: job.EditableByGroup,
	}
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
