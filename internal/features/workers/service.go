package workers

import (
	"fmt"
	"strings"

	"jobtracker/internal/features/actors"
	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
	"jobtracker/internal/storage"
	"jobtracker/internal/util/app_errors"

	"github.com/google/uuid"
)

const maxDisplayNameLength = 200

var (
	ErrNotAuthenticated    = app_errors.New(app_errors.ErrNotAuthenticated, "not authenticated")
	ErrWorkerNotFound      = app_errors.New(app_errors.ErrNotFound, "worker not found")
	ErrDisplayNameRequired = app_errors.New(app_errors.ErrValidation, "worker display name is required")
	ErrDisplayNameTooLong  = app_errors.New(app_errors.ErrValidation, "worker display name must be at most 200 characters")
)

type WorkerService struct {
	workerRepository *WorkerRepository
	auditLogWriter   AuditLogWriter
}

func (s *WorkerService) SetAuditLogWriter(writer AuditLogWriter) {
	s.auditLogWriter = writer
}

// GetWorkers hides inactive workers unless asked. Anonymous actors get nothing.
func (s *WorkerService) GetWorkers(actor *actors.ActorContext, request *GetWorkersRequest) (*GetWorkersResponse, error) {
	if !actor.IsAuthenticated() {
		return &GetWorkersResponse{Workers: []Worker{}}, nil
	}

	workers, err := s.workerRepository.Find(strings.TrimSpace(request.Search), request.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to get workers: %w", err)
	}

	return &GetWorkersResponse{Workers: workers}, nil
}

func (s *WorkerService) CreateWorker(actor *actors.ActorContext, request *CreateWorkerRequest) (*Worker, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	displayName, err := normalizeDisplayName(request.DisplayName)
	if err != nil {
		return nil, err
	}

	worker := &Worker{
		DisplayName: displayName,
		Alias:       strings.TrimSpace(request.Alias),
		Phone:       strings.TrimSpace(request.Phone),
		Notes:       strings.TrimSpace(request.Notes),
		IsActive:    true,
	}

	if err := s.workerRepository.Create(worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return worker, nil
}

func (s *WorkerService) UpdateWorker(
	actor *actors.ActorContext,
	workerID uuid.UUID,
	request *UpdateWorkerRequest,
) (*Worker, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	worker, err := s.getWorker(workerID)
	if err != nil {
		return nil, err
	}

	displayName, err := normalizeDisplayName(request.DisplayName)
	if err != nil {
		return nil, err
	}

	worker.DisplayName = displayName
	worker.Alias = strings.TrimSpace(request.Alias)
	worker.Phone = strings.TrimSpace(request.Phone)
	worker.Notes = strings.TrimSpace(request.Notes)
	if request.IsActive != nil {
		worker.IsActive = *request.IsActive
	}

	if err := s.workerRepository.Update(worker); err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	return worker, nil
}

// DeleteWorker removes the worker, or deactivates it when jobs still point at it.
func (s *WorkerService) DeleteWorker(actor *actors.ActorContext, workerID uuid.UUID) (*DeleteWorkerResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	worker, err := s.getWorker(workerID)
	if err != nil {
		return nil, err
	}

	response := &DeleteWorkerResponse{}

	affected, err := s.workerRepository.Delete(workerID)
	switch {
	case storage.IsForeignKeyViolation(err):
		if err := s.workerRepository.Deactivate(workerID); err != nil {
			return nil, fmt.Errorf("failed to deactivate worker: %w", err)
		}
		response.SoftDeleted = true
	case err != nil:
		return nil, fmt.Errorf("failed to delete worker: %w", err)
	case affected == 0:
		return nil, ErrWorkerNotFound
	}

	message := "Worker deleted: " + worker.DisplayName
	if response.SoftDeleted {
		message = "Worker deactivated, still referenced by jobs: " + worker.DisplayName
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     audit_logs_entries.ActionDeleteWorker,
		EntityType: audit_logs_entries.EntityWorker,
		EntityID:   &worker.ID,
		OldValue:   worker,
		NewValue:   response,
		Message:    message,
	})

	return response, nil
}

func (s *WorkerService) getWorker(workerID uuid.UUID) (*Worker, error) {
	worker, err := s.workerRepository.GetByID(workerID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrWorkerNotFound
		}

		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	return worker, nil
}

func normalizeDisplayName(displayName string) (string, error) {
	displayName = strings.Join(strings.Fields(displayName), " ")

	if displayName == "" {
		return "", ErrDisplayNameRequired
	}

	if len([]rune(displayName)) > maxDisplayNameLength {
		return "", ErrDisplayNameTooLong
	}

	return displayName, nil
}
