package audit_logs

import (
	"encoding/json"
	"fmt"
	"time"

	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
	users_models "jobtracker/internal/features/users/models"
	"jobtracker/internal/util/app_errors"
	"jobtracker/internal/util/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	defaultAuditLogsLimit = 50
	maxAuditLogsLimit     = 1000
)

var (
	ErrCannotReadAuditLogs     = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to view audit logs")
	ErrCannotReadUserAuditLogs = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to view user audit logs")
	ErrCannotClearAuditLogs    = app_errors.New(app_errors.ErrPermissionDenied, "only the administrator can clear audit logs")
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
}

// WriteAuditLog never fails the caller: write errors are only logged.
func (s *AuditLogService) WriteAuditLog(entry audit_logs_entries.Entry) {
	auditLog := &AuditLog{
		UserID:     entry.UserID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		OldValue:   toSnapshot(entry.OldValue),
		NewValue:   toSnapshot(entry.NewValue),
		Message:    entry.Message,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.auditLogRepository.Create(auditLog); err != nil {
		logger.GetLogger().Error("failed to create audit log", "action", entry.Action, "error", err)
	}
}

// GetAuditLogs is available to the admin and to users holding the audit permission.
func (s *AuditLogService) GetAuditLogs(
	user *users_models.User,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	if !user.CanReadAuditLogs() {
		return nil, ErrCannotReadAuditLogs
	}

	limit, offset := normalizePage(request)

	auditLogs, err := s.auditLogRepository.GetGlobal(limit, offset, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	total, err := s.auditLogRepository.CountGlobal(request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit logs: %w", err)
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

func (s *AuditLogService) GetUserAuditLogs(
	targetUserID uuid.UUID,
	user *users_models.User,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	// everybody sees their own trail
	if user.ID != targetUserID && !user.CanReadAuditLogs() {
		return nil, ErrCannotReadUserAuditLogs
	}

	limit, offset := normalizePage(request)

	auditLogs, err := s.auditLogRepository.GetByUser(targetUserID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	total, err := s.auditLogRepository.CountByUser(targetUserID, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit logs: %w", err)
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// ClearAuditLogs removes every entry and records the clear itself as the
// first entry of the new trail.
func (s *AuditLogService) ClearAuditLogs(user *users_models.User) (*ClearAuditLogsResponse, error) {
	if !user.IsAdmin() {
		return nil, ErrCannotClearAuditLogs
	}

	deleted, err := s.auditLogRepository.DeleteAll()
	if err != nil {
		return nil, fmt.Errorf("failed to clear audit logs: %w", err)
	}

	s.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &user.ID,
		Action:     audit_logs_entries.ActionClearAuditLogs,
		EntityType: audit_logs_entries.EntityAuditLog,
		OldValue:   map[string]int64{"entries": deleted},
		Message:    fmt.Sprintf("Audit logs cleared: %d entries", deleted),
	})

	return &ClearAuditLogsResponse{Deleted: deleted}, nil
}

func normalizePage(request *GetAuditLogsRequest) (int, int) {
	limit := request.Limit
	if limit <= 0 {
		limit = defaultAuditLogsLimit
	}
	if limit > maxAuditLogsLimit {
		limit = maxAuditLogsLimit
	}

	return limit, max(request.Offset, 0)
}

func toSnapshot(value any) datatypes.JSON {
	if value == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.GetLogger().Warn("failed to marshal audit snapshot", "error", err)
		return nil
	}

	return datatypes.JSON(data)
}
