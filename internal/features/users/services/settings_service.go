package users_services

import (
	"fmt"

	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
	users_interfaces "jobtracker/internal/features/users/interfaces"
	users_models "jobtracker/internal/features/users/models"
	users_repositories "jobtracker/internal/features/users/repositories"
	"jobtracker/internal/util/app_errors"
)

var ErrCannotUpdateSettings = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to update settings")

type SettingsService struct {
	userSettingsRepository *users_repositories.UsersSettingsRepository
	auditLogWriter         users_interfaces.AuditLogWriter
}

func (s *SettingsService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *SettingsService) GetSettings() (*users_models.UsersSettings, error) {
	return s.userSettingsRepository.GetSettings()
}

func (s *SettingsService) UpdateSettings(
	request users_models.UsersSettings,
	updatedBy *users_models.User,
) (*users_models.UsersSettings, error) {
	if !updatedBy.CanUpdateSettings() {
		return nil, ErrCannotUpdateSettings
	}

	existingSettings, err := s.userSettingsRepository.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get current settings: %w", err)
	}

	oldSettings := *existingSettings

	existingSettings.IsAllowExternalRegistrations = request.IsAllowExternalRegistrations
	existingSettings.IsMemberAllowedToCreateGroups = request.IsMemberAllowedToCreateGroups

	if oldSettings == *existingSettings {
		return existingSettings, nil
	}

	if err := s.userSettingsRepository.UpdateSettings(existingSettings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &updatedBy.ID,
		Action:     audit_logs_entries.ActionUpdateSettings,
		EntityType: audit_logs_entries.EntitySettings,
		EntityID:   &existingSettings.ID,
		OldValue:   oldSettings,
		NewValue:   existingSettings,
	})

	return existingSettings, nil
}
