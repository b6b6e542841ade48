package users_repositories

import (
	users_models "jobtracker/internal/features/users/models"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
)

type UsersSettingsRepository struct{}

func (r *UsersSettingsRepository) GetSettings() (*users_models.UsersSettings, error) {
	var settings users_models.UsersSettings

	if err := storage.GetDb().First(&settings).Error; err != nil {
		if !storage.IsNotFound(err) {
			return nil, err
		}

		defaultSettings := &users_models.UsersSettings{
			ID:                            uuid.New(),
			IsAllowExternalRegistrations:  true,
			IsMemberAllowedToCreateGroups: true,
		}

		if createErr := storage.GetDb().Create(defaultSettings).Error; createErr != nil {
			return nil, createErr
		}

		return defaultSettings, nil
	}

	return &settings, nil
}

func (r *UsersSettingsRepository) UpdateSettings(settings *users_models.UsersSettings) error {
	existingSettings, err := r.GetSettings()
	if err != nil {
		return err
	}

	settings.ID = existingSettings.ID

	return storage.GetDb().Save(settings).Error
}
