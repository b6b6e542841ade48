package users_repositories

import (
	"errors"

	users_models "jobtracker/internal/features/users/models"
	"jobtracker/internal/storage"
)

type SecretKeyRepository struct{}

func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	var secretKey users_models.SecretKey

	if err := storage.GetDb().First(&secretKey).Error; err != nil {
		return "", err
	}

	if secretKey.Secret == "" {
		return "", errors.New("secret key is empty")
	}

	return secretKey.Secret, nil
}
