package users_repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	users_enums "jobtracker/internal/features/users/enums"
	users_models "jobtracker/internal/features/users/models"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAdminChanged       = errors.New("current user is no longer the admin")
	ErrTransferTargetGone = errors.New("target user does not exist or is deleted")
)

type UserRepository struct{}

// NotDeleted filters soft-deleted profiles when the schema supports it.
// column is the qualified deleted_at column, e.g. "u.deleted_at".
func NotDeleted(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !storage.GetCapabilities().UserSoftDelete {
			return db
		}

		return db.Where(column + " IS NULL")
	}
}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	err := storage.GetDb().
		Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		First(&user).Error
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// FindActiveUserByID returns nil when the user is unknown or soft-deleted.
func (r *UserRepository) FindActiveUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	err := storage.GetDb().
		Scopes(NotDeleted("deleted_at")).
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetAdmin() (*users_models.User, error) {
	var admin users_models.User

	err := storage.GetDb().Where("role = ?", users_enums.UserRoleAdmin).First(&admin).Error
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &admin, nil
}

// FindActiveUsersByIdentifier matches an exact email when the identifier
// contains "@", otherwise a case-insensitive substring of the full name.
// At most limit rows are returned.
func (r *UserRepository) FindActiveUsersByIdentifier(identifier string, limit int) ([]*users_models.User, error) {
	users := make([]*users_models.User, 0)
	identifier = strings.TrimSpace(identifier)

	query := storage.GetDb().Scopes(NotDeleted("deleted_at"))

	if strings.Contains(identifier, "@") {
		query = query.Where("LOWER(email) = LOWER(?)", identifier)
	} else {
		query = query.Where("full_name ILIKE ?", "%"+storage.EscapeLike(identifier)+"%")
	}

	if err := query.Order("created_at ASC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) UpdateUserPassword(userID uuid.UUID, hashedPassword string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"hashed_password":        hashedPassword,
			"password_creation_time": time.Now().UTC(),
		}).Error
}

func (r *UserRepository) UpdateFullName(userID uuid.UUID, fullName string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("full_name", fullName).Error
}

func (r *UserRepository) UpdatePermissions(userID uuid.UUID, permissions []users_enums.Permission) error {
	user := users_models.User{Permissions: permissions}

	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Select("permissions").
		Updates(&user).Error
}

func (r *UserRepository) CreateInitialAdmin() error {
	existingAdmin, err := r.GetAdmin()
	if err != nil {
		return fmt.Errorf("failed to get admin user: %w", err)
	}

	if existingAdmin != nil {
		return nil
	}

	adminByEmail, err := r.GetUserByEmail("admin")
	if err != nil {
		return fmt.Errorf("failed to get admin user: %w", err)
	}

	if adminByEmail != nil {
		return nil
	}

	admin := &users_models.User{
		ID:                   uuid.New(),
		Email:                "admin",
		FullName:             "Administrator",
		Role:                 users_enums.UserRoleAdmin,
		Permissions:          users_enums.AllPermissions(),
		HashedPassword:       nil,
		PasswordCreationTime: time.Now().UTC(),
		CreatedAt:            time.Now().UTC(),
	}

	return storage.GetDb().Create(admin).Error
}

func (r *UserRepository) GetUsers(limit, offset int, beforeCreatedAt *time.Time) ([]*users_models.User, int64, error) {
	users := make([]*users_models.User, 0)
	var total int64

	countQuery := storage.GetDb().Model(&users_models.User{})
	if beforeCreatedAt != nil {
		countQuery = countQuery.Where("created_at < ?", *beforeCreatedAt)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := storage.GetDb().
		Limit(limit).
		Offset(offset).
		Order("created_at DESC")

	if beforeCreatedAt != nil {
		query = query.Where("created_at < ?", *beforeCreatedAt)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// TransferAdminRole demotes the current admin before promoting the target in
// one transaction, so the single-admin index never sees two admins.
func (r *UserRepository) TransferAdminRole(currentAdminID uuid.UUID, newAdminID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		demoted := tx.Model(&users_models.User{}).
			Where("id = ? AND role = ?", currentAdminID, users_enums.UserRoleAdmin).
			Update("role", users_enums.UserRoleUser)
		if demoted.Error != nil {
			return demoted.Error
		}
		if demoted.RowsAffected == 0 {
			return ErrAdminChanged
		}

		promoted := tx.Model(&users_models.User{}).
			Scopes(NotDeleted("deleted_at")).
			Where("id = ?", newAdminID).
			Update("role", users_enums.UserRoleAdmin)
		if promoted.Error != nil {
			return promoted.Error
		}
		if promoted.RowsAffected == 0 {
			return ErrTransferTargetGone
		}

		return nil
	})
}

func (r *UserRepository) SoftDeleteUser(userID uuid.UUID) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("deleted_at", time.Now().UTC()).Error
}

// DeleteUser removes the profile row. Jobs keep a null creator; groups the
// user created block the delete with a foreign key violation.
func (r *UserRepository) DeleteUser(userID uuid.UUID) (int64, error) {
	result := storage.GetDb().Where("id = ?", userID).Delete(&users_models.User{})
	return result.RowsAffected, result.Error
}

func (r *UserRepository) RenameUserEmailForTests(oldEmail, newEmail string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("email = ?", oldEmail).
		Update("email", newEmail).Error
}
