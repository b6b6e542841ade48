package users_services

import (
	"errors"
	"fmt"
	"slices"
	"time"

	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
	users_enums "jobtracker/internal/features/users/enums"
	users_interfaces "jobtracker/internal/features/users/interfaces"
	users_models "jobtracker/internal/features/users/models"
	users_repositories "jobtracker/internal/features/users/repositories"
	"jobtracker/internal/storage"
	"jobtracker/internal/util/app_errors"

	"github.com/google/uuid"
)

var (
	ErrCannotManageUsers      = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to manage users")
	ErrCannotViewProfile      = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to view user profile")
	ErrUserNotFound           = app_errors.New(app_errors.ErrNotFound, "user not found")
	ErrCannotTransferToSelf   = app_errors.New(app_errors.ErrValidation, "cannot transfer admin role to yourself")
	ErrTransferTargetDeleted  = app_errors.New(app_errors.ErrValidation, "cannot transfer admin role to a deleted user")
	ErrAdminRoleChanged       = app_errors.New(app_errors.ErrConflict, "admin role was changed concurrently")
	ErrCannotDeleteSelf       = app_errors.New(app_errors.ErrValidation, "cannot delete your own user")
	ErrCannotDeleteAdmin      = app_errors.New(app_errors.ErrValidation, "cannot delete the admin user")
	ErrUserAlreadyDeleted     = app_errors.New(app_errors.ErrConflict, "user is already deleted")
	ErrUserOwnsGroups         = app_errors.New(app_errors.ErrValidation, "user still owns groups, transfer or delete them first")
	ErrSoftDeleteNotSupported = app_errors.New(app_errors.ErrValidation, "soft delete is not supported by the current database schema")
)

type UserManagementService struct {
	userRepository   *users_repositories.UserRepository
	auditLogWriter   users_interfaces.AuditLogWriter
	actorInvalidator users_interfaces.ActorInvalidator
}

func (s *UserManagementService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserManagementService) SetActorInvalidator(invalidator users_interfaces.ActorInvalidator) {
	s.actorInvalidator = invalidator
}

func (s *UserManagementService) GetUsers(
	currentUser *users_models.User,
	limit, offset int,
	beforeCreatedAt *time.Time,
) ([]*users_models.User, int64, error) {
	if !currentUser.CanManageUsers() {
		return nil, 0, ErrCannotManageUsers
	}

	return s.userRepository.GetUsers(limit, offset, beforeCreatedAt)
}

func (s *UserManagementService) GetUserProfile(
	userID uuid.UUID,
	requestedBy *users_models.User,
) (*users_models.User, error) {
	// users can view their own profile, the admin can view any profile
	if userID != requestedBy.ID && !requestedBy.CanManageUsers() {
		return nil, ErrCannotViewProfile
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *UserManagementService) UpdateUserPermissions(
	userID uuid.UUID,
	permissions []users_enums.Permission,
	changedBy *users_models.User,
) (*users_models.User, error) {
	if !changedBy.CanManageUsers() {
		return nil, ErrCannotManageUsers
	}

	cleanPermissions := make([]users_enums.Permission, 0, len(permissions))
	for _, permission := range permissions {
		if !permission.IsValid() {
			return nil, app_errors.New(app_errors.ErrValidation, fmt.Sprintf("invalid permission: %s", permission))
		}

		if !slices.Contains(cleanPermissions, permission) {
			cleanPermissions = append(cleanPermissions, permission)
		}
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	oldPermissions := []users_enums.Permission(user.Permissions)
	if oldPermissions == nil {
		oldPermissions = []users_enums.Permission{}
	}

	if err := s.userRepository.UpdatePermissions(userID, cleanPermissions); err != nil {
		return nil, fmt.Errorf("failed to update permissions: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &changedBy.ID,
		Action:     audit_logs_entries.ActionUpdatePermissions,
		EntityType: audit_logs_entries.EntityUser,
		EntityID:   &userID,
		OldValue:   map[string]any{"permissions": oldPermissions},
		NewValue:   map[string]any{"permissions": cleanPermissions},
		Message:    fmt.Sprintf("Permissions changed for %s", user.Email),
	})

	user.Permissions = cleanPermissions

	return user, nil
}

// TransferAdminRole hands the single admin role to another active user. The
// caller loses the role in the same transaction.
func (s *UserManagementService) TransferAdminRole(newAdminID uuid.UUID, currentAdmin *users_models.User) error {
	if !currentAdmin.CanManageUsers() {
		return ErrCannotManageUsers
	}

	if newAdminID == currentAdmin.ID {
		return ErrCannotTransferToSelf
	}

	target, err := s.userRepository.GetUserByID(newAdminID)
	if err != nil {
		if storage.IsNotFound(err) {
			return ErrUserNotFound
		}

		return fmt.Errorf("failed to get user: %w", err)
	}

	if target.IsDeleted() {
		return ErrTransferTargetDeleted
	}

	err = s.userRepository.TransferAdminRole(currentAdmin.ID, newAdminID)
	if err != nil {
		switch {
		case errors.Is(err, users_repositories.ErrAdminChanged):
			return ErrAdminRoleChanged
		case errors.Is(err, users_repositories.ErrTransferTargetGone):
			return ErrTransferTargetDeleted
		case storage.IsUniqueViolation(err):
			return ErrAdminRoleChanged
		default:
			return fmt.Errorf("failed to transfer admin role: %w", err)
		}
	}

	s.invalidateActors(currentAdmin.ID, newAdminID)

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &currentAdmin.ID,
		Action:     audit_logs_entries.ActionTransferAdmin,
		EntityType: audit_logs_entries.EntityUser,
		EntityID:   &newAdminID,
		OldValue:   map[string]string{"old_admin": currentAdmin.ID.String()},
		NewValue:   map[string]string{"new_admin": newAdminID.String()},
		Message:    fmt.Sprintf("Admin role transferred to %s", target.Email),
	})

	return nil
}

func (s *UserManagementService) SoftDeleteUser(userID uuid.UUID, deletedBy *users_models.User) error {
	target, err := s.checkDeletable(userID, deletedBy)
	if err != nil {
		return err
	}

	if !storage.GetCapabilities().UserSoftDelete {
		return ErrSoftDeleteNotSupported
	}

	if target.IsDeleted() {
		return ErrUserAlreadyDeleted
	}

	if err := s.userRepository.SoftDeleteUser(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.invalidateActors(userID)

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &deletedBy.ID,
		Action:     audit_logs_entries.ActionSoftDeleteUser,
		EntityType: audit_logs_entries.EntityUser,
		EntityID:   &userID,
		Message:    fmt.Sprintf("User deleted: %s", target.Email),
	})

	return nil
}

// DeleteUser removes the profile permanently. Groups created by the user must
// be transferred or deleted first.
func (s *UserManagementService) DeleteUser(userID uuid.UUID, deletedBy *users_models.User) error {
	target, err := s.checkDeletable(userID, deletedBy)
	if err != nil {
		return err
	}

	affected, err := s.userRepository.DeleteUser(userID)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return ErrUserOwnsGroups
		}

		return fmt.Errorf("failed to delete user: %w", err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	s.invalidateActors(userID)

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &deletedBy.ID,
		Action:     audit_logs_entries.ActionDeleteUser,
		EntityType: audit_logs_entries.EntityUser,
		EntityID:   &userID,
		OldValue:   map[string]string{"email": target.Email, "fullName": target.FullName},
		Message:    fmt.Sprintf("User permanently deleted: %s", target.Email),
	})

	return nil
}

func (s *UserManagementService) checkDeletable(userID uuid.UUID, deletedBy *users_models.User) (*users_models.User, error) {
	if !deletedBy.CanManageUsers() {
		return nil, ErrCannotManageUsers
	}

	if userID == deletedBy.ID {
		return nil, ErrCannotDeleteSelf
	}

	target, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if target.IsAdmin() {
		return nil, ErrCannotDeleteAdmin
	}

	return target, nil
}

func (s *UserManagementService) invalidateActors(userIDs ...uuid.UUID) {
	if s.actorInvalidator != nil {
		s.actorInvalidator.Invalidate(userIDs...)
	}
}
