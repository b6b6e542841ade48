package users_models

import (
	"slices"
	"time"

	users_enums "jobtracker/internal/features/users/enums"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID                   uuid.UUID                                   `json:"id"`
	Email                string                                      `json:"email"`
	FullName             string                                      `json:"fullName"    gorm:"column:full_name"`
	Role                 users_enums.UserRole                        `json:"role"`
	Permissions          datatypes.JSONSlice[users_enums.Permission] `json:"permissions" gorm:"column:permissions;type:jsonb"`
	HashedPassword       *string                                     `json:"-"           gorm:"column:hashed_password"`
	PasswordCreationTime time.Time                                   `json:"-"           gorm:"column:password_creation_time"`
	DeletedAt            *time.Time                                  `json:"deletedAt"   gorm:"column:deleted_at"`
	CreatedAt            time.Time                                   `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == users_enums.UserRoleAdmin
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) HasPermission(permission users_enums.Permission) bool {
	if u.IsAdmin() {
		return true
	}

	return slices.Contains(u.Permissions, permission)
}

func (u *User) CanManageUsers() bool {
	return u.IsAdmin()
}

func (u *User) CanUpdateSettings() bool {
	return u.IsAdmin()
}

func (u *User) CanReadAuditLogs() bool {
	return u.HasPermission(users_enums.PermissionAudit)
}

func (u *User) CanCreateGroups(settings *UsersSettings) bool {
	if u.IsAdmin() {
		return true
	}

	return settings.IsMemberAllowedToCreateGroups
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
