package users_dto

import (
	"time"

	users_enums "jobtracker/internal/features/users/enums"

	"github.com/google/uuid"
)

type SignUpRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName"`
}

type SignInRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

type SetAdminPasswordRequestDTO struct {
	Password string `json:"password" binding:"required"`
}

type IsAdminHasPasswordResponseDTO struct {
	HasPassword bool `json:"hasPassword"`
}

type ChangePasswordRequestDTO struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

type UpdateProfileRequestDTO struct {
	FullName string `json:"fullName" binding:"required"`
}

type UserProfileResponseDTO struct {
	ID          uuid.UUID                `json:"id"`
	Email       string                   `json:"email"`
	FullName    string                   `json:"fullName"`
	Role        users_enums.UserRole     `json:"role"`
	Permissions []users_enums.Permission `json:"permissions"`
	IsDeleted   bool                     `json:"isDeleted"`
	DeletedAt   *time.Time               `json:"deletedAt,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
}

type ListUsersResponseDTO struct {
	Users []UserProfileResponseDTO `json:"users"`
	Total int64                    `json:"total"`
}

type ListUsersRequestDTO struct {
	Limit      int        `form:"limit"      json:"limit"`
	Offset     int        `form:"offset"     json:"offset"`
	BeforeDate *time.Time `form:"beforeDate" json:"beforeDate"`
}

type UpdatePermissionsRequestDTO struct {
	Permissions []users_enums.Permission `json:"permissions"`
}

type TransferAdminRequestDTO struct {
	NewAdminUserID uuid.UUID `json:"newAdminUserId" binding:"required"`
}

type DeleteUserRequestDTO struct {
	UserID string `json:"user_id"`
}
