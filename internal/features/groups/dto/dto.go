package groups_dto

import (
	"time"

	groups_enums "jobtracker/internal/features/groups/enums"

	"github.com/google/uuid"
)

// Group DTOs
type CreateGroupRequestDTO struct {
	Name        string `json:"name"        binding:"required"`
	Description string `json:"description"`
}

type UpdateGroupRequestDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type GroupResponseDTO struct {
	ID          uuid.UUID                `json:"id"          gorm:"column:id"`
	Name        string                   `json:"name"        gorm:"column:name"`
	Description string                   `json:"description" gorm:"column:description"`
	CreatedBy   uuid.UUID                `json:"createdBy"   gorm:"column:created_by"`
	CreatedAt   time.Time                `json:"createdAt"   gorm:"column:created_at"`
	MemberCount int64                    `json:"memberCount" gorm:"column:member_count"`
	IsMember    bool                     `json:"isMember"    gorm:"column:is_member"`
	UserRole    *groups_enums.MemberRole `json:"userRole,omitempty" gorm:"-"`
}

type ListGroupsResponseDTO struct {
	Groups []GroupResponseDTO `json:"groups"`
}

type TransferGroupAdminRequestDTO struct {
	NewAdminUserID uuid.UUID `json:"newAdminUserId" binding:"required"`
}

// Membership DTOs
type AddMemberRequestDTO struct {
	// Identifier is an email or a part of the full name.
	Identifier string `json:"identifier" binding:"required"`
}

type GroupMemberResponseDTO struct {
	ID        uuid.UUID               `json:"id"        gorm:"column:id"`
	GroupID   uuid.UUID               `json:"groupId"   gorm:"column:group_id"`
	UserID    uuid.UUID               `json:"userId"    gorm:"column:user_id"`
	Email     string                  `json:"email"     gorm:"column:email"`
	FullName  string                  `json:"fullName"  gorm:"column:full_name"`
	Role      groups_enums.MemberRole `json:"role"      gorm:"-"`
	CreatedAt time.Time               `json:"createdAt" gorm:"column:created_at"`
}

type GetMembersResponseDTO struct {
	Members []GroupMemberResponseDTO `json:"members"`
}

// Join request DTOs
type RespondToJoinRequestDTO struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
	Accept bool      `json:"accept"`
}

type JoinRequestResponseDTO struct {
	ID          uuid.UUID                      `json:"id"          gorm:"column:id"`
	GroupID     uuid.UUID                      `json:"groupId"     gorm:"column:group_id"`
	GroupName   string                         `json:"groupName"   gorm:"column:group_name"`
	UserID      uuid.UUID                      `json:"userId"      gorm:"column:user_id"`
	Email       string                         `json:"email"       gorm:"column:email"`
	FullName    string                         `json:"fullName"    gorm:"column:full_name"`
	Status      groups_enums.JoinRequestStatus `json:"status"      gorm:"column:status"`
	RespondedBy *uuid.UUID                     `json:"respondedBy" gorm:"column:responded_by"`
	RespondedAt *time.Time                     `json:"respondedAt" gorm:"column:responded_at"`
	CreatedAt   time.Time                      `json:"createdAt"   gorm:"column:created_at"`
}

type ListJoinRequestsResponseDTO struct {
	Requests []JoinRequestResponseDTO `json:"requests"`
}
