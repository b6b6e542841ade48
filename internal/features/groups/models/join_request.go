package groups_models

import (
	"time"

	groups_enums "jobtracker/internal/features/groups/enums"

	"github.com/google/uuid"
)

type GroupJoinRequest struct {
	ID          uuid.UUID                      `json:"id"          gorm:"column:id"`
	GroupID     uuid.UUID                      `json:"groupId"     gorm:"column:group_id"`
	UserID      uuid.UUID                      `json:"userId"      gorm:"column:user_id"`
	Status      groups_enums.JoinRequestStatus `json:"status"      gorm:"column:status"`
	RespondedBy *uuid.UUID                     `json:"respondedBy" gorm:"column:responded_by"`
	RespondedAt *time.Time                     `json:"respondedAt" gorm:"column:responded_at"`
	CreatedAt   time.Time                      `json:"createdAt"   gorm:"column:created_at"`
}

func (GroupJoinRequest) TableName() string {
	return "group_join_requests"
}
