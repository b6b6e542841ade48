package groups_models

import (
	"time"

	"github.com/google/uuid"
)

type GroupMember struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	GroupID   uuid.UUID `json:"groupId"   gorm:"column:group_id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
