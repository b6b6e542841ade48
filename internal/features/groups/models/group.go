package groups_models

import (
	"time"

	groups_enums "jobtracker/internal/features/groups/enums"

	"github.com/google/uuid"
)

type Group struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	Name        string    `json:"name"        gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedBy   uuid.UUID `json:"createdBy"   gorm:"column:created_by"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Group) TableName() string {
	return "groups"
}

// RoleOf derives the member role: the creator is the group admin, everybody
// else is a plain member.
func (g *Group) RoleOf(userID uuid.UUID) groups_enums.MemberRole {
	if userID == g.CreatedBy {
		return groups_enums.MemberRoleAdmin
	}

	return groups_enums.MemberRoleMember
}
