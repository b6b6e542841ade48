package groups_repositories

import (
	"time"

	groups_dto "jobtracker/internal/features/groups/dto"
	groups_models "jobtracker/internal/features/groups/models"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
)

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(membership *groups_models.GroupMember) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

func (r *MembershipRepository) IsMember(groupID, userID uuid.UUID) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&groups_models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error

	return count > 0, err
}

func (r *MembershipRepository) GetGroupMembers(groupID uuid.UUID) ([]groups_dto.GroupMemberResponseDTO, error) {
	members := make([]groups_dto.GroupMemberResponseDTO, 0)

	err := storage.GetDb().
		Table("group_members gm").
		Select("gm.id, gm.group_id, gm.user_id, u.email, u.full_name, gm.created_at").
		Joins("JOIN users u ON gm.user_id = u.id").
		Where("gm.group_id = ?", groupID).
		Order("gm.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) GetMemberUserIDs(groupID uuid.UUID) ([]uuid.UUID, error) {
	userIDs := make([]uuid.UUID, 0)

	err := storage.GetDb().
		Model(&groups_models.GroupMember{}).
		Where("group_id = ?", groupID).
		Pluck("user_id", &userIDs).Error

	return userIDs, err
}

// RemoveMember returns the number of deleted rows, zero when userID was not a member.
func (r *MembershipRepository) RemoveMember(groupID, userID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&groups_models.GroupMember{})

	return result.RowsAffected, result.Error
}
