package groups_repositories

import (
	"time"

	groups_dto "jobtracker/internal/features/groups/dto"
	groups_models "jobtracker/internal/features/groups/models"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupRepository struct{}

// CreateGroupWithCreator inserts the group and the creator's membership in
// one transaction.
func (r *GroupRepository) CreateGroupWithCreator(group *groups_models.Group) error {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		return tx.Create(&groups_models.GroupMember{
			ID:        uuid.New(),
			GroupID:   group.ID,
			UserID:    group.CreatedBy,
			CreatedAt: group.CreatedAt,
		}).Error
	})
}

func (r *GroupRepository) GetGroupByID(groupID uuid.UUID) (*groups_models.Group, error) {
	var group groups_models.Group

	if err := storage.GetDb().Where("id = ?", groupID).First(&group).Error; err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *GroupRepository) UpdateGroup(group *groups_models.Group) error {
	return storage.GetDb().
		Model(&groups_models.Group{}).
		Where("id = ?", group.ID).
		Updates(map[string]any{
			"name":        group.Name,
			"description": group.Description,
		}).Error
}

func (r *GroupRepository) UpdateCreatedBy(groupID, newAdminID uuid.UUID) error {
	return storage.GetDb().
		Model(&groups_models.Group{}).
		Where("id = ?", groupID).
		Update("created_by", newAdminID).Error
}

func (r *GroupRepository) DeleteGroup(groupID uuid.UUID) error {
	return storage.GetDb().Delete(&groups_models.Group{}, groupID).Error
}

// GetGroupsWithMembership lists every group with its member count and whether
// userID belongs to it.
func (r *GroupRepository) GetGroupsWithMembership(userID uuid.UUID) ([]groups_dto.GroupResponseDTO, error) {
	groups := make([]groups_dto.GroupResponseDTO, 0)

	sql := `
		SELECT
			g.id,
			g.name,
			g.description,
			g.created_by,
			g.created_at,
			(SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = g.id) AS member_count,
			EXISTS (
				SELECT 1 FROM group_members gm WHERE gm.group_id = g.id AND gm.user_id = ?
			) AS is_member
		FROM groups g
		ORDER BY g.name ASC, g.created_at ASC`

	err := storage.GetDb().Raw(sql, userID).Scan(&groups).Error

	return groups, err
}
