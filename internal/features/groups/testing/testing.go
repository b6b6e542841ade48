package groups_testing

import (
	"jobtracker/internal/features/actors"
	groups_models "jobtracker/internal/features/groups/models"
	groups_repositories "jobtracker/internal/features/groups/repositories"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
)

// CreateTestGroup stores a group created by creatorID, who becomes its first
// member and group admin.
func CreateTestGroup(name string, creatorID uuid.UUID) *groups_models.Group {
	group := &groups_models.Group{
		ID:        uuid.New(),
		Name:      name + " " + uuid.New().String()[:8],
		CreatedBy: creatorID,
	}

	if err := (&groups_repositories.GroupRepository{}).CreateGroupWithCreator(group); err != nil {
		panic(err)
	}

	actors.GetActorService().Invalidate(creatorID)

	return group
}

func AddTestMember(groupID, userID uuid.UUID) {
	err := (&groups_repositories.MembershipRepository{}).CreateMembership(&groups_models.GroupMember{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		panic(err)
	}

	actors.GetActorService().Invalidate(userID)
}

func IsMember(groupID, userID uuid.UUID) bool {
	isMember, err := (&groups_repositories.MembershipRepository{}).IsMember(groupID, userID)
	if err != nil {
		panic(err)
	}

	return isMember
}

func CountMemberships(groupID, userID uuid.UUID) int64 {
	var count int64

	err := storage.GetDb().
		Model(&groups_models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		panic(err)
	}

	return count
}

func DeleteTestGroup(groupID uuid.UUID) {
	if err := (&groups_repositories.GroupRepository{}).DeleteGroup(groupID); err != nil {
		panic(err)
	}
}
