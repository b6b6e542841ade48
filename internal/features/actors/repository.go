package actors

import (
	"jobtracker/internal/storage"

	"github.com/google/uuid"
)

type ActorRepository struct{}

func (r *ActorRepository) GetGroupIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	groupIDs := make([]uuid.UUID, 0)

	err := storage.GetDb().
		Table("group_members").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("group_id", &groupIDs).Error

	return groupIDs, err
}
