package groups_repositories

import (
	"time"

	groups_dto "jobtracker/internal/features/groups/dto"
	groups_enums "jobtracker/internal/features/groups/enums"
	groups_models "jobtracker/internal/features/groups/models"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JoinRequestRepository struct{}

const joinRequestSelect = `
	SELECT
		r.id,
		r.group_id,
		g.name AS group_name,
		r.user_id,
		u.email,
		u.full_name,
		r.status,
		r.responded_by,
		r.responded_at,
		r.created_at
	FROM group_join_requests r
	JOIN groups g ON g.id = r.group_id
	JOIN users u ON u.id = r.user_id`

func (r *JoinRequestRepository) CreateJoinRequest(request *groups_models.GroupJoinRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}

	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(request).Error
}

func (r *JoinRequestRepository) GetJoinRequestByID(requestID uuid.UUID) (*groups_models.GroupJoinRequest, error) {
	var request groups_models.GroupJoinRequest

	if err := storage.GetDb().Where("id = ?", requestID).First(&request).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

// FindPendingRequest returns nil when the user has no open request for the group.
func (r *JoinRequestRepository) FindPendingRequest(groupID, userID uuid.UUID) (*groups_models.GroupJoinRequest, error) {
	var request groups_models.GroupJoinRequest

	err := storage.GetDb().
		Where("group_id = ? AND user_id = ? AND status = ?", groupID, userID, groups_enums.JoinRequestStatusPending).
		First(&request).Error
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &request, nil
}

// ApproveWithMembership marks a pending request approved and inserts the
// membership in the same transaction. An existing membership is kept as is.
// Returns false when the request was no longer pending.
func (r *JoinRequestRepository) ApproveWithMembership(
	request *groups_models.GroupJoinRequest,
	respondedBy uuid.UUID,
) (bool, error) {
	isApproved := false

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		result := tx.Model(&groups_models.GroupJoinRequest{}).
			Where("id = ? AND status = ?", request.ID, groups_enums.JoinRequestStatusPending).
			Updates(map[string]any{
				"status":       groups_enums.JoinRequestStatusApproved,
				"responded_by": respondedBy,
				"responded_at": now,
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return nil
		}

		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&groups_models.GroupMember{
			ID:        uuid.New(),
			GroupID:   request.GroupID,
			UserID:    request.UserID,
			CreatedAt: now,
		}).Error
		if err != nil {
			return err
		}

		isApproved = true

		return nil
	})

	return isApproved, err
}

// Reject returns false when the request was no longer pending.
func (r *JoinRequestRepository) Reject(requestID, respondedBy uuid.UUID) (bool, error) {
	result := storage.GetDb().
		Model(&groups_models.GroupJoinRequest{}).
		Where("id = ? AND status = ?", requestID, groups_enums.JoinRequestStatusPending).
		Updates(map[string]any{
			"status":       groups_enums.JoinRequestStatusRejected,
			"responded_by": respondedBy,
			"responded_at": time.Now().UTC(),
		})

	return result.RowsAffected > 0, result.Error
}

func (r *JoinRequestRepository) GetGroupJoinRequests(
	groupID uuid.UUID,
	status *groups_enums.JoinRequestStatus,
) ([]groups_dto.JoinRequestResponseDTO, error) {
	requests := make([]groups_dto.JoinRequestResponseDTO, 0)

	sql := joinRequestSelect + " WHERE r.group_id = ?"
	args := []any{groupID}

	if status != nil {
		sql += " AND r.status = ?"
		args = append(args, *status)
	}

	sql += " ORDER BY r.created_at DESC"

	err := storage.GetDb().Raw(sql, args...).Scan(&requests).Error

	return requests, err
}

func (r *JoinRequestRepository) GetUserJoinRequests(userID uuid.UUID) ([]groups_dto.JoinRequestResponseDTO, error) {
	requests := make([]groups_dto.JoinRequestResponseDTO, 0)

	sql := joinRequestSelect + " WHERE r.user_id = ? ORDER BY r.created_at DESC"

	err := storage.GetDb().Raw(sql, userID).Scan(&requests).Error

	return requests, err
}
