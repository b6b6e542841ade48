package groups_services

import (
	"fmt"

	"jobtracker/internal/features/actors"
	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
	groups_dto "jobtracker/internal/features/groups/dto"
	groups_enums "jobtracker/internal/features/groups/enums"
	groups_interfaces "jobtracker/internal/features/groups/interfaces"
	groups_models "jobtracker/internal/features/groups/models"
	groups_repositories "jobtracker/internal/features/groups/repositories"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
)

// JoinRequestService runs the pending -> approved | rejected workflow.
type JoinRequestService struct {
	joinRequestRepository *groups_repositories.JoinRequestRepository
	membershipRepository  *groups_repositories.MembershipRepository
	groupService          *GroupService
	actorService          *actors.ActorService
	auditLogWriter        groups_interfaces.AuditLogWriter
}

func (s *JoinRequestService) SetAuditLogWriter(writer groups_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

// RequestToJoin opens a pending request. An already open request is returned
// unchanged; earlier rejections do not block a new one.
func (s *JoinRequestService) RequestToJoin(
	actor *actors.ActorContext,
	groupID uuid.UUID,
) (*groups_models.GroupJoinRequest, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	if _, err := s.groupService.getGroup(groupID); err != nil {
		return nil, err
	}

	isMember, err := s.membershipRepository.IsMember(groupID, *actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	if isMember {
		return nil, ErrActorAlreadyMember
	}

	pending, err := s.joinRequestRepository.FindPendingRequest(groupID, *actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}

	if pending != nil {
		return pending, nil
	}

	request := &groups_models.GroupJoinRequest{
		GroupID: groupID,
		UserID:  *actor.UserID,
		Status:  groups_enums.JoinRequestStatusPending,
	}

	if err := s.joinRequestRepository.CreateJoinRequest(request); err != nil {
		if !storage.IsUniqueViolation(err) {
			return nil, fmt.Errorf("failed to create join request: %w", err)
		}

		// a concurrent call opened it first
		pending, err := s.joinRequestRepository.FindPendingRequest(groupID, *actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get join request: %w", err)
		}

		if pending == nil {
			return nil, ErrJoinRequestNotPending
		}

		return pending, nil
	}

	return request, nil
}

// RespondToJoinRequest approves or rejects a pending request of userID for
// groupID. Approving an approved request again is a successful no-op.
func (s *JoinRequestService) RespondToJoinRequest(
	actor *actors.ActorContext,
	requestID uuid.UUID,
	groupID uuid.UUID,
	userID uuid.UUID,
	accept bool,
) (*groups_models.GroupJoinRequest, error) {
	group, err := s.groupService.getManagedGroup(actor, groupID)
	if err != nil {
		return nil, err
	}

	request, err := s.getJoinRequest(requestID)
	if err != nil {
		return nil, err
	}

	if request.GroupID != groupID || request.UserID != userID {
		return nil, ErrJoinRequestMismatch
	}

	if request.Status != groups_enums.JoinRequestStatusPending {
		if accept && request.Status == groups_enums.JoinRequestStatusApproved {
			return request, nil
		}

		return nil, ErrJoinRequestNotPending
	}

	var isResponded bool
	if accept {
		isResponded, err = s.joinRequestRepository.ApproveWithMembership(request, *actor.UserID)
	} else {
		isResponded, err = s.joinRequestRepository.Reject(request.ID, *actor.UserID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to respond to join request: %w", err)
	}

	if !isResponded {
		// answered concurrently, re-evaluate against the stored state
		current, err := s.getJoinRequest(requestID)
		if err != nil {
			return nil, err
		}

		if accept && current.Status == groups_enums.JoinRequestStatusApproved {
			return current, nil
		}

		return nil, ErrJoinRequestNotPending
	}

	action := audit_logs_entries.ActionRejectJoinRequest
	if accept {
		action = audit_logs_entries.ActionApproveJoinRequest
		s.actorService.Invalidate(userID)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     action,
		EntityType: audit_logs_entries.EntityGroup,
		EntityID:   &group.ID,
		NewValue:   map[string]string{"requestId": requestID.String(), "userId": userID.String()},
		Message:    fmt.Sprintf("Join request answered for group %s", group.Name),
	})

	return s.getJoinRequest(requestID)
}

func (s *JoinRequestService) ListJoinRequests(
	actor *actors.ActorContext,
	groupID uuid.UUID,
	status *groups_enums.JoinRequestStatus,
) (*groups_dto.ListJoinRequestsResponseDTO, error) {
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidJoinRequestState
	}

	if _, err := s.groupService.getManagedGroup(actor, groupID); err != nil {
		return nil, err
	}

	requests, err := s.joinRequestRepository.GetGroupJoinRequests(groupID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get join requests: %w", err)
	}

	return &groups_dto.ListJoinRequestsResponseDTO{Requests: requests}, nil
}

func (s *JoinRequestService) ListMyJoinRequests(actor *actors.ActorContext) (*groups_dto.ListJoinRequestsResponseDTO, error) {
	if !actor.IsAuthenticated() {
		return &groups_dto.ListJoinRequestsResponseDTO{Requests: []groups_dto.JoinRequestResponseDTO{}}, nil
	}

	requests, err := s.joinRequestRepository.GetUserJoinRequests(*actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get join requests: %w", err)
	}

	return &groups_dto.ListJoinRequestsResponseDTO{Requests: requests}, nil
}

func (s *JoinRequestService) getJoinRequest(requestID uuid.UUID) (*groups_models.GroupJoinRequest, error) {
	request, err := s.joinRequestRepository.GetJoinRequestByID(requestID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrJoinRequestNotFound
		}

		return nil, fmt.Errorf("failed to get join request: %w", err)
	}

	return request, nil
}
