package groups_services

import (
	"fmt"
	"strings"

	"jobtracker/internal/features/actors"
	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
	groups_dto "jobtracker/internal/features/groups/dto"
	groups_interfaces "jobtracker/internal/features/groups/interfaces"
	groups_models "jobtracker/internal/features/groups/models"
	groups_repositories "jobtracker/internal/features/groups/repositories"
	users_repositories "jobtracker/internal/features/users/repositories"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
)

// identifierLookupLimit is enough to tell "exactly one" from "ambiguous".
const identifierLookupLimit = 2

type MembershipService struct {
	membershipRepository *groups_repositories.MembershipRepository
	userRepository       *users_repositories.UserRepository
	groupService         *GroupService
	actorService         *actors.ActorService
	auditLogWriter       groups_interfaces.AuditLogWriter
}

func (s *MembershipService) SetAuditLogWriter(writer groups_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

// GetGroupMembers lists members with their computed role. Visible to members
// of the group and to the global admin.
func (s *MembershipService) GetGroupMembers(
	actor *actors.ActorContext,
	groupID uuid.UUID,
) (*groups_dto.GetMembersResponseDTO, error) {
	if !actor.IsAuthenticated() {
		return &groups_dto.GetMembersResponseDTO{Members: []groups_dto.GroupMemberResponseDTO{}}, nil
	}

	group, err := s.groupService.getGroup(groupID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin {
		isMember, err := s.membershipRepository.IsMember(groupID, *actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}

		if !isMember {
			return nil, ErrCannotViewMembers
		}
	}

	members, err := s.membershipRepository.GetGroupMembers(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	for i := range members {
		members[i].Role = group.RoleOf(members[i].UserID)
	}

	return &groups_dto.GetMembersResponseDTO{Members: members}, nil
}

// AddMember adds an existing user found by email (identifier with "@") or by a
// unique part of the full name.
func (s *MembershipService) AddMember(
	actor *actors.ActorContext,
	groupID uuid.UUID,
	identifier string,
) (*groups_dto.GroupMemberResponseDTO, error) {
	group, err := s.groupService.getManagedGroup(actor, groupID)
	if err != nil {
		return nil, err
	}

	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrIdentifierRequired
	}

	candidates, err := s.userRepository.FindActiveUsersByIdentifier(identifier, identifierLookupLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	switch {
	case len(candidates) == 0:
		return nil, ErrMemberUserNotFound
	case len(candidates) > 1:
		return nil, ErrAmbiguousIdentifier
	}

	target := candidates[0]

	isMember, err := s.membershipRepository.IsMember(groupID, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	if isMember {
		return nil, ErrAlreadyMember
	}

	membership := &groups_models.GroupMember{
		GroupID: groupID,
		UserID:  target.ID,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrAlreadyMember
		}

		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.actorService.Invalidate(target.ID)

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     audit_logs_entries.ActionAddMember,
		EntityType: audit_logs_entries.EntityGroup,
		EntityID:   &group.ID,
		NewValue:   map[string]string{"userId": target.ID.String(), "email": target.Email},
		Message:    fmt.Sprintf("Member added to group %s: %s", group.Name, target.Email),
	})

	return &groups_dto.GroupMemberResponseDTO{
		ID:        membership.ID,
		GroupID:   groupID,
		UserID:    target.ID,
		Email:     target.Email,
		FullName:  target.FullName,
		Role:      group.RoleOf(target.ID),
		CreatedAt: membership.CreatedAt,
	}, nil
}

// RemoveMember never removes the group creator. Group admins and the global
// admin remove anybody else, members can remove themselves.
func (s *MembershipService) RemoveMember(actor *actors.ActorContext, groupID, userID uuid.UUID) error {
	if !actor.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	group, err := s.groupService.getGroup(groupID)
	if err != nil {
		return err
	}

	if userID == group.CreatedBy {
		return ErrCannotRemoveGroupAdmin
	}

	if !CanManageGroup(actor, group) && !actor.Is(&userID) {
		return ErrCannotRemoveMember
	}

	removed, err := s.membershipRepository.RemoveMember(groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if removed == 0 {
		return ErrNotMember
	}

	s.actorService.Invalidate(userID)

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     audit_logs_entries.ActionRemoveMember,
		EntityType: audit_logs_entries.EntityGroup,
		EntityID:   &group.ID,
		OldValue:   map[string]string{"userId": userID.String()},
		Message:    fmt.Sprintf("Member removed from group %s", group.Name),
	})

	return nil
}
