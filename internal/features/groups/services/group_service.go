package groups_services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"jobtracker/internal/features/actors"
	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
	groups_dto "jobtracker/internal/features/groups/dto"
	groups_interfaces "jobtracker/internal/features/groups/interfaces"
	groups_models "jobtracker/internal/features/groups/models"
	groups_repositories "jobtracker/internal/features/groups/repositories"
	users_services "jobtracker/internal/features/users/services"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
)

const maxGroupNameLength = 200

type GroupService struct {
	groupRepository      *groups_repositories.GroupRepository
	membershipRepository *groups_repositories.MembershipRepository
	settingsService      *users_services.SettingsService
	actorService         *actors.ActorService
	auditLogWriter       groups_interfaces.AuditLogWriter
}

func (s *GroupService) SetAuditLogWriter(writer groups_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

// CreateGroup creates a group owned by the actor. The creator becomes its
// first member and, by that, the group admin.
func (s *GroupService) CreateGroup(
	actor *actors.ActorContext,
	request *groups_dto.CreateGroupRequestDTO,
) (*groups_dto.GroupResponseDTO, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	if !actor.IsAdmin {
		settings, err := s.settingsService.GetSettings()
		if err != nil {
			return nil, fmt.Errorf("failed to get settings: %w", err)
		}

		if !settings.IsMemberAllowedToCreateGroups {
			return nil, ErrCannotCreateGroups
		}
	}

	name, err := normalizeGroupName(request.Name)
	if err != nil {
		return nil, err
	}

	group := &groups_models.Group{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(request.Description),
		CreatedBy:   *actor.UserID,
	}

	if err := s.groupRepository.CreateGroupWithCreator(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.actorService.Invalidate(*actor.UserID)

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     audit_logs_entries.ActionCreateGroup,
		EntityType: audit_logs_entries.EntityGroup,
		EntityID:   &group.ID,
		NewValue:   map[string]string{"name": group.Name, "description": group.Description},
		Message:    fmt.Sprintf("Group created: %s", group.Name),
	})

	role := group.RoleOf(*actor.UserID)

	return &groups_dto.GroupResponseDTO{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatedBy,
		CreatedAt:   group.CreatedAt,
		MemberCount: 1,
		IsMember:    true,
		UserRole:    &role,
	}, nil
}

// GetAllGroups returns the group directory with the actor's membership flag
// and computed role. Anonymous actors get an empty list.
func (s *GroupService) GetAllGroups(actor *actors.ActorContext) (*groups_dto.ListGroupsResponseDTO, error) {
	if !actor.IsAuthenticated() {
		return &groups_dto.ListGroupsResponseDTO{Groups: []groups_dto.GroupResponseDTO{}}, nil
	}

	groups, err := s.groupRepository.GetGroupsWithMembership(*actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	for i := range groups {
		if groups[i].IsMember {
			group := groups_models.Group{CreatedBy: groups[i].CreatedBy}
			role := group.RoleOf(*actor.UserID)
			groups[i].UserRole = &role
		}
	}

	return &groups_dto.ListGroupsResponseDTO{Groups: groups}, nil
}

func (s *GroupService) GetGroup(actor *actors.ActorContext, groupID uuid.UUID) (*groups_models.Group, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrGroupNotFound
	}

	return s.getGroup(groupID)
}

func (s *GroupService) UpdateGroup(
	actor *actors.ActorContext,
	groupID uuid.UUID,
	request *groups_dto.UpdateGroupRequestDTO,
) (*groups_models.Group, error) {
	group, err := s.getManagedGroup(actor, groupID)
	if err != nil {
		return nil, err
	}

	oldGroup := *group

	if request.Name != nil {
		name, err := normalizeGroupName(*request.Name)
		if err != nil {
			return nil, err
		}

		group.Name = name
	}

	if request.Description != nil {
		group.Description = strings.TrimSpace(*request.Description)
	}

	if err := s.groupRepository.UpdateGroup(group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     audit_logs_entries.ActionUpdateGroup,
		EntityType: audit_logs_entries.EntityGroup,
		EntityID:   &group.ID,
		OldValue:   map[string]string{"name": oldGroup.Name, "description": oldGroup.Description},
		NewValue:   map[string]string{"name": group.Name, "description": group.Description},
		Message:    fmt.Sprintf("Group updated: %s", group.Name),
	})

	return group, nil
}

// DeleteGroup removes the group with its memberships and join requests. Jobs
// of the group stay and lose their group.
func (s *GroupService) DeleteGroup(actor *actors.ActorContext, groupID uuid.UUID) error {
	group, err := s.getManagedGroup(actor, groupID)
	if err != nil {
		return err
	}

	memberIDs, err := s.membershipRepository.GetMemberUserIDs(groupID)
	if err != nil {
		return fmt.Errorf("failed to get group members: %w", err)
	}

	if err := s.groupRepository.DeleteGroup(groupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	s.actorService.Invalidate(memberIDs...)

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     audit_logs_entries.ActionDeleteGroup,
		EntityType: audit_logs_entries.EntityGroup,
		EntityID:   &group.ID,
		OldValue:   map[string]string{"name": group.Name, "description": group.Description},
		Message:    fmt.Sprintf("Group deleted: %s", group.Name),
	})

	return nil
}

// TransferGroupAdmin makes another member the group admin by rewriting the
// creator of the group.
func (s *GroupService) TransferGroupAdmin(
	actor *actors.ActorContext,
	groupID uuid.UUID,
	newAdminUserID uuid.UUID,
) error {
	group, err := s.getManagedGroup(actor, groupID)
	if err != nil {
		return err
	}

	if group.CreatedBy == newAdminUserID {
		return ErrAlreadyGroupAdmin
	}

	isMember, err := s.membershipRepository.IsMember(groupID, newAdminUserID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	if !isMember {
		return ErrNewAdminNotMember
	}

	if err := s.groupRepository.UpdateCreatedBy(groupID, newAdminUserID); err != nil {
		return fmt.Errorf("failed to transfer group: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     actor.UserID,
		Action:     audit_logs_entries.ActionTransferGroupAdmin,
		EntityType: audit_logs_entries.EntityGroup,
		EntityID:   &group.ID,
		OldValue:   map[string]string{"admin": group.CreatedBy.String()},
		NewValue:   map[string]string{"admin": newAdminUserID.String()},
		Message:    fmt.Sprintf("Group admin transferred: %s", group.Name),
	})

	return nil
}

// CanManageGroup reports whether the actor administers the group, either as
// its creator or as the global admin.
func CanManageGroup(actor *actors.ActorContext, group *groups_models.Group) bool {
	if !actor.IsAuthenticated() {
		return false
	}

	return actor.IsAdmin || actor.Is(&group.CreatedBy)
}

func (s *GroupService) getGroup(groupID uuid.UUID) (*groups_models.Group, error) {
	group, err := s.groupRepository.GetGroupByID(groupID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrGroupNotFound
		}

		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

func (s *GroupService) getManagedGroup(actor *actors.ActorContext, groupID uuid.UUID) (*groups_models.Group, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}

	if !CanManageGroup(actor, group) {
		return nil, ErrCannotManageGroup
	}

	return group, nil
}

func normalizeGroupName(name string) (string, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return "", ErrGroupNameRequired
	}

	if utf8.RuneCountInString(name) > maxGroupNameLength {
		return "", ErrGroupNameTooLong
	}

	return name, nil
}
