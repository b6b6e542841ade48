package groups_services

import "jobtracker/internal/util/app_errors"

var (
	ErrNotAuthenticated        = app_errors.New(app_errors.ErrNotAuthenticated, "not authenticated")
	ErrGroupNotFound           = app_errors.New(app_errors.ErrNotFound, "group not found")
	ErrGroupNameRequired       = app_errors.New(app_errors.ErrValidation, "group name is required")
	ErrGroupNameTooLong        = app_errors.New(app_errors.ErrValidation, "group name must be at most 200 characters")
	ErrCannotCreateGroups      = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to create groups")
	ErrCannotManageGroup       = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to manage group")
	ErrCannotViewMembers       = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to view group members")
	ErrCannotRemoveMember      = app_errors.New(app_errors.ErrPermissionDenied, "insufficient permissions to remove members")
	ErrCannotRemoveGroupAdmin  = app_errors.New(app_errors.ErrValidation, "cannot remove the group admin, transfer the group first")
	ErrIdentifierRequired      = app_errors.New(app_errors.ErrValidation, "email or name is required")
	ErrMemberUserNotFound      = app_errors.New(app_errors.ErrNotFound, "user not found")
	ErrAmbiguousIdentifier     = app_errors.New(app_errors.ErrValidation, "multiple users match, use the full email")
	ErrAlreadyMember           = app_errors.New(app_errors.ErrConflict, "user is already a member of this group")
	ErrNotMember               = app_errors.New(app_errors.ErrNotFound, "user is not a member of this group")
	ErrNewAdminNotMember       = app_errors.New(app_errors.ErrValidation, "new group admin must be a group member")
	ErrAlreadyGroupAdmin       = app_errors.New(app_errors.ErrValidation, "user is already the group admin")
	ErrActorAlreadyMember      = app_errors.New(app_errors.ErrConflict, "you are already a member of this group")
	ErrJoinRequestNotFound     = app_errors.New(app_errors.ErrNotFound, "join request not found")
	ErrJoinRequestMismatch     = app_errors.New(app_errors.ErrConflict, "join request does not belong to this group and user")
	ErrJoinRequestNotPending   = app_errors.New(app_errors.ErrConflict, "join request was already answered")
	ErrInvalidJoinRequestState = app_errors.New(app_errors.ErrValidation, "invalid join request status")
)
