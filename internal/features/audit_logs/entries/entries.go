package audit_logs_entries

import "github.com/google/uuid"

type Action string

const (
	ActionSignUp             Action = "sign_up"
	ActionPasswordChanged    Action = "password_changed"
	ActionUpdateProfile      Action = "update_profile"
	ActionUpdateSettings     Action = "update_settings"
	ActionUpdatePermissions  Action = "update_permissions"
	ActionTransferAdmin      Action = "transfer_admin"
	ActionSoftDeleteUser     Action = "soft_delete_user"
	ActionDeleteUser         Action = "delete_user"
	ActionCreateGroup        Action = "create_group"
	ActionUpdateGroup        Action = "update_group"
	ActionDeleteGroup        Action = "delete_group"
	ActionTransferGroupAdmin Action = "transfer_group_admin"
	ActionAddMember          Action = "add_member"
	ActionRemoveMember       Action = "remove_member"
	ActionApproveJoinRequest Action = "approve_join_request"
	ActionRejectJoinRequest  Action = "reject_join_request"
	ActionDeleteJob          Action = "delete_job"
	ActionBulkDeleteJobs     Action = "bulk_delete_jobs"
	ActionDeleteWorker       Action = "delete_worker"
	ActionClearAuditLogs     Action = "clear_audit_logs"
)

type EntityType string

const (
	EntityUser     EntityType = "user"
	EntitySettings EntityType = "settings"
	EntityGroup    EntityType = "group"
	EntityJob      EntityType = "job"
	EntityWorker   EntityType = "worker"
	EntityAuditLog EntityType = "audit_log"
)

// Entry is what features hand to the audit log writer. OldValue and NewValue
// are marshalled to JSONB snapshots.
type Entry struct {
	UserID     *uuid.UUID
	Action     Action
	EntityType EntityType
	EntityID   *uuid.UUID
	OldValue   any
	NewValue   any
	Message    string
}
