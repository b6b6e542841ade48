package users_interfaces

import (
	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"

	"github.com/google/uuid"
)

type AuditLogWriter interface {
	WriteAuditLog(entry audit_logs_entries.Entry)
}

// ActorInvalidator drops cached actor contexts after role or membership changes.
type ActorInvalidator interface {
	Invalidate(userIDs ...uuid.UUID)
}
