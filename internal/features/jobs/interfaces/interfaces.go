package jobs_interfaces

import (
	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
)

type AuditLogWriter interface {
	WriteAuditLog(entry audit_logs_entries.Entry)
}
