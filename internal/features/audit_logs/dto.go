package audit_logs

import (
	"time"

	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GetAuditLogsRequest struct {
	Limit      int        `form:"limit"      json:"limit"`
	Offset     int        `form:"offset"     json:"offset"`
	BeforeDate *time.Time `form:"beforeDate" json:"beforeDate"`
}

type GetAuditLogsResponse struct {
	AuditLogs []*AuditLogDTO `json:"auditLogs"`
	Total     int64          `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

type AuditLogDTO struct {
	ID         uuid.UUID                     `json:"id"         gorm:"column:id"`
	UserID     *uuid.UUID                    `json:"userId"     gorm:"column:user_id"`
	Action     audit_logs_entries.Action     `json:"action"     gorm:"column:action"`
	EntityType audit_logs_entries.EntityType `json:"entityType" gorm:"column:entity_type"`
	EntityID   *uuid.UUID                    `json:"entityId"   gorm:"column:entity_id"`
	OldValue   datatypes.JSON                `json:"oldValue"   gorm:"column:old_value"`
	NewValue   datatypes.JSON                `json:"newValue"   gorm:"column:new_value"`
	Message    string                        `json:"message"    gorm:"column:message"`
	CreatedAt  time.Time                     `json:"createdAt"  gorm:"column:created_at"`
	UserEmail  *string                       `json:"userEmail"  gorm:"column:user_email"`
}

type ClearAuditLogsResponse struct {
	Deleted int64 `json:"deleted"`
}
