package audit_logs

import (
	"time"

	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	ID         uuid.UUID                     `json:"id"         gorm:"column:id"`
	UserID     *uuid.UUID                    `json:"userId"     gorm:"column:user_id"`
	Action     audit_logs_entries.Action     `json:"action"     gorm:"column:action"`
	EntityType audit_logs_entries.EntityType `json:"entityType" gorm:"column:entity_type"`
	EntityID   *uuid.UUID                    `json:"entityId"   gorm:"column:entity_id"`
	OldValue   datatypes.JSON                `json:"oldValue"   gorm:"column:old_value;type:jsonb"`
	NewValue   datatypes.JSON                `json:"newValue"   gorm:"column:new_value;type:jsonb"`
	Message    string                        `json:"message"    gorm:"column:message"`
	CreatedAt  time.Time                     `json:"createdAt"  gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
