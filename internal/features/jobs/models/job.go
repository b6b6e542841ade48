package jobs_models

import (
	"time"

	jobs_enums "jobtracker/internal/features/jobs/enums"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Job struct {
	ID              uuid.UUID            `json:"id"              gorm:"column:id"`
	Date            time.Time            `json:"date"            gorm:"column:date;type:date"`
	Location        string               `json:"location"        gorm:"column:location"`
	Description     string               `json:"description"     gorm:"column:description"`
	Status          jobs_enums.JobStatus `json:"status"          gorm:"column:status"`
	HoursWorked     decimal.Decimal      `json:"hoursWorked"     gorm:"column:hours_worked;type:numeric"`
	CostSpent       decimal.Decimal      `json:"costSpent"       gorm:"column:cost_spent;type:numeric"`
	AmountToCharge  decimal.Decimal      `json:"amountToCharge"  gorm:"column:amount_to_charge;type:numeric"`
	WorkerID        *uuid.UUID           `json:"workerId"        gorm:"column:worker_id"`
	GroupID         *uuid.UUID           `json:"groupId"         gorm:"column:group_id"`
	UserID          *uuid.UUID           `json:"userId"          gorm:"column:user_id"`
	EditableByGroup bool                 `json:"editableByGroup" gorm:"column:editable_by_group"`
	Version         int                  `json:"version"         gorm:"column:version"`
	CreatedAt       time.Time            `json:"createdAt"       gorm:"column:created_at"`
	UpdatedAt       time.Time            `json:"updatedAt"       gorm:"column:updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
