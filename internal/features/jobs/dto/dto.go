package jobs_dto

import (
	"strings"
	"time"

	jobs_enums "jobtracker/internal/features/jobs/enums"
	"jobtracker/internal/util/app_errors"
	"jobtracker/internal/util/dates"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobFilter narrows the set of jobs an actor can see. Nil fields do not filter.
type JobFilter struct {
	Status   *jobs_enums.JobStatus
	GroupID  *uuid.UUID
	WorkerID *uuid.UUID
	Search   string
}

// JobQueryDTO is the query string shared by listing, stats, sharing and export.
// "all" or an empty value disables a filter; an empty range means the current month.
type JobQueryDTO struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Status    string `form:"status"`
	GroupID   string `form:"groupId"`
	WorkerID  string `form:"workerId"`
	Search    string `form:"search"`
}

func (q *JobQueryDTO) Parse(now time.Time) (time.Time, time.Time, JobFilter, error) {
	start, end, err := dates.ParseDateRange(q.StartDate, q.EndDate, now)
	if err != nil {
		return time.Time{}, time.Time{}, JobFilter{}, app_errors.New(app_errors.ErrValidation, err.Error())
	}

	filter := JobFilter{Search: strings.TrimSpace(q.Search)}

	if isFilterSet(q.Status) {
		status := jobs_enums.JobStatus(strings.TrimSpace(q.Status))
		if !status.IsValid() {
			return time.Time{}, time.Time{}, JobFilter{}, app_errors.New(app_errors.ErrValidation, "invalid job status")
		}
		filter.Status = &status
	}

	if isFilterSet(q.GroupID) {
		groupID, err := uuid.Parse(strings.TrimSpace(q.GroupID))
		if err != nil {
			return time.Time{}, time.Time{}, JobFilter{}, app_errors.New(app_errors.ErrValidation, "invalid group ID")
		}
		filter.GroupID = &groupID
	}

	if isFilterSet(q.WorkerID) {
		workerID, err := uuid.Parse(strings.TrimSpace(q.WorkerID))
		if err != nil {
			return time.Time{}, time.Time{}, JobFilter{}, app_errors.New(app_errors.ErrValidation, "invalid worker ID")
		}
		filter.WorkerID = &workerID
	}

	return start, end, filter, nil
}

func isFilterSet(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && value != "all"
}

// JobDTO is a job row enriched with display names. The names stay empty when
// the enrichment joins are unavailable.
type JobDTO struct {
	ID              uuid.UUID            `json:"id"              gorm:"column:id"`
	Date            time.Time            `json:"date"            gorm:"column:date"`
	Location        string               `json:"location"        gorm:"column:location"`
	Description     string               `json:"description"     gorm:"column:description"`
	Status          jobs_enums.JobStatus `json:"status"          gorm:"column:status"`
	HoursWorked     decimal.Decimal      `json:"hoursWorked"     gorm:"column:hours_worked"`
	CostSpent       decimal.Decimal      `json:"costSpent"       gorm:"column:cost_spent"`
	AmountToCharge  decimal.Decimal      `json:"amountToCharge"  gorm:"column:amount_to_charge"`
	WorkerID        *uuid.UUID           `json:"workerId"        gorm:"column:worker_id"`
	GroupID         *uuid.UUID           `json:"groupId"         gorm:"column:group_id"`
	UserID          *uuid.UUID           `json:"userId"          gorm:"column:user_id"`
	EditableByGroup bool                 `json:"editableByGroup" gorm:"column:editable_by_group"`
	Version         int                  `json:"version"         gorm:"column:version"`
	CreatedAt       time.Time            `json:"createdAt"       gorm:"column:created_at"`
	UpdatedAt       time.Time            `json:"updatedAt"       gorm:"column:updated_at"`
	GroupName       string               `json:"groupName"       gorm:"column:group_name"`
	WorkerName      string               `json:"workerName"      gorm:"column:worker_name"`
	WorkerAlias     string               `json:"workerAlias"     gorm:"column:worker_alias"`
}

// WorkerLabel prefers the display name and falls back to the alias.
func (j *JobDTO) WorkerLabel() string {
	if j.WorkerName != "" {
		return j.WorkerName
	}

	return j.WorkerAlias
}

type ListJobsResponseDTO struct {
	Jobs []JobDTO `json:"jobs"`
}

type CreateJobRequestDTO struct {
	Date            string               `json:"date"            binding:"required"`
	Location        string               `json:"location"`
	Description     string               `json:"description"`
	Status          jobs_enums.JobStatus `json:"status"`
	HoursWorked     decimal.Decimal      `json:"hoursWorked"`
	CostSpent       decimal.Decimal      `json:"costSpent"`
	AmountToCharge  decimal.Decimal      `json:"amountToCharge"`
	WorkerID        *uuid.UUID           `json:"workerId"`
	GroupID         *uuid.UUID           `json:"groupId"`
	EditableByGroup bool                 `json:"editableByGroup"`
}

// UpdateJobRequestDTO is a patch: nil fields are left untouched. Version, when
// sent, must match the stored version. ClearGroup/ClearWorker detach the job.
type UpdateJobRequestDTO struct {
	Date            *string               `json:"date"`
	Location        *string               `json:"location"`
	Description     *string               `json:"description"`
	Status          *jobs_enums.JobStatus `json:"status"`
	HoursWorked     *decimal.Decimal      `json:"hoursWorked"`
	CostSpent       *decimal.Decimal      `json:"costSpent"`
	AmountToCharge  *decimal.Decimal      `json:"amountToCharge"`
	WorkerID        *uuid.UUID            `json:"workerId"`
	ClearWorker     bool                  `json:"clearWorker"`
	GroupID         *uuid.UUID            `json:"groupId"`
	ClearGroup      bool                  `json:"clearGroup"`
	EditableByGroup *bool                 `json:"editableByGroup"`
	Version         *int                  `json:"version"`
}

type JobStatsDTO struct {
	TotalHours  decimal.Decimal `json:"totalHours"  gorm:"column:total_hours"`
	TotalCost   decimal.Decimal `json:"totalCost"   gorm:"column:total_cost"`
	TotalCharge decimal.Decimal `json:"totalCharge" gorm:"column:total_charge"`
	JobCount    int64           `json:"jobCount"    gorm:"column:job_count"`
}

type BulkDeleteResponseDTO struct {
	Removed int64 `json:"removed"`
}

type ShareTextResponseDTO struct {
	Text string `json:"text"`
}
