package jobs_testing

import (
	"time"

	jobs_enums "jobtracker/internal/features/jobs/enums"
	jobs_models "jobtracker/internal/features/jobs/models"
	jobs_repositories "jobtracker/internal/features/jobs/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TestJob describes a job to insert directly, bypassing authorization.
type TestJob struct {
	Date            time.Time
	Description     string
	Location        string
	Status          jobs_enums.JobStatus
	Hours           string
	Cost            string
	Amount          string
	UserID          *uuid.UUID
	GroupID         *uuid.UUID
	WorkerID        *uuid.UUID
	EditableByGroup bool
}

func CreateTestJob(testJob TestJob) *jobs_models.Job {
	job := &jobs_models.Job{
		Date:            testJob.Date,
		Description:     testJob.Description,
		Location:        testJob.Location,
		Status:          testJob.Status,
		HoursWorked:     decimalOr(testJob.Hours, "1"),
		CostSpent:       decimalOr(testJob.Cost, "0"),
		AmountToCharge:  decimalOr(testJob.Amount, "0"),
		UserID:          testJob.UserID,
		GroupID:         testJob.GroupID,
		WorkerID:        testJob.WorkerID,
		EditableByGroup: testJob.EditableByGroup,
	}

	if job.Status == "" {
		job.Status = jobs_enums.JobStatusPending
	}

	if job.Date.IsZero() {
		job.Date = UniqueDay()
	}

	if err := (&jobs_repositories.JobRepository{}).CreateJob(job); err != nil {
		panic(err)
	}

	return job
}

func GetJob(jobID uuid.UUID) *jobs_models.Job {
	job, err := (&jobs_repositories.JobRepository{}).GetJobByID(jobID)
	if err != nil {
		panic(err)
	}

	return job
}

func JobExists(jobID uuid.UUID) bool {
	_, err := (&jobs_repositories.JobRepository{}).GetJobByID(jobID)
	return err == nil
}

func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func decimalOr(value string, fallback string) decimal.Decimal {
	if value == "" {
		value = fallback
	}

	return decimal.RequireFromString(value)
}

// UniqueDay returns a random day far in the future so date-range tests do not
// see each other's jobs.
func UniqueDay() time.Time {
	seed := uuid.New()
	year := 2200 + int(seed[0])<<2 + int(seed[1])%4
	day := 1 + int(seed[2])%28

	return Day(year, time.Month(1+int(seed[3])%12), day)
}
