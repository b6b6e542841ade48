package jobs_repositories

import (
	"time"

	jobs_dto "jobtracker/internal/features/jobs/dto"
	jobs_enums "jobtracker/internal/features/jobs/enums"
	jobs_models "jobtracker/internal/features/jobs/models"
	jobs_policy "jobtracker/internal/features/jobs/policy"
	"jobtracker/internal/storage"
	"jobtracker/internal/util/dates"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	enrichedJobColumns = "j.*, COALESCE(g.name, '') AS group_name, " +
		"COALESCE(w.display_name, '') AS worker_name, COALESCE(w.alias, '') AS worker_alias"
	bareJobColumns = "j.*"
)

type JobRepository struct{}

func (r *JobRepository) CreateJob(job *jobs_models.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = job.CreatedAt

	if job.Version == 0 {
		job.Version = 1
	}

	return storage.GetDb().Create(job).Error
}

func (r *JobRepository) GetJobByID(jobID uuid.UUID) (*jobs_models.Job, error) {
	var job jobs_models.Job

	if err := storage.GetDb().Where("id = ?", jobID).First(&job).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

// FindJobs runs a listing plan, newest day first. Without enrichment the rows
// come back bare and the display names stay empty.
func (r *JobRepository) FindJobs(plan jobs_policy.QueryPlan, isEnriched bool) ([]jobs_dto.JobDTO, error) {
	jobs := make([]jobs_dto.JobDTO, 0)
	if plan.Empty {
		return jobs, nil
	}

	err := r.selectJobs(isEnriched).
		Where(plan.Where(), plan.Args...).
		Order("j.date DESC, j.created_at DESC").
		Scan(&jobs).Error

	return jobs, err
}

func (r *JobRepository) FindJobDTO(jobID uuid.UUID, isEnriched bool) (*jobs_dto.JobDTO, error) {
	jobs := make([]jobs_dto.JobDTO, 0, 1)

	err := r.selectJobs(isEnriched).
		Where("j.id = ?", jobID).
		Limit(1).
		Scan(&jobs).Error
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &jobs[0], nil
}

func (r *JobRepository) GetStats(plan jobs_policy.QueryPlan) (*jobs_dto.JobStatsDTO, error) {
	var stats jobs_dto.JobStatsDTO
	if plan.Empty {
		return &stats, nil
	}

	err := storage.GetDb().
		Table("jobs j").
		Select(`
			COALESCE(SUM(j.hours_worked), 0) AS total_hours,
			COALESCE(SUM(j.cost_spent), 0) AS total_cost,
			COALESCE(SUM(j.amount_to_charge), 0) AS total_charge,
			COUNT(*) AS job_count`).
		Where(plan.Where(), plan.Args...).
		Scan(&stats).Error

	return &stats, err
}

// UpdateJob applies the column updates and bumps the version. With an expected
// version the row is only touched when it still matches; the returned count
// tells whether anything was updated.
func (r *JobRepository) UpdateJob(jobID uuid.UUID, updates map[string]any, expectedVersion *int) (int64, error) {
	updates["version"] = gorm.Expr("version + 1")
	updates["updated_at"] = time.Now().UTC()

	query := storage.GetDb().Model(&jobs_models.Job{}).Where("id = ?", jobID)
	if expectedVersion != nil {
		query = query.Where("version = ?", *expectedVersion)
	}

	result := query.Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *JobRepository) DeleteJob(jobID uuid.UUID) (int64, error) {
	result := storage.GetDb().Where("id = ?", jobID).Delete(&jobs_models.Job{})
	return result.RowsAffected, result.Error
}

// DeleteByStatusInRange removes every job with the status whose date falls in
// the inclusive range, regardless of who created it.
func (r *JobRepository) DeleteByStatusInRange(
	status jobs_enums.JobStatus,
	startDate time.Time,
	endDate time.Time,
) (int64, error) {
	result := storage.GetDb().
		Where("status = ? AND date >= ? AND date <= ?", status, dates.FormatISO(startDate), dates.FormatISO(endDate)).
		Delete(&jobs_models.Job{})

	return result.RowsAffected, result.Error
}

func (r *JobRepository) selectJobs(isEnriched bool) *gorm.DB {
	query := storage.GetDb().Table("jobs j")

	if !isEnriched {
		return query.Select(bareJobColumns)
	}

	return query.
		Select(enrichedJobColumns).
		Joins("LEFT JOIN groups g ON g.id = j.group_id").
		Joins("LEFT JOIN workers w ON w.id = j.worker_id")
}
