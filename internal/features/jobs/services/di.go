package jobs_services

import (
	jobs_repositories "jobtracker/internal/features/jobs/repositories"
)

var jobService = &JobService{
	jobRepository: &jobs_repositories.JobRepository{},
}

func GetJobService() *JobService {
	return jobService
}
