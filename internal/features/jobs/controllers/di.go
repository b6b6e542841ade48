package jobs_controllers

import (
	"jobtracker/internal/features/actors"
	jobs_services "jobtracker/internal/features/jobs/services"
)

var jobController = &JobController{
	jobs_services.GetJobService(),
	actors.GetActorService(),
}

func GetJobController() *JobController {
	return jobController
}
