package export

import (
	"jobtracker/internal/features/actors"
	jobs_services "jobtracker/internal/features/jobs/services"
)

var exportService = &ExportService{
	jobService: jobs_services.GetJobService(),
}
var exportController = &ExportController{
	exportService: exportService,
	actorService:  actors.GetActorService(),
}

func GetExportService() *ExportService {
	return exportService
}

func GetExportController() *ExportController {
	return exportController
}
