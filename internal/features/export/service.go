package export

import (
	"time"

	"jobtracker/internal/features/actors"
	jobs_dto "jobtracker/internal/features/jobs/dto"
	jobs_services "jobtracker/internal/features/jobs/services"
	"jobtracker/internal/util/app_errors"
)

var ErrNothingToExport = app_errors.New(app_errors.ErrNotFound, "no jobs to export")

type ExportFile struct {
	FileName string
	Content  []byte
	JobCount int
}

type ExportService struct {
	jobService *jobs_services.JobService
}

// ExportJobs builds a workbook from exactly the jobs ListJobs would return
// for the same actor and filters.
func (s *ExportService) ExportJobs(
	actor *actors.ActorContext,
	startDate time.Time,
	endDate time.Time,
	filter jobs_dto.JobFilter,
) (*ExportFile, error) {
	jobs, err := s.jobService.ListJobs(actor, startDate, endDate, filter)
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		return nil, ErrNothingToExport
	}

	content, err := WriteWorkbook(BuildRows(jobs, startDate, endDate))
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		FileName: FileName(startDate, endDate),
		Content:  content,
		JobCount: len(jobs),
	}, nil
}
