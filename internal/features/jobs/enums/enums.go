package jobs_enums

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusArchived  JobStatus = "archived"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusCompleted, JobStatusArchived:
		return true
	default:
		return false
	}
}

// Label is the Spanish display name used in exports and shared summaries.
func (s JobStatus) Label() string {
	switch s {
	case JobStatusCompleted:
		return "Completado"
	case JobStatusArchived:
		return "Archivado"
	default:
		return "Pendiente"
	}
}
