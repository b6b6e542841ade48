package workers_testing

import (
	"jobtracker/internal/features/workers"

	"github.com/google/uuid"
)

func CreateTestWorker(displayName string) *workers.Worker {
	worker := &workers.Worker{
		DisplayName: displayName + " " + uuid.New().String()[:8],
		IsActive:    true,
	}

	if err := (&workers.WorkerRepository{}).Create(worker); err != nil {
		panic(err)
	}

	return worker
}
