package workers

import (
	"jobtracker/internal/features/actors"
)

var workerRepository = &WorkerRepository{}
var workerService = &WorkerService{
	workerRepository: workerRepository,
}
var workerController = &WorkerController{
	workerService: workerService,
	actorService:  actors.GetActorService(),
}

func GetWorkerService() *WorkerService {
	return workerService
}

func GetWorkerController() *WorkerController {
	return workerController
}
