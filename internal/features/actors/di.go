package actors

import (
	"time"

	users_repositories "jobtracker/internal/features/users/repositories"
	users_services "jobtracker/internal/features/users/services"
	cache_utils "jobtracker/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

var actorRepository = &ActorRepository{}

var actorService = &ActorService{
	actorRepository,
	&users_repositories.UserRepository{},
	cache_utils.NewCacheUtil[ActorContext]("jt_actor:", time.Minute),
	singleflight.Group{},
}

func GetActorService() *ActorService {
	return actorService
}

func SetupDependencies() {
	users_services.GetManagementService().SetActorInvalidator(actorService)
}
