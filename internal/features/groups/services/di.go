package groups_services

import (
	"jobtracker/internal/features/actors"
	groups_repositories "jobtracker/internal/features/groups/repositories"
	users_repositories "jobtracker/internal/features/users/repositories"
	users_services "jobtracker/internal/features/users/services"
)

var groupRepository = &groups_repositories.GroupRepository{}
var membershipRepository = &groups_repositories.MembershipRepository{}
var joinRequestRepository = &groups_repositories.JoinRequestRepository{}

var groupService = &GroupService{
	groupRepository:      groupRepository,
	membershipRepository: membershipRepository,
	settingsService:      users_services.GetSettingsService(),
	actorService:         actors.GetActorService(),
}

var membershipService = &MembershipService{
	membershipRepository: membershipRepository,
	userRepository:       &users_repositories.UserRepository{},
	groupService:         groupService,
	actorService:         actors.GetActorService(),
}

var joinRequestService = &JoinRequestService{
	joinRequestRepository: joinRequestRepository,
	membershipRepository:  membershipRepository,
	groupService:          groupService,
	actorService:          actors.GetActorService(),
}

func GetGroupService() *GroupService {
	return groupService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

func GetJoinRequestService() *JoinRequestService {
	return joinRequestService
}
