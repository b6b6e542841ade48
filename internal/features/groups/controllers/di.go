package groups_controllers

import (
	"jobtracker/internal/features/actors"
	groups_services "jobtracker/internal/features/groups/services"
)

var groupController = &GroupController{
	groups_services.GetGroupService(),
	actors.GetActorService(),
}

var membershipController = &MembershipController{
	groups_services.GetMembershipService(),
	actors.GetActorService(),
}

var joinRequestController = &JoinRequestController{
	groups_services.GetJoinRequestService(),
	actors.GetActorService(),
}

func GetGroupController() *GroupController {
	return groupController
}

func GetMembershipController() *MembershipController {
	return membershipController
}

func GetJoinRequestController() *JoinRequestController {
	return joinRequestController
}
