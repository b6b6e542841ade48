package users_controllers

import (
	users_services "jobtracker/internal/features/users/services"
	"jobtracker/internal/util/rate_limit"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	userService:        users_services.GetUserService(),
	signinLimiter:      rate.NewLimiter(rate.Limit(3), 3), // 3 RPS with burst of 3
	signinEmailLimiter: rate_limit.NewRateLimiter("signin", 10, 5),
}

var settingsController = &SettingsController{
	settingsService: users_services.GetSettingsService(),
}

var managementController = &ManagementController{
	managementService: users_services.GetManagementService(),
}

var deleteUserController = &DeleteUserController{
	userService:       users_services.GetUserService(),
	managementService: users_services.GetManagementService(),
}

func GetUserController() *UserController {
	return userController
}

func GetSettingsController() *SettingsController {
	return settingsController
}

func GetManagementController() *ManagementController {
	return managementController
}

func GetDeleteUserController() *DeleteUserController {
	return deleteUserController
}
