package users_testing

import (
	users_repositories "jobtracker/internal/features/users/repositories"
)

func EnableExternalRegistrations() {
	updateUsersSetting("is_allow_external_registrations", true)
}

func DisableExternalRegistrations() {
	updateUsersSetting("is_allow_external_registrations", false)
}

func EnableMemberGroupCreation() {
	updateUsersSetting("is_member_allowed_to_create_groups", true)
}

func DisableMemberGroupCreation() {
	updateUsersSetting("is_member_allowed_to_create_groups", false)
}

func ResetSettingsToDefaults() {
	EnableExternalRegistrations()
	EnableMemberGroupCreation()
}

func updateUsersSetting(column string, value bool) {
	repository := &users_repositories.UsersSettingsRepository{}
	settings, err := repository.GetSettings()
	if err != nil {
		panic(err)
	}

	switch column {
	case "is_allow_external_registrations":
		settings.IsAllowExternalRegistrations = value
	case "is_member_allowed_to_create_groups":
		settings.IsMemberAllowedToCreateGroups = value
	}

	if err := repository.UpdateSettings(settings); err != nil {
		panic(err)
	}
}
