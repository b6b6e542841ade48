package users_models

import "github.com/google/uuid"

type UsersSettings struct {
	ID uuid.UUID `json:"id"                            gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	// any visitor can register through the sign up form
	IsAllowExternalRegistrations bool `json:"isAllowExternalRegistrations"  gorm:"column:is_allow_external_registrations"`
	// regular users can create their own groups
	IsMemberAllowedToCreateGroups bool `json:"isMemberAllowedToCreateGroups" gorm:"column:is_member_allowed_to_create_groups"`
}

func (UsersSettings) TableName() string {
	return "users_settings"
}
