package users_enums

// Permission is a feature key an admin grants to regular users.
type Permission string

const (
	PermissionJobs    Permission = "jobs"
	PermissionGroups  Permission = "groups"
	PermissionBilling Permission = "billing"
	PermissionAudit   Permission = "audit"
)

func AllPermissions() []Permission {
	return []Permission{PermissionJobs, PermissionGroups, PermissionBilling, PermissionAudit}
}

func (p Permission) IsValid() bool {
	switch p {
	case PermissionJobs, PermissionGroups, PermissionBilling, PermissionAudit:
		return true
	default:
		return false
	}
}
