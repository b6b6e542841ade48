package workers

type GetWorkersRequest struct {
	Search          string `form:"search"          json:"search"`
	IncludeInactive bool   `form:"includeInactive" json:"includeInactive"`
}

type GetWorkersResponse struct {
	Workers []Worker `json:"workers"`
}

type CreateWorkerRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
	Alias       string `json:"alias"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
}

type UpdateWorkerRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
	Alias       string `json:"alias"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
	IsActive    *bool  `json:"isActive"`
}

// DeleteWorkerResponse reports whether the worker was only deactivated
// because jobs still reference it.
type DeleteWorkerResponse struct {
	SoftDeleted bool `json:"softDeleted"`
}
