package system_healthcheck

type HealthStatus string

const (
	HealthStatusAvailable   HealthStatus = "available"
	HealthStatusUnavailable HealthStatus = "unavailable"
)

type ResourceUsageDTO struct {
	TotalBytes  uint64  `json:"totalBytes"`
	UsedBytes   uint64  `json:"usedBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

type HealthcheckResponseDTO struct {
	Status HealthStatus      `json:"status"`
	Error  string            `json:"error,omitempty"`
	Disk   *ResourceUsageDTO `json:"disk,omitempty"`
	Memory *ResourceUsageDTO `json:"memory,omitempty"`
}
