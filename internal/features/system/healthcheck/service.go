package system_healthcheck

import (
	"errors"

	"jobtracker/internal/config"
	"jobtracker/internal/downdetect"
	"jobtracker/internal/util/logger"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct {
	downdetectService *downdetect.DowndetectService
	diskPath          string
}

var errShuttingDown = errors.New("server is shutting down")

// Check probes the database and cache, and reports unavailable once shutdown
// starts. Host usage is best effort: a failing probe leaves its section empty
// without marking the service unavailable.
func (s *HealthcheckService) Check() *HealthcheckResponseDTO {
	response := &HealthcheckResponseDTO{
		Status: HealthStatusAvailable,
		Disk:   s.diskUsage(),
		Memory: s.memoryUsage(),
	}

	err := s.downdetectService.IsAvailable()
	if err == nil && config.IsShouldShutdown() {
		err = errShuttingDown
	}

	if err != nil {
		logger.GetLogger().Error("health check failed", "error", err)

		response.Status = HealthStatusUnavailable
		response.Error = err.Error()
	}

	return response
}

func (s *HealthcheckService) diskUsage() *ResourceUsageDTO {
	usage, err := disk.Usage(s.diskPath)
	if err != nil {
		logger.GetLogger().Warn("failed to read disk usage", "path", s.diskPath, "error", err)
		return nil
	}

	return &ResourceUsageDTO{
		TotalBytes:  usage.Total,
		UsedBytes:   usage.Used,
		UsedPercent: usage.UsedPercent,
	}
}

func (s *HealthcheckService) memoryUsage() *ResourceUsageDTO {
	usage, err := mem.VirtualMemory()
	if err != nil {
		logger.GetLogger().Warn("failed to read memory usage", "error", err)
		return nil
	}

	return &ResourceUsageDTO{
		TotalBytes:  usage.Total,
		UsedBytes:   usage.Used,
		UsedPercent: usage.UsedPercent,
	}
}
