package storage

import (
	"fmt"
	"sync/atomic"

	"jobtracker/internal/util/logger"

	"gorm.io/gorm"
)

// Capabilities describe optional schema features, probed once at startup so
// request paths never retry on schema errors.
type Capabilities struct {
	// JobEnrichment: jobs can be joined with groups and workers for display names.
	JobEnrichment bool `json:"jobEnrichment"`
	// UserSoftDelete: users.deleted_at exists and can filter deleted profiles.
	UserSoftDelete bool `json:"userSoftDelete"`
}

var fullCapabilities = Capabilities{JobEnrichment: true, UserSoftDelete: true}

var detectedCapabilities atomic.Pointer[Capabilities]

const (
	jobEnrichmentProbe = `
		SELECT j.id, g.name, w.display_name, w.alias
		FROM jobs j
		LEFT JOIN groups g ON g.id = j.group_id
		LEFT JOIN workers w ON w.id = j.worker_id
		LIMIT 0`
	userSoftDeleteProbe = `SELECT deleted_at FROM users LIMIT 0`
)

// GetCapabilities returns the probed capabilities, or everything enabled when
// no probe ran yet (fresh schema from the bundled migrations).
func GetCapabilities() Capabilities {
	if caps := detectedCapabilities.Load(); caps != nil {
		return *caps
	}

	return fullCapabilities
}

func SetCapabilities(caps Capabilities) {
	detectedCapabilities.Store(&caps)
}

func DetectCapabilities(db *gorm.DB) (Capabilities, error) {
	jobEnrichment, err := probe(db, jobEnrichmentProbe)
	if err != nil {
		return Capabilities{}, fmt.Errorf("failed to probe job enrichment: %w", err)
	}

	userSoftDelete, err := probe(db, userSoftDeleteProbe)
	if err != nil {
		return Capabilities{}, fmt.Errorf("failed to probe user soft delete: %w", err)
	}

	caps := Capabilities{
		JobEnrichment:  jobEnrichment,
		UserSoftDelete: userSoftDelete,
	}
	SetCapabilities(caps)

	logger.GetLogger().Info(
		"Schema capabilities detected",
		"jobEnrichment", caps.JobEnrichment,
		"userSoftDelete", caps.UserSoftDelete,
	)

	return caps, nil
}

func probe(db *gorm.DB, sql string) (bool, error) {
	err := db.Exec(sql).Error
	if err == nil {
		return true, nil
	}

	if IsSchemaMismatch(err) {
		logger.GetLogger().Warn("Optional schema feature unavailable, degrading", "error", err)
		return false, nil
	}

	return false, err
}
