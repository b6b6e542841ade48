package downdetect

import (
	"fmt"

	"jobtracker/internal/storage"
	cache_utils "jobtracker/internal/util/cache"
)

type DowndetectService struct{}

// IsAvailable reports the first dependency the API cannot work without.
func (s *DowndetectService) IsAvailable() error {
	if err := storage.Ping(); err != nil {
		return fmt.Errorf("database check failed: %w", err)
	}

	if err := s.testCacheConnection(); err != nil {
		return fmt.Errorf("cache check failed: %w", err)
	}

	return nil
}

func (s *DowndetectService) testCacheConnection() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cache connection test panicked: %v", r)
		}
	}()

	cache_utils.TestCacheConnection()
	return nil
}
