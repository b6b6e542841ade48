package workers

import (
	"time"

	"jobtracker/internal/storage"

	"github.com/google/uuid"
)

type WorkerRepository struct{}

func (r *WorkerRepository) Create(worker *Worker) error {
	if worker.ID == uuid.Nil {
		worker.ID = uuid.New()
	}
	if worker.CreatedAt.IsZero() {
		worker.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(worker).Error
}

func (r *WorkerRepository) GetByID(workerID uuid.UUID) (*Worker, error) {
	var worker Worker

	if err := storage.GetDb().Where("id = ?", workerID).First(&worker).Error; err != nil {
		return nil, err
	}

	return &worker, nil
}

// Find lists workers newest first. The search matches display name, alias and
// phone case-insensitively.
func (r *WorkerRepository) Find(search string, isIncludeInactive bool) ([]Worker, error) {
	workers := make([]Worker, 0)

	query := storage.GetDb().Model(&Worker{})

	if !isIncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	if search != "" {
		pattern := "%" + storage.EscapeLike(search) + "%"
		query = query.Where(
			"(display_name ILIKE ? OR alias ILIKE ? OR phone ILIKE ?)",
			pattern,
			pattern,
			pattern,
		)
	}

	err := query.Order("created_at DESC").Find(&workers).Error
	return workers, err
}

func (r *WorkerRepository) Update(worker *Worker) error {
	return storage.GetDb().
		Model(&Worker{}).
		Where("id = ?", worker.ID).
		Updates(map[string]any{
			"display_name": worker.DisplayName,
			"alias":        worker.Alias,
			"phone":        worker.Phone,
			"notes":        worker.Notes,
			"is_active":    worker.IsActive,
		}).Error
}

func (r *WorkerRepository) Delete(workerID uuid.UUID) (int64, error) {
	result := storage.GetDb().Where("id = ?", workerID).Delete(&Worker{})
	return result.RowsAffected, result.Error
}

func (r *WorkerRepository) Deactivate(workerID uuid.UUID) error {
	return storage.GetDb().
		Model(&Worker{}).
		Where("id = ?", workerID).
		Update("is_active", false).Error
}
