package workers

import (
	"time"

	"github.com/google/uuid"
)

type Worker struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	DisplayName string    `json:"displayName" gorm:"column:display_name"`
	Alias       string    `json:"alias"       gorm:"column:alias"`
	Phone       string    `json:"phone"       gorm:"column:phone"`
	Notes       string    `json:"notes"       gorm:"column:notes"`
	IsActive    bool      `json:"isActive"    gorm:"column:is_active"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Worker) TableName() string {
	return "workers"
}
