package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SprintStatus string

const (
	SprintStatusPlanning  SprintStatus = "planning"
	SprintStatusActive    SprintStatus = "active"
	SprintStatusCompleted SprintStatus = "completed"
	SprintStatusCancelled SprintStatus = "cancelled"
)

type Sprint struct {
	ID          string       `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	ProjectID   string       `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Status      SprintStatus `gorm:"type:varchar(20);not null;default:'planning'" json:"status"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	Goal        string       `gorm:"type:text" json:"goal"`
	TaskIDs     []string     `gorm:"serializer:json" json:"task_ids"`
	CreatedBy   string       `gorm:"type:varchar(36);not null" json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	StartedAt   *time.Time   `json:"started_at"`
	CompletedAt *time.Time   `json:"completed_at"`
}

func (s *Sprint) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
