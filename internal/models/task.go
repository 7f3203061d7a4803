package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

type Task struct {
	ID             string     `gorm:"type:varchar(36);primarykey" json:"id"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Status         TaskStatus `gorm:"type:varchar(20);not null;default:'todo';index" json:"status"`
	Priority       Priority   `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	AssignedTo     string     `gorm:"type:varchar(36);index" json:"assigned_to"`
	ProjectID      string     `gorm:"type:varchar(36);not null;index" json:"project_id"`
	SprintID       *string    `gorm:"type:varchar(36);index" json:"sprint_id"`
	Deadline       time.Time  `json:"deadline"`
	EstimatedHours float64    `gorm:"not null;default:0" json:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours"`
	Tags           []string   `gorm:"serializer:json" json:"tags"`
	CreatedBy      string     `gorm:"type:varchar(36);not null" json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// IsOverdue reports whether the task has passed its deadline without being
// done. Derived at read time, never stored.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Deadline.Before(now) && t.Status != TaskStatusDone
}
