package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntityType string

const (
	EntityProject EntityType = "project"
	EntityTask    EntityType = "task"
	EntityUser    EntityType = "user"
	EntitySystem  EntityType = "system"
	EntitySprint  EntityType = "sprint"
)

// ActivityLog is append-only: records are written once and never updated or
// deleted.
type ActivityLog struct {
	ID          string     `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      string     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Action      string     `gorm:"type:varchar(50);not null" json:"action"`
	Description string     `gorm:"type:text" json:"description"`
	EntityType  EntityType `gorm:"type:varchar(20);not null" json:"entity_type"`
	EntityID    *string    `gorm:"type:varchar(36)" json:"entity_id"`
	Timestamp   time.Time  `gorm:"index" json:"timestamp"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now()
	}
	return nil
}
