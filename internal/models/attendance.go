package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusHalfDay AttendanceStatus = "half-day"
)

// Attendance is one clock-in/clock-out record. WorkDate is the calendar day
// of the clock-in; the composite unique index enforces at most one record
// per user per day even under concurrent clock-in attempts.
type Attendance struct {
	ID         string           `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     string           `gorm:"type:varchar(36);not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	WorkDate   string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	ClockIn    time.Time        `json:"clock_in"`
	ClockOut   *time.Time       `json:"clock_out"`
	TotalHours *float64         `json:"total_hours"`
	Status     AttendanceStatus `gorm:"type:varchar(20);not null;default:'present'" json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
