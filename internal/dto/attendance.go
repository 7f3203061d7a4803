package dto

import (
	"time"

	"teamboard/internal/models"
	"teamboard/internal/services"
)

// AttendanceDTO represents an attendance record in API responses
type AttendanceDTO struct {
	ID         string                  `json:"id"`
	UserID     string                  `json:"user_id"`
	Date       string                  `json:"date"`
	ClockIn    time.Time               `json:"clock_in"`
	ClockOut   *time.Time              `json:"clock_out,omitempty"`
	TotalHours *float64                `json:"total_hours,omitempty"`
	Status     models.AttendanceStatus `json:"status"`
}

// AttendanceSummaryDTO represents derived attendance metrics
type AttendanceSummaryDTO struct {
	TotalRecords   int     `json:"total_records"`
	PresentCount   int     `json:"present_count"`
	TotalHours     float64 `json:"total_hours"`
	AvgHours       float64 `json:"avg_hours"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// ToAttendanceDTO converts an Attendance model to AttendanceDTO
func ToAttendanceDTO(record models.Attendance) AttendanceDTO {
	return AttendanceDTO{
		ID:         record.ID,
		UserID:     record.UserID,
		Date:       record.WorkDate,
		ClockIn:    record.ClockIn,
		ClockOut:   record.ClockOut,
		TotalHours: record.TotalHours,
		Status:     record.Status,
	}
}

// ToAttendanceDTOs converts a slice of Attendance models
func ToAttendanceDTOs(records []models.Attendance) []AttendanceDTO {
	dtos := make([]AttendanceDTO, len(records))
	for i, record := range records {
		dtos[i] = ToAttendanceDTO(record)
	}
	return dtos
}

// ToAttendanceSummaryDTO converts derived attendance metrics
func ToAttendanceSummaryDTO(summary services.AttendanceSummary) AttendanceSummaryDTO {
	return AttendanceSummaryDTO{
		TotalRecords:   summary.TotalRecords,
		PresentCount:   summary.PresentCount,
		TotalHours:     summary.TotalHours,
		AvgHours:       summary.AvgHours,
		AttendanceRate: summary.AttendanceRate,
	}
}
