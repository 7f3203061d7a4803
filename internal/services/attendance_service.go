package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"teamboard/internal/models"
	"teamboard/internal/repository"
	"teamboard/internal/utils"
)

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("not clocked in today")
	ErrAlreadyClockedOut = errors.New("already clocked out today")
)

// AttendanceService handles clock-in/clock-out recording and the derived
// attendance metrics.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	activityRepo   repository.ActivityLogRepository
	now            func() time.Time
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, activityRepo repository.ActivityLogRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		activityRepo:   activityRepo,
		now:            time.Now,
	}
}

// ClockIn creates today's attendance record for the user. A second clock-in
// on the same calendar day is rejected and leaves state unchanged.
func (s *AttendanceService) ClockIn(userID string) (*models.Attendance, error) {
	now := s.now()

	record := &models.Attendance{
		UserID:   userID,
		WorkDate: now.Format("2006-01-02"),
		ClockIn:  now,
		Status:   models.AttendanceStatusPresent,
	}

	if err := s.attendanceRepo.CreateIfNone(record); err != nil {
		if errors.Is(err, repository.ErrAttendanceExists) {
			return nil, ErrAlreadyClockedIn
		}
		return nil, fmt.Errorf("failed to clock in: %w", err)
	}

	recordActivity(s.activityRepo, userID, "CLOCK_IN", "Clocked in", models.EntitySystem, record.ID)

	return record, nil
}

// ClockOut closes today's attendance record. The lookup keys on the current
// calendar day, so a record left open past midnight can no longer be closed.
func (s *AttendanceService) ClockOut(userID string) (*models.Attendance, error) {
	now := s.now()

	record, err := s.attendanceRepo.FindByUserAndDate(userID, now.Format("2006-01-02"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotClockedIn
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}

	if record.ClockOut != nil {
		return nil, ErrAlreadyClockedOut
	}

	total := utils.RoundHours(now.Sub(record.ClockIn).Hours())
	record.ClockOut = &now
	record.TotalHours = &total

	if err := s.attendanceRepo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to clock out: %w", err)
	}

	recordActivity(s.activityRepo, userID, "CLOCK_OUT",
		fmt.Sprintf("Clocked out after %.2f hours", total), models.EntitySystem, record.ID)

	return record, nil
}

// ListForUser returns the user's attendance records, newest date first.
func (s *AttendanceService) ListForUser(userID string) ([]models.Attendance, error) {
	records, err := s.attendanceRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// ListAll returns every attendance record, newest date first.
func (s *AttendanceService) ListAll() ([]models.Attendance, error) {
	records, err := s.attendanceRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// AttendanceSummary holds derived attendance metrics for a record set.
type AttendanceSummary struct {
	TotalRecords   int
	PresentCount   int
	TotalHours     float64
	AvgHours       float64
	AttendanceRate float64
}

// Summarize computes attendance metrics over the given records. Empty input
// yields zeros, never a division error.
func Summarize(records []models.Attendance) AttendanceSummary {
	summary := AttendanceSummary{TotalRecords: len(records)}
	if summary.TotalRecords == 0 {
		return summary
	}

	for _, record := range records {
		if record.Status == models.AttendanceStatusPresent {
			summary.PresentCount++
		}
		if record.TotalHours != nil {
			summary.TotalHours += *record.TotalHours
		}
	}

	summary.AvgHours = summary.TotalHours / float64(summary.TotalRecords)
	summary.AttendanceRate = float64(summary.PresentCount) / float64(summary.TotalRecords) * 100

	return summary
}

// SummaryForUser computes the user's attendance metrics over all their
// records.
func (s *AttendanceService) SummaryForUser(userID string) (AttendanceSummary, error) {
	records, err := s.ListForUser(userID)
	if err != nil {
		return AttendanceSummary{}, err
	}
	return Summarize(records), nil
}
