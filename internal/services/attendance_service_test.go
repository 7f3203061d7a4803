package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

func setupAttendanceService(t *testing.T) *AttendanceService {
	t.Helper()

	db := newTestDB(t)
	return NewAttendanceService(
		repository.NewAttendanceRepository(db),
		repository.NewActivityLogRepository(db),
	)
}

func TestAttendanceService_ClockInOut(t *testing.T) {
	svc := setupAttendanceService(t)

	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clockIn }

	record, err := svc.ClockIn("user-1")
	require.NoError(t, err)
	require.Equal(t, "2025-03-10", record.WorkDate)
	require.Equal(t, models.AttendanceStatusPresent, record.Status)
	require.Nil(t, record.ClockOut)

	svc.now = func() time.Time { return clockIn.Add(8*time.Hour + 30*time.Minute) }

	record, err = svc.ClockOut("user-1")
	require.NoError(t, err)
	require.NotNil(t, record.ClockOut)
	require.NotNil(t, record.TotalHours)
	require.InDelta(t, 8.5, *record.TotalHours, 0.001)
}

func TestAttendanceService_DoubleClockIn(t *testing.T) {
	svc := setupAttendanceService(t)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

	_, err := svc.ClockIn("user-1")
	require.NoError(t, err)

	_, err = svc.ClockIn("user-1")
	require.ErrorIs(t, err, ErrAlreadyClockedIn)

	records, err := svc.ListForUser("user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestAttendanceService_ClockInNextDay(t *testing.T) {
	svc := setupAttendanceService(t)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

	_, err := svc.ClockIn("user-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC) }

	record, err := svc.ClockIn("user-1")
	require.NoError(t, err)
	require.Equal(t, "2025-03-11", record.WorkDate)
}

func TestAttendanceService_ClockOutErrors(t *testing.T) {
	svc := setupAttendanceService(t)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC) }

	_, err := svc.ClockOut("user-1")
	require.ErrorIs(t, err, ErrNotClockedIn)

	_, err = svc.ClockIn("user-1")
	require.NoError(t, err)
	_, err = svc.ClockOut("user-1")
	require.NoError(t, err)

	_, err = svc.ClockOut("user-1")
	require.ErrorIs(t, err, ErrAlreadyClockedOut)
}

func TestAttendanceService_HoursRounding(t *testing.T) {
	svc := setupAttendanceService(t)

	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clockIn }

	_, err := svc.ClockIn("user-1")
	require.NoError(t, err)

	// 7h 25m = 7.41666... hours, rounded to two decimals.
	svc.now = func() time.Time { return clockIn.Add(7*time.Hour + 25*time.Minute) }

	record, err := svc.ClockOut("user-1")
	require.NoError(t, err)
	require.InDelta(t, 7.42, *record.TotalHours, 0.001)
}

func TestSummarize(t *testing.T) {
	hours := func(h float64) *float64 { return &h }

	records := []models.Attendance{
		{Status: models.AttendanceStatusPresent, TotalHours: hours(8)},
		{Status: models.AttendanceStatusPresent, TotalHours: hours(6)},
		{Status: models.AttendanceStatusAbsent},
		{Status: models.AttendanceStatusPresent},
	}

	summary := Summarize(records)
	require.Equal(t, 4, summary.TotalRecords)
	require.Equal(t, 3, summary.PresentCount)
	require.InDelta(t, 14.0, summary.TotalHours, 0.001)
	require.InDelta(t, 3.5, summary.AvgHours, 0.001)
	require.InDelta(t, 75.0, summary.AttendanceRate, 0.001)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	require.Zero(t, summary.TotalRecords)
	require.Zero(t, summary.AvgHours)
	require.Zero(t, summary.AttendanceRate)
}
