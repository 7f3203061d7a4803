package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"teamboard/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestAttendanceRepository_CreateIfNone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	countQuery := regexp.QuoteMeta(
		"SELECT count(*) FROM `attendances` WHERE user_id = ? AND work_date = ?")

	mock.ExpectBegin()
	mock.ExpectQuery(countQuery).
		WithArgs("user-1", "2025-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `attendances`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	record := &models.Attendance{
		UserID:   "user-1",
		WorkDate: "2025-03-10",
		ClockIn:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Status:   models.AttendanceStatusPresent,
	}
	require.NoError(t, repo.CreateIfNone(record))
	require.NotEmpty(t, record.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_CreateIfNone_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	countQuery := regexp.QuoteMeta(
		"SELECT count(*) FROM `attendances` WHERE user_id = ? AND work_date = ?")

	// An existing record rolls the transaction back without inserting.
	mock.ExpectBegin()
	mock.ExpectQuery(countQuery).
		WithArgs("user-1", "2025-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	record := &models.Attendance{
		UserID:   "user-1",
		WorkDate: "2025-03-10",
		ClockIn:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Status:   models.AttendanceStatusPresent,
	}
	err := repo.CreateIfNone(record)
	require.ErrorIs(t, err, ErrAttendanceExists)
	require.NoError(t, mock.ExpectationsWereMet())
}
