package repository

import (
	"errors"

	"gorm.io/gorm"

	"teamboard/internal/models"
)

// ErrAttendanceExists is returned when a record already exists for the same
// user and work date.
var ErrAttendanceExists = errors.New("attendance repository: record already exists for date")

// GormAttendanceRepository is a GORM implementation of AttendanceRepository
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// CreateIfNone creates the record unless the user already has one for the
// work date.
func (r *GormAttendanceRepository) CreateIfNone(record *models.Attendance) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Attendance{}).
			Where("user_id = ? AND work_date = ?", record.UserID, record.WorkDate).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAttendanceExists
		}
		return tx.Create(record).Error
	})
}

func (r *GormAttendanceRepository) FindByUserAndDate(userID, workDate string) (*models.Attendance, error) {
	var record models.Attendance
	if err := r.db.Where("user_id = ? AND work_date = ?", userID, workDate).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *GormAttendanceRepository) ListByUser(userID string) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := r.db.Where("user_id = ?", userID).
		Order("work_date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormAttendanceRepository) List() ([]models.Attendance, error) {
	var records []models.Attendance
	if err := r.db.Order("work_date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormAttendanceRepository) Update(record *models.Attendance) error {
	return r.db.Save(record).Error
}
