package repository

import (
	"gorm.io/gorm"

	"teamboard/internal/models"
)

// GormSprintRepository is a GORM implementation of SprintRepository
type GormSprintRepository struct {
	db *gorm.DB
}

// NewSprintRepository creates a new SprintRepository
func NewSprintRepository(db *gorm.DB) SprintRepository {
	return &GormSprintRepository{db: db}
}

func (r *GormSprintRepository) Create(sprint *models.Sprint) error {
	return r.db.Create(sprint).Error
}

func (r *GormSprintRepository) FindByID(id string) (*models.Sprint, error) {
	var sprint models.Sprint
	if err := r.db.First(&sprint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (r *GormSprintRepository) List(projectID *string) ([]models.Sprint, error) {
	query := r.db.Model(&models.Sprint{})
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	var sprints []models.Sprint
	if err := query.Order("created_at ASC").Find(&sprints).Error; err != nil {
		return nil, err
	}
	return sprints, nil
}

func (r *GormSprintRepository) Update(sprint *models.Sprint) error {
	return r.db.Save(sprint).Error
}

func (r *GormSprintRepository) Delete(id string) error {
	return r.db.Delete(&models.Sprint{}, "id = ?", id).Error
}
