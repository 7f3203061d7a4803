package dto

import (
	"time"

	"teamboard/internal/models"
)

// UnknownProjectName is reported when a sprint references a project that no
// longer exists. Dangling references resolve to a sentinel, never an error.
const UnknownProjectName = "Unknown Project"

// SprintDTO represents a sprint in API responses. Progress and ProjectName
// are derived at read time.
type SprintDTO struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ProjectID   string              `json:"project_id"`
	ProjectName string              `json:"project_name"`
	Status      models.SprintStatus `json:"status"`
	StartDate   time.Time           `json:"start_date"`
	EndDate     time.Time           `json:"end_date"`
	Goal        string              `json:"goal"`
	TaskIDs     []string            `json:"task_ids"`
	Progress    float64             `json:"progress"`
	CreatedBy   string              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	StartedAt   *time.Time          `json:"started_at,omitempty"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
}

// ToSprintDTO converts a Sprint model to SprintDTO with derived fields.
func ToSprintDTO(sprint models.Sprint, projectName string, progress float64) SprintDTO {
	if projectName == "" {
		projectName = UnknownProjectName
	}
	taskIDs := sprint.TaskIDs
	if taskIDs == nil {
		taskIDs = []string{}
	}
	return SprintDTO{
		ID:          sprint.ID,
		Name:        sprint.Name,
		Description: sprint.Description,
		ProjectID:   sprint.ProjectID,
		ProjectName: projectName,
		Status:      sprint.Status,
		StartDate:   sprint.StartDate,
		EndDate:     sprint.EndDate,
		Goal:        sprint.Goal,
		TaskIDs:     taskIDs,
		Progress:    progress,
		CreatedBy:   sprint.CreatedBy,
		CreatedAt:   sprint.CreatedAt,
		UpdatedAt:   sprint.UpdatedAt,
		StartedAt:   sprint.StartedAt,
		CompletedAt: sprint.CompletedAt,
	}
}
