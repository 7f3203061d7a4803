package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectNameRequired = errors.New("project name is required")
	ErrInvalidProgress     = errors.New("progress must be between 0 and 100")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo  repository.ProjectRepository
	taskRepo     repository.TaskRepository
	activityRepo repository.ActivityLogRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, activityRepo repository.ActivityLogRepository) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		taskRepo:     taskRepo,
		activityRepo: activityRepo,
	}
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      models.ProjectStatus
	StartDate   time.Time
	EndDate     time.Time
	Deadline    time.Time
	Priority    models.Priority
	TeamMembers []string
	CreatorID   string
}

// CreateProject creates a new project.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrProjectNameRequired
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Deadline:    input.Deadline,
		Priority:    priority,
		TeamMembers: input.TeamMembers,
		CreatedBy:   input.CreatorID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	recordActivity(s.activityRepo, input.CreatorID, "CREATE_PROJECT",
		fmt.Sprintf("Created project %q", project.Name), models.EntityProject, project.ID)

	return project, nil
}

// UpdateProjectInput represents a partial project update.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *models.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Deadline    *time.Time
	Progress    *int
	Priority    *models.Priority
	TeamMembers *[]string
	ActorID     string
}

// UpdateProject merges the provided fields onto the project and re-stamps
// UpdatedAt.
func (s *ProjectService) UpdateProject(projectID string, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrProjectNameRequired
		}
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = *input.EndDate
	}
	if input.Deadline != nil {
		project.Deadline = *input.Deadline
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, ErrInvalidProgress
		}
		project.Progress = *input.Progress
	}
	if input.Priority != nil {
		project.Priority = *input.Priority
	}
	if input.TeamMembers != nil {
		project.TeamMembers = *input.TeamMembers
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	recordActivity(s.activityRepo, input.ActorID, "UPDATE_PROJECT",
		fmt.Sprintf("Updated project %q", project.Name), models.EntityProject, project.ID)

	return project, nil
}

// DeleteProject removes the project and cascades to its tasks and their
// comments.
func (s *ProjectService) DeleteProject(projectID, actorID string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	recordActivity(s.activityRepo, actorID, "DELETE_PROJECT",
		fmt.Sprintf("Deleted project %q and its tasks", project.Name), models.EntityProject, project.ID)

	return nil
}

// GetProject returns a project by ID.
func (s *ProjectService) GetProject(projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// ListProjects returns all projects in insertion order.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ProjectStats are derived task counts for a single project.
type ProjectStats struct {
	TotalTasks     int
	CompletedTasks int
	OverdueTasks   int
	CompletionRate float64
}

// GetProjectStats recomputes task counts for the project at call time.
func (s *ProjectService) GetProjectStats(projectID string) (*ProjectStats, error) {
	if _, err := s.GetProject(projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(repository.TaskFilter{ProjectID: &projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}

	stats := &ProjectStats{TotalTasks: len(tasks)}
	now := time.Now()
	for _, task := range tasks {
		if task.Status == models.TaskStatusDone {
			stats.CompletedTasks++
		}
		if task.IsOverdue(now) {
			stats.OverdueTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}

	return stats, nil
}
