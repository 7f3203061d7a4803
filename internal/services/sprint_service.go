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
	ErrSprintNotFound     = errors.New("sprint not found")
	ErrSprintNameRequired = errors.New("sprint name is required")
	ErrSprintNotPlanning  = errors.New("only a planning sprint can be started")
	ErrSprintNotActive    = errors.New("only an active sprint can be completed")
	ErrSprintFinished     = errors.New("a completed or cancelled sprint cannot be cancelled")
	ErrTaskOutsideProject = errors.New("task belongs to a different project")
)

// SprintService handles sprint lifecycle and membership.
type SprintService struct {
	sprintRepo   repository.SprintRepository
	taskRepo     repository.TaskRepository
	activityRepo repository.ActivityLogRepository
}

// NewSprintService creates a new SprintService.
func NewSprintService(sprintRepo repository.SprintRepository, taskRepo repository.TaskRepository, activityRepo repository.ActivityLogRepository) *SprintService {
	return &SprintService{
		sprintRepo:   sprintRepo,
		taskRepo:     taskRepo,
		activityRepo: activityRepo,
	}
}

// CreateSprintInput represents input for creating a sprint.
type CreateSprintInput struct {
	Name        string
	Description string
	ProjectID   string
	StartDate   time.Time
	EndDate     time.Time
	Goal        string
	TaskIDs     []string
	CreatorID   string
}

// CreateSprint creates a new sprint in planning state. Member tasks must
// belong to the sprint's project.
func (s *SprintService) CreateSprint(input CreateSprintInput) (*models.Sprint, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrSprintNameRequired
	}

	if err := s.ensureTasksInProject(input.TaskIDs, input.ProjectID); err != nil {
		return nil, err
	}

	sprint := &models.Sprint{
		Name:        input.Name,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		Status:      models.SprintStatusPlanning,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Goal:        input.Goal,
		TaskIDs:     input.TaskIDs,
		CreatedBy:   input.CreatorID,
	}

	if err := s.sprintRepo.Create(sprint); err != nil {
		return nil, fmt.Errorf("failed to create sprint: %w", err)
	}

	recordActivity(s.activityRepo, input.CreatorID, "CREATE_SPRINT",
		fmt.Sprintf("Created sprint %q", sprint.Name), models.EntitySprint, sprint.ID)

	return sprint, nil
}

// UpdateSprintInput represents a partial sprint update.
type UpdateSprintInput struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Goal        *string
	TaskIDs     *[]string
	ActorID     string
}

// UpdateSprint merges the provided fields onto the sprint. Status is not
// updatable here; lifecycle moves go through Start, Complete and Cancel.
func (s *SprintService) UpdateSprint(sprintID string, input UpdateSprintInput) (*models.Sprint, error) {
	sprint, err := s.GetSprint(sprintID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrSprintNameRequired
		}
		sprint.Name = *input.Name
	}
	if input.Description != nil {
		sprint.Description = *input.Description
	}
	if input.StartDate != nil {
		sprint.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		sprint.EndDate = *input.EndDate
	}
	if input.Goal != nil {
		sprint.Goal = *input.Goal
	}
	if input.TaskIDs != nil {
		if err := s.ensureTasksInProject(*input.TaskIDs, sprint.ProjectID); err != nil {
			return nil, err
		}
		sprint.TaskIDs = *input.TaskIDs
	}

	if err := s.sprintRepo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to update sprint: %w", err)
	}

	recordActivity(s.activityRepo, input.ActorID, "UPDATE_SPRINT",
		fmt.Sprintf("Updated sprint %q", sprint.Name), models.EntitySprint, sprint.ID)

	return sprint, nil
}

// StartSprint moves a planning sprint to active and stamps StartedAt.
func (s *SprintService) StartSprint(sprintID, actorID string) (*models.Sprint, error) {
	sprint, err := s.GetSprint(sprintID)
	if err != nil {
		return nil, err
	}

	if sprint.Status != models.SprintStatusPlanning {
		return nil, ErrSprintNotPlanning
	}

	now := time.Now()
	sprint.Status = models.SprintStatusActive
	sprint.StartedAt = &now

	if err := s.sprintRepo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to start sprint: %w", err)
	}

	recordActivity(s.activityRepo, actorID, "START_SPRINT",
		fmt.Sprintf("Started sprint %q", sprint.Name), models.EntitySprint, sprint.ID)

	return sprint, nil
}

// CompleteSprint moves an active sprint to completed and stamps CompletedAt.
func (s *SprintService) CompleteSprint(sprintID, actorID string) (*models.Sprint, error) {
	sprint, err := s.GetSprint(sprintID)
	if err != nil {
		return nil, err
	}

	if sprint.Status != models.SprintStatusActive {
		return nil, ErrSprintNotActive
	}

	now := time.Now()
	sprint.Status = models.SprintStatusCompleted
	sprint.CompletedAt = &now

	if err := s.sprintRepo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to complete sprint: %w", err)
	}

	recordActivity(s.activityRepo, actorID, "COMPLETE_SPRINT",
		fmt.Sprintf("Completed sprint %q", sprint.Name), models.EntitySprint, sprint.ID)

	return sprint, nil
}

// CancelSprint cancels a planning or active sprint.
func (s *SprintService) CancelSprint(sprintID, actorID string) (*models.Sprint, error) {
	sprint, err := s.GetSprint(sprintID)
	if err != nil {
		return nil, err
	}

	if sprint.Status != models.SprintStatusPlanning && sprint.Status != models.SprintStatusActive {
		return nil, ErrSprintFinished
	}

	sprint.Status = models.SprintStatusCancelled

	if err := s.sprintRepo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to cancel sprint: %w", err)
	}

	recordActivity(s.activityRepo, actorID, "CANCEL_SPRINT",
		fmt.Sprintf("Cancelled sprint %q", sprint.Name), models.EntitySprint, sprint.ID)

	return sprint, nil
}

// DeleteSprint removes a sprint. Member tasks survive; only the membership
// list goes away.
func (s *SprintService) DeleteSprint(sprintID, actorID string) error {
	sprint, err := s.GetSprint(sprintID)
	if err != nil {
		return err
	}

	if err := s.sprintRepo.Delete(sprintID); err != nil {
		return fmt.Errorf("failed to delete sprint: %w", err)
	}

	recordActivity(s.activityRepo, actorID, "DELETE_SPRINT",
		fmt.Sprintf("Deleted sprint %q", sprint.Name), models.EntitySprint, sprint.ID)

	return nil
}

// GetSprint returns a sprint by ID.
func (s *SprintService) GetSprint(sprintID string) (*models.Sprint, error) {
	sprint, err := s.sprintRepo.FindByID(sprintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSprintNotFound
		}
		return nil, fmt.Errorf("failed to find sprint: %w", err)
	}
	return sprint, nil
}

// ListSprints returns sprints, optionally scoped to a project.
func (s *SprintService) ListSprints(projectID *string) ([]models.Sprint, error) {
	sprints, err := s.sprintRepo.List(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sprints: %w", err)
	}
	return sprints, nil
}

// Progress returns the sprint's completion percentage: done tasks over
// resolvable member tasks. Dangling task IDs are ignored; an empty set is
// 0%, never a division error.
func (s *SprintService) Progress(sprint *models.Sprint) (float64, error) {
	tasks, err := s.taskRepo.FindByIDs(sprint.TaskIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve sprint tasks: %w", err)
	}

	if len(tasks) == 0 {
		return 0, nil
	}

	done := 0
	for _, task := range tasks {
		if task.Status == models.TaskStatusDone {
			done++
		}
	}

	return float64(done) / float64(len(tasks)) * 100, nil
}

// ensureTasksInProject verifies every resolvable task ID belongs to the
// project. IDs that resolve to nothing are tolerated as dangling references.
func (s *SprintService) ensureTasksInProject(taskIDs []string, projectID string) error {
	tasks, err := s.taskRepo.FindByIDs(taskIDs)
	if err != nil {
		return fmt.Errorf("failed to resolve tasks: %w", err)
	}
	for _, task := range tasks {
		if task.ProjectID != projectID {
			return ErrTaskOutsideProject
		}
	}
	return nil
}
