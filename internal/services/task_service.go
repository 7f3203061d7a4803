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
	ErrTaskNotFound        = errors.New("task not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleEmpty          = errors.New("title cannot be empty")
	ErrNegativeHours       = errors.New("hours cannot be negative")
	ErrInvalidTransition   = errors.New("status change must follow todo → in-progress → review → done")
	ErrNotTaskAssignee     = errors.New("only the assignee can advance this task")
	ErrTagExists           = errors.New("tag already present")
	ErrTagNotFound         = errors.New("tag not present")
	ErrCommentRequired     = errors.New("comment content is required")
	ErrCommentTaskNotFound = errors.New("task for comment not found")
	ErrTaskAlreadyDone     = errors.New("task is already done")
)

// forwardTransitions is the employee self-service path. Admin updates may
// set any status directly.
var forwardTransitions = map[models.TaskStatus]models.TaskStatus{
	models.TaskStatusTodo:       models.TaskStatusInProgress,
	models.TaskStatusInProgress: models.TaskStatusReview,
	models.TaskStatusReview:     models.TaskStatusDone,
}

// TaskService handles task business logic.
type TaskService struct {
	taskRepo         repository.TaskRepository
	commentRepo      repository.CommentRepository
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityLogRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, commentRepo repository.CommentRepository, notificationRepo repository.NotificationRepository, activityRepo repository.ActivityLogRepository) *TaskService {
	return &TaskService{
		taskRepo:         taskRepo,
		commentRepo:      commentRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title          string
	Description    string
	Status         models.TaskStatus
	Priority       models.Priority
	AssignedTo     string
	ProjectID      string
	SprintID       *string
	Deadline       time.Time
	EstimatedHours float64
	Tags           []string
	CreatorID      string
}

// CreateTask creates a new task and notifies the assignee.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.EstimatedHours < 0 {
		return nil, ErrNegativeHours
	}

	status := input.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := &models.Task{
		Title:          input.Title,
		Description:    input.Description,
		Status:         status,
		Priority:       priority,
		AssignedTo:     input.AssignedTo,
		ProjectID:      input.ProjectID,
		SprintID:       input.SprintID,
		Deadline:       input.Deadline,
		EstimatedHours: input.EstimatedHours,
		Tags:           input.Tags,
		CreatedBy:      input.CreatorID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.notifyAssignee(task, "New task assigned", fmt.Sprintf("You have been assigned %q", task.Title))
	recordActivity(s.activityRepo, input.CreatorID, "CREATE_TASK",
		fmt.Sprintf("Created task %q", task.Title), models.EntityTask, task.ID)

	return task, nil
}

// UpdateTaskInput represents a partial task update.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	Status         *models.TaskStatus
	Priority       *models.Priority
	AssignedTo     *string
	SprintID       *string
	ClearSprint    bool
	Deadline       *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Actor          *models.User
}

// UpdateTask merges the provided fields onto the task. Admins may set any
// status; employees are held to the forward path.
func (s *TaskService) UpdateTask(taskID string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	previousAssignee := task.AssignedTo

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil && *input.Status != task.Status {
		if input.Actor == nil || input.Actor.Role != models.RoleAdmin {
			if forwardTransitions[task.Status] != *input.Status {
				return nil, ErrInvalidTransition
			}
		}
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.AssignedTo != nil {
		task.AssignedTo = *input.AssignedTo
	}
	if input.ClearSprint {
		task.SprintID = nil
	} else if input.SprintID != nil {
		task.SprintID = input.SprintID
	}
	if input.Deadline != nil {
		task.Deadline = *input.Deadline
	}
	if input.EstimatedHours != nil {
		if *input.EstimatedHours < 0 {
			return nil, ErrNegativeHours
		}
		task.EstimatedHours = *input.EstimatedHours
	}
	if input.ActualHours != nil {
		if *input.ActualHours < 0 {
			return nil, ErrNegativeHours
		}
		task.ActualHours = input.ActualHours
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if task.AssignedTo != previousAssignee {
		s.notifyAssignee(task, "Task reassigned", fmt.Sprintf("You have been assigned %q", task.Title))
	}

	actorID := ""
	if input.Actor != nil {
		actorID = input.Actor.ID
	}
	recordActivity(s.activityRepo, actorID, "UPDATE_TASK",
		fmt.Sprintf("Updated task %q", task.Title), models.EntityTask, task.ID)

	return task, nil
}

// AdvanceStatus moves a task one step along the forward path on behalf of
// its assignee (start, submit for review, mark done).
func (s *TaskService) AdvanceStatus(taskID string, actor *models.User) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if actor.Role != models.RoleAdmin && task.AssignedTo != actor.ID {
		return nil, ErrNotTaskAssignee
	}

	next, ok := forwardTransitions[task.Status]
	if !ok {
		return nil, ErrTaskAlreadyDone
	}

	task.Status = next
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to advance task: %w", err)
	}

	recordActivity(s.activityRepo, actor.ID, "UPDATE_TASK",
		fmt.Sprintf("Moved task %q to %s", task.Title, next), models.EntityTask, task.ID)

	return task, nil
}

// DeleteTask removes the task and cascades to its comments.
func (s *TaskService) DeleteTask(taskID, actorID string) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	recordActivity(s.activityRepo, actorID, "DELETE_TASK",
		fmt.Sprintf("Deleted task %q", task.Title), models.EntityTask, task.ID)

	return nil
}

// GetTask returns a task by ID.
func (s *TaskService) GetTask(taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ListTasks returns tasks matching the filter in insertion order.
func (s *TaskService) ListTasks(filter repository.TaskFilter) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// AddTag appends a tag. Duplicates are rejected; matching is exact and
// case-sensitive.
func (s *TaskService) AddTag(taskID, tag, actorID string) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	for _, existing := range task.Tags {
		if existing == tag {
			return nil, ErrTagExists
		}
	}
	task.Tags = append(task.Tags, tag)

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to add tag: %w", err)
	}

	recordActivity(s.activityRepo, actorID, "UPDATE_TASK",
		fmt.Sprintf("Tagged task %q with %q", task.Title, tag), models.EntityTask, task.ID)

	return task, nil
}

// RemoveTag removes a tag by exact match.
func (s *TaskService) RemoveTag(taskID, tag, actorID string) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	found := false
	tags := make([]string, 0, len(task.Tags))
	for _, existing := range task.Tags {
		if existing == tag {
			found = true
			continue
		}
		tags = append(tags, existing)
	}
	if !found {
		return nil, ErrTagNotFound
	}
	task.Tags = tags

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to remove tag: %w", err)
	}

	recordActivity(s.activityRepo, actorID, "UPDATE_TASK",
		fmt.Sprintf("Removed tag %q from task %q", tag, task.Title), models.EntityTask, task.ID)

	return task, nil
}

// AddComment attaches a comment to a task.
func (s *TaskService) AddComment(taskID, userID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrCommentRequired
	}

	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	comment := &models.Comment{
		TaskID:  taskID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListComments returns a task's comments in insertion order.
func (s *TaskService) ListComments(taskID string) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *TaskService) notifyAssignee(task *models.Task, title, message string) {
	if s.notificationRepo == nil || task.AssignedTo == "" {
		return
	}

	notification := &models.Notification{
		UserID:  task.AssignedTo,
		Title:   title,
		Message: message,
		Type:    models.NotificationInfo,
	}
	// Notification delivery is best-effort; the task mutation already
	// succeeded.
	_ = s.notificationRepo.Create(notification)
}
