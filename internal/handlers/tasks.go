package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teamboard/internal/dto"
	apierrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/repository"
	"teamboard/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
	authService *services.AuthService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, authService *services.AuthService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		authService: authService,
	}
}

// ListTasks returns tasks matching the query filters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := repository.TaskFilter{}

	if projectID := c.Query("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	if assignedTo := c.Query("assigned_to"); assignedTo != "" {
		filter.AssignedTo = &assignedTo
	}
	if sprintID := c.Query("sprint_id"); sprintID != "" {
		filter.SprintID = &sprintID
	}
	if status := c.Query("status"); status != "" {
		taskStatus := models.TaskStatus(status)
		filter.Status = &taskStatus
	}

	tasks, err := h.taskService.ListTasks(filter)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// GetTask returns one task.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Param("id"))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title          string            `json:"title" binding:"required"`
		Description    string            `json:"description"`
		Status         models.TaskStatus `json:"status" binding:"omitempty,oneof=todo in-progress review done"`
		Priority       models.Priority   `json:"priority" binding:"omitempty,oneof=low medium high critical"`
		AssignedTo     string            `json:"assigned_to"`
		ProjectID      string            `json:"project_id" binding:"required"`
		SprintID       *string           `json:"sprint_id"`
		Deadline       time.Time         `json:"deadline"`
		EstimatedHours float64           `json:"estimated_hours"`
		Tags           []string          `json:"tags"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		AssignedTo:     req.AssignedTo,
		ProjectID:      req.ProjectID,
		SprintID:       req.SprintID,
		Deadline:       req.Deadline,
		EstimatedHours: req.EstimatedHours,
		Tags:           req.Tags,
		CreatorID:      actor.ID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update. Status changes by employees must
// follow the forward path; admins may set any status.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	type UpdateTaskRequest struct {
		Title          *string            `json:"title"`
		Description    *string            `json:"description"`
		Status         *models.TaskStatus `json:"status" binding:"omitempty,oneof=todo in-progress review done"`
		Priority       *models.Priority   `json:"priority" binding:"omitempty,oneof=low medium high critical"`
		AssignedTo     *string            `json:"assigned_to"`
		SprintID       *string            `json:"sprint_id"`
		ClearSprint    bool               `json:"clear_sprint"`
		Deadline       *time.Time         `json:"deadline"`
		EstimatedHours *float64           `json:"estimated_hours"`
		ActualHours    *float64           `json:"actual_hours"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), services.UpdateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		AssignedTo:     req.AssignedTo,
		SprintID:       req.SprintID,
		ClearSprint:    req.ClearSprint,
		Deadline:       req.Deadline,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		Actor:          actor,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// AdvanceTask moves a task one step along the forward path (start, submit
// for review, mark done).
func (h *TaskHandler) AdvanceTask(c *gin.Context) {
	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	task, err := h.taskService.AdvanceStatus(c.Param("id"), actor)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task and its comments.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Param("id"), actor.ID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// AddTag appends a tag to a task.
func (h *TaskHandler) AddTag(c *gin.Context) {
	type TagRequest struct {
		Tag string `json:"tag" binding:"required"`
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	task, err := h.taskService.AddTag(c.Param("id"), req.Tag, actor.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// RemoveTag removes a tag from a task.
func (h *TaskHandler) RemoveTag(c *gin.Context) {
	type TagRequest struct {
		Tag string `json:"tag" binding:"required"`
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	task, err := h.taskService.RemoveTag(c.Param("id"), req.Tag, actor.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ListComments returns a task's comments.
func (h *TaskHandler) ListComments(c *gin.Context) {
	comments, err := h.taskService.ListComments(c.Param("id"))
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": dto.ToCommentDTOs(comments)})
}

// AddComment attaches a comment to a task.
func (h *TaskHandler) AddComment(c *gin.Context) {
	type CommentRequest struct {
		Content string `json:"content" binding:"required"`
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	comment, err := h.taskService.AddComment(c.Param("id"), actor.ID, req.Content)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentDTO(*comment))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrCommentTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotTaskAssignee):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTagExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty),
		errors.Is(err, services.ErrNegativeHours),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrTaskAlreadyDone),
		errors.Is(err, services.ErrTagNotFound),
		errors.Is(err, services.ErrCommentRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
