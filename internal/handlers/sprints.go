package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teamboard/internal/dto"
	apierrors "teamboard/internal/errors"
	"teamboard/internal/middleware"
	"teamboard/internal/models"
	"teamboard/internal/services"
)

// SprintHandler coordinates sprint HTTP handlers.
type SprintHandler struct {
	sprintService  *services.SprintService
	projectService *services.ProjectService
}

// NewSprintHandler creates a new SprintHandler.
func NewSprintHandler(sprintService *services.SprintService, projectService *services.ProjectService) *SprintHandler {
	return &SprintHandler{
		sprintService:  sprintService,
		projectService: projectService,
	}
}

// ListSprints returns sprints, optionally filtered by project.
func (h *SprintHandler) ListSprints(c *gin.Context) {
	var projectID *string
	if id := c.Query("project_id"); id != "" {
		projectID = &id
	}

	sprints, err := h.sprintService.ListSprints(projectID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	dtos := make([]dto.SprintDTO, 0, len(sprints))
	for i := range sprints {
		sprintDTO, err := h.buildSprintDTO(&sprints[i])
		if err != nil {
			apierrors.InternalError(c, "")
			return
		}
		dtos = append(dtos, sprintDTO)
	}

	c.JSON(http.StatusOK, gin.H{"sprints": dtos})
}

// GetSprint returns one sprint with its derived progress.
func (h *SprintHandler) GetSprint(c *gin.Context) {
	sprint, err := h.sprintService.GetSprint(c.Param("id"))
	if err != nil {
		respondSprintError(c, err)
		return
	}

	h.respondSprint(c, http.StatusOK, sprint)
}

// CreateSprint creates a new sprint in planning state.
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	type CreateSprintRequest struct {
		Name        string    `json:"name" binding:"required"`
		Description string    `json:"description"`
		ProjectID   string    `json:"project_id" binding:"required"`
		StartDate   time.Time `json:"start_date"`
		EndDate     time.Time `json:"end_date"`
		Goal        string    `json:"goal"`
		TaskIDs     []string  `json:"task_ids"`
	}

	var req CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	creatorID, _ := middleware.GetUserID(c)

	sprint, err := h.sprintService.CreateSprint(services.CreateSprintInput{
		Name:        req.Name,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Goal:        req.Goal,
		TaskIDs:     req.TaskIDs,
		CreatorID:   creatorID,
	})
	if err != nil {
		respondSprintError(c, err)
		return
	}

	h.respondSprint(c, http.StatusCreated, sprint)
}

// UpdateSprint applies a partial update. Lifecycle moves go through the
// dedicated start, complete and cancel endpoints.
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	type UpdateSprintRequest struct {
		Name        *string    `json:"name"`
		Description *string    `json:"description"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		Goal        *string    `json:"goal"`
		TaskIDs     *[]string  `json:"task_ids"`
	}

	var req UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	actorID, _ := middleware.GetUserID(c)

	sprint, err := h.sprintService.UpdateSprint(c.Param("id"), services.UpdateSprintInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Goal:        req.Goal,
		TaskIDs:     req.TaskIDs,
		ActorID:     actorID,
	})
	if err != nil {
		respondSprintError(c, err)
		return
	}

	h.respondSprint(c, http.StatusOK, sprint)
}

// StartSprint moves a planning sprint to active.
func (h *SprintHandler) StartSprint(c *gin.Context) {
	actorID, _ := middleware.GetUserID(c)

	sprint, err := h.sprintService.StartSprint(c.Param("id"), actorID)
	if err != nil {
		respondSprintError(c, err)
		return
	}

	h.respondSprint(c, http.StatusOK, sprint)
}

// CompleteSprint moves an active sprint to completed.
func (h *SprintHandler) CompleteSprint(c *gin.Context) {
	actorID, _ := middleware.GetUserID(c)

	sprint, err := h.sprintService.CompleteSprint(c.Param("id"), actorID)
	if err != nil {
		respondSprintError(c, err)
		return
	}

	h.respondSprint(c, http.StatusOK, sprint)
}

// CancelSprint cancels a planning or active sprint.
func (h *SprintHandler) CancelSprint(c *gin.Context) {
	actorID, _ := middleware.GetUserID(c)

	sprint, err := h.sprintService.CancelSprint(c.Param("id"), actorID)
	if err != nil {
		respondSprintError(c, err)
		return
	}

	h.respondSprint(c, http.StatusOK, sprint)
}

// DeleteSprint removes a sprint. Member tasks are untouched.
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	actorID, _ := middleware.GetUserID(c)

	if err := h.sprintService.DeleteSprint(c.Param("id"), actorID); err != nil {
		respondSprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sprint deleted"})
}

func (h *SprintHandler) respondSprint(c *gin.Context, status int, sprint *models.Sprint) {
	sprintDTO, err := h.buildSprintDTO(sprint)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(status, sprintDTO)
}

// buildSprintDTO resolves the derived read-time fields. A sprint whose
// project has been deleted still renders, with a placeholder project name.
func (h *SprintHandler) buildSprintDTO(sprint *models.Sprint) (dto.SprintDTO, error) {
	progress, err := h.sprintService.Progress(sprint)
	if err != nil {
		return dto.SprintDTO{}, err
	}

	projectName := ""
	project, err := h.projectService.GetProject(sprint.ProjectID)
	if err == nil {
		projectName = project.Name
	} else if !errors.Is(err, services.ErrProjectNotFound) {
		return dto.SprintDTO{}, err
	}

	return dto.ToSprintDTO(*sprint, projectName, progress), nil
}

func respondSprintError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSprintNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSprintNotPlanning),
		errors.Is(err, services.ErrSprintNotActive),
		errors.Is(err, services.ErrSprintFinished):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrSprintNameRequired),
		errors.Is(err, services.ErrTaskOutsideProject):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
