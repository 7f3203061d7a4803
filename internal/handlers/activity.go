package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/dto"
	apierrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/repository"
	"teamboard/internal/services"
	"teamboard/internal/utils"
)

// ActivityHandler exposes the append-only activity log.
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListActivity returns log entries newest first, paginated.
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.ActivityFilter{
		Page:     params.Page,
		PageSize: params.PageSize,
	}
	if userID := c.Query("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if entityType := c.Query("entity_type"); entityType != "" {
		kind := models.EntityType(entityType)
		filter.EntityType = &kind
	}

	entries, total, err := h.activityService.ListActivity(filter)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityListResponse(entries, params.Page, params.PageSize, total))
}
