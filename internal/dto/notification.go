package dto

import (
	"time"

	"teamboard/internal/models"
)

// NotificationDTO represents a notification in API responses
type NotificationDTO struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Type      models.NotificationType `json:"type"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

// ActivityLogDTO represents an activity log entry in API responses
type ActivityLogDTO struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Action      string            `json:"action"`
	Description string            `json:"description"`
	EntityType  models.EntityType `json:"entity_type"`
	EntityID    *string           `json:"entity_id,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// ActivityListResponse represents a paginated list of activity entries
type ActivityListResponse struct {
	Entries    []ActivityLogDTO `json:"entries"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalCount int64            `json:"total_count"`
}

// ToNotificationDTO converts a Notification model to NotificationDTO
func ToNotificationDTO(notification models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

// ToNotificationDTOs converts a slice of Notification models
func ToNotificationDTOs(notifications []models.Notification) []NotificationDTO {
	dtos := make([]NotificationDTO, len(notifications))
	for i, notification := range notifications {
		dtos[i] = ToNotificationDTO(notification)
	}
	return dtos
}

// ToActivityLogDTO converts an ActivityLog model to ActivityLogDTO
func ToActivityLogDTO(entry models.ActivityLog) ActivityLogDTO {
	return ActivityLogDTO{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Action:      entry.Action,
		Description: entry.Description,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		Timestamp:   entry.Timestamp,
	}
}

// ToActivityListResponse converts a page of activity entries
func ToActivityListResponse(entries []models.ActivityLog, page, pageSize int, total int64) ActivityListResponse {
	dtos := make([]ActivityLogDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = ToActivityLogDTO(entry)
	}
	return ActivityListResponse{
		Entries:    dtos,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}
}
