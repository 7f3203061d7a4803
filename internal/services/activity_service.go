package services

import (
	"fmt"
	"log/slog"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

// ActivityService exposes the append-only activity log.
type ActivityService struct {
	activityRepo repository.ActivityLogRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

// ListActivity returns log entries newest first.
func (s *ActivityService) ListActivity(filter repository.ActivityFilter) ([]models.ActivityLog, int64, error) {
	entries, total, err := s.activityRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, total, nil
}

// recordActivity appends a log entry. Logging failures never fail the
// mutation that triggered them.
func recordActivity(repo repository.ActivityLogRepository, userID, action, description string, entityType models.EntityType, entityID string) {
	if repo == nil {
		return
	}

	entry := &models.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		EntityType:  entityType,
	}
	if entityID != "" {
		entry.EntityID = &entityID
	}

	if err := repo.Create(entry); err != nil {
		slog.Warn("failed to record activity", "action", action, "error", err)
	}
}
