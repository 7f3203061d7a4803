package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationService handles in-app notifications.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

// CreateNotificationInput represents input for creating a notification.
type CreateNotificationInput struct {
	UserID  string
	Title   string
	Message string
	Type    models.NotificationType
}

// CreateNotification creates a notification for a user.
func (s *NotificationService) CreateNotification(input CreateNotificationInput) (*models.Notification, error) {
	kind := input.Type
	if kind == "" {
		kind = models.NotificationInfo
	}

	notification := &models.Notification{
		UserID:  input.UserID,
		Title:   input.Title,
		Message: input.Message,
		Type:    kind,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification, nil
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks one of the user's notifications as read. Notifications
// belonging to other users are treated as not found.
func (s *NotificationService) MarkRead(notificationID, userID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to find notification: %w", err)
	}

	if notification.UserID != userID {
		return ErrNotificationNotFound
	}

	if notification.IsRead {
		return nil
	}

	notification.IsRead = true
	if err := s.notificationRepo.Update(notification); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// MarkAllRead marks all of the user's notifications as read.
func (s *NotificationService) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// UnreadCount returns the user's unread notification count.
func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
