package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

func setupNotificationService(t *testing.T) *NotificationService {
	t.Helper()

	db := newTestDB(t)
	return NewNotificationService(repository.NewNotificationRepository(db))
}

func TestNotificationService_MarkRead(t *testing.T) {
	svc := setupNotificationService(t)

	notification, err := svc.CreateNotification(CreateNotificationInput{
		UserID:  "user-1",
		Title:   "Task assigned",
		Message: "You have a new task",
	})
	require.NoError(t, err)
	require.Equal(t, models.NotificationInfo, notification.Type)
	require.False(t, notification.IsRead)

	require.NoError(t, svc.MarkRead(notification.ID, "user-1"))

	// Marking an already-read notification is a no-op.
	require.NoError(t, svc.MarkRead(notification.ID, "user-1"))

	notifications, err := svc.ListForUser("user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.True(t, notifications[0].IsRead)
}

func TestNotificationService_MarkRead_OtherUsersNotification(t *testing.T) {
	svc := setupNotificationService(t)

	notification, err := svc.CreateNotification(CreateNotificationInput{
		UserID: "user-1",
		Title:  "Private",
	})
	require.NoError(t, err)

	err = svc.MarkRead(notification.ID, "user-2")
	require.ErrorIs(t, err, ErrNotificationNotFound)

	err = svc.MarkRead("missing-id", "user-1")
	require.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	svc := setupNotificationService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateNotification(CreateNotificationInput{
			UserID: "user-1",
			Title:  "Batch",
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateNotification(CreateNotificationInput{
		UserID: "user-2",
		Title:  "Someone else",
	})
	require.NoError(t, err)

	count, err := svc.UnreadCount("user-1")
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	require.NoError(t, svc.MarkAllRead("user-1"))

	count, err = svc.UnreadCount("user-1")
	require.NoError(t, err)
	require.Zero(t, count)

	// Other users' notifications are untouched.
	count, err = svc.UnreadCount("user-2")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
