package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

type taskTestEnv struct {
	db          *gorm.DB
	taskService *TaskService
}

func setupTaskTestEnv(t *testing.T) taskTestEnv {
	t.Helper()

	db := newTestDB(t)
	taskService := NewTaskService(
		repository.NewTaskRepository(db),
		repository.NewCommentRepository(db),
		repository.NewNotificationRepository(db),
		repository.NewActivityLogRepository(db),
	)

	return taskTestEnv{db: db, taskService: taskService}
}

func createTestTask(t *testing.T, env taskTestEnv, assignedTo string, status models.TaskStatus) *models.Task {
	t.Helper()

	task, err := env.taskService.CreateTask(CreateTaskInput{
		Title:      "Implement API endpoint",
		AssignedTo: assignedTo,
		ProjectID:  "project-1",
		Deadline:   time.Now().Add(48 * time.Hour),
		CreatorID:  "creator-1",
	})
	require.NoError(t, err)

	if status != models.TaskStatusTodo {
		task.Status = status
		require.NoError(t, env.db.Save(task).Error)
	}
	return task
}

func TestTaskService_CreateTask_Defaults(t *testing.T) {
	env := setupTaskTestEnv(t)

	task, err := env.taskService.CreateTask(CreateTaskInput{
		Title:      "Write docs",
		AssignedTo: "user-1",
		ProjectID:  "project-1",
		CreatorID:  "creator-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, models.TaskStatusTodo, task.Status)
	require.Equal(t, models.PriorityMedium, task.Priority)

	var notifications []models.Notification
	require.NoError(t, env.db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	require.Equal(t, "user-1", notifications[0].UserID)
}

func TestTaskService_CreateTask_Validation(t *testing.T) {
	env := setupTaskTestEnv(t)

	_, err := env.taskService.CreateTask(CreateTaskInput{Title: "  ", ProjectID: "project-1"})
	require.ErrorIs(t, err, ErrTitleRequired)

	_, err = env.taskService.CreateTask(CreateTaskInput{
		Title:          "Estimate",
		ProjectID:      "project-1",
		EstimatedHours: -1,
	})
	require.ErrorIs(t, err, ErrNegativeHours)
}

func TestTaskService_AdvanceStatus_ForwardPath(t *testing.T) {
	env := setupTaskTestEnv(t)
	employee := &models.User{ID: "user-1", Role: models.RoleEmployee}
	task := createTestTask(t, env, employee.ID, models.TaskStatusTodo)

	for _, want := range []models.TaskStatus{
		models.TaskStatusInProgress,
		models.TaskStatusReview,
		models.TaskStatusDone,
	} {
		updated, err := env.taskService.AdvanceStatus(task.ID, employee)
		require.NoError(t, err)
		require.Equal(t, want, updated.Status)
	}

	_, err := env.taskService.AdvanceStatus(task.ID, employee)
	require.ErrorIs(t, err, ErrTaskAlreadyDone)
}

func TestTaskService_AdvanceStatus_OnlyAssignee(t *testing.T) {
	env := setupTaskTestEnv(t)
	task := createTestTask(t, env, "user-1", models.TaskStatusTodo)

	other := &models.User{ID: "user-2", Role: models.RoleEmployee}
	_, err := env.taskService.AdvanceStatus(task.ID, other)
	require.ErrorIs(t, err, ErrNotTaskAssignee)

	// Admins may advance any task.
	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}
	updated, err := env.taskService.AdvanceStatus(task.ID, admin)
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusInProgress, updated.Status)
}

func TestTaskService_UpdateTask_StatusRules(t *testing.T) {
	env := setupTaskTestEnv(t)
	employee := &models.User{ID: "user-1", Role: models.RoleEmployee}
	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}
	task := createTestTask(t, env, employee.ID, models.TaskStatusTodo)

	// Employees cannot skip steps or move backwards.
	done := models.TaskStatusDone
	_, err := env.taskService.UpdateTask(task.ID, UpdateTaskInput{Status: &done, Actor: employee})
	require.ErrorIs(t, err, ErrInvalidTransition)

	inProgress := models.TaskStatusInProgress
	updated, err := env.taskService.UpdateTask(task.ID, UpdateTaskInput{Status: &inProgress, Actor: employee})
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusInProgress, updated.Status)

	// Admins can set any status directly.
	todo := models.TaskStatusTodo
	updated, err = env.taskService.UpdateTask(task.ID, UpdateTaskInput{Status: &todo, Actor: admin})
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusTodo, updated.Status)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	env := setupTaskTestEnv(t)

	title := "Renamed"
	_, err := env.taskService.UpdateTask("missing-id", UpdateTaskInput{Title: &title})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_Tags(t *testing.T) {
	env := setupTaskTestEnv(t)
	task := createTestTask(t, env, "user-1", models.TaskStatusTodo)

	updated, err := env.taskService.AddTag(task.ID, "backend", "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"backend"}, updated.Tags)

	_, err = env.taskService.AddTag(task.ID, "backend", "user-1")
	require.ErrorIs(t, err, ErrTagExists)

	// Matching is case-sensitive, so a differently cased tag is new.
	updated, err = env.taskService.AddTag(task.ID, "Backend", "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"backend", "Backend"}, updated.Tags)

	updated, err = env.taskService.RemoveTag(task.ID, "backend", "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"Backend"}, updated.Tags)

	_, err = env.taskService.RemoveTag(task.ID, "backend", "user-1")
	require.ErrorIs(t, err, ErrTagNotFound)
}

func TestTaskService_Tags_RecordActivity(t *testing.T) {
	env := setupTaskTestEnv(t)
	task := createTestTask(t, env, "user-1", models.TaskStatusTodo)

	_, err := env.taskService.AddTag(task.ID, "backend", "user-1")
	require.NoError(t, err)
	_, err = env.taskService.RemoveTag(task.ID, "backend", "user-1")
	require.NoError(t, err)

	var entries []models.ActivityLog
	require.NoError(t, env.db.
		Where("user_id = ? AND entity_id = ?", "user-1", task.ID).
		Order("timestamp ASC").
		Find(&entries).Error)
	require.Len(t, entries, 2)
	require.Equal(t, "UPDATE_TASK", entries[0].Action)
	require.Contains(t, entries[0].Description, "Tagged")
	require.Contains(t, entries[1].Description, "Removed tag")
}

func TestTaskService_Comments(t *testing.T) {
	env := setupTaskTestEnv(t)
	task := createTestTask(t, env, "user-1", models.TaskStatusTodo)

	_, err := env.taskService.AddComment(task.ID, "user-1", "   ")
	require.ErrorIs(t, err, ErrCommentRequired)

	_, err = env.taskService.AddComment("missing-id", "user-1", "hello")
	require.ErrorIs(t, err, ErrCommentTaskNotFound)

	first, err := env.taskService.AddComment(task.ID, "user-1", "first")
	require.NoError(t, err)
	second, err := env.taskService.AddComment(task.ID, "user-2", "second")
	require.NoError(t, err)

	comments, err := env.taskService.ListComments(task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, first.ID, comments[0].ID)
	require.Equal(t, second.ID, comments[1].ID)
}

func TestTaskService_DeleteTask_CascadesComments(t *testing.T) {
	env := setupTaskTestEnv(t)
	task := createTestTask(t, env, "user-1", models.TaskStatusTodo)

	_, err := env.taskService.AddComment(task.ID, "user-1", "to be removed")
	require.NoError(t, err)

	require.NoError(t, env.taskService.DeleteTask(task.ID, "admin-1"))

	_, err = env.taskService.GetTask(task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	var count int64
	require.NoError(t, env.db.Model(&models.Comment{}).Where("task_id = ?", task.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestTaskService_ListTasks_Filters(t *testing.T) {
	env := setupTaskTestEnv(t)

	_, err := env.taskService.CreateTask(CreateTaskInput{
		Title: "A", ProjectID: "project-1", AssignedTo: "user-1", CreatorID: "c",
	})
	require.NoError(t, err)
	_, err = env.taskService.CreateTask(CreateTaskInput{
		Title: "B", ProjectID: "project-2", AssignedTo: "user-2", CreatorID: "c",
	})
	require.NoError(t, err)

	projectID := "project-1"
	tasks, err := env.taskService.ListTasks(repository.TaskFilter{ProjectID: &projectID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "A", tasks[0].Title)

	assignedTo := "user-2"
	tasks, err = env.taskService.ListTasks(repository.TaskFilter{AssignedTo: &assignedTo})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "B", tasks[0].Title)
}
