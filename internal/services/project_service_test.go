package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

type projectTestEnv struct {
	db             *gorm.DB
	projectService *ProjectService
	taskService    *TaskService
}

func setupProjectTestEnv(t *testing.T) projectTestEnv {
	t.Helper()

	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	projectService := NewProjectService(
		repository.NewProjectRepository(db),
		taskRepo,
		repository.NewActivityLogRepository(db),
	)
	taskService := NewTaskService(
		taskRepo,
		repository.NewCommentRepository(db),
		repository.NewNotificationRepository(db),
		repository.NewActivityLogRepository(db),
	)

	return projectTestEnv{db: db, projectService: projectService, taskService: taskService}
}

func TestProjectService_CreateProject_Defaults(t *testing.T) {
	env := setupProjectTestEnv(t)

	project, err := env.projectService.CreateProject(CreateProjectInput{
		Name:      "Website Redesign",
		CreatorID: "admin-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)
	require.Equal(t, models.ProjectStatusActive, project.Status)
	require.Equal(t, models.PriorityMedium, project.Priority)

	_, err = env.projectService.CreateProject(CreateProjectInput{Name: "   "})
	require.ErrorIs(t, err, ErrProjectNameRequired)
}

func TestProjectService_UpdateProject_ProgressBounds(t *testing.T) {
	env := setupProjectTestEnv(t)

	project, err := env.projectService.CreateProject(CreateProjectInput{
		Name:      "Website Redesign",
		CreatorID: "admin-1",
	})
	require.NoError(t, err)

	tooHigh := 101
	_, err = env.projectService.UpdateProject(project.ID, UpdateProjectInput{Progress: &tooHigh})
	require.ErrorIs(t, err, ErrInvalidProgress)

	negative := -1
	_, err = env.projectService.UpdateProject(project.ID, UpdateProjectInput{Progress: &negative})
	require.ErrorIs(t, err, ErrInvalidProgress)

	valid := 60
	updated, err := env.projectService.UpdateProject(project.ID, UpdateProjectInput{Progress: &valid})
	require.NoError(t, err)
	require.Equal(t, 60, updated.Progress)
}

func TestProjectService_DeleteProject_Cascades(t *testing.T) {
	env := setupProjectTestEnv(t)

	project, err := env.projectService.CreateProject(CreateProjectInput{
		Name:      "Doomed",
		CreatorID: "admin-1",
	})
	require.NoError(t, err)

	task, err := env.taskService.CreateTask(CreateTaskInput{
		Title:     "Doomed task",
		ProjectID: project.ID,
		CreatorID: "admin-1",
	})
	require.NoError(t, err)

	_, err = env.taskService.AddComment(task.ID, "user-1", "doomed comment")
	require.NoError(t, err)

	// An unrelated task must survive the cascade.
	survivor, err := env.taskService.CreateTask(CreateTaskInput{
		Title:     "Survivor",
		ProjectID: "other-project",
		CreatorID: "admin-1",
	})
	require.NoError(t, err)

	require.NoError(t, env.projectService.DeleteProject(project.ID, "admin-1"))

	_, err = env.projectService.GetProject(project.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)

	var taskCount, commentCount int64
	require.NoError(t, env.db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&taskCount).Error)
	require.NoError(t, env.db.Model(&models.Comment{}).Where("task_id = ?", task.ID).Count(&commentCount).Error)
	require.Zero(t, taskCount)
	require.Zero(t, commentCount)

	_, err = env.taskService.GetTask(survivor.ID)
	require.NoError(t, err)
}

func TestProjectService_GetProjectStats(t *testing.T) {
	env := setupProjectTestEnv(t)
	future := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-48 * time.Hour)

	project, err := env.projectService.CreateProject(CreateProjectInput{
		Name:      "Stats",
		CreatorID: "admin-1",
	})
	require.NoError(t, err)

	for _, tc := range []struct {
		status   models.TaskStatus
		deadline time.Time
	}{
		{models.TaskStatusDone, future},
		{models.TaskStatusTodo, future},
		{models.TaskStatusInProgress, past},
	} {
		task := &models.Task{
			Title:     "Stat task",
			Status:    tc.status,
			Priority:  models.PriorityMedium,
			ProjectID: project.ID,
			Deadline:  tc.deadline,
			CreatedBy: "admin-1",
		}
		require.NoError(t, env.db.Create(task).Error)
	}

	stats, err := env.projectService.GetProjectStats(project.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalTasks)
	require.Equal(t, 1, stats.CompletedTasks)
	require.Equal(t, 1, stats.OverdueTasks)
	require.InDelta(t, 33.333, stats.CompletionRate, 0.01)
}

func TestProjectService_GetProjectStats_NotFound(t *testing.T) {
	env := setupProjectTestEnv(t)

	_, err := env.projectService.GetProjectStats("missing-id")
	require.ErrorIs(t, err, ErrProjectNotFound)
}
