package repository

import (
	"teamboard/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id string) (*models.Project, error)
	List() ([]models.Project, error)
	Update(project *models.Project) error

	// Delete removes the project together with its tasks and their comments
	// in a single transaction.
	Delete(id string) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID  *string
	AssignedTo *string
	SprintID   *string
	Status     *models.TaskStatus
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id string) (*models.Task, error)
	List(filter TaskFilter) ([]models.Task, error)
	Update(task *models.Task) error

	// Delete removes the task and its comments in a single transaction.
	Delete(id string) error

	FindByIDs(ids []string) ([]models.Task, error)
}

// SprintRepository defines the interface for sprint data access
type SprintRepository interface {
	Create(sprint *models.Sprint) error
	FindByID(id string) (*models.Sprint, error)
	List(projectID *string) ([]models.Sprint, error)
	Update(sprint *models.Sprint) error
	Delete(id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByTask(taskID string) ([]models.Comment, error)
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	// CreateIfNone creates the record unless one already exists for the same
	// user and work date. Returns ErrAttendanceExists otherwise. The
	// check-then-create runs in a transaction; the unique index on
	// (user_id, work_date) backstops it.
	CreateIfNone(record *models.Attendance) error

	FindByUserAndDate(userID, workDate string) (*models.Attendance, error)
	ListByUser(userID string) ([]models.Attendance, error)
	List() ([]models.Attendance, error)
	Update(record *models.Attendance) error
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)
	ListByUser(userID string) ([]models.Notification, error)
	Update(notification *models.Notification) error
	MarkAllRead(userID string) error
	CountUnread(userID string) (int64, error)
}

// ActivityFilter holds filtering options for listing activity logs
type ActivityFilter struct {
	UserID     *string
	EntityType *models.EntityType
	Page       int
	PageSize   int
}

// ActivityLogRepository defines the interface for the append-only activity log
type ActivityLogRepository interface {
	Create(entry *models.ActivityLog) error

	// List returns entries newest first.
	List(filter ActivityFilter) ([]models.ActivityLog, int64, error)
}
