package services

import (
	"fmt"
	"sort"
	"time"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

// ReportService computes derived metrics. Nothing here is cached: every
// call recomputes from current repository contents.
type ReportService struct {
	userRepo       repository.UserRepository
	projectRepo    repository.ProjectRepository
	taskRepo       repository.TaskRepository
	attendanceRepo repository.AttendanceRepository
}

// NewReportService creates a new ReportService.
func NewReportService(userRepo repository.UserRepository, projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, attendanceRepo repository.AttendanceRepository) *ReportService {
	return &ReportService{
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		taskRepo:       taskRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Overview aggregates the headline dashboard numbers.
type Overview struct {
	TotalProjects         int
	CompletedProjects     int
	ProjectCompletionRate float64
	TotalTasks            int
	CompletedTasks        int
	TaskCompletionRate    float64
	OverdueTasks          int
	TotalUsers            int
}

// GetOverview recomputes the dashboard headline metrics. Every rate guards
// the empty case by reporting 0.
func (s *ReportService) GetOverview() (*Overview, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	tasks, err := s.taskRepo.List(repository.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	overview := &Overview{
		TotalProjects: len(projects),
		TotalTasks:    len(tasks),
		TotalUsers:    len(users),
	}

	for _, project := range projects {
		if project.Status == models.ProjectStatusCompleted {
			overview.CompletedProjects++
		}
	}

	now := time.Now()
	for _, task := range tasks {
		if task.Status == models.TaskStatusDone {
			overview.CompletedTasks++
		}
		if task.IsOverdue(now) {
			overview.OverdueTasks++
		}
	}

	if overview.TotalProjects > 0 {
		overview.ProjectCompletionRate = float64(overview.CompletedProjects) / float64(overview.TotalProjects) * 100
	}
	if overview.TotalTasks > 0 {
		overview.TaskCompletionRate = float64(overview.CompletedTasks) / float64(overview.TotalTasks) * 100
	}

	return overview, nil
}

// EmployeePerformance holds one employee's derived productivity metrics.
type EmployeePerformance struct {
	UserID            string
	Name              string
	Department        string
	TotalTasks        int
	CompletedTasks    int
	CompletionRate    float64
	TotalHours        float64
	AvgCompletionTime float64
}

// GetEmployeePerformance ranks employees by completion rate, descending.
// The sort is stable: ties keep the employees' insertion order.
func (s *ReportService) GetEmployeePerformance() ([]EmployeePerformance, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	ranking := make([]EmployeePerformance, 0, len(users))
	for _, user := range users {
		if user.Role != models.RoleEmployee {
			continue
		}

		perf, err := s.PerformanceForUser(user.ID)
		if err != nil {
			return nil, err
		}
		perf.Name = user.Name
		perf.Department = user.Department
		ranking = append(ranking, *perf)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].CompletionRate > ranking[j].CompletionRate
	})

	return ranking, nil
}

// PerformanceForUser computes one user's task metrics: completion rate over
// assigned tasks, total actual hours, and average completion time
// (totalHours / completed count, 0 when nothing is done).
func (s *ReportService) PerformanceForUser(userID string) (*EmployeePerformance, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{AssignedTo: &userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}

	perf := &EmployeePerformance{
		UserID:     userID,
		TotalTasks: len(tasks),
	}

	for _, task := range tasks {
		if task.Status == models.TaskStatusDone {
			perf.CompletedTasks++
		}
		if task.ActualHours != nil {
			perf.TotalHours += *task.ActualHours
		}
	}

	if perf.TotalTasks > 0 {
		perf.CompletionRate = float64(perf.CompletedTasks) / float64(perf.TotalTasks) * 100
	}
	if perf.CompletedTasks > 0 {
		perf.AvgCompletionTime = perf.TotalHours / float64(perf.CompletedTasks)
	}

	return perf, nil
}

// GetAttendanceReport summarizes every attendance record on file.
func (s *ReportService) GetAttendanceReport() (AttendanceSummary, error) {
	records, err := s.attendanceRepo.List()
	if err != nil {
		return AttendanceSummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	return Summarize(records), nil
}

// OverdueTaskCount counts tasks past their deadline and not done, evaluated
// against wall-clock time at call time.
func (s *ReportService) OverdueTaskCount() (int, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	now := time.Now()
	count := 0
	for _, task := range tasks {
		if task.IsOverdue(now) {
			count++
		}
	}
	return count, nil
}
