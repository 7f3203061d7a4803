package dto

import (
	"teamboard/internal/services"
)

// OverviewDTO represents the dashboard headline metrics
type OverviewDTO struct {
	TotalProjects         int     `json:"total_projects"`
	CompletedProjects     int     `json:"completed_projects"`
	ProjectCompletionRate float64 `json:"project_completion_rate"`
	TotalTasks            int     `json:"total_tasks"`
	CompletedTasks        int     `json:"completed_tasks"`
	TaskCompletionRate    float64 `json:"task_completion_rate"`
	OverdueTasks          int     `json:"overdue_tasks"`
	TotalUsers            int     `json:"total_users"`
}

// EmployeePerformanceDTO represents one employee's derived metrics
type EmployeePerformanceDTO struct {
	UserID            string  `json:"user_id"`
	Name              string  `json:"name"`
	Department        string  `json:"department"`
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	CompletionRate    float64 `json:"completion_rate"`
	TotalHours        float64 `json:"total_hours"`
	AvgCompletionTime float64 `json:"avg_completion_time"`
}

// ToOverviewDTO converts the overview report
func ToOverviewDTO(overview services.Overview) OverviewDTO {
	return OverviewDTO{
		TotalProjects:         overview.TotalProjects,
		CompletedProjects:     overview.CompletedProjects,
		ProjectCompletionRate: overview.ProjectCompletionRate,
		TotalTasks:            overview.TotalTasks,
		CompletedTasks:        overview.CompletedTasks,
		TaskCompletionRate:    overview.TaskCompletionRate,
		OverdueTasks:          overview.OverdueTasks,
		TotalUsers:            overview.TotalUsers,
	}
}

// ToEmployeePerformanceDTOs converts the performance ranking
func ToEmployeePerformanceDTOs(ranking []services.EmployeePerformance) []EmployeePerformanceDTO {
	dtos := make([]EmployeePerformanceDTO, len(ranking))
	for i, perf := range ranking {
		dtos[i] = EmployeePerformanceDTO{
			UserID:            perf.UserID,
			Name:              perf.Name,
			Department:        perf.Department,
			TotalTasks:        perf.TotalTasks,
			CompletedTasks:    perf.CompletedTasks,
			CompletionRate:    perf.CompletionRate,
			TotalHours:        perf.TotalHours,
			AvgCompletionTime: perf.AvgCompletionTime,
		}
	}
	return dtos
}
