package dto

import (
	"time"

	"teamboard/internal/models"
	"teamboard/internal/services"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	Deadline    time.Time            `json:"deadline"`
	Progress    int                  `json:"progress"`
	Priority    models.Priority      `json:"priority"`
	TeamMembers []string             `json:"team_members"`
	CreatedBy   string               `json:"created_by"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ProjectStatsDTO represents derived per-project task counts
type ProjectStatsDTO struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	OverdueTasks   int     `json:"overdue_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	members := project.TeamMembers
	if members == nil {
		members = []string{}
	}
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		Deadline:    project.Deadline,
		Progress:    project.Progress,
		Priority:    project.Priority,
		TeamMembers: members,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToProjectDTOs converts a slice of Project models
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

// ToProjectStatsDTO converts derived project stats
func ToProjectStatsDTO(stats services.ProjectStats) ProjectStatsDTO {
	return ProjectStatsDTO{
		TotalTasks:     stats.TotalTasks,
		CompletedTasks: stats.CompletedTasks,
		OverdueTasks:   stats.OverdueTasks,
		CompletionRate: stats.CompletionRate,
	}
}
