package database

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"teamboard/internal/models"
)

// Seed loads the demo dataset into an empty store. A store that already
// holds users is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	now := time.Now()

	admin := &models.User{
		Name:         "Sarah Mitchell",
		Email:        "admin@teamboard.dev",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Department:   "Management",
		Position:     "Engineering Manager",
		JoinDate:     now.AddDate(-3, 0, 0),
		IsActive:     true,
	}
	dev := &models.User{
		Name:         "James Okafor",
		Email:        "james@teamboard.dev",
		PasswordHash: string(hash),
		Role:         models.RoleEmployee,
		Department:   "Engineering",
		Position:     "Backend Developer",
		JoinDate:     now.AddDate(-1, -4, 0),
		IsActive:     true,
	}
	designer := &models.User{
		Name:         "Mina Park",
		Email:        "mina@teamboard.dev",
		PasswordHash: string(hash),
		Role:         models.RoleEmployee,
		Department:   "Design",
		Position:     "Product Designer",
		JoinDate:     now.AddDate(0, -10, 0),
		IsActive:     true,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range []*models.User{admin, dev, designer} {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		}

		website := &models.Project{
			Name:        "Website Redesign",
			Description: "Rebuild the marketing site on the new design system",
			Status:      models.ProjectStatusActive,
			StartDate:   now.AddDate(0, -2, 0),
			EndDate:     now.AddDate(0, 2, 0),
			Deadline:    now.AddDate(0, 2, 0),
			Progress:    40,
			Priority:    models.PriorityHigh,
			TeamMembers: []string{dev.ID, designer.ID},
			CreatedBy:   admin.ID,
		}
		mobile := &models.Project{
			Name:        "Mobile App",
			Description: "Companion mobile application",
			Status:      models.ProjectStatusActive,
			StartDate:   now.AddDate(0, -1, 0),
			EndDate:     now.AddDate(0, 4, 0),
			Deadline:    now.AddDate(0, 4, 0),
			Progress:    10,
			Priority:    models.PriorityMedium,
			TeamMembers: []string{dev.ID},
			CreatedBy:   admin.ID,
		}
		for _, p := range []*models.Project{website, mobile} {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		eight := 8.0
		tasks := []*models.Task{
			{
				Title: "Design landing page", Description: "Hero, pricing, footer",
				Status: models.TaskStatusDone, Priority: models.PriorityHigh,
				AssignedTo: designer.ID, ProjectID: website.ID,
				Deadline: now.AddDate(0, 0, -7), EstimatedHours: 10, ActualHours: &eight,
				Tags: []string{"design"}, CreatedBy: admin.ID,
			},
			{
				Title: "Implement landing page", Description: "Build against the new mockups",
				Status: models.TaskStatusInProgress, Priority: models.PriorityHigh,
				AssignedTo: dev.ID, ProjectID: website.ID,
				Deadline: now.AddDate(0, 0, 7), EstimatedHours: 16,
				Tags: []string{"frontend"}, CreatedBy: admin.ID,
			},
			{
				Title: "Set up CI pipeline", Description: "Lint, test, deploy preview",
				Status: models.TaskStatusTodo, Priority: models.PriorityMedium,
				AssignedTo: dev.ID, ProjectID: website.ID,
				Deadline: now.AddDate(0, 0, 14), EstimatedHours: 6,
				Tags: []string{"infra"}, CreatedBy: admin.ID,
			},
			{
				Title: "App navigation skeleton", Description: "Tab bar and routing",
				Status: models.TaskStatusTodo, Priority: models.PriorityMedium,
				AssignedTo: dev.ID, ProjectID: mobile.ID,
				Deadline: now.AddDate(0, 1, 0), EstimatedHours: 12,
				Tags: []string{"mobile"}, CreatedBy: admin.ID,
			},
		}
		for _, t := range tasks {
			if err := tx.Create(t).Error; err != nil {
				return err
			}
		}

		startedAt := now.AddDate(0, 0, -5)
		sprints := []*models.Sprint{
			{
				Name: "Sprint 1", Description: "Landing page push",
				ProjectID: website.ID, Status: models.SprintStatusActive,
				StartDate: startedAt, EndDate: now.AddDate(0, 0, 9),
				Goal:    "Ship the new landing page",
				TaskIDs: []string{tasks[0].ID, tasks[1].ID},
				CreatedBy: admin.ID, StartedAt: &startedAt,
			},
			{
				Name: "Sprint 2", Description: "Infra and mobile groundwork",
				ProjectID: website.ID, Status: models.SprintStatusPlanning,
				StartDate: now.AddDate(0, 0, 10), EndDate: now.AddDate(0, 0, 24),
				Goal:      "Automate deployments",
				TaskIDs:   []string{tasks[2].ID},
				CreatedBy: admin.ID,
			},
		}
		for _, s := range sprints {
			if err := tx.Create(s).Error; err != nil {
				return err
			}
		}

		hours := 8.25
		yesterdayIn := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
		yesterdayOut := yesterdayIn.Add(8*time.Hour + 15*time.Minute)
		attendance := &models.Attendance{
			UserID:     dev.ID,
			WorkDate:   yesterdayIn.Format("2006-01-02"),
			ClockIn:    yesterdayIn,
			ClockOut:   &yesterdayOut,
			TotalHours: &hours,
			Status:     models.AttendanceStatusPresent,
		}
		if err := tx.Create(attendance).Error; err != nil {
			return err
		}

		welcome := &models.Notification{
			UserID:  dev.ID,
			Title:   "Welcome to teamboard",
			Message: "Your account is ready.",
			Type:    models.NotificationInfo,
		}
		if err := tx.Create(welcome).Error; err != nil {
			return err
		}

		slog.Info("seeded demo data", "users", 3, "projects", 2, "tasks", len(tasks))
		return nil
	})
}
