package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"teamboard/internal/constants"
	"teamboard/internal/models"
	"teamboard/internal/repository"
)

var (
	ErrEmailTaken           = errors.New("email already exists")
	ErrEmailRequired        = errors.New("email is required")
	ErrNameRequired         = errors.New("name is required")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles user administration.
type UserService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityLogRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, activityRepo repository.ActivityLogRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// CreateUserInput represents the required information to create a user.
type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Role       models.UserRole
	Department string
	Position   string
	JoinDate   time.Time
	ActorID    string
}

// CreateUser creates a new user with a bcrypt-hashed password.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	role := input.Role
	if role == "" {
		role = models.RoleEmployee
	}
	joinDate := input.JoinDate
	if joinDate.IsZero() {
		joinDate = time.Now()
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Department:   input.Department,
		Position:     input.Position,
		JoinDate:     joinDate,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	recordActivity(s.activityRepo, input.ActorID, "CREATE_USER",
		fmt.Sprintf("Created user %q", user.Name), models.EntityUser, user.ID)

	return user, nil
}

// UpdateUserInput represents a partial user update.
type UpdateUserInput struct {
	Name       *string
	Department *string
	Position   *string
	Role       *models.UserRole
	IsActive   *bool
	ActorID    string
}

// UpdateUser merges the provided fields onto the user.
func (s *UserService) UpdateUser(userID string, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrNameRequired
		}
		user.Name = *input.Name
	}
	if input.Department != nil {
		user.Department = *input.Department
	}
	if input.Position != nil {
		user.Position = *input.Position
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	recordActivity(s.activityRepo, input.ActorID, "UPDATE_USER",
		fmt.Sprintf("Updated user %q", user.Name), models.EntityUser, user.ID)

	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(userID, actorID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	recordActivity(s.activityRepo, actorID, "DELETE_USER",
		fmt.Sprintf("Deleted user %q", user.Name), models.EntityUser, user.ID)

	return nil
}

// ListUsers returns all users in insertion order.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
