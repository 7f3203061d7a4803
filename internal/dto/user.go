package dto

import (
	"time"

	"teamboard/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	Department string          `json:"department"`
	Position   string          `json:"position"`
	JoinDate   time.Time       `json:"join_date"`
	IsActive   bool            `json:"is_active"`
	LastLogin  *time.Time      `json:"last_login,omitempty"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		Position:   user.Position,
		JoinDate:   user.JoinDate,
		IsActive:   user.IsActive,
		LastLogin:  user.LastLogin,
	}
}

// ToUserDTOs converts a slice of User models
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
