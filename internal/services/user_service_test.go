package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

func setupUserService(t *testing.T) *UserService {
	t.Helper()

	db := newTestDB(t)
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewActivityLogRepository(db),
	)
}

func TestUserService_CreateUser(t *testing.T) {
	svc := setupUserService(t)

	user, err := svc.CreateUser(CreateUserInput{
		Name:     "New Hire",
		Email:    "hire@teamboard.dev",
		Password: "password123",
		ActorID:  "admin-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, models.RoleEmployee, user.Role)
	require.True(t, user.IsActive)
	require.NotEqual(t, "password123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	svc := setupUserService(t)

	_, err := svc.CreateUser(CreateUserInput{Name: "", Email: "a@b.c", Password: "password123"})
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.CreateUser(CreateUserInput{Name: "A", Email: "", Password: "password123"})
	require.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.CreateUser(CreateUserInput{Name: "A", Email: "a@b.c", Password: "short"})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc := setupUserService(t)

	_, err := svc.CreateUser(CreateUserInput{
		Name: "First", Email: "dup@teamboard.dev", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(CreateUserInput{
		Name: "Second", Email: "dup@teamboard.dev", Password: "password123",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_UpdateUser(t *testing.T) {
	svc := setupUserService(t)

	user, err := svc.CreateUser(CreateUserInput{
		Name: "Original", Email: "orig@teamboard.dev", Password: "password123",
	})
	require.NoError(t, err)

	name := "Renamed"
	inactive := false
	updated, err := svc.UpdateUser(user.ID, UpdateUserInput{
		Name:     &name,
		IsActive: &inactive,
		ActorID:  "admin-1",
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.False(t, updated.IsActive)

	_, err = svc.UpdateUser("missing-id", UpdateUserInput{Name: &name})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc := setupUserService(t)

	user, err := svc.CreateUser(CreateUserInput{
		Name: "Gone", Email: "gone@teamboard.dev", Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID, "admin-1"))
	require.ErrorIs(t, svc.DeleteUser(user.ID, "admin-1"), ErrUserNotFound)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Empty(t, users)
}
