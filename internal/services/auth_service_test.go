package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"teamboard/internal/models"
	"teamboard/internal/repository"
)

type authTestEnv struct {
	db          *gorm.DB
	authService *AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db := newTestDB(t)
	return authTestEnv{
		db:          db,
		authService: NewAuthService(repository.NewUserRepository(db)),
	}
}

func createAuthUser(t *testing.T, db *gorm.DB, email, password string, role models.UserRole, active bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAuthService_Login(t *testing.T) {
	env := setupAuthTestEnv(t)
	createAuthUser(t, env.db, "user@teamboard.dev", "password123", models.RoleEmployee, true)

	user, err := env.authService.Login(LoginInput{
		Email:    "user@teamboard.dev",
		Password: "password123",
		Role:     models.RoleEmployee,
	})
	require.NoError(t, err)
	require.Equal(t, "user@teamboard.dev", user.Email)
	require.NotNil(t, user.LastLogin)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	createAuthUser(t, env.db, "user@teamboard.dev", "password123", models.RoleEmployee, true)

	_, err := env.authService.Login(LoginInput{
		Email:    "user@teamboard.dev",
		Password: "wrong",
		Role:     models.RoleEmployee,
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Login(LoginInput{
		Email:    "nobody@teamboard.dev",
		Password: "password123",
		Role:     models.RoleEmployee,
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RoleMismatch(t *testing.T) {
	env := setupAuthTestEnv(t)
	createAuthUser(t, env.db, "user@teamboard.dev", "password123", models.RoleEmployee, true)

	// A correct password under the wrong role is still a rejection.
	_, err := env.authService.Login(LoginInput{
		Email:    "user@teamboard.dev",
		Password: "password123",
		Role:     models.RoleAdmin,
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	env := setupAuthTestEnv(t)
	createAuthUser(t, env.db, "user@teamboard.dev", "password123", models.RoleEmployee, false)

	_, err := env.authService.Login(LoginInput{
		Email:    "user@teamboard.dev",
		Password: "password123",
		Role:     models.RoleEmployee,
	})
	require.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.GetUser("missing-id")
	require.ErrorIs(t, err, ErrUserNotFound)
}
