package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/hr-directory/internal/models"
	"github.com/ignatzorin/hr-directory/internal/repository"
	"github.com/ignatzorin/hr-directory/internal/service"
)

type mockAuthRepository struct {
	users    map[string]*models.User
	sessions []*models.Session
	touched  int
}

func newMockAuthRepository(users ...*models.User) *mockAuthRepository {
	m := &mockAuthRepository{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *mockAuthRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	m.touched++
	return nil
}

func (m *mockAuthRepository) CreateSession(ctx context.Context, session *models.Session) error {
	m.sessions = append(m.sessions, session)
	return nil
}

func (m *mockAuthRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	for i, s := range m.sessions {
		if s.RefreshToken == refreshToken {
			m.sessions = append(m.sessions[:i], m.sessions[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestUser(t *testing.T, email, password string, active bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleHR,
		IsActive:     active,
	}
}

func newTestTokenManager() *service.TokenManager {
	return service.NewTokenManager("access-secret-for-tests", "refresh-secret-for-tests", 15*time.Minute, 24*time.Hour)
}

func TestLoginSuccess(t *testing.T) {
	user := newTestUser(t, "hr@corp.ru", "secret123", true)
	repo := newMockAuthRepository(user)
	svc := service.NewAuthService(repo, newTestTokenManager())

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "hr@corp.ru",
		Password: "secret123",
	}, map[string]string{"ip": "127.0.0.1", "user_agent": "test"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.TokenPair.AccessToken)
	assert.NotEmpty(t, result.TokenPair.RefreshToken)
	assert.Equal(t, 1, repo.touched)
	require.Len(t, repo.sessions, 1)
	assert.Equal(t, user.ID, repo.sessions[0].UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	user := newTestUser(t, "hr@corp.ru", "secret123", true)
	svc := service.NewAuthService(newMockAuthRepository(user), newTestTokenManager())

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "hr@corp.ru",
		Password: "wrong",
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "неверный email или пароль")
}

func TestLoginInactiveAccount(t *testing.T) {
	user := newTestUser(t, "hr@corp.ru", "secret123", false)
	svc := service.NewAuthService(newMockAuthRepository(user), newTestTokenManager())

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "hr@corp.ru",
		Password: "secret123",
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "заблокирован")
}

func TestRefreshRotatesSession(t *testing.T) {
	user := newTestUser(t, "hr@corp.ru", "secret123", true)
	repo := newMockAuthRepository(user)
	svc := service.NewAuthService(repo, newTestTokenManager())

	loginResult, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "hr@corp.ru",
		Password: "secret123",
	}, nil)
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), loginResult.TokenPair.RefreshToken, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// Старая сессия удалена, новая создана.
	require.Len(t, repo.sessions, 1)
	assert.Equal(t, pair.RefreshToken, repo.sessions[0].RefreshToken)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc := service.NewAuthService(newMockAuthRepository(), newTestTokenManager())

	_, err := svc.Refresh(context.Background(), "не токен", nil)
	require.Error(t, err)
}
