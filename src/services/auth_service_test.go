package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendora/vendora-server/src/cache"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/repositories"
	"github.com/vendora/vendora-server/src/repositories/mock"
)

func newTestUser(t *testing.T, role models.UserRole, status models.UserStatus) *models.User {
	t.Helper()
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func newTestAuthService(t *testing.T, repo *mock.UserRepository) (*AuthService, *UserService) {
	t.Helper()
	tokens := newTestTokenService(t)
	users := NewUserService(repo, cache.NewMemory(time.Minute), 30*time.Second)
	return NewAuthService(repo, tokens, users), users
}

// TestLogin_Success tests the full credential round-trip: register-style
// stored hash in, verified token pair out
func TestLogin_Success(t *testing.T) {
	user := newTestUser(t, models.RoleUser, models.UserStatusActive)
	repo := mock.NewUserRepository()
	repo.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		return user, nil
	}

	as, _ := newTestAuthService(t, repo)

	result, err := as.Login(context.Background(), user.Email, "password123")
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), result.UserID)
	assert.Equal(t, user.Name, result.Name)
	assert.Equal(t, models.RoleUser, result.Role)

	claims, err := as.tokens.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

// TestLogin_WrongPassword tests that a wrong password and an unknown
// email yield the same error
func TestLogin_WrongPassword(t *testing.T) {
	user := newTestUser(t, models.RoleUser, models.UserStatusActive)
	repo := mock.NewUserRepository()
	repo.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		if email == user.Email {
			return user, nil
		}
		return nil, repositories.ErrNotFound
	}

	as, _ := newTestAuthService(t, repo)

	_, err := as.Login(context.Background(), user.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = as.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// TestLogin_Banned tests that a banned account is rejected before the
// password is even checked
func TestLogin_Banned(t *testing.T) {
	user := newTestUser(t, models.RoleUser, models.UserStatusBanned)
	repo := mock.NewUserRepository()
	repo.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		return user, nil
	}

	as, _ := newTestAuthService(t, repo)

	// Even the correct password does not get past the ban
	_, err := as.Login(context.Background(), user.Email, "password123")
	assert.ErrorIs(t, err, ErrUserBanned)

	_, err = as.Login(context.Background(), user.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrUserBanned)
}

// TestChangePassword_Success tests that the new hash is stored and the
// auth cache entry is dropped
func TestChangePassword_Success(t *testing.T) {
	user := newTestUser(t, models.RoleUser, models.UserStatusActive)
	repo := mock.NewUserRepository()
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.User, error) {
		return user, nil
	}

	var storedHash string
	repo.UpdatePasswordFunc = func(ctx context.Context, id uuid.UUID, passwordHash string) error {
		storedHash = passwordHash
		return nil
	}

	as, users := newTestAuthService(t, repo)

	// Warm the auth cache so we can observe the invalidation
	_, err := users.FindForAuth(context.Background(), user.ID)
	require.NoError(t, err)

	err = as.ChangePassword(context.Background(), user.ID, "password123", "new-password-456")
	require.NoError(t, err)

	require.NotEmpty(t, storedHash)
	assert.True(t, CheckPassword("new-password-456", storedHash))
	assert.False(t, CheckPassword("password123", storedHash))
}

// TestChangePassword_WrongCurrent tests rejection when the current
// password does not match
func TestChangePassword_WrongCurrent(t *testing.T) {
	user := newTestUser(t, models.RoleUser, models.UserStatusActive)
	repo := mock.NewUserRepository()
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.User, error) {
		return user, nil
	}

	as, _ := newTestAuthService(t, repo)

	err := as.ChangePassword(context.Background(), user.ID, "wrong-password", "new-password-456")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Empty(t, repo.Calls["UpdatePassword"], "no write on a failed check")
}

// TestRefreshToken_CurrentRole tests that a refresh binds the account's
// current stored role, not the role embedded in the old token
func TestRefreshToken_CurrentRole(t *testing.T) {
	user := newTestUser(t, models.RoleUser, models.UserStatusActive)
	repo := mock.NewUserRepository()
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.User, error) {
		return user, nil
	}

	as, _ := newTestAuthService(t, repo)

	// Issue a refresh token while the account was still a USER
	pair, err := as.tokens.IssuePair(user.ID, models.RoleUser)
	require.NoError(t, err)

	// The account has since been promoted
	user.Role = models.RoleAdmin

	result, err := as.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, result.Role)

	claims, err := as.tokens.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

// TestRefreshToken_Invalid tests expired and malformed refresh tokens
func TestRefreshToken_Invalid(t *testing.T) {
	repo := mock.NewUserRepository()
	as, _ := newTestAuthService(t, repo)

	expired, err := as.tokens.Issue(uuid.New(), models.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = as.RefreshToken(context.Background(), expired)
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = as.RefreshToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// TestRefreshToken_DeletedAccount tests that a valid token for a
// vanished account fails
func TestRefreshToken_DeletedAccount(t *testing.T) {
	repo := mock.NewUserRepository()
	as, _ := newTestAuthService(t, repo)

	token, err := as.tokens.Issue(uuid.New(), models.RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = as.RefreshToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
