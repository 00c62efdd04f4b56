package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vendora/vendora-server/src/logging"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/repositories"
)

// AuthResult is the payload returned by login and token refresh
type AuthResult struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	UserID       string          `json:"userId"`
	Name         string          `json:"name"`
	Role         models.UserRole `json:"role"`
}

// AuthService orchestrates login, password change and token refresh
type AuthService struct {
	repo   repositories.UserRepository
	tokens *TokenService
	users  *UserService
	logger zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(repo repositories.UserRepository, tokens *TokenService, users *UserService) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		users:  users,
		logger: logging.NewLogger("auth_service"),
	}
}

// Login verifies credentials and issues a token pair.
//
// The banned check runs before password verification and returns a
// distinct error, mirroring the long-standing API behavior. Unknown
// email and wrong password share one error.
func (as *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := as.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.IsBanned() {
		as.logger.Warn().Str("user_id", user.ID.String()).Msg("banned account attempted login")
		return nil, ErrUserBanned
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	pair, err := as.tokens.IssuePair(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	as.logger.Info().Str("user_id", user.ID.String()).Str("role", string(user.Role)).Msg("user logged in")

	return &AuthResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       user.ID.String(),
		Name:         user.Name,
		Role:         user.Role,
	}, nil
}

// ChangePassword verifies the current password and stores a new hash
func (as *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := as.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !CheckPassword(currentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := as.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to persist password: %w", err)
	}

	as.users.InvalidateAuth(user.ID)
	as.logger.Info().Str("user_id", user.ID.String()).Msg("password changed")
	return nil
}

// RefreshToken exchanges a valid refresh token for a fresh pair.
// The new tokens carry the account's current stored role, not the role
// embedded in the presented token, so role changes propagate on refresh.
func (as *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := as.tokens.Verify(refreshToken)
	if err != nil {
		return nil, err
	}

	id, err := claims.SubjectID()
	if err != nil {
		return nil, err
	}

	user, err := as.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	pair, err := as.tokens.IssuePair(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &AuthResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       user.ID.String(),
		Name:         user.Name,
		Role:         user.Role,
	}, nil
}
