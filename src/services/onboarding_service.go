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

// OnboardingService creates accounts: self-registration, admin creation
// and the one-time super admin bootstrap.
type OnboardingService struct {
	repo   repositories.UserRepository
	logger zerolog.Logger
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(repo repositories.UserRepository) *OnboardingService {
	return &OnboardingService{
		repo:   repo,
		logger: logging.NewLogger("onboarding_service"),
	}
}

// Register creates a new ACTIVE account with the given role.
// Returns ErrEmailTaken if the email is already registered.
func (os *OnboardingService) Register(ctx context.Context, name, email, password string, role models.UserRole) (*models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       models.UserStatusActive,
	}

	if err := os.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	os.logger.Info().Str("user_id", user.ID.String()).Str("role", string(role)).Msg("user created")
	return user, nil
}

// CheckEmail reports whether the email is still available
func (os *OnboardingService) CheckEmail(ctx context.Context, email string) (bool, error) {
	_, err := os.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return false, nil
}

// EnsureSuperAdmin creates the bootstrap super admin account on first
// startup if no SUPER_ADMIN exists yet. The check-then-create is not
// atomic across replicas; the partial unique index on users(role)
// rejects a concurrent duplicate at the store.
func (os *OnboardingService) EnsureSuperAdmin(ctx context.Context, email, password string) error {
	_, err := os.repo.GetByRole(ctx, models.RoleSuperAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check for super admin: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         "Super Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		Status:       models.UserStatusActive,
	}

	if err := os.repo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}

	os.logger.Info().Str("email", email).Msg("super admin created")
	return nil
}
