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

// StatusUpdate is the payload returned by a ban/unban, with the action
// label derived from the new status ("banned" or "unbanned")
type StatusUpdate struct {
	User   *models.User `json:"user"`
	Action string       `json:"action"`
}

// UserPage is a paginated account listing
type UserPage struct {
	Users []*models.User `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// AdminService handles account moderation
type AdminService struct {
	repo   repositories.UserRepository
	users  *UserService
	logger zerolog.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.UserRepository, users *UserService) *AdminService {
	return &AdminService{
		repo:   repo,
		users:  users,
		logger: logging.NewLogger("admin_service"),
	}
}

// UpdateUserStatus bans or unbans an account. Super admin accounts can
// never change status. The auth-gate cache entry is dropped before
// returning so a ban blocks the very next request.
func (as *AdminService) UpdateUserStatus(ctx context.Context, targetID uuid.UUID, status models.UserStatus) (*StatusUpdate, error) {
	user, err := as.repo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Role == models.RoleSuperAdmin {
		return nil, ErrSuperAdminImmutable
	}

	updated, err := as.repo.UpdateStatus(ctx, user.ID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	as.users.InvalidateAuth(user.ID)

	action := "unbanned"
	if status == models.UserStatusBanned {
		action = "banned"
	}

	as.logger.Info().
		Str("user_id", user.ID.String()).
		Str("action", action).
		Msg("user status updated")

	return &StatusUpdate{User: updated, Action: action}, nil
}

// ListUsers returns a page of accounts
func (as *AdminService) ListUsers(ctx context.Context, page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := as.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &UserPage{Users: users, Total: total, Page: page, Limit: limit}, nil
}
