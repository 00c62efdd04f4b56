package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vendora/vendora-server/src/cache"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/repositories"
)

// UserService handles account lookups. It fronts the repository with a
// short-TTL cache for the auth middleware, which loads the account on
// every authenticated request.
type UserService struct {
	repo     repositories.UserRepository
	cache    cache.Store
	cacheTTL time.Duration
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository, store cache.Store, cacheTTL time.Duration) *UserService {
	return &UserService{repo: repo, cache: store, cacheTTL: cacheTTL}
}

func authCacheKey(id uuid.UUID) string {
	return "auth:user:" + id.String()
}

// FindForAuth loads an account for the auth gate, consulting the cache
// first. Returns ErrUserNotFound if the account does not exist.
func (us *UserService) FindForAuth(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if b, ok := us.cache.Get(authCacheKey(id)); ok {
		u := &models.User{}
		if err := json.Unmarshal(b, u); err == nil {
			return u, nil
		}
		// Corrupt entry; drop it and fall through to the repository
		us.cache.Delete(authCacheKey(id))
	}

	user, err := us.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if b, err := json.Marshal(cacheUser(user)); err == nil {
		us.cache.Set(authCacheKey(id), b, us.cacheTTL)
	}
	return user, nil
}

// InvalidateAuth drops the cached account so status or credential changes
// take effect on the very next request
func (us *UserService) InvalidateAuth(id uuid.UUID) {
	us.cache.Delete(authCacheKey(id))
}

// GetProfile returns the account summary for the given id
func (us *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := us.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// cachedUser is the serialized cache shape; password hashes never enter
// the cache, and the gate does not need them.
type cachedUser struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func cacheUser(u *models.User) cachedUser {
	return cachedUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
