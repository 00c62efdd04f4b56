package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vendora/vendora-server/src/models"
)

// Store-level sentinel errors. Services translate these into their own
// taxonomy; handlers never see them directly.
var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail indicates a unique-constraint violation on users.email
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines data access for user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByRole(ctx context.Context, role models.UserRole) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]*models.User, int64, error)
}

// ProductFilter narrows product listings
type ProductFilter struct {
	OwnerID  *uuid.UUID
	Approved *bool
}

// ProductRepository defines data access for products
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	SetApproved(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*models.Product, int64, error)
}
