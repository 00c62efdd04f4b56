package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/repositories"
)

// ProductRepository is a mock implementation of repositories.ProductRepository
type ProductRepository struct {
	CreateFunc      func(ctx context.Context, product *models.Product) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateFunc      func(ctx context.Context, product *models.Product) error
	SetApprovedFunc func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	ListFunc        func(ctx context.Context, filter repositories.ProductFilter, limit, offset int) ([]*models.Product, int64, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewProductRepository creates a new mock product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	m.Calls["Create"] = append(m.Calls["Create"], product)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	m.Calls["Update"] = append(m.Calls["Update"], product)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *ProductRepository) SetApproved(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	m.Calls["SetApproved"] = append(m.Calls["SetApproved"], id)
	if m.SetApprovedFunc != nil {
		return m.SetApprovedFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *ProductRepository) List(ctx context.Context, filter repositories.ProductFilter, limit, offset int) ([]*models.Product, int64, error) {
	m.Calls["List"] = append(m.Calls["List"], filter)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, limit, offset)
	}
	return nil, 0, nil
}

// Ensure ProductRepository implements the interface
var _ repositories.ProductRepository = (*ProductRepository)(nil)
