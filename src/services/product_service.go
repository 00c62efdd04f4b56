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

// ProductInput carries the owner-editable product fields
type ProductInput struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"required,min=0"`
	Quantity    int    `json:"quantity" binding:"required,min=0"`
}

// ProductView is a product enriched with its owner's account summary
type ProductView struct {
	Product *models.Product `json:"product"`
	Owner   *models.User    `json:"owner,omitempty"`
}

// ProductPage is a paginated product listing
type ProductPage struct {
	Products []*ProductView `json:"products"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	Limit    int            `json:"limit"`
}

// ProductService handles the product workflow. Approval is admin-gated
// by the router; everything else here is owner-scoped.
type ProductService struct {
	products repositories.ProductRepository
	users    repositories.UserRepository
	logger   zerolog.Logger
}

// NewProductService creates a new product service
func NewProductService(products repositories.ProductRepository, users repositories.UserRepository) *ProductService {
	return &ProductService{
		products: products,
		users:    users,
		logger:   logging.NewLogger("product_service"),
	}
}

func (ps *ProductService) withOwner(ctx context.Context, product *models.Product) *ProductView {
	view := &ProductView{Product: product}
	if owner, err := ps.users.GetByID(ctx, product.OwnerID); err == nil {
		view.Owner = owner
	}
	return view
}

// Create adds a new, unapproved product owned by the caller
func (ps *ProductService) Create(ctx context.Context, ownerID uuid.UUID, input ProductInput) (*ProductView, error) {
	product := &models.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		OwnerID:     ownerID,
		IsApproved:  false,
	}

	if err := ps.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	ps.logger.Info().Str("product_id", product.ID.String()).Str("owner_id", ownerID.String()).Msg("product created")
	return ps.withOwner(ctx, product), nil
}

// getOwned loads a product and verifies ownership. Not-found and
// not-owned collapse into one error so callers cannot probe for other
// users' product ids.
func (ps *ProductService) getOwned(ctx context.Context, ownerID, productID uuid.UUID) (*models.Product, error) {
	product, err := ps.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product.OwnerID != ownerID {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Update edits an owned product
func (ps *ProductService) Update(ctx context.Context, ownerID, productID uuid.UUID, input ProductInput) (*ProductView, error) {
	product, err := ps.getOwned(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Quantity = input.Quantity

	if err := ps.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return ps.withOwner(ctx, product), nil
}

// Delete removes an owned product
func (ps *ProductService) Delete(ctx context.Context, ownerID, productID uuid.UUID) error {
	product, err := ps.getOwned(ctx, ownerID, productID)
	if err != nil {
		return err
	}
	if err := ps.products.Delete(ctx, product.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	ps.logger.Info().Str("product_id", productID.String()).Msg("product deleted")
	return nil
}

// Approve marks a product as approved and returns it with the owner
// resolved. Approving an already-approved product succeeds and leaves
// the flag set.
func (ps *ProductService) Approve(ctx context.Context, productID uuid.UUID) (*ProductView, error) {
	product, err := ps.products.SetApproved(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to approve product: %w", err)
	}

	ps.logger.Info().Str("product_id", productID.String()).Msg("product approved")
	return ps.withOwner(ctx, product), nil
}

// Get returns a single approved product; unapproved products are not
// publicly visible
func (ps *ProductService) Get(ctx context.Context, productID uuid.UUID) (*ProductView, error) {
	product, err := ps.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if !product.IsApproved {
		return nil, ErrProductNotFound
	}
	return ps.withOwner(ctx, product), nil
}

// ListApproved returns a page of publicly visible products
func (ps *ProductService) ListApproved(ctx context.Context, page, limit int) (*ProductPage, error) {
	approved := true
	return ps.list(ctx, repositories.ProductFilter{Approved: &approved}, page, limit)
}

// ListMine returns a page of the caller's own products, approved or not
func (ps *ProductService) ListMine(ctx context.Context, ownerID uuid.UUID, page, limit int) (*ProductPage, error) {
	return ps.list(ctx, repositories.ProductFilter{OwnerID: &ownerID}, page, limit)
}

// ListAll returns a page of products with an optional approval filter
// (admin listing)
func (ps *ProductService) ListAll(ctx context.Context, approved *bool, page, limit int) (*ProductPage, error) {
	return ps.list(ctx, repositories.ProductFilter{Approved: approved}, page, limit)
}

func (ps *ProductService) list(ctx context.Context, filter repositories.ProductFilter, page, limit int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	products, total, err := ps.products.List(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ps.withOwner(ctx, p))
	}
	return &ProductPage{Products: views, Total: total, Page: page, Limit: limit}, nil
}
