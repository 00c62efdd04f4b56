package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/repositories"
)

const productColumns = "id, name, description, price, quantity, owner_id, is_approved, created_at, updated_at"

// ProductRepository is the PostgreSQL implementation of repositories.ProductRepository
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new product repository backed by pgx
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.OwnerID, &p.IsApproved, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return p, nil
}

// Create inserts a new product row
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, description, price, quantity, owner_id, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, product.ID, product.Name, product.Description, product.Price, product.Quantity,
		product.OwnerID, product.IsApproved, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID fetches a product by primary key
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	return scanProduct(row)
}

// Update persists owner-editable fields
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, quantity = $4, updated_at = NOW()
		WHERE id = $5
	`, product.Name, product.Description, product.Price, product.Quantity, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// SetApproved flips the approval flag and returns the updated row.
// Idempotent: approving an already-approved product is a no-op update.
func (r *ProductRepository) SetApproved(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE products SET is_approved = TRUE, updated_at = NOW() WHERE id = $1
		RETURNING `+productColumns, id)
	return scanProduct(row)
}

// Delete removes a product row
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// List returns a filtered page of products plus the total count
func (r *ProductRepository) List(ctx context.Context, filter repositories.ProductFilter, limit, offset int) ([]*models.Product, int64, error) {
	where := ""
	args := []interface{}{}
	addCond := func(cond string, val interface{}) {
		args = append(args, val)
		placeholder := "$" + strconv.Itoa(len(args))
		if where == "" {
			where = " WHERE " + cond + placeholder
		} else {
			where += " AND " + cond + placeholder
		}
	}
	if filter.OwnerID != nil {
		addCond("owner_id = ", *filter.OwnerID)
	}
	if filter.Approved != nil {
		addCond("is_approved = ", *filter.Approved)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	args = append(args, limit, offset)
	query := "SELECT " + productColumns + " FROM products" + where +
		" ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.OwnerID, &p.IsApproved, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read products: %w", err)
	}
	return products, total, nil
}

// Ensure ProductRepository implements the interface
var _ repositories.ProductRepository = (*ProductRepository)(nil)
