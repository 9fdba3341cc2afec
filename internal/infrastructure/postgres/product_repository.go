package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, sku, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	categoryID := (*string)(nil)
	if product.CategoryID != "" {
		categoryID = &product.CategoryID
	}
	_, err := r.q.Exec(ctx, query,
		product.ID, categoryID, product.SKU, product.Name,
		product.Description, product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, category_id, sku, name, description, price, created_at, updated_at
		FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetBySKU obtiene un producto por SKU; nil si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT id, category_id, sku, name, description, price, created_at, updated_at
		FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, sku))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	err := row.Scan(
		&p.ID, &categoryID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

// Update actualiza metadatos del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, price = $5, updated_at = $6
		WHERE id = $1`
	categoryID := (*string)(nil)
	if product.CategoryID != "" {
		categoryID = &product.CategoryID
	}
	_, err := r.q.Exec(ctx, query,
		product.ID, categoryID, product.Name, product.Description,
		product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, category_id, sku, name, description, price, created_at, updated_at
		FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var categoryID *string
		if err := rows.Scan(&p.ID, &categoryID, &p.SKU, &p.Name, &p.Description,
			&p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if categoryID != nil {
			p.CategoryID = *categoryID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto; inventory_states cae en cascada (FK).
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
