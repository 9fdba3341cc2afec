package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.InventoryStateRepository = (*InventoryStateRepo)(nil)

// InventoryStateRepo implementación de InventoryStateRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryStateRepo struct {
	q Querier
}

// NewInventoryStateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryStateRepository(q Querier) *InventoryStateRepo {
	return &InventoryStateRepo{q: q}
}

// Create inserta la fila de estado inicial de un producto.
func (r *InventoryStateRepo) Create(ctx context.Context, state *entity.InventoryState) error {
	query := `
		INSERT INTO inventory_states (product_id, quantity, min_stock_level, max_stock_level, location, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		state.ProductID, state.Quantity, state.MinStockLevel,
		state.MaxStockLevel, state.Location, state.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert inventory state: ya existe fila para el producto: %w", err)
		}
		return fmt.Errorf("insert inventory state: %w", err)
	}
	return nil
}

// Get obtiene el estado de un producto; nil si no existe.
func (r *InventoryStateRepo) Get(ctx context.Context, productID string) (*entity.InventoryState, error) {
	return r.get(ctx, productID, false)
}

// GetForUpdate obtiene el estado bloqueando la fila (SELECT FOR UPDATE) para
// que un movimiento concurrente sobre el mismo producto espere al commit.
func (r *InventoryStateRepo) GetForUpdate(ctx context.Context, productID string) (*entity.InventoryState, error) {
	return r.get(ctx, productID, true)
}

func (r *InventoryStateRepo) get(ctx context.Context, productID string, forUpdate bool) (*entity.InventoryState, error) {
	query := `
		SELECT product_id, quantity, min_stock_level, max_stock_level, location, updated_at
		FROM inventory_states WHERE product_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var s entity.InventoryState
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.MinStockLevel, &s.MaxStockLevel, &s.Location, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory state: %w", err)
	}
	return &s, nil
}

// UpdateQuantity persiste la nueva cantidad y updated_at tras un movimiento.
func (r *InventoryStateRepo) UpdateQuantity(ctx context.Context, productID string, quantity int64, updatedAt time.Time) error {
	query := `
		UPDATE inventory_states SET quantity = $2, updated_at = $3
		WHERE product_id = $1`
	tag, err := r.q.Exec(ctx, query, productID, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventory quantity: fila inexistente para producto %s", productID)
	}
	return nil
}

// UpdateThresholds actualiza umbrales y ubicación sin tocar quantity.
func (r *InventoryStateRepo) UpdateThresholds(ctx context.Context, state *entity.InventoryState) error {
	query := `
		UPDATE inventory_states
		SET min_stock_level = $2, max_stock_level = $3, location = $4
		WHERE product_id = $1`
	_, err := r.q.Exec(ctx, query,
		state.ProductID, state.MinStockLevel, state.MaxStockLevel, state.Location,
	)
	if err != nil {
		return fmt.Errorf("update inventory thresholds: %w", err)
	}
	return nil
}

// ListAll inventario completo con datos del producto, ordenado por nombre.
func (r *InventoryStateRepo) ListAll(ctx context.Context) ([]repository.InventoryItem, error) {
	query := `
		SELECT s.product_id, p.sku, p.name, s.location, s.quantity,
		       s.min_stock_level, s.max_stock_level, p.price, s.updated_at
		FROM inventory_states s
		JOIN products p ON p.id = s.product_id
		ORDER BY p.name`
	return r.queryItems(ctx, query)
}

// ListLowStock filas con quantity <= min_stock_level, más agotado primero.
func (r *InventoryStateRepo) ListLowStock(ctx context.Context) ([]repository.InventoryItem, error) {
	query := `
		SELECT s.product_id, p.sku, p.name, s.location, s.quantity,
		       s.min_stock_level, s.max_stock_level, p.price, s.updated_at
		FROM inventory_states s
		JOIN products p ON p.id = s.product_id
		WHERE s.quantity <= s.min_stock_level
		ORDER BY s.quantity ASC`
	return r.queryItems(ctx, query)
}

func (r *InventoryStateRepo) queryItems(ctx context.Context, query string, args ...any) ([]repository.InventoryItem, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var items []repository.InventoryItem
	for rows.Next() {
		var it repository.InventoryItem
		if err := rows.Scan(
			&it.ProductID, &it.SKU, &it.ProductName, &it.Location, &it.Quantity,
			&it.MinStockLevel, &it.MaxStockLevel, &it.Price, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
