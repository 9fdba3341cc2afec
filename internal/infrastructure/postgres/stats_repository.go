package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountProducts total de productos del catálogo.
func (r *StatsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

// CountCategories total de categorías.
func (r *StatsRepo) CountCategories(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM categories`)
}

// CountLowStock productos en o por debajo de su umbral mínimo.
func (r *StatsRepo) CountLowStock(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM inventory_states WHERE quantity <= min_stock_level`)
}

func (r *StatsRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats count: %w", err)
	}
	return n, nil
}

// TotalInventoryValue suma de price * quantity sobre el inventario.
// COALESCE devuelve cero si no hay filas.
func (r *StatsRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(p.price * s.quantity), 0)
		FROM inventory_states s
		JOIN products p ON p.id = s.product_id`
	var v decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&v); err != nil {
		return decimal.Zero, fmt.Errorf("stats inventory value: %w", err)
	}
	return v, nil
}
