package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository define las consultas de lectura para el dashboard.
// Son consultas independientes: no comparten snapshot entre sí (alimentan
// una pantalla, no una decisión de control), así que una pequeña
// inconsistencia entre conteos de una misma respuesta es aceptable.
type StatsRepository interface {
	// CountProducts total de productos del catálogo.
	CountProducts(ctx context.Context) (int64, error)
	// CountCategories total de categorías.
	CountCategories(ctx context.Context) (int64, error)
	// CountLowStock productos con quantity <= min_stock_level.
	CountLowStock(ctx context.Context) (int64, error)
	// TotalInventoryValue suma de price * quantity sobre todos los productos
	// con fila de inventario. COALESCE a cero si no hay inventario.
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
}
