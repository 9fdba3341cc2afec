package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// InventoryItem fila del listado de inventario: estado actual más los campos
// de presentación del producto. Lo produce la DB; el use case lo expone como DTO.
type InventoryItem struct {
	ProductID     string
	SKU           string
	ProductName   string
	Location      string
	Quantity      int64
	MinStockLevel int64
	MaxStockLevel int64
	Price         decimal.Decimal
	UpdatedAt     time.Time
}

// InventoryStateRepository define el puerto para el estado actual de stock
// (una fila por producto). Las mutaciones solo ocurren dentro de la
// transacción del motor de movimientos.
type InventoryStateRepository interface {
	// Create inserta la fila de estado inicial de un producto (al crearlo).
	Create(ctx context.Context, state *entity.InventoryState) error
	// Get obtiene el estado de un producto; nil si no existe.
	Get(ctx context.Context, productID string) (*entity.InventoryState, error)
	// GetForUpdate obtiene el estado bloqueando la fila (SELECT FOR UPDATE)
	// para serializar movimientos concurrentes sobre el mismo producto.
	// Devuelve nil si no existe fila para el producto.
	GetForUpdate(ctx context.Context, productID string) (*entity.InventoryState, error)
	// UpdateQuantity persiste la nueva cantidad y updated_at tras un movimiento.
	UpdateQuantity(ctx context.Context, productID string, quantity int64, updatedAt time.Time) error
	// UpdateThresholds actualiza umbrales y ubicación (no toca quantity).
	UpdateThresholds(ctx context.Context, state *entity.InventoryState) error

	// ListAll devuelve el inventario completo con datos del producto,
	// ordenado por nombre de producto.
	ListAll(ctx context.Context) ([]InventoryItem, error)
	// ListLowStock devuelve las filas con quantity <= min_stock_level,
	// ordenadas por cantidad ascendente (más agotado primero).
	ListLowStock(ctx context.Context) ([]InventoryItem, error)
}
