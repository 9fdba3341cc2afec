package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del log de
// movimientos. El log es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	// Create persiste un movimiento (dentro de la transacción del motor).
	Create(ctx context.Context, movement *entity.StockMovement) error
	// GetByID obtiene un movimiento por ID; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	// List devuelve el historial más reciente primero (created_at, id DESC),
	// opcionalmente filtrado por producto (productID vacío = todos),
	// limitado a limit filas.
	List(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error)
}
