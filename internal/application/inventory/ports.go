package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o se confirman el nuevo estado y el movimiento, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stateRepo repository.InventoryStateRepository,
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// StockReportGenerator genera la planilla de conteo del inventario actual.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, items []repository.InventoryItem) ([]byte, error)
}
