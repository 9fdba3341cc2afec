package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// StockReportUseCase genera la planilla de conteo físico en PDF a partir del
// inventario actual (lectura directa de DB, sin caché).
type StockReportUseCase struct {
	stateRepo repository.InventoryStateRepository
	generator StockReportGenerator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(stateRepo repository.InventoryStateRepository, generator StockReportGenerator) *StockReportUseCase {
	return &StockReportUseCase{stateRepo: stateRepo, generator: generator}
}

// GenerateReport devuelve los bytes del PDF con el listado completo de
// inventario (SKU, nombre, ubicación, cantidad, mínimo, valor).
func (uc *StockReportUseCase) GenerateReport(ctx context.Context) ([]byte, error) {
	items, err := uc.stateRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, items)
}
