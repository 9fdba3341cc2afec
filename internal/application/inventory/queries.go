package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// Límites del historial de movimientos.
const (
	defaultMovementLimit = 50
	maxMovementLimit     = 200
)

// StockQueryUseCase proyecciones de solo lectura sobre el estado de
// inventario y el log de movimientos. Nunca participa en la transacción de
// escritura; cada consulta lee el estado actual de la DB (sin caché en
// proceso, que aquí causaría lost updates).
type StockQueryUseCase struct {
	stateRepo    repository.InventoryStateRepository
	movementRepo repository.StockMovementRepository
}

// NewStockQueryUseCase construye el caso de uso de lectura.
func NewStockQueryUseCase(
	stateRepo repository.InventoryStateRepository,
	movementRepo repository.StockMovementRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{stateRepo: stateRepo, movementRepo: movementRepo}
}

// ListInventory inventario completo con datos del producto, por nombre.
func (uc *StockQueryUseCase) ListInventory(ctx context.Context) ([]dto.InventoryItemDTO, error) {
	items, err := uc.stateRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toInventoryDTOs(items), nil
}

// ListLowStock productos en o por debajo de su umbral mínimo, el más
// agotado primero. Es un filtro simple, no un algoritmo de prioridad.
func (uc *StockQueryUseCase) ListLowStock(ctx context.Context) ([]dto.InventoryItemDTO, error) {
	items, err := uc.stateRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toInventoryDTOs(items), nil
}

// ListMovements historial de movimientos, el más reciente primero.
// productID vacío = todos los productos. limit <= 0 usa el default (50).
func (uc *StockQueryUseCase) ListMovements(ctx context.Context, productID string, limit int) ([]dto.StockMovementDTO, error) {
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	if limit > maxMovementLimit {
		limit = maxMovementLimit
	}
	movements, err := uc.movementRepo.List(ctx, productID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementDTO{
			ID:              m.ID,
			ProductID:       m.ProductID,
			UserID:          m.UserID,
			MovementType:    m.MovementType,
			Quantity:        m.Quantity,
			ReferenceNumber: m.ReferenceNumber,
			Notes:           m.Notes,
			CreatedAt:       m.CreatedAt,
		})
	}
	return out, nil
}

func toInventoryDTOs(items []repository.InventoryItem) []dto.InventoryItemDTO {
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryItemDTO{
			ProductID:     it.ProductID,
			SKU:           it.SKU,
			ProductName:   it.ProductName,
			Location:      it.Location,
			Quantity:      it.Quantity,
			MinStockLevel: it.MinStockLevel,
			MaxStockLevel: it.MaxStockLevel,
			Price:         it.Price,
			TotalValue:    it.Price.Mul(decimal.NewFromInt(it.Quantity)),
			UpdatedAt:     it.UpdatedAt,
		})
	}
	return out
}
