package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// AdjustStockUseCase es el motor del ledger: muta la cantidad actual de un
// producto y agrega el movimiento al log, dentro de una sola transacción con
// bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustInput entrada para un movimiento de stock.
// Quantity es magnitud para IN/OUT (> 0) y valor absoluto objetivo para
// ADJUSTMENT (>= 0). ActorID es opcional.
type AdjustInput struct {
	ProductID       string
	MovementType    string
	Quantity        int64
	ReferenceNumber string
	Notes           string
	ActorID         string
}

// AdjustResult cantidades antes y después del movimiento confirmado.
type AdjustResult struct {
	OldQuantity int64
	NewQuantity int64
}

// Adjust aplica un movimiento: valida la entrada, abre la transacción,
// bloquea la fila de estado, calcula la nueva cantidad según el tipo,
// persiste el estado y agrega el movimiento. Todo o nada.
//
// Errores de negocio: domain.ErrInvalidInput / ErrInvalidMovementType antes
// de abrir la transacción, domain.ErrNotFound si el producto no tiene fila
// de inventario, domain.ErrInsufficientStock si un OUT dejaría la cantidad
// negativa. Cualquier otro error es de almacenamiento y sube envuelto.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, input AdjustInput) (*AdjustResult, error) {
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(input.MovementType) {
		return nil, domain.ErrInvalidMovementType
	}
	// Validación estricta de la magnitud: IN/OUT mueven algo (> 0) y un
	// ajuste nunca puede fijar un stock negativo.
	switch input.MovementType {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if input.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUSTMENT:
		if input.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	var result AdjustResult

	err := uc.txRunner.Run(ctx, func(
		stateRepo repository.InventoryStateRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		// Bloquea la fila de estado para que un movimiento concurrente sobre
		// el mismo producto vea la cantidad ya confirmada, no una obsoleta.
		state, err := stateRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if state == nil {
			return domain.ErrNotFound
		}

		oldQty := state.Quantity
		var newQty int64
		switch input.MovementType {
		case entity.MovementTypeIN:
			newQty = oldQty + input.Quantity
		case entity.MovementTypeOUT:
			newQty = oldQty - input.Quantity
			if newQty < 0 {
				return domain.ErrInsufficientStock
			}
		case entity.MovementTypeADJUSTMENT:
			newQty = input.Quantity
		}

		if err := stateRepo.UpdateQuantity(ctx, input.ProductID, newQty, now); err != nil {
			return err
		}
		// El movimiento guarda la cantidad tal como la pidió el caller
		// (magnitud para IN/OUT, objetivo para ADJUSTMENT).
		mov := &entity.StockMovement{
			ID:              uuid.New().String(),
			ProductID:       input.ProductID,
			UserID:          input.ActorID,
			MovementType:    input.MovementType,
			Quantity:        input.Quantity,
			ReferenceNumber: input.ReferenceNumber,
			Notes:           input.Notes,
			CreatedAt:       now,
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return err
		}

		result = AdjustResult{OldQuantity: oldQty, NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
