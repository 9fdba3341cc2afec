package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

func newQueryUseCase(store *memStore) *inventory.StockQueryUseCase {
	return inventory.NewStockQueryUseCase(
		&memStateRepo{store: store},
		&memMovementRepo{store: store},
	)
}

// Stock bajo: en el umbral o por debajo aparece; por encima no.
func TestListLowStock_Umbral(t *testing.T) {
	store := newMemStore()
	store.seed("agotado", 5, 10)   // 5 <= 10 → aparece
	store.seed("al-limite", 10, 10) // 10 <= 10 → aparece
	store.seed("sano", 15, 10)     // 15 > 10 → no aparece
	uc := newQueryUseCase(store)

	items, err := uc.ListLowStock(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	assert.Contains(t, ids, "agotado")
	assert.Contains(t, ids, "al-limite")
	assert.NotContains(t, ids, "sano")
}

// El listado de inventario calcula el valor total por fila (price * quantity).
func TestListInventory_ValorTotal(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 7, 0) // price 10 en el seed
	uc := newQueryUseCase(store)

	items, err := uc.ListInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].TotalValue.Equal(decimal.NewFromInt(70)),
		"total_value debe ser price * quantity, fue %s", items[0].TotalValue)
}

// El historial aplica el límite por defecto (50) y devuelve lo más reciente primero.
func TestListMovements_LimiteYOrden(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 0, 0)
	ucAdjust := newUseCase(store)
	for i := 0; i < 60; i++ {
		_, err := ucAdjust.Adjust(context.Background(), inventory.AdjustInput{
			ProductID:    "p1",
			MovementType: entity.MovementTypeIN,
			Quantity:     int64(i + 1),
		})
		require.NoError(t, err)
	}
	uc := newQueryUseCase(store)

	movs, err := uc.ListMovements(context.Background(), "p1", 0)
	require.NoError(t, err)
	assert.Len(t, movs, 50, "limit <= 0 debe usar el default de 50")
	assert.Equal(t, int64(60), movs[0].Quantity, "el movimiento más reciente va primero")

	movs, err = uc.ListMovements(context.Background(), "p1", 10)
	require.NoError(t, err)
	assert.Len(t, movs, 10)

	// Filtro por producto: otro product_id no devuelve nada
	movs, err = uc.ListMovements(context.Background(), "otro", 10)
	require.NoError(t, err)
	assert.Empty(t, movs)
}
