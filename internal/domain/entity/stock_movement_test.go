package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// La enumeración de tipos es cerrada y sensible a mayúsculas: solo IN, OUT
// y ADJUSTMENT son válidos; todo lo demás se rechaza antes de tocar la DB.
func TestValidMovementType(t *testing.T) {
	validos := []string{
		entity.MovementTypeIN,
		entity.MovementTypeOUT,
		entity.MovementTypeADJUSTMENT,
	}
	for _, v := range validos {
		assert.True(t, entity.ValidMovementType(v), "%q debe ser válido", v)
	}

	invalidos := []string{"", "in", "out", "adjustment", "TRANSFER", "IN ", "RESET"}
	for _, v := range invalidos {
		assert.False(t, entity.ValidMovementType(v), "%q debe ser inválido", v)
	}
}

// El umbral de stock bajo es inclusivo: quantity == min_stock_level ya cuenta.
func TestInventoryState_IsLowStock(t *testing.T) {
	casos := []struct {
		nombre string
		qty    int64
		min    int64
		want   bool
	}{
		{"por debajo del mínimo", 3, 10, true},
		{"exactamente en el mínimo", 10, 10, true},
		{"por encima del mínimo", 11, 10, false},
		{"sin umbral configurado, con stock", 5, 0, false},
		{"sin umbral configurado, agotado", 0, 0, true},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			s := &entity.InventoryState{Quantity: c.qty, MinStockLevel: c.min}
			assert.Equal(t, c.want, s.IsLowStock())
		})
	}
}
