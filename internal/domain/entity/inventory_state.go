package entity

import "time"

// InventoryState es la proyección mutable del stock actual de un producto:
// exactamente una fila por producto, creada junto con el producto y modificada
// únicamente por el motor de movimientos dentro de una transacción.
// Invariante: Quantity >= 0 después de cada commit.
type InventoryState struct {
	ProductID     string
	Quantity      int64
	MinStockLevel int64 // umbral informativo para el listado de stock bajo
	MaxStockLevel int64 // umbral informativo, no se aplica en escrituras
	Location      string
	UpdatedAt     time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral mínimo.
func (s *InventoryState) IsLowStock() bool {
	return s.Quantity <= s.MinStockLevel
}
