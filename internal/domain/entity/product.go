package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock actual NO vive aquí:
// se mantiene en InventoryState y se modifica únicamente vía movimientos.
type Product struct {
	ID          string
	CategoryID  string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta (para valoración de inventario)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
