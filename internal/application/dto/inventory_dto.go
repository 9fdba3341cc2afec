package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/inventory/adjust.
// Quantity es puntero para distinguir "ausente" de cero: un body sin
// quantity es entrada inválida, no un movimiento de cero unidades.
type AdjustStockRequest struct {
	ProductID       string `json:"product_id"`
	MovementType    string `json:"movement_type"`
	Quantity        *int64 `json:"quantity"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// AdjustStockResponse resultado de un movimiento confirmado: cantidad
// anterior y nueva, para que el caller muestre el delta sin una segunda lectura.
type AdjustStockResponse struct {
	ProductID   string `json:"product_id"`
	MovementType string `json:"movement_type"`
	OldQuantity int64  `json:"old_quantity"`
	NewQuantity int64  `json:"new_quantity"`
}

// InventoryItemDTO fila del listado de inventario.
type InventoryItemDTO struct {
	ProductID     string          `json:"product_id"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"product_name"`
	Location      string          `json:"location,omitempty"`
	Quantity      int64           `json:"quantity"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel int64           `json:"max_stock_level"`
	Price         decimal.Decimal `json:"price"`
	TotalValue    decimal.Decimal `json:"total_value"` // price * quantity
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockMovementDTO fila del historial de movimientos.
type StockMovementDTO struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	UserID          string    `json:"user_id,omitempty"`
	MovementType    string    `json:"movement_type"`
	Quantity        int64     `json:"quantity"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
