package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products. Los campos de inventario
// inicial alimentan la fila InventoryState que se crea junto con el producto.
type CreateProductRequest struct {
	CategoryID      string          `json:"category_id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	InitialQuantity int64           `json:"initial_quantity"`
	MinStockLevel   int64           `json:"min_stock_level"`
	MaxStockLevel   int64           `json:"max_stock_level"`
	Location        string          `json:"location,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Punteros = campos
// opcionales; el stock NO se modifica aquí (solo vía movimientos).
type UpdateProductRequest struct {
	CategoryID    *string          `json:"category_id,omitempty"`
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	MinStockLevel *int64           `json:"min_stock_level,omitempty"`
	MaxStockLevel *int64           `json:"max_stock_level,omitempty"`
	Location      *string          `json:"location,omitempty"`
}

// ProductResponse respuesta de producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id,omitempty"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []*ProductResponse `json:"products"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}
