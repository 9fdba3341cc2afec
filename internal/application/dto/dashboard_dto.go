package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Conteos y valoración total del inventario. Las cuatro métricas provienen
// de consultas independientes (sin snapshot compartido).
type DashboardStatsDTO struct {
	TotalProducts   int64           `json:"total_products"`
	TotalCategories int64           `json:"total_categories"`
	LowStockCount   int64           `json:"low_stock_count"`
	InventoryValue  decimal.Decimal `json:"inventory_value"` // sum(price * quantity)
}
