package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del ledger de inventario
// (movimientos y consultas, protegido).
type InventoryHandler struct {
	adjust  *inventory.AdjustStockUseCase
	queries *inventory.StockQueryUseCase
	report  *inventory.StockReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	adjust *inventory.AdjustStockUseCase,
	queries *inventory.StockQueryUseCase,
	report *inventory.StockReportUseCase,
) *InventoryHandler {
	return &InventoryHandler{adjust: adjust, queries: queries, report: report}
}

// Adjust godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica IN/OUT/ADJUSTMENT sobre un producto de forma atómica y devuelve cantidad anterior y nueva.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, movement_type (IN|OUT|ADJUSTMENT), quantity"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity es requerido"})
	}
	result, err := h.adjust.Adjust(c.Context(), inventory.AdjustInput{
		ProductID:       in.ProductID,
		MovementType:    in.MovementType,
		Quantity:        *in.Quantity,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		ActorID:         GetUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMovementType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MOVEMENT_TYPE", Message: "tipo de movimiento inválido"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto sin inventario"})
		case errors.Is(err, domain.ErrInsufficientStock):
			// Rechazo de negocio, distinto de un fallo interno: el caller
			// puede reintentar con una cantidad menor.
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.AdjustStockResponse{
		ProductID:    in.ProductID,
		MovementType: in.MovementType,
		OldQuantity:  result.OldQuantity,
		NewQuantity:  result.NewQuantity,
	})
}

// ListInventory godoc
// @Summary      Listar inventario actual
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryItemDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	items, err := h.queries.ListInventory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "inventory": items})
}

// ListLowStock godoc
// @Summary      Listar productos con stock bajo
// @Description  Productos con quantity <= min_stock_level, el más agotado primero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryItemDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	items, err := h.queries.ListLowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "inventory": items})
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Description  Rastro de auditoría, más reciente primero. Filtro opcional por producto.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Máximo de filas (default 50)"
// @Success      200  {array}   dto.StockMovementDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	limit := c.QueryInt("limit")
	movements, err := h.queries.ListMovements(c.Context(), productID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
}

// StockReport godoc
// @Summary      Planilla de conteo en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/report.pdf [get]
func (h *InventoryHandler) StockReport(c *fiber.Ctx) error {
	pdfBytes, err := h.report.GenerateReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdfBytes)
}
