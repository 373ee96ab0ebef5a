package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del libro de stock (protegido).
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Get godoc
// @Summary      Consultar stock por producto y almacén
// @Description  Devuelve las cubetas (actual, reservado, transito, rma) y el
//
//	disponible derivado. Si nunca se escribió la clave, todo en cero.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId    path  string  true  "ID del producto"
// @Param        warehouseId  path  string  true  "ID del almacén"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{productId}/{warehouseId} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	productID := c.Params("productId")
	warehouseID := c.Params("warehouseId")
	if productID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId y warehouseId son requeridos"})
	}
	record, err := h.uc.Get(c.Context(), companyID, productID, warehouseID)
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(toStockResponse(record))
}

// Update godoc
// @Summary      Ajustar cubetas de stock
// @Description  Patch parcial: los campos omitidos no cambian. Rechaza valores
//
//	negativos con el conjunto completo de violaciones.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId    path  string  true  "ID del producto"
// @Param        warehouseId  path  string  true  "ID del almacén"
// @Param        body         body  dto.UpdateStockRequest  true  "cubetas a ajustar"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{productId}/{warehouseId} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	productID := c.Params("productId")
	warehouseID := c.Params("warehouseId")
	if productID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId y warehouseId son requeridos"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.uc.Update(c.Context(), companyID, productID, warehouseID, in)
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(toStockResponse(record))
}

func toStockResponse(s *entity.StockRecord) dto.StockResponse {
	return dto.StockResponse{
		ProductID:   s.ProductID,
		WarehouseID: s.WarehouseID,
		Actual:      s.Actual,
		Reservado:   s.Reservado,
		Transito:    s.Transito,
		RMA:         s.RMA,
		Disponible:  s.Disponible(),
		UpdatedAt:   s.UpdatedAt,
	}
}
