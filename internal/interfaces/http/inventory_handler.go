package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/dto"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/inventory"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/usecase"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
)

// InventoryHandler maneja entradas y salidas de stock (protegido).
type InventoryHandler struct {
	uc        *inventory.StockUseCase
	productUC *usecase.ProductUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase, productUC *usecase.ProductUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, productUC: productUC}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de stock sobre un producto
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.EntryRequest  true  "quantity > 0"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/entry [post]
func (h *InventoryHandler) RegisterEntry(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido", Severity: dto.SeverityWarning})
	}
	productID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Severity: dto.SeverityWarning})
	}
	var in dto.EntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cantidad inválida", Severity: dto.SeverityWarning})
	}
	_, err = h.uc.RegisterEntry(c.Context(), inventory.EntryInput{
		ProductID: int64(productID),
		Quantity:  in.Quantity,
		UserID:    userID,
	})
	if err != nil {
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser mayor a 0", Severity: dto.SeverityWarning})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado", Severity: dto.SeverityWarning})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo registrar la entrada", Severity: dto.SeverityDanger})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "entrada registrada", Severity: dto.SeveritySuccess})
}

// ListAvailable godoc
// @Summary      Productos elegibles para salida (activos con stock > 0)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/exits/products [get]
func (h *InventoryHandler) ListAvailable(c *fiber.Ctx) error {
	items, err := h.productUC.ListAvailableForExit()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron listar los productos", Severity: dto.SeverityDanger})
	}
	return c.JSON(items)
}

// RegisterExit godoc
// @Summary      Registrar salida de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExitRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/exits [post]
func (h *InventoryHandler) RegisterExit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido", Severity: dto.SeverityWarning})
	}
	var in dto.ExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cantidad inválida", Severity: dto.SeverityWarning})
	}
	_, err := h.uc.RegisterExit(c.Context(), inventory.ExitInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UserID:    userID,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "selecciona un producto", Severity: dto.SeverityWarning})
		case domain.ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser mayor que 0", Severity: dto.SeverityWarning})
		case domain.ErrInactiveProduct:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INACTIVE_PRODUCT", Message: "producto no válido o inactivo", Severity: dto.SeverityWarning})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "no puedes sacar más de lo disponible en inventario", Severity: dto.SeverityWarning})
		case domain.ErrExitInactiveProduct:
			// Rechazo del trigger, traducido: nunca el texto crudo de la BD
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INACTIVE_PRODUCT", Message: "no puedes registrar salida de un producto inactivo", Severity: dto.SeverityDanger})
		case domain.ErrExitInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "no hay suficiente inventario para la salida solicitada", Severity: dto.SeverityDanger})
		}
		// Nunca el texto crudo del error de almacenamiento
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error en la base de datos al registrar la salida", Severity: dto.SeverityDanger})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "salida registrada", Severity: dto.SeveritySuccess})
}
