package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/dto"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/inventory"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/usecase"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
)

// ProductHandler maneja el catálogo de productos.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	stockUC *inventory.StockUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stockUC *inventory.StockUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, stockUC: stockUC}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "todos | activo | inactivo"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Query("status", "todos"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron listar los productos", Severity: dto.SeverityDanger})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear producto (cantidad inicial 0)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, price, active"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido", Severity: dto.SeverityWarning})
	}
	product, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido", Severity: dto.SeverityWarning})
		}
		if err == domain.ErrDuplicateName {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: "ya existe un producto con ese nombre", Severity: dto.SeverityDanger})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo crear el producto", Severity: dto.SeverityDanger})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Update godoc
// @Summary      Editar nombre y precio de un producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "name, price"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Severity: dto.SeverityWarning})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido", Severity: dto.SeverityWarning})
	}
	product, err := h.uc.Update(int64(id), in)
	if err != nil {
		return productError(c, err, "no se pudo actualizar el producto")
	}
	return c.JSON(product)
}

// Deactivate godoc
// @Summary      Dar de baja un producto (solo estatus)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/deactivate [post]
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Severity: dto.SeverityWarning})
	}
	if err := h.uc.Deactivate(int64(id)); err != nil {
		return productError(c, err, "no se pudo dar de baja el producto")
	}
	return c.JSON(dto.MessageResponse{Message: "producto dado de baja", Severity: dto.SeveritySuccess})
}

// Reactivate godoc
// @Summary      Reactivar un producto dado de baja
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reactivate [post]
func (h *ProductHandler) Reactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Severity: dto.SeverityWarning})
	}
	if err := h.uc.Reactivate(int64(id)); err != nil {
		return productError(c, err, "no se pudo reactivar el producto")
	}
	return c.JSON(dto.MessageResponse{Message: "producto reactivado", Severity: dto.SeveritySuccess})
}

// Delete godoc
// @Summary      Eliminar un producto (sin existencias y sin historial)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Severity: dto.SeverityWarning})
	}
	if err := h.stockUC.DeleteProduct(c.Context(), int64(id)); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado", Severity: dto.SeverityWarning})
		case domain.ErrProductHasStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_STOCK", Message: "no puedes eliminar un producto con existencias", Severity: dto.SeverityWarning})
		case domain.ErrProductHasHistory:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_HISTORY", Message: "no puedes eliminar un producto con historial de movimientos", Severity: dto.SeverityWarning})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo eliminar el producto", Severity: dto.SeverityDanger})
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado", Severity: dto.SeveritySuccess})
}

func productError(c *fiber.Ctx, err error, fallback string) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado", Severity: dto.SeverityWarning})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Severity: dto.SeverityWarning})
	case domain.ErrDuplicateName:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: "ya existe un producto con ese nombre", Severity: dto.SeverityDanger})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: fallback, Severity: dto.SeverityDanger})
}
