package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/dto"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/usecase"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
)

// UserHandler administración de usuarios (solo Administrador).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron listar los usuarios", Severity: dto.SeverityDanger})
	}
	return c.JSON(items)
}

// ListRoles godoc
// @Summary      Listar roles disponibles
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Role
// @Router       /api/roles [get]
func (h *UserHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.uc.ListRoles()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron listar los roles", Severity: dto.SeverityDanger})
	}
	return c.JSON(roles)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "name, email, password, role_id, active"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido", Severity: dto.SeverityWarning})
	}
	user, err := h.uc.Create(in)
	if err != nil {
		return userError(c, err, "no se pudo crear el usuario")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update godoc
// @Summary      Editar usuario (password vacío conserva el actual)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "name, email, password, role_id, active"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Severity: dto.SeverityWarning})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido", Severity: dto.SeverityWarning})
	}
	user, err := h.uc.Update(int64(id), in)
	if err != nil {
		return userError(c, err, "no se pudo actualizar el usuario")
	}
	return c.JSON(user)
}

// Activate godoc
// @Summary      Activar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/activate [post]
func (h *UserHandler) Activate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Severity: dto.SeverityWarning})
	}
	if err := h.uc.Activate(GetUserID(c), int64(id)); err != nil {
		return userError(c, err, "no se pudo activar el usuario")
	}
	return c.JSON(dto.MessageResponse{Message: "usuario activado", Severity: dto.SeveritySuccess})
}

// Deactivate godoc
// @Summary      Desactivar usuario (no el propio)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Severity: dto.SeverityWarning})
	}
	if err := h.uc.Deactivate(GetUserID(c), int64(id)); err != nil {
		if err == domain.ErrSelfAction {
			// Advertencia, no fallo: la cuenta queda intacta
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SELF_ACTION", Message: "no puedes desactivar tu propio usuario", Severity: dto.SeverityWarning})
		}
		return userError(c, err, "no se pudo desactivar el usuario")
	}
	return c.JSON(dto.MessageResponse{Message: "usuario desactivado", Severity: dto.SeveritySuccess})
}

// Delete godoc
// @Summary      Eliminar usuario (no el propio)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Severity: dto.SeverityWarning})
	}
	if err := h.uc.Delete(GetUserID(c), int64(id)); err != nil {
		if err == domain.ErrSelfAction {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SELF_ACTION", Message: "no puedes eliminar tu propio usuario", Severity: dto.SeverityWarning})
		}
		return userError(c, err, "no se pudo eliminar el usuario")
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado", Severity: dto.SeveritySuccess})
}

func userError(c *fiber.Ctx, err error, fallback string) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "completa todos los campos", Severity: dto.SeverityWarning})
	case domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado", Severity: dto.SeverityWarning})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ROLE_NOT_FOUND", Message: "el rol no existe", Severity: dto.SeverityWarning})
	case domain.ErrEmailAlreadyExists:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ese correo ya existe", Severity: dto.SeverityDanger})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: fallback, Severity: dto.SeverityDanger})
}
