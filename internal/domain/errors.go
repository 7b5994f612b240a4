package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el correo ya está registrado")
	ErrDuplicateName      = errors.New("ya existe un producto con ese nombre")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser mayor a 0")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInactiveProduct    = errors.New("producto no válido o inactivo")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrProductHasStock    = errors.New("el producto tiene existencias")
	ErrProductHasHistory  = errors.New("el producto tiene historial de movimientos")
	ErrSelfAction         = errors.New("no puedes modificar tu propio usuario")

	// Variantes levantadas por el trigger de la tabla movements: la fila ya
	// pasó la prevalidación de la app pero la BD la rechazó al insertar.
	ErrExitInactiveProduct   = errors.New("salida de producto inactivo rechazada por la base de datos")
	ErrExitInsufficientStock = errors.New("salida sin stock suficiente rechazada por la base de datos")
)
