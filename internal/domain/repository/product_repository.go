package repository

import "github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"

// Estados de filtro para listar productos.
const (
	StatusAll      = "todos"
	StatusActive   = "activo"
	StatusInactive = "inactivo"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get* devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) hasta el
	// fin de la transacción. Solo tiene sentido dentro de un TxRunner.Run.
	GetForUpdate(id int64) (*entity.Product, error)
	// GetActiveForUpdate igual que GetForUpdate pero exige estatus activo.
	GetActiveForUpdate(id int64) (*entity.Product, error)
	// Update modifica nombre, precio y estatus. Nunca la cantidad.
	Update(product *entity.Product) error
	// UpdateQuantity fija el stock; reservado al motor de movimientos.
	UpdateQuantity(id int64, quantity int64) error
	SetActive(id int64, active bool) error
	// List filtra por estatus (todos/activo/inactivo), más recientes primero.
	List(status string) ([]*entity.Product, error)
	// ListAvailable devuelve productos activos con stock > 0, por nombre.
	ListAvailable() ([]*entity.Product, error)
	Delete(id int64) error
}
