package repository

import (
	"time"

	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
)

// MovementFilter acota el listado del histórico. Campos nil/vacíos no filtran.
type MovementFilter struct {
	Type string // "E" | "S" | "" (sin filtro)
	From *time.Time
	To   *time.Time // exclusivo: occurred_at < To
}

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. Solo altas y lecturas: el libro es append-only y ningún
// método de actualización o borrado forma parte del contrato.
type MovementRepository interface {
	// Create persiste el movimiento y rellena movement.ID.
	Create(movement *entity.Movement) error
	// HasForProduct indica si existe al menos un movimiento del producto.
	HasForProduct(productID int64) (bool, error)
	// ProductIDsWithHistory devuelve el conjunto de productos referenciados
	// por algún movimiento (para los listados de catálogo).
	ProductIDsWithHistory() (map[int64]bool, error)
	// ListWithNames devuelve el histórico con nombres de producto y usuario,
	// ordenado por id descendente.
	ListWithNames(filter MovementFilter) ([]*entity.MovementWithNames, error)
}
