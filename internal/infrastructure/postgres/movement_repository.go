package postgres

import (
	"context"
	"fmt"

	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL del libro de movimientos
// (usable con pool o tx). Solo inserta y lee: la tabla es append-only a
// nivel de aplicación.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create asienta un movimiento y rellena movement.ID. Un INSERT de salida
// puede ser rechazado por el trigger de la tabla; ese error se traduce aquí
// a su error de dominio.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (product_id, user_id, type, quantity, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.UserID, movement.Type, movement.Quantity, movement.OccurredAt,
	).Scan(&movement.ID)
	if err != nil {
		if translated := translateStoreError(err); translated != nil {
			return translated
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// HasForProduct indica si existe al menos un movimiento del producto.
func (r *MovementRepo) HasForProduct(productID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM movements WHERE product_id = $1)`, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("movement exists: %w", err)
	}
	return exists, nil
}

// ProductIDsWithHistory devuelve el conjunto de productos con algún movimiento.
func (r *MovementRepo) ProductIDsWithHistory() (map[int64]bool, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT product_id FROM movements`)
	if err != nil {
		return nil, fmt.Errorf("products with history: %w", err)
	}
	defer rows.Close()
	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

// ListWithNames devuelve el histórico con nombres de producto y usuario,
// filtrado por tipo y rango de fechas, ordenado por id descendente.
func (r *MovementRepo) ListWithNames(filter repository.MovementFilter) ([]*entity.MovementWithNames, error) {
	query := `
		SELECT m.id, m.product_id, m.user_id, m.type, m.quantity, m.occurred_at, p.name, u.name
		FROM movements m
		JOIN products p ON p.id = m.product_id
		JOIN users u ON u.id = m.user_id`
	var args []any
	pos := 1
	where := ""
	appendCond := func(cond string, arg any) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, arg)
		pos++
	}
	if filter.Type != "" {
		appendCond(fmt.Sprintf("m.type = $%d", pos), filter.Type)
	}
	if filter.From != nil {
		appendCond(fmt.Sprintf("m.occurred_at >= $%d", pos), *filter.From)
	}
	if filter.To != nil {
		appendCond(fmt.Sprintf("m.occurred_at < $%d", pos), *filter.To)
	}
	query += where + ` ORDER BY m.id DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithNames
	for rows.Next() {
		var m entity.MovementWithNames
		if err := rows.Scan(&m.ID, &m.ProductID, &m.UserID, &m.Type, &m.Quantity,
			&m.OccurredAt, &m.ProductName, &m.UserName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
