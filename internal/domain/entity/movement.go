package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntry = "E" // entrada
	MovementTypeExit  = "S" // salida
)

// Movement es un registro del libro de movimientos: inmutable una vez
// confirmado, nunca se actualiza ni se borra. La suma con signo de los
// movimientos de un producto siempre coincide con su Quantity.
type Movement struct {
	ID         int64     `json:"id"` // bigserial, monótonamente creciente
	ProductID  int64     `json:"product_id"`
	UserID     int64     `json:"user_id"`
	Type       string    `json:"type"`     // "E" | "S"
	Quantity   int64     `json:"quantity"` // siempre positivo; el tipo da el signo
	OccurredAt time.Time `json:"occurred_at"`
}

// MovementWithNames es la vista de lectura del histórico, con los nombres
// de producto y usuario ya resueltos.
type MovementWithNames struct {
	Movement
	ProductName string `json:"product_name"`
	UserName    string `json:"user_name"`
}
