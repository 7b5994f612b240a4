package dto

import "time"

// EntryRequest body para registrar una entrada sobre un producto.
type EntryRequest struct {
	Quantity int64 `json:"quantity"`
}

// ExitRequest body para registrar una salida.
type ExitRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// MovementResponse una fila del histórico con nombres ya resueltos.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	Type        string    `json:"type"` // "E" | "S"
	Quantity    int64     `json:"quantity"`
	OccurredAt  time.Time `json:"occurred_at"`
}
