package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. La cantidad inicial
// siempre es 0: el stock solo entra por movimientos de entrada.
type CreateProductRequest struct {
	Name   string          `json:"name" validate:"required,min=1,max=150"`
	Price  decimal.Decimal `json:"price"`
	Active bool            `json:"active"`
}

// UpdateProductRequest entrada para editar nombre y precio. Nunca la cantidad.
type UpdateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto en listados de catálogo.
// HasHistory indica si el libro de movimientos lo referencia (bloquea borrado).
type ProductResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	Active     bool            `json:"active"`
	HasHistory bool            `json:"has_history"`
}
