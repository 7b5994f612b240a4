package entity

import "github.com/shopspring/decimal"

// Product representa un producto del almacén.
// Quantity es el stock vigente y SOLO lo muta el motor de movimientos
// (entradas/salidas); las operaciones de catálogo nunca lo tocan.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`     // único, no vacío
	Price    decimal.Decimal `json:"price"`    // precio de venta, no negativo
	Quantity int64           `json:"quantity"` // stock actual, nunca negativo
	Active   bool            `json:"active"`
}
