package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// translateStoreError traduce errores levantados por el trigger de salidas
// (RAISE EXCEPTION, código P0001) a errores de dominio, inspeccionando el
// texto del mensaje. Los textos ('producto inactivo', 'sin stock suficiente')
// son un contrato versionado: viven en migrations/ junto al trigger.
// Devuelve nil si el error no proviene del trigger.
func translateStoreError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	if pgErr.Code != "P0001" { // raise_exception
		return nil
	}
	msg := strings.ToLower(pgErr.Message)
	switch {
	case strings.Contains(msg, "inactivo"):
		return domain.ErrExitInactiveProduct
	case strings.Contains(msg, "sin stock"), strings.Contains(msg, "suficiente"), strings.Contains(msg, "stock"):
		return domain.ErrExitInsufficientStock
	}
	return nil
}
