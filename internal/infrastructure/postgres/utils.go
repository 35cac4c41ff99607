package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que indican una tabla de origen mal configurada.
const (
	sqlstateUndefinedTable  = "42P01"
	sqlstateUndefinedColumn = "42703"
)

// withHint agrega una pista legible a errores de esquema; el resto pasa sin cambios.
func withHint(err error, table string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case sqlstateUndefinedTable:
		return fmt.Errorf("la tabla %q no existe (revise DASHBOARD_TABLE): %w", table, err)
	case sqlstateUndefinedColumn:
		return fmt.Errorf("la tabla %q no tiene las columnas esperadas: %w", table, err)
	}
	return err
}
