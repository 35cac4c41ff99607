package repository

import (
	"context"

	"github.com/jhoicas/analisis-ventas/internal/domain/entity"
)

// InvoiceHistoryReader puerto de lectura del historial de numeración (facturas y boletas).
// Las implementaciones son read-only.
type InvoiceHistoryReader interface {
	// ListInvoiceHistory devuelve todas las filas ordenadas por fecha_emision descendente,
	// sin limpiar: la validación de fechas y el mapeo de tipos los hace el Loader.
	ListInvoiceHistory(ctx context.Context) ([]entity.VentaCruda, error)
}
