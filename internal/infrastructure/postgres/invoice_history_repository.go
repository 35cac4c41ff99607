package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/analisis-ventas/internal/domain/entity"
	"github.com/jhoicas/analisis-ventas/internal/domain/repository"
)

// DefaultTable tabla de origen del historial de numeración.
const DefaultTable = "numeracion_historial"

// Querier lectura que comparten *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ repository.InvoiceHistoryReader = (*InvoiceHistoryRepo)(nil)

// InvoiceHistoryRepo lectura del historial de facturas y boletas (solo SELECT).
type InvoiceHistoryRepo struct {
	q     Querier
	table string
	query string
}

// NewInvoiceHistoryRepository construye el adaptador. table puede incluir esquema
// ("ventas.numeracion_historial"); vacío usa DefaultTable.
func NewInvoiceHistoryRepository(q Querier, table string) *InvoiceHistoryRepo {
	if table == "" {
		table = DefaultTable
	}
	return &InvoiceHistoryRepo{q: q, table: table, query: historyQuery(table)}
}

// Las columnas de texto se castean para que cualquier tipo de origen (date, varchar,
// timestamp) llegue como texto libre; los montos llegan como numeric.
// El ORDER BY usa el alias de tabla para ordenar por la columna de origen y no por el texto casteado.
func historyQuery(table string) string {
	if table == "" {
		table = DefaultTable
	}
	return `
	SELECT
	    t.id::text,
	    t.correlativo::text,
	    t.direccion::text,
	    t.fecha_emision::text,
	    t.fecha_registro::text,
	    t.igv::numeric,
	    t.razon_social::text,
	    t.ruc_cliente::text,
	    t.serie::text,
	    t.subtotal::numeric,
	    t.tipo_documento::text,
	    t.tipo_moneda::text,
	    t.total::numeric,
	    t.valor_venta::numeric
	FROM ` + pgx.Identifier(strings.Split(table, ".")).Sanitize() + ` t
	ORDER BY t.fecha_emision DESC`
}

// ListInvoiceHistory devuelve todas las filas, ordenadas por fecha_emision descendente.
func (r *InvoiceHistoryRepo) ListInvoiceHistory(ctx context.Context) ([]entity.VentaCruda, error) {
	rows, err := r.q.Query(ctx, r.query)
	if err != nil {
		return nil, fmt.Errorf("historial.List: %w", withHint(err, r.table))
	}
	defer rows.Close()

	out := []entity.VentaCruda{}
	for rows.Next() {
		var (
			v  entity.VentaCruda
			id *string
		)
		if err := rows.Scan(
			&id,
			&v.Correlativo,
			&v.Direccion,
			&v.FechaEmision,
			&v.FechaRegistro,
			&v.IGV,
			&v.RazonSocial,
			&v.RUCCliente,
			&v.Serie,
			&v.Subtotal,
			&v.TipoDocumento,
			&v.TipoMoneda,
			&v.Total,
			&v.ValorVenta,
		); err != nil {
			return nil, fmt.Errorf("historial.List scan: %w", err)
		}
		if id != nil {
			v.ID = *id
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("historial.List rows: %w", err)
	}
	return out, nil
}
