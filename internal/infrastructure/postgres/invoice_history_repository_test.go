package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows entrega filas en memoria con el mismo orden de columnas que historyQuery.
type fakeRows struct {
	rows   [][]any
	i      int
	err    error
	closed bool
}

var _ pgx.Rows = (*fakeRows)(nil)

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.i >= len(r.rows) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.i-1], nil }

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.i-1]
	if len(dest) != len(row) {
		return fmt.Errorf("se esperaban %d destinos, llegaron %d", len(row), len(dest))
	}
	for i, d := range dest {
		switch d := d.(type) {
		case **string:
			if row[i] == nil {
				*d = nil
				continue
			}
			s, ok := row[i].(string)
			if !ok {
				return fmt.Errorf("columna %d: %T no es texto", i, row[i])
			}
			*d = &s
		case *decimal.NullDecimal:
			if row[i] == nil {
				*d = decimal.NullDecimal{}
				continue
			}
			s, ok := row[i].(string)
			if !ok {
				return fmt.Errorf("columna %d: %T no es numeric", i, row[i])
			}
			*d = decimal.NewNullDecimal(decimal.RequireFromString(s))
		default:
			return fmt.Errorf("columna %d: destino %T no soportado", i, d)
		}
	}
	return nil
}

type fakeQuerier struct {
	rows *fakeRows
	err  error
	sql  string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestListInvoiceHistory_OrdenDeColumnas(t *testing.T) {
	rows := &fakeRows{rows: [][]any{{
		"7", "00000123", "Av. Arequipa 123", "2024-01-05", "2024-01-05 10:00:00",
		"18.00", "Comercial Andina S.A.C.", "20512345678", "F001",
		"100.00", "01", "PEN", "118.00", "100.00",
	}}}
	q := &fakeQuerier{rows: rows}

	got, err := NewInvoiceHistoryRepository(q, "").ListInvoiceHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	v := got[0]
	assert.Equal(t, "7", v.ID)
	assert.Equal(t, "00000123", *v.Correlativo)
	assert.Equal(t, "Av. Arequipa 123", *v.Direccion)
	assert.Equal(t, "2024-01-05", *v.FechaEmision)
	assert.Equal(t, "2024-01-05 10:00:00", *v.FechaRegistro)
	assert.True(t, v.IGV.Decimal.Equal(decimal.RequireFromString("18")))
	assert.Equal(t, "Comercial Andina S.A.C.", *v.RazonSocial)
	assert.Equal(t, "20512345678", *v.RUCCliente)
	assert.Equal(t, "F001", *v.Serie)
	assert.True(t, v.Subtotal.Decimal.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "01", *v.TipoDocumento)
	assert.Equal(t, "PEN", *v.TipoMoneda)
	assert.True(t, v.Total.Decimal.Equal(decimal.RequireFromString("118")))
	assert.True(t, v.ValorVenta.Decimal.Equal(decimal.RequireFromString("100")))

	assert.Equal(t, historyQuery(DefaultTable), q.sql)
	assert.True(t, rows.closed)
}

func TestListInvoiceHistory_NulosSeConservan(t *testing.T) {
	fila := make([]any, 14)
	fila[3] = "2024-02-01"
	q := &fakeQuerier{rows: &fakeRows{rows: [][]any{fila}}}

	got, err := NewInvoiceHistoryRepository(q, "").ListInvoiceHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	v := got[0]
	assert.Equal(t, "", v.ID)
	assert.Nil(t, v.RazonSocial)
	assert.Nil(t, v.RUCCliente)
	assert.Nil(t, v.TipoDocumento)
	assert.False(t, v.IGV.Valid)
	assert.False(t, v.Subtotal.Valid)
	assert.False(t, v.Total.Valid)
	assert.False(t, v.ValorVenta.Valid)
	assert.Equal(t, "2024-02-01", *v.FechaEmision)
}

func TestListInvoiceHistory_SinFilasDevuelveVacioNoNil(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{}}

	got, err := NewInvoiceHistoryRepository(q, "").ListInvoiceHistory(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListInvoiceHistory_Errores(t *testing.T) {
	t.Run("consulta con pista de tabla", func(t *testing.T) {
		q := &fakeQuerier{err: &pgconn.PgError{Code: "42P01"}}
		_, err := NewInvoiceHistoryRepository(q, "ventas").ListInvoiceHistory(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "historial.List")
		assert.Contains(t, err.Error(), "DASHBOARD_TABLE")
		var pgErr *pgconn.PgError
		assert.ErrorAs(t, err, &pgErr)
	})

	t.Run("iteración", func(t *testing.T) {
		boom := errors.New("conexión cerrada")
		q := &fakeQuerier{rows: &fakeRows{err: boom}}
		_, err := NewInvoiceHistoryRepository(q, "").ListInvoiceHistory(context.Background())
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "historial.List rows")
	})

	t.Run("scan", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{rows: [][]any{{"1"}}}}
		_, err := NewInvoiceHistoryRepository(q, "").ListInvoiceHistory(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "historial.List scan")
	})
}
