package analytics_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
	"github.com/jhoicas/analisis-ventas/internal/domain/entity"
	"github.com/jhoicas/analisis-ventas/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y constructores de filas
// ──────────────────────────────────────────────────────────────────────────────

type fakeReader struct {
	rows  []entity.VentaCruda
	err   error
	calls int
}

func (f *fakeReader) ListInvoiceHistory(context.Context) ([]entity.VentaCruda, error) {
	f.calls++
	return f.rows, f.err
}

// fakeSource devuelve siempre el mismo lector; con reader nil simula conexión caída.
type fakeSource struct {
	reader repository.InvoiceHistoryReader
	err    error
}

func (s fakeSource) Reader(_ context.Context, rep alerts.Reporter) repository.InvoiceHistoryReader {
	if s.err != nil {
		rep.Error("Error al conectar a la base de datos", s.err)
		return nil
	}
	return s.reader
}

func str(s string) *string { return &s }

func monto(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func cruda(id, fecha, tipo, total string) entity.VentaCruda {
	return entity.VentaCruda{
		ID:            id,
		FechaEmision:  str(fecha),
		TipoDocumento: str(tipo),
		Total:         monto(total),
		RazonSocial:   str("Cliente " + id),
		RUCCliente:    str("2010000000" + id),
	}
}

func dia(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func venta(id string, fecha time.Time, tipo *string, total string) entity.Venta {
	return entity.Venta{ID: id, FechaEmision: fecha, TipoDocumento: tipo, Total: monto(total)}
}

func sumaTotal(ds *entity.Dataset) decimal.Decimal {
	s := decimal.Zero
	for _, v := range ds.Ventas() {
		if v.Total.Valid {
			s = s.Add(v.Total.Decimal)
		}
	}
	return s
}

func ids(ds *entity.Dataset) []string {
	out := make([]string, 0, ds.Len())
	for _, v := range ds.Ventas() {
		out = append(out, v.ID)
	}
	return out
}
