package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
	"github.com/jhoicas/analisis-ventas/internal/application/dto"
	"github.com/jhoicas/analisis-ventas/internal/domain/entity"
)

func historial() []entity.VentaCruda {
	return []entity.VentaCruda{
		cruda("1", "2024-01-01", "01", "10"),
		cruda("2", "2024-01-02", "03", "5"),
		cruda("3", "2024-01-02 09:15:00", "01", "20"),
		cruda("4", "bad-date", "01", "1000"),
		cruda("5", "2024-01-03", "07", "7"),
	}
}

func newDashboard(src analytics.Source) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(src, analytics.NewLoader(zerolog.Nop()),
		analytics.DashboardConfig{TopClientes: 2, Moneda: "S/."}, zerolog.Nop())
}

// Sin conexión: ambos conjuntos vacíos, alerta de conexión y aviso de "sin datos".
func TestEjecutar_SinConexion(t *testing.T) {
	uc := newDashboard(fakeSource{err: errors.New("dial tcp: connection refused")})

	p := uc.Ejecutar(context.Background(), analytics.Criterios{TipoDocumento: analytics.TodosLosTipos})

	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Completo.Empty())
	assert.True(t, p.Filtrado.Empty())
	require.Len(t, p.Alertas, 2)
	assert.Equal(t, alerts.NivelError, p.Alertas[0].Nivel)
	assert.Contains(t, p.Alertas[0].Mensaje, "Error al conectar a la base de datos")
	assert.Equal(t, alerts.Alert{Nivel: alerts.NivelAdvertencia, Mensaje: analytics.MsgSinDatos}, p.Alertas[1])
}

func TestEjecutar_ErrorDeConsulta(t *testing.T) {
	reader := &fakeReader{err: errors.New("relation \"historial_numeracion\" does not exist")}
	uc := newDashboard(fakeSource{reader: reader})

	p := uc.Ejecutar(context.Background(), analytics.Criterios{})

	assert.Equal(t, 1, reader.calls)
	assert.True(t, p.Completo.Empty())
	require.Len(t, p.Alertas, 2)
	assert.Contains(t, p.Alertas[0].Mensaje, analytics.MsgErrorProcesar)
}

func TestEjecutar_FiltroSinCoincidencias(t *testing.T) {
	uc := newDashboard(fakeSource{reader: &fakeReader{rows: historial()}})

	p := uc.Ejecutar(context.Background(), analytics.Criterios{Fechas: []string{"2023-01-01", "2023-12-31"}})

	assert.Equal(t, 4, p.Completo.Len())
	assert.True(t, p.Filtrado.Empty())
	assert.Equal(t, []alerts.Alert{{Nivel: alerts.NivelAdvertencia, Mensaje: analytics.MsgSinCoincidencias}}, p.Alertas)
}

// Cada pasada vuelve a consultar; no hay caché de datos entre pasadas.
func TestEjecutar_PasadasIndependientes(t *testing.T) {
	reader := &fakeReader{rows: historial()}
	uc := newDashboard(fakeSource{reader: reader})

	p1 := uc.Ejecutar(context.Background(), analytics.Criterios{TipoDocumento: "Boleta"})
	p2 := uc.Ejecutar(context.Background(), analytics.Criterios{})

	assert.Equal(t, 2, reader.calls)
	assert.NotEqual(t, p1.ID, p2.ID)
	assert.Equal(t, 1, p1.Filtrado.Len())
	assert.Equal(t, 4, p2.Filtrado.Len())
}

type slowReader struct{}

func (slowReader) ListInvoiceHistory(ctx context.Context) ([]entity.VentaCruda, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestEjecutar_TimeoutDeConsulta(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fakeSource{reader: slowReader{}}, analytics.NewLoader(zerolog.Nop()),
		analytics.DashboardConfig{QueryTimeout: 10 * time.Millisecond}, zerolog.Nop())

	p := uc.Ejecutar(context.Background(), analytics.Criterios{})

	assert.True(t, p.Completo.Empty())
	require.NotEmpty(t, p.Alertas)
	assert.Contains(t, p.Alertas[0].Mensaje, context.DeadlineExceeded.Error())
}

func TestGetDashboard(t *testing.T) {
	uc := newDashboard(fakeSource{reader: &fakeReader{rows: historial()}})

	out := uc.GetDashboard(context.Background(), dto.DashboardRequest{
		TipoDocumento: "Factura",
		Fechas:        []string{"2024-01-01", "2024-01-02"},
	})

	assert.False(t, out.SinDatos)
	assert.Empty(t, out.Alertas)
	assert.Equal(t, []string{"Todos", "Boleta", "Factura"}, out.Filtros.TiposDocumento)
	assert.Equal(t, "2024-01-01", out.Filtros.FechaMin)
	assert.Equal(t, "2024-01-03", out.Filtros.FechaMax)
	assert.Equal(t, "Factura", out.Filtros.TipoSeleccionado)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, out.Filtros.RangoAplicado)

	require.NotNil(t, out.Resumen)
	assert.True(t, out.Resumen.TotalVentas.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 2, out.Resumen.Transacciones)
	assert.Equal(t, "S/. 30.00", out.Resumen.TotalVentasTexto)
	assert.Equal(t, "S/. 15.00", out.Resumen.PromedioTexto)

	require.Len(t, out.VentasPorDia, 2)
	assert.Equal(t, "2024-01-01", out.VentasPorDia[0].Fecha)
	require.Len(t, out.PorTipoDocumento, 1)
	assert.Equal(t, "Factura", out.PorTipoDocumento[0].TipoDocumento)
	require.Len(t, out.TopClientes, 2)
	assert.Equal(t, "Cliente 3", out.TopClientes[0].RazonSocial)

	require.Len(t, out.Detalle, 2)
	assert.Equal(t, "3", out.Detalle[0].ID, "detalle en orden de fecha descendente")
	assert.Equal(t, "01", out.Detalle[0].CodigoTipoDocumento)
}

func TestGetDashboard_SinDatosNoCalculaAgregados(t *testing.T) {
	uc := newDashboard(fakeSource{err: errors.New("sin red")})

	out := uc.GetDashboard(context.Background(), dto.DashboardRequest{})

	assert.True(t, out.SinDatos)
	assert.Nil(t, out.Resumen)
	assert.Empty(t, out.VentasPorDia)
	assert.NotNil(t, out.Detalle)
	assert.Equal(t, []string{"Todos"}, out.Filtros.TiposDocumento)
	assert.Equal(t, "Todos", out.Filtros.TipoSeleccionado)
	assert.Len(t, out.Alertas, 2)
}

func TestGetDetalle_Paginacion(t *testing.T) {
	uc := newDashboard(fakeSource{reader: &fakeReader{rows: historial()}})

	page := uc.GetDetalle(context.Background(), dto.DetalleRequest{PageRequest: dto.PageRequest{Limit: 3, Offset: 2}})

	assert.Equal(t, 4, page.Page.Total)
	assert.Equal(t, 3, page.Page.Limit)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "3", page.Items[0].ID)
	assert.Equal(t, "1", page.Items[1].ID)

	page = uc.GetDetalle(context.Background(), dto.DetalleRequest{PageRequest: dto.PageRequest{Offset: 50}})
	assert.Equal(t, 100, page.Page.Limit)
	assert.Empty(t, page.Items)
}
