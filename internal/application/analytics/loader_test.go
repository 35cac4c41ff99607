package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
	"github.com/jhoicas/analisis-ventas/internal/domain/entity"
	"github.com/jhoicas/analisis-ventas/pkg/fechas"
)

func newLoader() *analytics.Loader { return analytics.NewLoader(zerolog.Nop()) }

// Escenario 1: la fila con fecha inválida se descarta y "01" se etiqueta como Factura.
func TestLoad_DescartaFechaInvalidaYMapeaTipo(t *testing.T) {
	reader := &fakeReader{rows: []entity.VentaCruda{
		cruda("1", "2024-01-05", "01", "100"),
		cruda("2", "bad-date", "03", "50"),
	}}
	rep := alerts.NewCollector(zerolog.Nop())

	ds := newLoader().Load(context.Background(), reader, rep)

	require.Equal(t, 1, ds.Len())
	v := ds.Ventas()[0]
	assert.Equal(t, "1", v.ID)
	require.NotNil(t, v.TipoDocumento)
	assert.Equal(t, "Factura", *v.TipoDocumento)
	assert.Equal(t, dia(2024, 1, 5), v.FechaEmision)
	assert.Empty(t, rep.Alerts(), "descartar filas por fecha no genera alertas")
}

func TestLoad_SinConexionNoConsulta(t *testing.T) {
	rep := alerts.NewCollector(zerolog.Nop())

	ds := newLoader().Load(context.Background(), nil, rep)

	require.NotNil(t, ds)
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, rep.Alerts())
}

func TestLoad_ErrorDeConsultaDevuelveVacioYAlerta(t *testing.T) {
	reader := &fakeReader{err: errors.New("connection reset by peer")}
	rep := alerts.NewCollector(zerolog.Nop())

	ds := newLoader().Load(context.Background(), reader, rep)

	assert.True(t, ds.Empty())
	require.Len(t, rep.Alerts(), 1)
	assert.Equal(t, alerts.NivelError, rep.Alerts()[0].Nivel)
	assert.Equal(t, "Error al procesar datos: connection reset by peer", rep.Alerts()[0].Mensaje)
	assert.Equal(t, 1, reader.calls)
}

func TestLimpiar_CodigosDesconocidosNoSeDescartan(t *testing.T) {
	nota := cruda("3", "2024-02-01", "07", "10")
	sinTipo := cruda("4", "2024-02-02", "", "10")
	sinTipo.TipoDocumento = nil

	ventas := analytics.Limpiar([]entity.VentaCruda{
		cruda("1", "2024-01-31", "03", "10"),
		nota,
		sinTipo,
	})

	require.Len(t, ventas, 3)
	assert.Equal(t, "Boleta", ventas[0].EtiquetaTipo())
	assert.Nil(t, ventas[1].TipoDocumento)
	assert.Equal(t, "07", ventas[1].CodigoTipoDocumento)
	assert.Nil(t, ventas[2].TipoDocumento)
	assert.Equal(t, "", ventas[2].CodigoTipoDocumento)
}

func TestLimpiar_ConservaOrdenYCampos(t *testing.T) {
	c := entity.VentaCruda{
		ID:            "10",
		Correlativo:   str("00000123"),
		Serie:         str("F001"),
		Direccion:     str("Av. Arequipa 123, Lima"),
		FechaEmision:  str("2024-03-10 18:45:00"),
		FechaRegistro: str("2024-03-10 18:46:12.123"),
		IGV:           monto("18"),
		Subtotal:      monto("100"),
		Total:         monto("118"),
		ValorVenta:    monto("100"),
		RazonSocial:   str("Comercial Andina S.A.C."),
		RUCCliente:    str("20512345678"),
		TipoDocumento: str("01"),
		TipoMoneda:    str("PEN"),
	}

	ventas := analytics.Limpiar([]entity.VentaCruda{c, cruda("11", "2024-03-09", "03", "5")})

	require.Len(t, ventas, 2)
	v := ventas[0]
	assert.Equal(t, "10", v.ID)
	assert.Equal(t, "00000123", v.Correlativo)
	assert.Equal(t, "F001", v.Serie)
	assert.Equal(t, dia(2024, 3, 10), v.FechaEmision)
	assert.Equal(t, "2024-03-10 18:46:12.123", v.FechaRegistro)
	assert.True(t, v.Total.Decimal.Equal(monto("118").Decimal))
	assert.Equal(t, "PEN", v.TipoMoneda)
	assert.Equal(t, "11", ventas[1].ID)
}

// Fechas con día primero o con guiones se conservan; no hubo fallo de interpretación.
func TestLimpiar_ConservaFechasDiaPrimeroYConGuiones(t *testing.T) {
	ventas := analytics.Limpiar([]entity.VentaCruda{
		cruda("1", "31/12/2024", "01", "100"),
		cruda("2", "01-05-2024", "03", "50"),
		cruda("3", "31-12-2024", "01", "10"),
	})

	require.Len(t, ventas, 3)
	assert.Equal(t, dia(2024, 12, 31), ventas[0].FechaEmision)
	assert.Equal(t, dia(2024, 1, 5), ventas[1].FechaEmision)
	assert.Equal(t, dia(2024, 12, 31), ventas[2].FechaEmision)
	assert.True(t, sumaTotal(entity.NewDataset(ventas)).Equal(monto("160").Decimal))
}

// Las filas limpias nunca superan a las crudas y cada descarte tuvo una fecha no interpretable.
func TestLimpiar_SoloDescartaFechasInvalidas(t *testing.T) {
	entradas := []string{
		"2024-01-05", "bad-date", "", "05/01/2024", "2024-01-05T10:00:00Z",
		"hola", "2023-12-31 23:59:59", "   ",
	}
	var crudas []entity.VentaCruda
	for i, f := range entradas {
		crudas = append(crudas, cruda(string(rune('a'+i)), f, "01", "1"))
	}
	crudas = append(crudas, entity.VentaCruda{ID: "nil"})

	ventas := analytics.Limpiar(crudas)

	assert.LessOrEqual(t, len(ventas), len(crudas))
	conservadas := map[string]bool{}
	for _, v := range ventas {
		conservadas[v.ID] = true
	}
	for _, c := range crudas {
		valida := fechas.ParseEmision(c.FechaEmision).Valida
		assert.Equal(t, valida, conservadas[c.ID], "fila %s (%v)", c.ID, c.FechaEmision)
	}
}
