// Package pdf genera el reporte imprimible del tablero de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación │ filtros aplicados   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total ventas │ Transacciones │ Promedio           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR TIPO: Tipo | Docs | Total | Promedio | Valor venta     │
//	│  TOP CLIENTES: # | Razón social | RUC | Total               │
//	│  VENTAS POR DÍA: Fecha | Total                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Fecha | Documento | Tipo | Cliente | RUC | Total  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
	"github.com/jhoicas/analisis-ventas/internal/application/dto"
	"github.com/jhoicas/analisis-ventas/internal/domain"
	"github.com/jhoicas/analisis-ventas/pkg/moneda"
	"github.com/jhoicas/analisis-ventas/pkg/sunat"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateSalesReport genera el PDF del tablero filtrado y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(_ context.Context, report *dto.DashboardDTO, simbolo string) ([]byte, error) {
	if report == nil || report.Resumen == nil {
		return nil, domain.ErrSinDatos
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(report.Resumen))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("VENTAS POR TIPO DE DOCUMENTO"))
	m.AddRows(tableHeader(
		th{"Tipo", 3, align.Left}, th{"Docs.", 1, align.Center}, th{"Total", 3, align.Right},
		th{"Promedio", 2, align.Right}, th{"Valor venta", 3, align.Right},
	))
	for i, s := range report.PorTipoDocumento {
		m.AddRows(tableRow(i,
			td{s.TipoDocumento, 3, align.Left},
			td{fmt.Sprint(s.Cantidad), 1, align.Center},
			td{moneda.Formatear(s.TotalVentas, simbolo), 3, align.Right},
			td{moneda.Formatear(s.PromedioVenta, simbolo), 2, align.Right},
			td{moneda.Formatear(s.ValorVenta, simbolo), 3, align.Right},
		))
	}

	m.AddRows(sectionTitle(fmt.Sprintf("TOP %d CLIENTES", len(report.TopClientes))))
	m.AddRows(tableHeader(
		th{"#", 1, align.Center}, th{"Razón social", 6, align.Left},
		th{"RUC", 2, align.Left}, th{"Total", 3, align.Right},
	))
	for i, c := range report.TopClientes {
		m.AddRows(tableRow(i,
			td{fmt.Sprint(i + 1), 1, align.Center},
			td{c.RazonSocial, 6, align.Left},
			td{c.RUCCliente, 2, align.Left},
			td{moneda.Formatear(c.Total, simbolo), 3, align.Right},
		))
	}

	m.AddRows(sectionTitle("VENTAS POR DÍA"))
	m.AddRows(tableHeader(th{"Fecha", 6, align.Left}, th{"Total", 6, align.Right}))
	for i, d := range report.VentasPorDia {
		m.AddRows(tableRow(i,
			td{d.Fecha, 6, align.Left},
			td{moneda.Formatear(d.Total, simbolo), 6, align.Right},
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle(fmt.Sprintf("DETALLE (%d documentos)", len(report.Detalle))))
	m.AddRows(tableHeader(
		th{"Fecha", 2, align.Left}, th{"Documento", 2, align.Left}, th{"Tipo", 1, align.Left},
		th{"Cliente", 4, align.Left}, th{"RUC", 1, align.Left}, th{"Total", 2, align.Right},
	))
	for i, v := range report.Detalle {
		m.AddRows(tableRow(i,
			td{v.FechaEmision, 2, align.Left},
			td{documento(v), 2, align.Left},
			td{tipo(v), 1, align.Left},
			td{truncate(v.RazonSocial, 38), 4, align.Left},
			td{v.RUCCliente, 1, align.Left},
			td{moneda.FormatearNull(v.Total, simboloFila(v, simbolo)), 2, align.Right},
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y fecha (izq), filtros aplicados (der).
func headerRow(report *dto.DashboardDTO, now time.Time) core.Row {
	rango := "todas las fechas"
	if len(report.Filtros.RangoAplicado) == 2 {
		rango = report.Filtros.RangoAplicado[0] + " a " + report.Filtros.RangoAplicado[1]
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Tipo de documento: "+report.Filtros.TipoSeleccionado, props.Text{
				Size: 8, Align: align.Right, Top: 2,
			}),
			text.New("Rango: "+rango, props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Pasada: "+report.PasadaID, props.Text{
				Size: 6.5, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// resumenRow: tres métricas destacadas.
func resumenRow(r *dto.ResumenDTO) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		metric("Total ventas", r.TotalVentasTexto),
		metric("Transacciones", fmt.Sprint(r.Transacciones)),
		metric("Promedio por venta", r.PromedioTexto),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

// ── Tablas ────────────────────────────────────────────────────────────────────

type th struct {
	label string
	size  int
	align align.Type
}

type td th

// tableHeader: cabecera con fondo azul.
func tableHeader(cols ...th) core.Row {
	cs := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cs = append(cs, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cs...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRow: fila de datos; las pares llevan fondo.
func tableRow(i int, cols ...td) core.Row {
	cs := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cs = append(cs, col.New(c.size).Add(text.New(c.label, props.Text{
			Size: 7.5, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	r := row.New(6).Add(cs...)
	if i%2 == 1 {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

func documento(v dto.VentaDTO) string {
	switch {
	case v.Serie != "" && v.Correlativo != "":
		return v.Serie + "-" + v.Correlativo
	case v.Serie != "":
		return v.Serie
	default:
		return v.Correlativo
	}
}

func tipo(v dto.VentaDTO) string {
	if v.TipoDocumento != nil {
		return *v.TipoDocumento
	}
	return nonEmpty(v.CodigoTipoDocumento, "—")
}

// simboloFila usa el símbolo de la moneda del documento cuando no es soles.
func simboloFila(v dto.VentaDTO, simbolo string) string {
	if v.TipoMoneda == "" || v.TipoMoneda == sunat.MonedaSoles {
		return simbolo
	}
	return sunat.SimboloMoneda(v.TipoMoneda)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// truncate corta s a n runas agregando "…".
func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
